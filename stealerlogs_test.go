package hibp

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestGetStealerLogsByEmail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stealerlogsbyemail/victim@example.com" {
			t.Errorf("request path = %s, want /stealerlogsbyemail/victim@example.com", r.URL.Path)
		}
		fmt.Fprint(w, `["netflix.com","spotify.com"]`)
	}))

	domains, err := client.GetStealerLogsByEmail(context.Background(), "victim@example.com")
	if err != nil {
		t.Fatalf("GetStealerLogsByEmail() failed: %v", err)
	}
	if len(domains) != 2 || domains[0] != "netflix.com" {
		t.Errorf("GetStealerLogsByEmail() = %v", domains)
	}
}

func TestGetStealerLogsByWebsiteDomain(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stealerlogsbywebsitedomain/netflix.com" {
			t.Errorf("request path = %s, want /stealerlogsbywebsitedomain/netflix.com", r.URL.Path)
		}
		fmt.Fprint(w, `["user1@example.com","user2@example.com"]`)
	}))

	emails, err := client.GetStealerLogsByWebsiteDomain(context.Background(), "netflix.com")
	if err != nil {
		t.Fatalf("GetStealerLogsByWebsiteDomain() failed: %v", err)
	}
	if len(emails) != 2 {
		t.Errorf("GetStealerLogsByWebsiteDomain() = %v, want 2 emails", emails)
	}
}

func TestGetStealerLogsByEmailDomain(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stealerlogsbyemaildomain/example.com" {
			t.Errorf("request path = %s, want /stealerlogsbyemaildomain/example.com", r.URL.Path)
		}
		fmt.Fprint(w, `{"user1":["netflix.com"],"user2":["netflix.com","spotify.com"]}`)
	}))

	aliases, err := client.GetStealerLogsByEmailDomain(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("GetStealerLogsByEmailDomain() failed: %v", err)
	}
	if len(aliases["user2"]) != 2 {
		t.Errorf("aliases[user2] = %v, want 2 websites", aliases["user2"])
	}
}

func TestStealerLogs_NotFoundIsEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	ctx := context.Background()

	domains, err := client.GetStealerLogsByEmail(ctx, "clean@example.com")
	if err != nil || len(domains) != 0 {
		t.Errorf("GetStealerLogsByEmail() = %v, %v; want empty slice, nil", domains, err)
	}

	emails, err := client.GetStealerLogsByWebsiteDomain(ctx, "clean.example.com")
	if err != nil || len(emails) != 0 {
		t.Errorf("GetStealerLogsByWebsiteDomain() = %v, %v; want empty slice, nil", emails, err)
	}

	aliases, err := client.GetStealerLogsByEmailDomain(ctx, "clean.example.com")
	if err != nil || len(aliases) != 0 {
		t.Errorf("GetStealerLogsByEmailDomain() = %v, %v; want empty map, nil", aliases, err)
	}
}
