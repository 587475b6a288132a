package hibp

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestGetAccountPastes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pasteaccount/test@example.com" {
			t.Errorf("request path = %s, want /pasteaccount/test@example.com", r.URL.Path)
		}
		fmt.Fprint(w, `[{"Source":"Pastebin","Id":"8Q0BvKD8","Title":"syslog","Date":"2014-03-04T19:14:54Z","EmailCount":139}]`)
	}))

	pastes, err := client.GetAccountPastes(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("GetAccountPastes() failed: %v", err)
	}

	if len(pastes) != 1 {
		t.Fatalf("got %d pastes, want 1", len(pastes))
	}
	p := pastes[0]
	if p.Source != "Pastebin" {
		t.Errorf("Source = %q, want Pastebin", p.Source)
	}
	if p.ID != "8Q0BvKD8" {
		t.Errorf("ID = %q, want 8Q0BvKD8", p.ID)
	}
	if p.EmailCount != 139 {
		t.Errorf("EmailCount = %d, want 139", p.EmailCount)
	}
}

func TestGetAccountPastes_NotFoundIsEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	pastes, err := client.GetAccountPastes(context.Background(), "clean@example.com")
	if err != nil {
		t.Fatalf("GetAccountPastes() failed: %v", err)
	}
	if len(pastes) != 0 {
		t.Errorf("GetAccountPastes() = %v, want empty slice on 404", pastes)
	}
}
