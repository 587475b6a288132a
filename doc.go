// Package hibp provides a Go client SDK for the Have I Been Pwned API,
// covering account-breach, paste, domain and stealer-log lookups plus the
// anonymized Pwned Passwords exposure check.
//
// Password checks use the k-Anonymity model: only the first 5 characters of
// the password hash are ever sent to the server, and the match happens
// locally.
//
// Basic usage:
//
//	client, err := hibp.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// How many times has this password been exposed?
//	count, err := client.CheckPassword(ctx, "hunter2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Which breaches is this account in? (requires an API key)
//	breaches, err := client.GetAccountBreaches(ctx, "test@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(count, len(breaches))
package hibp
