package hibp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/md4"
)

// HashMode selects the digest used for password checks.
type HashMode string

const (
	// HashSHA1 hashes the UTF-8 password bytes with SHA-1 (40 hex chars).
	// This is the default mode.
	HashSHA1 HashMode = "sha1"
	// HashNTLM hashes the UTF-16LE password bytes with MD4 (32 hex chars),
	// the format used by legacy Windows credential stores.
	HashNTLM HashMode = "ntlm"
)

// prefixLength is the number of hash characters sent to the server in a
// range lookup. The remainder of the digest never leaves the process.
const prefixLength = 5

// HashPassword returns the uppercase hex digest of a password in the given
// mode. Any string, including the empty string, is valid input.
func HashPassword(password string, mode HashMode) string {
	var sum []byte
	if mode == HashNTLM {
		h := md4.New()
		h.Write(encodeUTF16LE(password))
		sum = h.Sum(nil)
	} else {
		s := sha1.Sum([]byte(password))
		sum = s[:]
	}
	return strings.ToUpper(hex.EncodeToString(sum))
}

// encodeUTF16LE converts a string to UTF-16 little-endian bytes, the text
// encoding of the legacy authentication protocol.
func encodeUTF16LE(s string) []byte {
	codes := utf16.Encode([]rune(s))
	b := make([]byte, len(codes)*2)
	for i, v := range codes {
		b[i*2] = byte(v)
		b[i*2+1] = byte(v >> 8)
	}
	return b
}

// CheckPassword reports how many times a password appears in the Pwned
// Passwords dataset, 0 if it has not been seen.
//
// The check uses the k-Anonymity model: only the first 5 characters of the
// password hash are sent to the server, which returns every known suffix
// sharing that prefix. The match against the local suffix happens here, so
// neither the password nor its full hash ever crosses the network.
func (c *Client) CheckPassword(ctx context.Context, password string, opts ...PasswordOption) (int, error) {
	cfg := &passwordConfig{mode: HashSHA1}
	for _, opt := range opts {
		opt(cfg)
	}

	digest := HashPassword(password, cfg.mode)
	prefix, suffix := digest[:prefixLength], digest[prefixLength:]

	results, err := c.searchRange(ctx, prefix, cfg)
	if err != nil {
		return 0, err
	}

	return results[suffix], nil
}

// SearchRange returns every known hash suffix for a 5-character hash
// prefix, mapped to its occurrence count. The prefix is uppercased before
// the lookup. A prefix that is not exactly 5 characters fails with
// ErrInvalidPrefix before any network call.
func (c *Client) SearchRange(ctx context.Context, prefix string, opts ...PasswordOption) (map[string]int, error) {
	cfg := &passwordConfig{mode: HashSHA1}
	for _, opt := range opts {
		opt(cfg)
	}
	return c.searchRange(ctx, prefix, cfg)
}

func (c *Client) searchRange(ctx context.Context, prefix string, cfg *passwordConfig) (map[string]int, error) {
	if len(prefix) != prefixLength {
		return nil, ErrInvalidPrefix
	}

	body, err := c.api.PasswordRange(ctx, strings.ToUpper(prefix), cfg.mode == HashNTLM, cfg.padding)
	if err != nil {
		return nil, wrapError(err)
	}

	return parseRangeResponse(body, cfg.padding), nil
}

// parseRangeResponse parses a newline-delimited "SUFFIX:COUNT" body into a
// suffix-to-count map. Malformed lines are skipped. When the response was
// padded, every zero-count entry is dropped; the server carries its padding
// noise with an explicit count of 0.
func parseRangeResponse(body string, padded bool) map[string]int {
	results := make(map[string]int)

	for _, line := range strings.Split(body, "\n") {
		suffix, count, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 0 {
			continue
		}
		if padded && n == 0 {
			continue
		}

		results[strings.TrimSpace(suffix)] = n
	}

	return results
}
