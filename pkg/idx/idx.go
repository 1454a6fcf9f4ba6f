// Package idx generates the prefixed ULIDs records are keyed by, so an id
// tells you what it points at: "cli_01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV".
package idx

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	PrefixClient      = "cli_"
	PrefixPlan        = "pl_"
	PrefixServer      = "srv_"
	PrefixApp         = "app_"
	PrefixUser        = "u_"
	PrefixAccessPoint = "ap_"
	PrefixDialog      = "dlg_"
	PrefixRequest     = "req_"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID for the current time. IDs from one process sort in
// creation order.
func New() string {
	return NewAt(time.Now())
}

// NewAt returns a ULID stamped with t.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t.UTC()), entropy).String()
}

// NewPrefixed returns New with the entity prefix in front.
func NewPrefixed(prefix string) string {
	return prefix + New()
}

// HasPrefix reports whether s is a well formed id of the entity named by
// prefix.
func HasPrefix(prefix, s string) bool {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return false
	}
	_, err := ulid.ParseStrict(rest)
	return err == nil
}
