// ABOUTME: Unit tests for the Charm client wrapper.
// ABOUTME: Checks host selection and the storage key layout it carries.
package charm

import (
	"strings"
	"testing"

	"github.com/harperreed/wellness/internal/storage"
)

func TestHost(t *testing.T) {
	t.Setenv("CHARM_HOST", "")
	if got := Host(); got != "charm.2389.dev" {
		t.Errorf("Host() = %q, want charm.2389.dev", got)
	}

	t.Setenv("CHARM_HOST", "charm.example.org")
	if got := Host(); got != "charm.example.org" {
		t.Errorf("Host() = %q, want charm.example.org", got)
	}
}

func TestKeyPrefixesAreDistinct(t *testing.T) {
	prefixes := []string{storage.PlayerPrefix, storage.EntryPrefix, storage.InjuryPrefix}
	for i, a := range prefixes {
		for j, b := range prefixes {
			if i != j && strings.HasPrefix(a, b) {
				t.Errorf("prefix %q shadows %q", b, a)
			}
		}
		if strings.HasPrefix(storage.SettingsKey, a) {
			t.Errorf("settings key collides with prefix %q", a)
		}
	}
}
