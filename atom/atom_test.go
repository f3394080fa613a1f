package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownNames(t *testing.T) {
	for _, name := range []string{"a", "div", "span", "html", "body", "script", "id", "class", "href"} {
		a := Lookup([]byte(name))
		require.NotZero(t, a, "expected %q to be a known atom", name)
		assert.Equal(t, name, a.String())
	}
}

func TestLookupUnknownName(t *testing.T) {
	assert.Zero(t, Lookup([]byte("this-is-definitely-not-a-known-html-atom")))
	assert.Zero(t, Lookup([]byte("")))
}

func TestStringConvenience(t *testing.T) {
	assert.Equal(t, Lookup([]byte("table")), String("table"))
}

func TestNoDuplicateSlotAssignment(t *testing.T) {
	buildOnce.Do(buildTable)
	seen := make(map[string]bool)
	for _, lit := range atomList {
		a := Atom(lit.offset<<8 | lit.length)
		seen[a.string()] = true
	}
	for name := range seen {
		assert.NotZero(t, Lookup([]byte(name)), "name %q should round-trip through Lookup", name)
	}
}
