package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty maps to unknown", raw: "", want: RoleUnknown},
		{name: "whitespace only maps to unknown", raw: "   ", want: RoleUnknown},
		{name: "exact key passes through", raw: "TM", want: "TM"},
		{name: "long form synonym", raw: "Territory Manager", want: "TM"},
		{name: "case insensitive synonym", raw: "aREA business MANAGER", want: "ABM"},
		{name: "hospital variant collapses", raw: "Hospital Business Manager", want: "HBM/SBM"},
		{name: "scientific variant collapses", raw: "SBM", want: "HBM/SBM"},
		{name: "brand manager is marketing", raw: "Brand Manager", want: "Marketing"},
		{name: "unknown role passes through trimmed", raw: "  Medical Advisor ", want: "Medical Advisor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.raw))
		})
	}
}

func TestRoleCatalogConsistency(t *testing.T) {
	// Every catalog role key must carry complete display metadata.
	for _, key := range RoleKeys {
		assert.Contains(t, RoleColors, key)
		assert.Contains(t, RoleDisplay, key)
		assert.Contains(t, RoleEmojis, key)
		assert.Contains(t, RoleAbout, key)
	}

	// Every synonym must resolve to a catalog key.
	for raw, key := range roleSynonyms {
		require.Contains(t, RoleKeys, key, "synonym %q maps outside the catalog", raw)
	}
}
