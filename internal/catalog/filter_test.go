package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolctl/internal/workspace"
)

func TestFilterProviders(t *testing.T) {
	providers := []workspace.SkillProvider{
		{ID: "s1", Name: "Alpha", SkillIdentifier: "alpha"},
		{ID: "s2", Name: "Beta", SkillIdentifier: "beta"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"match on name", "alpha", []string{"s1"}},
		{"case-insensitive on name", "ALPHA", []string{"s1"}},
		{"match on identifier", "bet", []string{"s2"}},
		{"substring in the middle", "lph", []string{"s1"}},
		{"no match", "gamma", nil},
		{"matches both", "a", []string{"s1", "s2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProviders(providers, tt.query)
			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterProvidersMatchesIdentifierWhenNameMisses(t *testing.T) {
	providers := []workspace.SkillProvider{
		{ID: "s1", Name: "PDF Tools", SkillIdentifier: "pdf-processing"},
	}

	got := FilterProviders(providers, "processing")
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
}

func TestFilterProvidersEmptyQueryReturnsInput(t *testing.T) {
	providers := []workspace.SkillProvider{
		{ID: "s1", Name: "Alpha"},
		{ID: "s2", Name: "Beta"},
	}

	got := FilterProviders(providers, "")
	require.Len(t, got, 2)
	// Same backing array, not a copy.
	assert.True(t, &providers[0] == &got[0])
}

func TestFilterProvidersEmptyInput(t *testing.T) {
	assert.Empty(t, FilterProviders(nil, "alpha"))
	assert.Empty(t, FilterProviders([]workspace.SkillProvider{}, "alpha"))
}
