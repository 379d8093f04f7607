package skill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMetadata_Names(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple", "my-skill", true},
		{"single letter", "a", true},
		{"digits", "skill2go", true},
		{"multi hyphen segments", "a-b-c", true},
		{"uppercase", "My-Skill", false},
		{"leading hyphen", "-skill", false},
		{"trailing hyphen", "skill-", false},
		{"consecutive hyphens", "my--skill", false},
		{"underscore", "my_skill", false},
		{"spaces", "my skill", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := ValidateMetadata(Metadata{Name: tt.value, Description: "A description."})
			if tt.valid {
				assert.Empty(t, problems)
			} else {
				require.NotEmpty(t, problems)
				assert.Contains(t, problems[0], "Invalid name")
			}
		})
	}
}

func TestValidateMetadata_LengthLimits(t *testing.T) {
	longName := strings.Repeat("a", 65)
	problems := ValidateMetadata(Metadata{Name: longName, Description: "ok"})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "Name too long: 65 > 64")

	problems = ValidateMetadata(Metadata{
		Name:        "fine",
		Description: strings.Repeat("d", 1025),
	})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "Description too long: 1025 > 1024")

	problems = ValidateMetadata(Metadata{
		Name:          "fine",
		Description:   "ok",
		Compatibility: strings.Repeat("c", 501),
	})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "Compatibility too long: 501 > 500")

	// Boundary values pass.
	problems = ValidateMetadata(Metadata{
		Name:          strings.Repeat("a", 64),
		Description:   strings.Repeat("d", 1024),
		Compatibility: strings.Repeat("c", 500),
	})
	assert.Empty(t, problems)
}

func TestValidate_JoinsProblems(t *testing.T) {
	err := Validate(Metadata{
		Name:        "BAD--NAME" + strings.Repeat("x", 60),
		Description: strings.Repeat("d", 1025),
	})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Problems, 3)
	assert.Equal(t, strings.Join(valErr.Problems, "; "), err.Error())
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(Metadata{Name: "good-skill", Description: "Does good things."}))
}
