package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	testCases := []struct {
		input string
		want  Difficulty
		valid bool
	}{
		{input: "beginner", want: DifficultyBeginner, valid: true},
		{input: "intermediate", want: DifficultyIntermediate, valid: true},
		{input: "advanced", want: DifficultyAdvanced, valid: true},

		{input: "expert", valid: false},
		{input: "Beginner", valid: false},
		{input: "BEGINNER", valid: false},
		{input: " beginner", valid: false},
		{input: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDifficulty(tc.input)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "beginner, intermediate, advanced")
			}
		})
	}
}

func TestDifficultyValues(t *testing.T) {
	assert.Equal(t, "beginner, intermediate, advanced", DifficultyValues())
}
