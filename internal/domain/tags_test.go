package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "blank", input: "   ", want: []string{}},
		{name: "single", input: "go", want: []string{"go"}},
		{name: "trims and drops empties", input: " news, go,, ,dev ", want: []string{"news", "go", "dev"}},
		{name: "keeps duplicates and order", input: "b,a,b", want: []string{"b", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestNormalizeTagsNeverNil(t *testing.T) {
	assert.NotNil(t, NormalizeTags(nil))
	assert.Empty(t, NormalizeTags(nil))
}
