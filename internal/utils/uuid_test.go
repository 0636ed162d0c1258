package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "canonical lower case", input: "018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5b", want: true},
		{name: "canonical upper case", input: "018F3A2B-7C4D-7E5F-8A9B-0C1D2E3F4A5B", want: true},
		{name: "empty string", input: "", want: false},
		{name: "missing hyphens", input: "018f3a2b7c4d7e5f8a9b0c1d2e3f4a5b", want: false},
		{name: "urn prefixed", input: "urn:uuid:018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5b", want: false},
		{name: "braced form", input: "{018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5b}", want: false},
		{name: "too short", input: "018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a", want: false},
		{name: "non-hex characters", input: "018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5z", want: false},
		{name: "hyphen in wrong position", input: "018f3a2b7-c4d-7e5f-8a9b-0c1d2e3f4a5b", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, IsValidUUID(test.input))
		})
	}
}

func TestParseUUID(t *testing.T) {
	t.Run("normalizes to lower case", func(t *testing.T) {
		parsed, err := ParseUUID("018F3A2B-7C4D-7E5F-8A9B-0C1D2E3F4A5B")
		require.NoError(t, err)
		assert.Equal(t, UUID("018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5b"), parsed)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := ParseUUID("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDGenerator_Generate(t *testing.T) {
	generator := NewUUIDGenerator()

	seen := make(map[UUID]struct{})
	for range 100 {
		id := generator.Generate()

		require.True(t, IsValidUUID(id.String()), "generated id %q is not canonical", id)
		assert.Equal(t, strings.ToLower(id.String()), id.String())

		_, duplicate := seen[id]
		require.False(t, duplicate, "generator produced duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
