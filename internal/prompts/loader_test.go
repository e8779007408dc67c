package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKey(t *testing.T) {
	prompt, err := Get("hashtag-generator")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Topic}}")
	assert.Contains(t, prompt, "ONLY valid JSON")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_PanicsOnUnknownKey(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("does-not-exist")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("hello {{.Name}}, you have {{.Count}} posts", map[string]string{
		"Name":  "natgeo",
		"Count": "29000",
	})
	assert.Equal(t, "hello natgeo, you have 29000 posts", result)
}

func TestKeys_AllUseCasesPresent(t *testing.T) {
	keys, err := Keys()
	require.NoError(t, err)

	expected := []string{
		"profile-growth", "post-ideas", "competitor-analysis",
		"best-time-to-post", "hashtag-generator", "post-performance",
		"collab-analysis", "hook-analysis", "hook-creator",
	}
	for _, key := range expected {
		assert.Contains(t, keys, key)
	}
}
