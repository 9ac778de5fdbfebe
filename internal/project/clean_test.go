package project

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathExists walks doc by successive key lookup.
func pathExists(doc map[string]any, path []string) bool {
	var node any = doc
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return false
		}
		node, ok = m[key]
		if !ok {
			return false
		}
	}
	return true
}

func TestClean_RemovesEveryVolatilePath(t *testing.T) {
	doc := sampleProject()
	cleaned := Clean(doc)

	for _, path := range VolatilePaths {
		assert.False(t, pathExists(cleaned, path), "path %v should be gone", path)
	}
}

func TestClean_StripsGeneratedBlocklyCode(t *testing.T) {
	cleaned := Clean(sampleProject())

	inner, ok := innerProject(cleaned)
	require.True(t, ok)
	blockly := inner["blockly"].(map[string]any)
	for screenID, node := range blockly {
		entry := node.(map[string]any)
		assert.NotContains(t, entry, "code", "screen %s", screenID)
		assert.NotContains(t, entry, "appVariableDefCode", "screen %s", screenID)
	}

	// The markup itself survives cleaning.
	a1 := blockly["A1"].(map[string]any)
	assert.Equal(t, "<xml><block type=\"when_opened\"/></xml>", a1["xml"])
}

func TestClean_Idempotent(t *testing.T) {
	once := Clean(sampleProject())
	twice := Clean(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Clean is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	doc := sampleProject()
	Clean(doc)

	if diff := cmp.Diff(sampleProject(), doc); diff != "" {
		t.Errorf("input mutated by Clean (-want +got):\n%s", diff)
	}
}

func TestClean_ToleratesSparseDocuments(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		cleaned := Clean(map[string]any{})
		assert.Equal(t, map[string]any{}, cleaned)
	})

	t.Run("missing optional sections", func(t *testing.T) {
		doc := map[string]any{
			"data": map[string]any{
				"project": map[string]any{
					"projectName": "Bare",
					"blockly":     map[string]any{},
				},
			},
		}
		cleaned := Clean(doc)
		inner, ok := innerProject(cleaned)
		require.True(t, ok)
		assert.Equal(t, "Bare", inner["projectName"])
	})
}
