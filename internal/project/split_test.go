package project

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_ConcreteScenario(t *testing.T) {
	fs, err := Split(minimalProject())
	require.NoError(t, err)

	require.Len(t, fs, 3)

	assert.Equal(t, map[string]any{"name": "Screen1", "id": "A1"}, fs["Screen1.A1.json"])
	assert.Equal(t, "<xml/>", fs["Screen1.A1.xml"])

	wantMeta := map[string]any{
		"data": map[string]any{
			"project": map[string]any{
				"components": map[string]any{
					"children": []any{
						map[string]any{"id": "A1"},
					},
				},
				"blockly": map[string]any{
					"A1": map[string]any{"xml": ""},
				},
			},
		},
	}
	if diff := cmp.Diff(wantMeta, fs[MetaFile]); diff != "" {
		t.Errorf("meta.json mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit_FlattensNavigators(t *testing.T) {
	fs, err := Split(sampleProject())
	require.NoError(t, err)

	// One JSON file per screen; the navigator itself gets no file.
	assert.Contains(t, fs, "Screen1.A1.json")
	assert.Contains(t, fs, "Screen2.B2.json")
	assert.Contains(t, fs, "Screen3.C3.json")
	assert.NotContains(t, fs, "Navigator1.N1.json")

	// The navigator survives in meta.json wrapping the stubs, in order.
	meta := fs[MetaFile].(map[string]any)
	inner, ok := innerProject(meta)
	require.True(t, ok)
	children := inner["components"].(map[string]any)["children"].([]any)
	require.Len(t, children, 2)

	assert.Equal(t, map[string]any{"id": "A1"}, children[0])

	nav := children[1].(map[string]any)
	assert.Equal(t, "StackNavigator", nav["type"])
	assert.Equal(t, []any{
		map[string]any{"id": "B2"},
		map[string]any{"id": "C3"},
	}, nav["children"])
}

func TestSplit_EmitsMarkupOnlyWhenNonEmpty(t *testing.T) {
	fs, err := Split(sampleProject())
	require.NoError(t, err)

	assert.Contains(t, fs, "Screen1.A1.xml")
	assert.Contains(t, fs, "Screen2.B2.xml")
	// C3 has empty markup, so no file.
	assert.NotContains(t, fs, "Screen3.C3.xml")

	meta := fs[MetaFile].(map[string]any)
	inner, _ := innerProject(meta)
	blockly := inner["blockly"].(map[string]any)
	assert.Equal(t, "", blockly["A1"].(map[string]any)["xml"])
	assert.Equal(t, "", blockly["B2"].(map[string]any)["xml"])
}

func TestSplit_DiscardsOrphanedMarkup(t *testing.T) {
	doc := sampleProject()
	inner, _ := innerProject(doc)
	blockly := inner["blockly"].(map[string]any)
	blockly["GONE"] = map[string]any{"xml": "<xml><orphan/></xml>"}

	fs, err := Split(doc)
	require.NoError(t, err)

	for name := range fs {
		assert.NotContains(t, name, "GONE")
	}

	// The orphan is not resurrected by a round trip either.
	merged, err := Merge(fs)
	require.NoError(t, err)
	mergedInner, _ := innerProject(merged)
	orphan := mergedInner["blockly"].(map[string]any)["GONE"].(map[string]any)
	assert.Equal(t, "", orphan["xml"])
}

func TestSplit_RejectsInvalidScreenName(t *testing.T) {
	for _, name := range []string{"bad/name", "dot.name", "q?", "", "tab\tname"} {
		t.Run(name, func(t *testing.T) {
			doc := sampleProject()
			inner, _ := innerProject(doc)
			children := inner["components"].(map[string]any)["children"].([]any)
			children[0].(map[string]any)["name"] = name

			fs, err := Split(doc)
			require.ErrorIs(t, err, ErrInvalidScreenName)
			assert.Nil(t, fs, "no files may be emitted on validation failure")
		})
	}
}

func TestSplit_AcceptsPermittedNameCharacters(t *testing.T) {
	doc := sampleProject()
	inner, _ := innerProject(doc)
	children := inner["components"].(map[string]any)["children"].([]any)
	children[0].(map[string]any)["name"] = "My Screen_2-b"

	fs, err := Split(doc)
	require.NoError(t, err)
	assert.Contains(t, fs, "My Screen_2-b.A1.json")
}

func TestSplit_RejectsDuplicateScreens(t *testing.T) {
	doc := sampleProject()
	inner, _ := innerProject(doc)
	components := inner["components"].(map[string]any)
	children := components["children"].([]any)
	components["children"] = append(children,
		map[string]any{"name": "Screen1", "id": "A1", "type": "Screen"})

	_, err := Split(doc)
	require.ErrorIs(t, err, ErrDuplicateScreen)
}

func TestSplit_MissingSpine(t *testing.T) {
	_, err := Split(map[string]any{"data": map[string]any{}})
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestSplit_DoesNotMutateInput(t *testing.T) {
	doc := sampleProject()
	_, err := Split(doc)
	require.NoError(t, err)

	if diff := cmp.Diff(sampleProject(), doc); diff != "" {
		t.Errorf("input mutated by Split (-want +got):\n%s", diff)
	}
}
