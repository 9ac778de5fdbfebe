// Package project implements the structural codec for Thunkable project
// documents: redaction of volatile fields (Clean), explosion into a
// file-per-screen modular representation (Split), and the inverse
// reconstruction (Merge). All transforms are pure: each takes a private deep
// copy of its input and returns a freshly owned result.
package project

import "strings"

// Document is the full nested project tree as fetched from Thunkable,
// decoded with encoding/json: maps, slices, and scalars only.
type Document = map[string]any

// FileSet is the modular representation of a project: a mapping from file
// name to file content. Content under a ".json" name is a parsed JSON value;
// content under a ".xml" name is a raw markup string.
type FileSet = map[string]any

// MetaFile is the file in a FileSet holding everything except per-screen
// component trees and block markup.
const MetaFile = "meta.json"

// deepCopy clones a decoded JSON tree. Scalars are immutable and shared.
func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = deepCopy(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = deepCopy(child)
		}
		return out
	default:
		return val
	}
}

// innerProject returns the data.project subtree, the portion of a Thunkable
// document that holds screens and block data.
func innerProject(doc map[string]any) (map[string]any, bool) {
	data, ok := doc["data"].(map[string]any)
	if !ok {
		return nil, false
	}
	inner, ok := data["project"].(map[string]any)
	return inner, ok
}

// flattenScreens returns the ordered screen nodes under components.children,
// unwrapping one level of Navigator containers (navigators are never nested
// further). The returned maps alias the document tree so callers can stub or
// fill screen nodes in place; Split and Merge must both derive the screen
// list through this function so the two directions agree.
func flattenScreens(inner map[string]any) []map[string]any {
	components, _ := inner["components"].(map[string]any)
	children, _ := components["children"].([]any)

	var screens []map[string]any
	for _, child := range children {
		node, ok := child.(map[string]any)
		if !ok {
			continue
		}
		if typ, _ := node["type"].(string); strings.Contains(typ, "Navigator") {
			nested, _ := node["children"].([]any)
			for _, c := range nested {
				if screen, ok := c.(map[string]any); ok {
					screens = append(screens, screen)
				}
			}
			continue
		}
		screens = append(screens, node)
	}
	return screens
}
