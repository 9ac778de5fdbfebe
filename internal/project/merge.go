package project

import (
	"fmt"
	"strings"
)

// Merge reconstructs a project document from its modular representation. It
// is the exact left inverse of Split: meta.json is the base document, each
// ".json" file fills the screen stub whose id matches the last dot-separated
// segment of the file's stem, and each ".xml" file is written back into
// blockly[id].xml. A file that matches no stub or blockly entry, or carries
// an unrecognized extension, aborts the whole operation. The input file set
// is never mutated.
func Merge(fs FileSet) (Document, error) {
	work := deepCopy(fs).(map[string]any)

	metaRaw, ok := work[MetaFile]
	if !ok {
		return nil, ErrMetaMissing
	}
	doc, ok := metaRaw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: meta.json is not a JSON object", ErrMalformedDocument)
	}
	delete(work, MetaFile)

	inner, ok := innerProject(doc)
	if !ok {
		return nil, fmt.Errorf("%w: missing data.project", ErrMalformedDocument)
	}
	screens := flattenScreens(inner)

	for name, content := range work {
		switch {
		case strings.HasSuffix(name, ".json"):
			stem := strings.TrimSuffix(name, ".json")
			segments := strings.Split(stem, ".")
			id := segments[len(segments)-1]

			stub := findScreen(screens, id)
			if stub == nil {
				return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, name)
			}
			fields, ok := content.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not a JSON object", ErrMalformedDocument, name)
			}
			// The stub is still referenced from wherever it sits in the
			// component tree; filling it in place restores the full node.
			for k, v := range fields {
				stub[k] = v
			}

		case strings.HasSuffix(name, ".xml"):
			stem := strings.TrimSuffix(name, ".xml")
			segments := strings.Split(stem, ".")
			if len(segments) < 2 {
				return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, name)
			}
			id := segments[1]

			xml, ok := content.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not a markup string", ErrMalformedDocument, name)
			}
			blockly, _ := inner["blockly"].(map[string]any)
			entry, ok := blockly[id].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s (no blockly entry for screen id %s)", ErrUnknownScreen, name, id)
			}
			entry["xml"] = xml

		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, name)
		}
	}

	return doc, nil
}

// findScreen returns the first screen in the flattened list whose id equals
// id, or nil when none matches.
func findScreen(screens []map[string]any, id string) map[string]any {
	for _, screen := range screens {
		if sid, _ := screen["id"].(string); sid == id {
			return screen
		}
	}
	return nil
}
