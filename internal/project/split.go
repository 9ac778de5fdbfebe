package project

import (
	"fmt"
	"regexp"
)

// screenNamePattern is the full set of characters permitted in a screen
// name. Names become file names, so anything outside this set would corrupt
// the modular layout on disk.
var screenNamePattern = regexp.MustCompile(`^[\w\- ]+$`)

// Split explodes a project document into its modular representation: one
// "<name>.<id>.json" file per screen holding that screen's full component
// subtree, one "<name>.<id>.xml" file per screen with non-empty block
// markup, and meta.json holding the remainder with each screen replaced by
// an {"id": ...} stub and each extracted markup field blanked.
//
// Block markup whose screen id no longer matches any screen is discarded: no
// file is emitted for it and the markup is blanked in meta.json. A screen
// name outside the permitted character set, or two screens resolving to the
// same file name, aborts the whole operation. The input document is never
// mutated.
func Split(doc Document) (FileSet, error) {
	work := deepCopy(doc).(map[string]any)
	inner, ok := innerProject(work)
	if !ok {
		return nil, fmt.Errorf("%w: missing data.project", ErrMalformedDocument)
	}

	out := make(FileSet)
	idToName := make(map[string]string)

	for _, screen := range flattenScreens(inner) {
		name, _ := screen["name"].(string)
		id, _ := screen["id"].(string)
		if !screenNamePattern.MatchString(name) {
			return nil, fmt.Errorf("%w: %q (screen id %s)", ErrInvalidScreenName, name, id)
		}

		fileName := name + "." + id + ".json"
		if _, exists := out[fileName]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScreen, fileName)
		}
		out[fileName] = deepCopy(screen)

		// Stub the live node in place: the same map is still referenced from
		// components.children (or a navigator's children), so only the id
		// placeholder remains embedded in meta.json.
		for k := range screen {
			delete(screen, k)
		}
		screen["id"] = id
		idToName[id] = name
	}

	if blockly, ok := inner["blockly"].(map[string]any); ok {
		for screenID, node := range blockly {
			entry, ok := node.(map[string]any)
			if !ok {
				continue
			}
			xml, ok := entry["xml"].(string)
			if !ok || xml == "" {
				continue
			}
			name, ok := idToName[screenID]
			if !ok {
				// Markup for a deleted screen is dead data, not a file.
				entry["xml"] = ""
				continue
			}
			out[name+"."+screenID+".xml"] = xml
			entry["xml"] = ""
		}
	}

	out[MetaFile] = work
	return out, nil
}
