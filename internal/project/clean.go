package project

// VolatilePaths lists the fields that are server-assigned, per-account, or
// regenerable and therefore must not be part of a portable snapshot. Clean
// removes every one of these from its copy of the document; paths absent
// from a particular document are skipped. The list is data, not behavior:
// it is the full definition of what "clean" means.
var VolatilePaths = [][]string{
	{"data", "user"},
	{"data", "project", "id"},
	{"data", "project", "blocklyStringLength"},
	{"data", "project", "componentStringLength"},
	{"data", "project", "createdAt"},
	{"data", "project", "email"},
	{"data", "project", "hash"},
	{"data", "project", "isArchiveProjectFileUsed"},
	{"data", "project", "isHiddenFromPublicGallery"},
	{"data", "project", "isLegacy"},
	{"data", "project", "isOwner"},
	{"data", "project", "isPublic"},
	{"data", "project", "isQRCodeScanned"},
	{"data", "project", "isLiveTesting"},
	{"data", "project", "settings", "packageName"},
	{"data", "project", "projectSettings", "packageName"},
	{"data", "project", "storageSize"},
	{"data", "project", "webAppSettings"},
	{"data", "project", "webCompanionSettings"},
	{"data", "project", "frontendProperties"},
	{"data", "project", "appId"},
	{"data", "project", "readOnly"},
	{"data", "project", "shares"},
	{"data", "project", "versions"},
	{"data", "project", "projectSnapshotsMetaData"},
	{"data", "project", "projectSnapshotParentId"},
	{"data", "project", "projectSnapshotParent"},
	{"data", "project", "updatedAt"},
	{"data", "project", "username"},
}

// generatedBlocklyProps are per-screen fields under blockly that the backend
// regenerates from the markup; they are stripped alongside VolatilePaths.
var generatedBlocklyProps = []string{"code", "appVariableDefCode"}

// Clean returns a copy of doc with every volatile path removed, plus the
// generated code fields under each screen's blockly entry. The input is
// never mutated.
func Clean(doc Document) Document {
	out := deepCopy(doc).(map[string]any)

	paths := make([][]string, 0, len(VolatilePaths))
	paths = append(paths, VolatilePaths...)

	if inner, ok := innerProject(out); ok {
		if blockly, ok := inner["blockly"].(map[string]any); ok {
			for screenID, node := range blockly {
				entry, ok := node.(map[string]any)
				if !ok {
					continue
				}
				for _, prop := range generatedBlocklyProps {
					if _, ok := entry[prop]; ok {
						paths = append(paths, []string{"data", "project", "blockly", screenID, prop})
					}
				}
			}
		}
	}

	for _, path := range paths {
		DeleteIfPresent(out, path)
	}
	return out
}
