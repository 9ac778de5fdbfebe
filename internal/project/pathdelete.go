package project

// DeleteIfPresent removes the value at path from tree. A missing intermediate
// key, a non-map node along the way, or an absent final key is a silent
// no-op: deleting something that does not exist is not an error. This lets a
// fixed path list be applied to documents of varying shape without per-field
// existence checks.
func DeleteIfPresent(tree any, path []string) {
	if len(path) == 0 {
		return
	}
	node, ok := tree.(map[string]any)
	if !ok {
		return
	}
	child, ok := node[path[0]]
	if !ok {
		return
	}
	if len(path) == 1 {
		delete(node, path[0])
		return
	}
	DeleteIfPresent(child, path[1:])
}
