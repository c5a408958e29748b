package snapshot

import "strings"

// CanonicalKey derives the storage key for a lesson from the available
// references, in priority order: explicit route parameter, manifest
// filename, content-provided id. Any subject/category path prefix and any
// .json suffix are stripped so the same lesson reached via different entry
// routes resolves to the identical key. Returns "" when no reference is
// available yet.
func CanonicalKey(routeParam, manifestFile, contentID string) string {
	for _, ref := range []string{routeParam, manifestFile, contentID} {
		if key := normalizeKey(ref); key != "" {
			return key
		}
	}
	return ""
}

func normalizeKey(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		ref = ref[i+1:]
	}
	ref = strings.TrimSuffix(ref, ".json")
	return ref
}
