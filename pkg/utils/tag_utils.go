package utils

import (
	"fmt"
	"sort"
)

// FlattenTags renders freeform tags as "key=value" followed by defined tags
// as "namespace.key=value". Keys are sorted so output is stable.
func FlattenTags(freeform map[string]string, defined map[string]map[string]any) []string {
	var result []string

	for _, key := range SortedKeys(freeform) {
		result = append(result, fmt.Sprintf("%s=%s", key, freeform[key]))
	}

	for _, namespace := range SortedKeys(defined) {
		tags := defined[namespace]
		for _, key := range SortedKeys(tags) {
			result = append(result, fmt.Sprintf("%s.%s=%v", namespace, key, tags[key]))
		}
	}

	return result
}

// SortedKeys returns the keys of a string-keyed map in ascending order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
