package utils

// SafeDeref safely dereferences a string pointer and returns empty string if nil
func SafeDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SafeDerefInt dereferences an int pointer, returning 0 if nil
func SafeDerefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// CloneBool copies a bool pointer so records never alias provider structs
func CloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
