package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// NonEmpty treats a nil pointer and a pointer to "" alike: both mean "leave unchanged".
func NonEmpty(ptr *string) *string {
	if ptr == nil || *ptr == "" {
		return nil
	}
	return ptr
}
