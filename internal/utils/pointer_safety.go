package utils

// Value dereferences v, returning the zero value of T when v is nil.
// Useful for optional API response fields modeled as pointers.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
