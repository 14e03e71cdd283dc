package mapper

import "fmt"

// MapSlice applies mapFunc to each element. A nil input stays nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError stops at the first failing element and reports its index.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]R, 0, len(items))
	for i, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item at index %d: %w", i, err)
		}
		result = append(result, mapped)
	}
	return result, nil
}

// NilIfEmpty maps "" to a NULL column value.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref maps a NULL column value to "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
