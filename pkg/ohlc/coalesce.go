package ohlc

// Coalesce returns the first non-nil candidate, or the zero value of T when every candidate
// is nil.
func Coalesce[T any](candidates ...*T) T {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	var zero T
	return zero
}

// CoalesceString returns the first non-empty candidate.
func CoalesceString(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// LastOverride scans items left to right and keeps the last non-nil value picked by get.
func LastOverride[T any](items []BarItem, get func(BarItem) *T) *T {
	var found *T
	for _, item := range items {
		if v := get(item); v != nil {
			found = v
		}
	}
	return found
}

// LastString scans items left to right and keeps the last non-empty value picked by get.
func LastString(items []BarItem, get func(BarItem) string) string {
	var found string
	for _, item := range items {
		if v := get(item); v != "" {
			found = v
		}
	}
	return found
}

func ptr[T any](v T) *T {
	return &v
}
