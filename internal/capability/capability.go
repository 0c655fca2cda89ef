// Package capability wraps the optional geolocation and camera providers in
// single-shot request/result adapters. Each request produces exactly one
// Result and is never retried; failures stay local to the requesting panel.
package capability

// Result is the outcome of one capability request.
type Result[T any] struct {
	// Value is the success payload.
	Value T
	// Message describes the failure when OK reports false.
	Message string

	ok bool
}

// Success wraps a payload in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{Value: value, ok: true}
}

// Failure wraps an error message in a failed Result.
func Failure[T any](message string) Result[T] {
	return Result[T]{Message: message}
}

// OK reports whether the request succeeded.
func (r Result[T]) OK() bool {
	return r.ok
}
