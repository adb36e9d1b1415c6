// Package result carries operation outcomes as values instead of panics
// or bare errors crossing layer boundaries. Every repository and usecase
// operation returns one of these envelopes; callers check Succeeded before
// touching the payload.
package result

// Result reports whether an operation succeeded and, on failure, a
// human-readable message.
type Result struct {
	Succeeded bool
	Error     string
}

func Ok() Result {
	return Result{Succeeded: true}
}

func Err(msg string) Result {
	return Result{Succeeded: false, Error: msg}
}

// Of extends Result with a payload. On failure Value is the zero value.
type Of[T any] struct {
	Succeeded bool
	Error     string
	Value     T
}

func OkOf[T any](v T) Of[T] {
	return Of[T]{Succeeded: true, Value: v}
}

func ErrOf[T any](msg string) Of[T] {
	return Of[T]{Succeeded: false, Error: msg}
}
