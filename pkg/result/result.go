package result

// Result carries a value together with whether it is a fallback.
// Defaulted results hold the documented safe default and the reason the
// real value could not be produced.
type Result[T any] struct {
	Value     T      `json:"value"`
	Defaulted bool   `json:"defaulted"`
	Reason    string `json:"reason,omitempty"`
}

// Ok wraps a successfully computed value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Default wraps a fallback value and the reason it was used.
func Default[T any](v T, reason string) Result[T] {
	return Result[T]{Value: v, Defaulted: true, Reason: reason}
}

// Unwrap returns the value regardless of whether it was defaulted.
func (r Result[T]) Unwrap() T {
	return r.Value
}
