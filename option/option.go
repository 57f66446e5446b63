package option

import "fmt"

// Option holds a value of type T or nothing.
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer returns None for a nil pointer, Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and true if present. Otherwise it returns the zero value of T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value held by o or v if o is empty.
func (o Option[T]) OrElse(v T) T {
	if o.present {
		return o.value
	}

	return v
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
