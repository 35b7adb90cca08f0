package table

// Field is one column of a table.
//
// A column taken from a single row unwraps to that row's value while
// any other number of rows yields the sequence of values.
type Field[T any] struct {
	values []T
}

// Len returns the number of rows the column was taken from.
func (f Field[T]) Len() int {
	return len(f.values)
}

// Values returns the column values in row order.
func (f Field[T]) Values() []T {
	return append([]T(nil), f.values...)
}

// Scalar returns the value when the column holds exactly one row.
func (f Field[T]) Scalar() (T, bool) {
	if len(f.values) != 1 {
		var zero T
		return zero, false
	}
	return f.values[0], true
}

// Value returns a T for a single row and a []T otherwise.
func (f Field[T]) Value() any {
	if value, ok := f.Scalar(); ok {
		return value
	}
	return f.Values()
}
