package termcell

// GridCell is the contract a cell type must satisfy so rows and grids can
// operate on it without knowing its concrete type.
//
// It is used as a constraint on the pointer type: for a cell type T,
// *T must implement the methods.
type GridCell[T any] interface {
	*T

	// IsEmpty returns true if the cell can be trimmed from the end of a line.
	IsEmpty() bool

	// CellFlags returns the attribute flags of the cell.
	CellFlags() Flags

	// CellFlagsMut gives direct write access to the attribute flags.
	CellFlagsMut() *Flags

	// Reset clears the cell, keeping only what the template dictates.
	Reset(template *T)
}

// ResetDiscriminant reports the value that decides whether a reset is needed:
// two values with equal discriminants reset to the same state.
type ResetDiscriminant[D comparable] interface {
	Discriminant() D
}

// Plain makes any comparable value its own reset discriminant.
type Plain[T comparable] struct {
	Value T
}

// Discriminant returns the wrapped value.
func (p Plain[T]) Discriminant() T {
	return p.Value
}

// SameDiscriminant returns true if a and b reset to the same state.
func SameDiscriminant[D comparable](a, b ResetDiscriminant[D]) bool {
	return a.Discriminant() == b.Discriminant()
}

// LineLength returns the number of leading cells in row holding content.
//
// A row whose last cell carries FlagWrapline always uses its full width.
// Otherwise trailing empty cells are not counted; an all-empty row has length 0.
func LineLength[T any, P GridCell[T]](row []T) int {
	n := len(row)
	if n == 0 {
		return 0
	}

	if P(&row[n-1]).CellFlags().Contains(FlagWrapline) {
		return n
	}

	for i := n - 1; i >= 0; i-- {
		if !P(&row[i]).IsEmpty() {
			return i + 1
		}
	}

	return 0
}
