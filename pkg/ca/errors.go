package ca

import "fmt"

// ContradictionError reports that a known cell was transitively united
// with both sentinel states, or that a transition signature was found
// to have two incompatible known outputs.
type ContradictionError struct {
	Position Point
	Detail   string
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("ca: contradiction at %v: %s", e.Position, e.Detail)
}

// SpecificationError reports a configuration mistake discovered before
// or during build, such as a problem mask failing to cover every cell.
type SpecificationError struct {
	Detail string
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("ca: specification error: %s", e.Detail)
}
