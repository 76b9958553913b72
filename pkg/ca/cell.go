package ca

// NoGroup marks a cell with no cell-group assignment: it participates in
// no symmetry closure and is never linked to another cell's image.
const NoGroup = -1

// CellGroup binds a set of cells to share the same truth value under a
// symmetry: SpatialTransforms are generators of a within-generation
// symmetry, and TimeTransform states that a cell has the same state as
// its image under the transform. Construct with TimeTransform set to
// Identity to mean no temporal symmetry; the zero value is not Identity
// and must not be relied on.
type CellGroup struct {
	SpatialTransforms []AffineTransform
	TimeTransform     AffineTransform
}

// Cell is one position of a variable sub-pattern: its group membership,
// whether its successor must obey the CA rule, and its known state if
// any.
type Cell struct {
	Position     Point
	Group        int // NoGroup, or an index into the owning pattern's groups
	FollowsRules bool
	Known        bool
	State        bool // only meaningful when Known is true
}

func (c Cell) IsLive() bool {
	return c.Known && c.State
}

func (c Cell) IsDead() bool {
	return c.Known && !c.State
}
