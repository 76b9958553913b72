package ca

var _ SubPattern = (*VariablePattern)(nil)

// VariablePattern is a sub-pattern of cells whose states are unknown up
// to symmetry: a dense grid of Cells over a Bounds, an ordered list of
// CellGroups, and, after Build, a local variable code per cell.
type VariablePattern struct {
	bounds Bounds
	cells  map[Point]*Cell
	groups []CellGroup

	built   bool
	code    map[Point]int
	numVars int
}

// NewVariablePattern allocates a dense grid of ungrouped, unknown,
// non-rule-following Cells over bounds.
func NewVariablePattern(bounds Bounds) *VariablePattern {
	cells := make(map[Point]*Cell)
	for _, p := range sortedPositions(bounds) {
		cells[p] = &Cell{Position: p, Group: NoGroup}
	}
	return &VariablePattern{bounds: bounds, cells: cells}
}

// AddGroup registers a CellGroup and returns its index, for use with
// SetCellGroup and SetCellGroupIf.
func (vp *VariablePattern) AddGroup(g CellGroup) int {
	vp.groups = append(vp.groups, g)
	return len(vp.groups) - 1
}

func (vp *VariablePattern) SetCellGroup(p Point, group int) {
	vp.cells[p].Group = group
}

func (vp *VariablePattern) SetCellGroupIf(group int, pred func(Point) bool) {
	for _, p := range sortedPositions(vp.bounds) {
		if pred(p) {
			vp.cells[p].Group = group
		}
	}
}

func (vp *VariablePattern) SetKnown(p Point, state bool) {
	c := vp.cells[p]
	c.Known = true
	c.State = state
}

func (vp *VariablePattern) SetDead(p Point) { vp.SetKnown(p, false) }

func (vp *VariablePattern) SetAlive(p Point) { vp.SetKnown(p, true) }

func (vp *VariablePattern) SetKnownIf(state bool, pred func(Point) bool) {
	for _, p := range sortedPositions(vp.bounds) {
		if pred(p) {
			c := vp.cells[p]
			c.Known = true
			c.State = state
		}
	}
}

func (vp *VariablePattern) SetFollowsRules(p Point, follows bool) {
	vp.cells[p].FollowsRules = follows
}

func (vp *VariablePattern) SetFollowsRulesIf(follows bool, pred func(Point) bool) {
	for _, p := range sortedPositions(vp.bounds) {
		if pred(p) {
			vp.cells[p].FollowsRules = follows
		}
	}
}

// ufKey is a union-find key over either a real cell position or one of
// the two sentinel states. Sentinels always compare less than any real
// position, which makes them the surviving root of any class they join.
type ufKey struct {
	Sentinel int
	Point    Point
}

const (
	sentinelDead  = 1
	sentinelAlive = 2
)

func ufLess(a, b ufKey) bool {
	aSent, bSent := a.Sentinel != 0, b.Sentinel != 0
	if aSent != bSent {
		return aSent
	}
	if aSent {
		return a.Sentinel < b.Sentinel
	}
	return pointLess(a.Point, b.Point)
}

// pointLess orders points lexicographically by (t, y, x), the iteration
// order the rest of the package relies on for determinism.
func pointLess(a, b Point) bool {
	if a.T != b.T {
		return a.T < b.T
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func sortedPositions(bounds Bounds) []Point {
	positions := make([]Point, 0, bounds.SizeX()*bounds.SizeY()*bounds.SizeT())
	for t := bounds.T.Min; t <= bounds.T.Max; t++ {
		for y := bounds.Y.Min; y <= bounds.Y.Max; y++ {
			for x := bounds.X.Min; x <= bounds.X.Max; x++ {
				positions = append(positions, Point{X: x, Y: y, T: t})
			}
		}
	}
	return positions
}

// Build performs the equivalence computation described in section 4.D2:
// known cells are united with the matching sentinel, then every grouped
// cell is united with its lower-or-equal-priority spatial and temporal
// images, and finally every equivalence class is assigned a local
// variable code.
func (vp *VariablePattern) Build() error {
	uf := NewUnionFind[ufKey](ufLess)
	deadKey := ufKey{Sentinel: sentinelDead}
	aliveKey := ufKey{Sentinel: sentinelAlive}

	positions := sortedPositions(vp.bounds)

	for _, p := range positions {
		c := vp.cells[p]
		if !c.Known {
			continue
		}
		if c.State {
			uf.Unite(ufKey{Point: p}, aliveKey)
		} else {
			uf.Unite(ufKey{Point: p}, deadKey)
		}
	}

	for _, p := range positions {
		c := vp.cells[p]
		if c.Group == NoGroup {
			continue
		}
		group := vp.groups[c.Group]

		for img := range ImageClosure(p, group.SpatialTransforms, vp.bounds) {
			if img == p {
				continue
			}
			if ic := vp.cells[img]; ic.Group != NoGroup && ic.Group <= c.Group {
				uf.Unite(ufKey{Point: p}, ufKey{Point: img})
			}
		}

		if group.TimeTransform != Identity {
			img := group.TimeTransform.Apply(p)
			if img != p && vp.bounds.Contains(img) {
				if ic := vp.cells[img]; ic.Group != NoGroup && ic.Group <= c.Group {
					uf.Unite(ufKey{Point: p}, ufKey{Point: img})
				}
			}
		}
	}

	if uf.Same(deadKey, aliveKey) {
		return &ContradictionError{Detail: "a cell was transitively united with both known states"}
	}

	code := make(map[Point]int, len(positions))
	rootCode := make(map[ufKey]int)
	next := 2
	for _, p := range positions {
		root := uf.Find(ufKey{Point: p})
		switch root {
		case deadKey:
			code[p] = 0
		case aliveKey:
			code[p] = 1
		default:
			c, ok := rootCode[root]
			if !ok {
				c = next
				rootCode[root] = c
				next++
			}
			code[p] = c
		}
	}

	vp.code = code
	vp.numVars = next - 2
	vp.built = true
	return nil
}

func (vp *VariablePattern) Bounds() Bounds { return vp.bounds }

func (vp *VariablePattern) NumVariables() int { return vp.numVars }

func (vp *VariablePattern) CellValue(p Point) int { return vp.code[p] }

func (vp *VariablePattern) IsKnown(p Point) bool { return vp.cells[p].Known }

func (vp *VariablePattern) State(p Point) bool { return vp.cells[p].State }

func (vp *VariablePattern) FollowsRules(p Point) bool { return vp.cells[p].FollowsRules }

func (vp *VariablePattern) GetClauses(base int, engine RuleEngine) []Clause {
	return emitSubPatternClauses(vp.bounds, vp.CellValue, vp.FollowsRules, base, engine)
}
