package ca

// SubPattern is a region of space-time with a uniform policy: either every
// cell's state is already determined (a KnownPattern) or cells carry
// symmetry constraints over unknown values (a VariablePattern). The
// composer talks to both variants through this interface alone and never
// needs a sub-pattern's internal variable numbering.
type SubPattern interface {
	// Bounds reports the sub-pattern's inclusive region of space-time.
	Bounds() Bounds

	// Build performs the sub-pattern's one-time equivalence computation.
	// Calling it more than once, or mutating the sub-pattern afterward
	// without rebuilding, is undefined.
	Build() error

	// NumVariables reports how many fresh local variables (codes >= 2)
	// the sub-pattern introduced. Valid only after Build.
	NumVariables() int

	// CellValue returns the local code of the cell at p: 0 dead, 1 alive,
	// >= 2 an unknown variable. Valid only after Build.
	CellValue(p Point) int

	// IsKnown reports whether the cell at p has a determined state.
	IsKnown(p Point) bool

	// State returns the cell's determined state. Meaningful only when
	// IsKnown(p) is true.
	State(p Point) bool

	// FollowsRules reports whether the cell at p's successor must satisfy
	// the CA transition.
	FollowsRules(p Point) bool

	// GetClauses emits the sub-pattern's own CNF clauses: local codes are
	// offset by base (a code c >= 2 becomes base + c - 2) before being
	// used as SAT literals, and implicants come from engine.
	GetClauses(base int, engine RuleEngine) []Clause
}

// emitSubPatternClauses is the per-sub-pattern clause emission of
// section 4.D: local codes are translated to global via base before
// delegating to the shared rule-walk.
func emitSubPatternClauses(bounds Bounds, cellValue func(Point) int, followsRules func(Point) bool, base int, engine RuleEngine) []Clause {
	codeAt := func(p Point) int { return toGlobalCode(cellValue(p), base) }
	return emitRuleClauses(bounds, codeAt, followsRules, engine.Implicants())
}

// emitRuleClauses is the clause-emission walk shared by sub-pattern-level
// and composed-problem-level emission (sections 4.D and 4.F): for every
// in-bounds cell at t+1 that follows rules, gather its 3x3 neighborhood
// at t in row-major order (out-of-bounds cells read as dead) plus the
// successor, and delegate to EmitTransitionClauses. Iteration is
// lexicographic by (t, y, x) so output is deterministic.
func emitRuleClauses(bounds Bounds, codeAt func(Point) int, followsRules func(Point) bool, implicants []Implicant) []Clause {
	var clauses []Clause

	for t := bounds.T.Min; t+1 <= bounds.T.Max; t++ {
		for y := bounds.Y.Min; y <= bounds.Y.Max; y++ {
			for x := bounds.X.Min; x <= bounds.X.Max; x++ {
				succ := Point{X: x, Y: y, T: t + 1}
				if !followsRules(succ) {
					continue
				}

				var context [10]int
				for i, off := range neighborOffsets {
					np := Point{X: x + off.X, Y: y + off.Y, T: t}
					if bounds.Contains(np) {
						context[i] = codeAt(np)
					}
				}
				context[9] = codeAt(succ)

				clauses = EmitTransitionClauses(clauses, context, implicants)
			}
		}
	}
	return clauses
}

// toGlobalCode translates a local cell code into a global one: known
// codes 0 and 1 pass through unchanged, and a local variable code c >= 2
// becomes base + c - 2.
func toGlobalCode(code, base int) int {
	if code < 2 {
		return code
	}
	return base + (code - 2)
}
