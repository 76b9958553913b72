package ca

import "fmt"

// problemEntry pairs a sub-pattern with the mask that decides which
// points of the problem bounds it owns, plus its assigned base once the
// problem has been built.
type problemEntry struct {
	pattern SubPattern
	mask    func(Point) bool
	base    int
}

// Problem composes several sub-patterns over a shared bounding box under
// a disjoint-mask covering: the earliest entry whose mask accepts a
// point owns it. Building renumbers every entry's local variables into a
// global index space and collapses variables whose transition context is
// identical (transition-signature deduplication).
type Problem struct {
	bounds  Bounds
	entries []*problemEntry

	owner   map[Point]int
	code    map[Point]int
	numVars int
}

func NewProblem(bounds Bounds) *Problem {
	return &Problem{bounds: bounds}
}

// AddEntry appends a (sub-pattern, mask) entry. Entries are tried in the
// order added; the first whose mask accepts a point owns it.
func (pr *Problem) AddEntry(pattern SubPattern, mask func(Point) bool) {
	pr.entries = append(pr.entries, &problemEntry{pattern: pattern, mask: mask})
}

// Build validates mask coverage, builds every entry's sub-pattern,
// assigns base offsets, and performs transition-signature deduplication.
// It must be called exactly once, after every entry has been added.
func (pr *Problem) Build() error {
	positions := sortedPositions(pr.bounds)

	owner, err := pr.assignOwners(positions)
	if err != nil {
		return err
	}
	pr.owner = owner

	base := 2
	for _, e := range pr.entries {
		if err := e.pattern.Build(); err != nil {
			return err
		}
		e.base = base
		base += e.pattern.NumVariables()
	}
	totalRaw := base - 2

	raw := make(map[Point]int, len(positions))
	for _, p := range positions {
		e := pr.entries[owner[p]]
		raw[p] = toGlobalCode(e.pattern.CellValue(p), e.base)
	}

	finalByRaw, numVars, err := deduplicate(pr.bounds, positions, raw, pr.FollowsRules, totalRaw)
	if err != nil {
		return err
	}

	code := make(map[Point]int, len(positions))
	for _, p := range positions {
		v := raw[p]
		if v < 2 {
			code[p] = v
		} else {
			code[p] = finalByRaw[v]
		}
	}

	pr.code = code
	pr.numVars = numVars
	return nil
}

// assignOwners tests every point of the problem bounds against each
// entry's mask in order, failing if some point is owned by none.
func (pr *Problem) assignOwners(positions []Point) (map[Point]int, error) {
	owner := make(map[Point]int, len(positions))
	for _, p := range positions {
		found := false
		for i, e := range pr.entries {
			if e.mask(p) {
				owner[p] = i
				found = true
				break
			}
		}
		if !found {
			return nil, &SpecificationError{Detail: fmt.Sprintf("no entry's mask covers point %v", p)}
		}
	}
	return owner, nil
}

// signature identifies a transition context up to neighbor permutation:
// the center's raw code and the sorted multiset of the 8 neighbors' raw
// codes (out-of-bounds read as 0).
type signature struct {
	Center    int
	Neighbors [8]int
}

// deduplicate implements section 4.E's transition-signature dedup: every
// rule-following successor with the same (center, neighbor-multiset)
// signature in raw codes is collapsed to share a final code. It returns
// the final code for every raw variable in [2, 2+totalRaw) and the count
// of distinct final variables.
func deduplicate(bounds Bounds, positions []Point, raw map[Point]int, followsRules func(Point) bool, totalRaw int) (map[int]int, int, error) {
	uf := NewUnionFind[int](func(a, b int) bool { return a < b })
	seen := make(map[signature]int)

	for _, p := range positions {
		succ := Point{X: p.X, Y: p.Y, T: p.T + 1}
		if !bounds.Contains(succ) || !followsRules(succ) {
			continue
		}

		var neighbors [8]int
		idx := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				np := Point{X: p.X + dx, Y: p.Y + dy, T: p.T}
				if bounds.Contains(np) {
					neighbors[idx] = raw[np]
				}
				idx++
			}
		}
		sortInts8(&neighbors)
		sig := signature{Center: raw[p], Neighbors: neighbors}

		out := raw[succ]
		rep, ok := seen[sig]
		if !ok {
			seen[sig] = out
			continue
		}
		if out < 2 && rep < 2 {
			if out != rep {
				return nil, 0, &ContradictionError{Position: succ, Detail: "two incompatible known outputs for the same transition signature"}
			}
			continue
		}
		uf.Unite(out, rep)
	}

	rootCode := make(map[int]int)
	final := make(map[int]int, totalRaw)
	next := 2
	for v := 2; v < 2+totalRaw; v++ {
		root := uf.Find(v)
		if root == 0 || root == 1 {
			final[v] = root
			continue
		}
		fc, ok := rootCode[root]
		if !ok {
			fc = next
			rootCode[root] = fc
			next++
		}
		final[v] = fc
	}
	return final, next - 2, nil
}

func sortInts8(a *[8]int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

func (pr *Problem) Bounds() Bounds { return pr.bounds }

func (pr *Problem) NumVariables() int { return pr.numVars }

func (pr *Problem) CellValue(p Point) int { return pr.code[p] }

func (pr *Problem) IsKnown(p Point) bool {
	return pr.entries[pr.owner[p]].pattern.IsKnown(p)
}

func (pr *Problem) State(p Point) bool {
	return pr.entries[pr.owner[p]].pattern.State(p)
}

func (pr *Problem) FollowsRules(p Point) bool {
	return pr.entries[pr.owner[p]].pattern.FollowsRules(p)
}

// GetClauses emits the CNF clauses for the composed problem, over its
// already-deduplicated global codes.
func (pr *Problem) GetClauses(engine RuleEngine) []Clause {
	codeAt := func(p Point) int { return pr.code[p] }
	return emitRuleClauses(pr.bounds, codeAt, pr.FollowsRules, engine.Implicants())
}
