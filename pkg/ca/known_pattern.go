package ca

var _ SubPattern = (*KnownPattern)(nil)

// KnownPattern is a sub-pattern whose every cell's state is already
// determined: a set of live positions spanning one or more generations,
// plus a translational offset applied to every query. All of its cells
// are known and rule-following.
type KnownPattern struct {
	live   map[Point]bool // canonical coordinates, before offset
	bounds Bounds         // canonical, before offset
	offset Point
}

// NewKnownPattern builds a KnownPattern from its generation-zero live
// cells, to be queried at offset within a larger problem. Bounds start
// as the smallest rectangle containing those cells; Simulate grows both
// the live set and the bounds.
func NewKnownPattern(liveAtGenZero map[Point]bool, offset Point) *KnownPattern {
	live := make(map[Point]bool, len(liveAtGenZero))
	for p, alive := range liveAtGenZero {
		if alive {
			live[Point{X: p.X, Y: p.Y, T: 0}] = true
		}
	}
	return &KnownPattern{
		live:   live,
		bounds: boundingBox(live, 0, 0),
		offset: offset,
	}
}

// boundingBox computes the smallest rectangle containing every point of
// live, with the t-range forced to [minGen, maxGen].
func boundingBox(live map[Point]bool, minGen, maxGen int) Bounds {
	b := Bounds{T: Limits{minGen, maxGen}}
	first := true
	for p := range live {
		if first {
			b.X = Limits{p.X, p.X}
			b.Y = Limits{p.Y, p.Y}
			first = false
			continue
		}
		if p.X < b.X.Min {
			b.X.Min = p.X
		}
		if p.X > b.X.Max {
			b.X.Max = p.X
		}
		if p.Y < b.Y.Min {
			b.Y.Min = p.Y
		}
		if p.Y > b.Y.Max {
			b.Y.Max = p.Y
		}
	}
	if first {
		b.X = Limits{0, -1}
		b.Y = Limits{0, -1}
	}
	return b
}

// Simulate extends the pattern by maxGen further generations, applying
// rule cell-by-cell over the growing neighborhood of the current
// generation's live cells. Bounds grow to the union bounding box of
// every generation simulated so far; they never shrink.
func (k *KnownPattern) Simulate(rule Rule, maxGen int) {
	startGen := k.bounds.T.Max
	gen := map[Point]bool{}
	for p := range k.live {
		if p.T == startGen {
			gen[Point{X: p.X, Y: p.Y}] = true
		}
	}

	for t := startGen; t < startGen+maxGen; t++ {
		candidates := map[Point]bool{}
		for p := range gen {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					candidates[Point{X: p.X + dx, Y: p.Y + dy}] = true
				}
			}
		}
		next := map[Point]bool{}
		for c := range candidates {
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if gen[Point{X: c.X + dx, Y: c.Y + dy}] {
						count++
					}
				}
			}
			if rule(count, gen[c]) {
				next[c] = true
				k.live[Point{X: c.X, Y: c.Y, T: t + 1}] = true
			}
		}
		gen = next
	}

	k.bounds = boundingBox(k.live, k.bounds.T.Min, startGen+maxGen)
}

func (k *KnownPattern) Bounds() Bounds {
	return k.bounds.Translate(k.offset)
}

func (k *KnownPattern) Build() error { return nil }

func (k *KnownPattern) NumVariables() int { return 0 }

func (k *KnownPattern) State(p Point) bool {
	return k.live[p.Sub(k.offset)]
}

func (k *KnownPattern) IsKnown(p Point) bool { return true }

func (k *KnownPattern) FollowsRules(p Point) bool { return true }

func (k *KnownPattern) CellValue(p Point) int {
	if k.State(p) {
		return 1
	}
	return 0
}

func (k *KnownPattern) GetClauses(base int, engine RuleEngine) []Clause {
	return emitSubPatternClauses(k.Bounds(), k.CellValue, k.FollowsRules, base, engine)
}
