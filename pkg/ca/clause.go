package ca

// MaxClauseLen is the largest number of literals a single rule-transition
// clause can carry: one per context position.
const MaxClauseLen = 10

// Clause is a disjunction of signed SAT literals: positive asserts the
// variable true, negative asserts it false.
type Clause []int

// ClauseBuilder accumulates literals for one clause, rejecting a literal
// whose negation is already present (a tautology) and tracking whether
// the clause has become trivially satisfied by a known cell.
type ClauseBuilder struct {
	literals  []int
	satisfied bool
}

func (b *ClauseBuilder) Reset() {
	b.literals = b.literals[:0]
	b.satisfied = false
}

// MarkSatisfied records that the clause is already satisfied regardless
// of its remaining literals.
func (b *ClauseBuilder) MarkSatisfied() {
	b.satisfied = true
}

func (b *ClauseBuilder) IsSatisfied() bool {
	return b.satisfied
}

// AddLiteral adds lit to the clause. It returns true if the clause has
// become a tautology, in which case the caller should stop building it.
func (b *ClauseBuilder) AddLiteral(lit int) bool {
	if b.satisfied {
		return true
	}
	for _, existing := range b.literals {
		if existing == -lit {
			b.satisfied = true
			return true
		}
	}
	b.literals = append(b.literals, lit)
	return false
}

func (b *ClauseBuilder) Empty() bool {
	return len(b.literals) == 0
}

func (b *ClauseBuilder) Clause() Clause {
	c := make(Clause, len(b.literals))
	copy(c, b.literals)
	return c
}

// EmitTransitionClauses appends to dst the CNF clauses encoding the CA
// rule for one transition context, and returns the extended slice.
// context[0..8] is the 3x3 neighborhood at time t in row-major order
// (context[4] the center); context[9] is the successor at t+1. Each entry
// is a cell code: 0 = known dead, 1 = known alive, >= 2 = an unknown
// variable whose SAT literal is code-1.
//
// Each implicant names a context pattern (Care, Force) that necessarily
// violates the rule. The clause built from it forbids exactly that
// pattern: it is the disjunction, over the implicant's cared-about bits,
// of "this bit differs from Force". A known cell whose state already
// differs from Force on some bit can never match the pattern, so the
// whole clause is vacuously satisfied; a known cell matching Force
// contributes nothing and scanning continues. An empty, unsatisfied
// clause means every cared-about bit is known and matches Force exactly:
// the violation is unconditional, and the instance is unsatisfiable.
func EmitTransitionClauses(dst []Clause, context [10]int, implicants []Implicant) []Clause {
	var builder ClauseBuilder
	for _, im := range implicants {
		builder.Reset()
		for bit := 0; bit < 10; bit++ {
			if im.Care&(1<<uint(bit)) == 0 {
				continue
			}
			required := im.Force&(1<<uint(bit)) != 0
			code := context[bit]

			if code < 2 {
				state := code == 1
				if state != required {
					builder.MarkSatisfied()
					break
				}
				continue
			}

			sign := 1
			if required {
				sign = -1
			}
			if builder.AddLiteral(sign * (code - 1)) {
				break
			}
		}
		if !builder.IsSatisfied() {
			dst = append(dst, builder.Clause())
		}
	}
	return dst
}

// neighborOffsets is the row-major 3x3 walk order matching the rule
// engine's bit layout: bit 4 is (0,0), the center.
var neighborOffsets = [9]Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}
