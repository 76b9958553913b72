// Package satproc emits CNF instances as DIMACS, invokes an external SAT
// solver as a subprocess, and parses its output back into a model.
package satproc

import (
	"fmt"
	"strings"

	"github.com/mira-tools/casat/pkg/ca"
)

// CNF is a conjunctive-normal-form instance: a variable count and an
// ordered list of clauses, each a slice of nonzero signed literals.
type CNF struct {
	Variables int
	Clauses   [][]int
}

// FromClauses packages a compiled set of ca.Clauses with the variable
// count they range over.
func FromClauses(numVars int, clauses []ca.Clause) CNF {
	out := make([][]int, len(clauses))
	for i, c := range clauses {
		lits := make([]int, len(c))
		copy(lits, c)
		out[i] = lits
	}
	return CNF{Variables: numVars, Clauses: out}
}

// ToDIMACS renders the instance in the plain-text DIMACS CNF format.
func (c CNF) ToDIMACS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", c.Variables, len(c.Clauses))
	for _, clause := range c.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
	}
	return b.String()
}
