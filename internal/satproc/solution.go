package satproc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Solution is the signed literal assignment returned by a satisfiable
// run: a positive entry asserts that variable true, a negative entry
// asserts it false.
type Solution []int

// Model converts a Solution into the absolute-literal lookup that
// ca.ModelState expects.
func (s Solution) Model() map[int]bool {
	model := make(map[int]bool, len(s))
	for _, lit := range s {
		if lit > 0 {
			model[lit] = true
		} else if lit < 0 {
			model[-lit] = false
		}
	}
	return model
}

// ParseSolution extracts every literal from a solver's "v" lines,
// joining as many as are present before stripping the terminating 0. A
// malformed literal is reported as an error, not a panic: garbled
// solver output is a subprocess failure a caller must be able to
// recover from, not a crash.
func ParseSolution(output string) (Solution, error) {
	lines := lo.Filter(strings.Split(output, "\n"), func(line string, _ int) bool {
		return len(line) > 0 && line[0] == 'v'
	})
	if len(lines) == 0 {
		return nil, fmt.Errorf("satproc: solver output has no \"v\" lines")
	}

	fields := lo.Reduce(lines, func(acc []string, line string, _ int) []string {
		return append(acc, strings.Fields(line[1:])...)
	}, []string{})

	return atoiFields(fields)
}

// parseResultFile reads a result-file solver convention where the first
// line is a SAT/UNSAT status and the second line is the space-separated
// model terminated by 0.
func parseResultFile(contents string) (Solution, error) {
	lines := strings.Split(strings.TrimSpace(contents), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("satproc: result file has no model line")
	}
	return atoiFields(strings.Fields(lines[1]))
}

func atoiFields(fields []string) (Solution, error) {
	literals := make(Solution, len(fields))
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("satproc: invalid literal %q in solver output: %w", field, err)
		}
		literals[i] = value
	}
	if n := len(literals); n > 0 && literals[n-1] == 0 {
		literals = literals[:n-1]
	}
	return literals, nil
}
