package satproc

type slimeSolver struct{ path string }

// NewSlimeSolver invokes slime over a temporary input file, reading its
// model off stdout, resolving its executable path from config (key
// "slimePath").
func NewSlimeSolver(config Config) SATSolver {
	return &slimeSolver{path: config.ExecutablePath("slimePath", "slime")}
}

func (s *slimeSolver) Solve(cnf CNF) (Solution, error) {
	stdout, _, sat, err := runWithTempFiles(s.path, nil, cnf.ToDIMACS(), false)
	if err != nil {
		return nil, err
	}
	if !sat {
		return nil, nil
	}
	return ParseSolution(stdout)
}
