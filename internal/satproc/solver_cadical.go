package satproc

type cadicalSolver struct{ path string }

// NewCadicalSolver invokes cadical over stdin/stdout, resolving its
// executable path from config (key "cadicalPath").
func NewCadicalSolver(config Config) SATSolver {
	return &cadicalSolver{path: config.ExecutablePath("cadicalPath", "cadical")}
}

func (s *cadicalSolver) Solve(cnf CNF) (Solution, error) {
	stdout, sat, err := runStdin(s.path, []string{"-q"}, cnf.ToDIMACS())
	if err != nil {
		return nil, err
	}
	if !sat {
		return nil, nil
	}
	return ParseSolution(stdout)
}
