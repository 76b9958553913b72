package satproc

type kissatSolver struct{ path string }

// NewKissatSolver invokes kissat over stdin/stdout, resolving its
// executable path from config (key "kissatPath").
func NewKissatSolver(config Config) SATSolver {
	return &kissatSolver{path: config.ExecutablePath("kissatPath", "kissat")}
}

func (s *kissatSolver) Solve(cnf CNF) (Solution, error) {
	stdout, sat, err := runStdin(s.path, []string{"-q", "--relaxed"}, cnf.ToDIMACS())
	if err != nil {
		return nil, err
	}
	if !sat {
		return nil, nil
	}
	return ParseSolution(stdout)
}
