package satproc

type cryptominisatSolver struct{ path string }

// NewCryptominisatSolver invokes cryptominisat over stdin/stdout,
// resolving its executable path from config (key "cryptominisatPath").
func NewCryptominisatSolver(config Config) SATSolver {
	return &cryptominisatSolver{path: config.ExecutablePath("cryptominisatPath", "cryptominisat")}
}

func (s *cryptominisatSolver) Solve(cnf CNF) (Solution, error) {
	stdout, sat, err := runStdin(s.path, []string{"--verb", "0"}, cnf.ToDIMACS())
	if err != nil {
		return nil, err
	}
	if !sat {
		return nil, nil
	}
	return ParseSolution(stdout)
}
