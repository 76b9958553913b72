package satproc

type minisatSolver struct{ path string }

// NewMinisatSolver invokes minisat over a temporary input and output
// file pair, resolving its executable path from config (key
// "minisatPath").
func NewMinisatSolver(config Config) SATSolver {
	return &minisatSolver{path: config.ExecutablePath("minisatPath", "minisat")}
}

func (s *minisatSolver) Solve(cnf CNF) (Solution, error) {
	_, output, sat, err := runWithTempFiles(s.path, []string{"-verb=0"}, cnf.ToDIMACS(), true)
	if err != nil {
		return nil, err
	}
	if !sat {
		return nil, nil
	}
	return parseResultFile(output)
}
