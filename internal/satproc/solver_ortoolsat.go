package satproc

type ortoolsatSolver struct{ path string }

// NewOrtoolsatSolver invokes OR-Tools' CP-SAT DIMACS front-end over a
// temporary input file, reading its model off stdout, resolving its
// executable path from config (key "ortoolsatPath").
func NewOrtoolsatSolver(config Config) SATSolver {
	return &ortoolsatSolver{path: config.ExecutablePath("ortoolsatPath", "ortoolsat")}
}

func (s *ortoolsatSolver) Solve(cnf CNF) (Solution, error) {
	stdout, _, sat, err := runWithTempFiles(s.path, nil, cnf.ToDIMACS(), false)
	if err != nil {
		return nil, err
	}
	if !sat {
		return nil, nil
	}
	return ParseSolution(stdout)
}
