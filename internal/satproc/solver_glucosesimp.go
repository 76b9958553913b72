package satproc

type glucoseSimpSolver struct{ path string }

// NewGlucoseSimpSolver invokes glucose-simp over a temporary input and
// output file pair, resolving its executable path from config (key
// "glucoseSimpPath").
func NewGlucoseSimpSolver(config Config) SATSolver {
	return &glucoseSimpSolver{path: config.ExecutablePath("glucoseSimpPath", "glucose-simp")}
}

func (s *glucoseSimpSolver) Solve(cnf CNF) (Solution, error) {
	_, output, sat, err := runWithTempFiles(s.path, []string{"-verb=0"}, cnf.ToDIMACS(), true)
	if err != nil {
		return nil, err
	}
	if !sat {
		return nil, nil
	}
	return parseResultFile(output)
}
