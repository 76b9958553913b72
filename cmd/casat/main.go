package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/mira-tools/casat/internal/satproc"
	"github.com/mira-tools/casat/pkg/ca"
)

var (
	validSolvers = []string{"kissat", "cadical", "minisat", "cryptominisat", "glucosesimp", "slime", "ortoolsat"}
	solvers      = map[string]func(satproc.Config) satproc.SATSolver{
		"kissat":        satproc.NewKissatSolver,
		"cadical":       satproc.NewCadicalSolver,
		"minisat":       satproc.NewMinisatSolver,
		"cryptominisat": satproc.NewCryptominisatSolver,
		"glucosesimp":   satproc.NewGlucoseSimpSolver,
		"slime":         satproc.NewSlimeSolver,
		"ortoolsat":     satproc.NewOrtoolsatSolver,
	}
)

func main() {
	rlePtr := flag.String("rle", "", "Path to the RLE file seeding generation zero")
	widthPtr := flag.Int("width", 0, "Width of the search region")
	heightPtr := flag.Int("height", 0, "Height of the search region")
	maxGenPtr := flag.Int("maxgen", 0, "Last generation index to search up to (generation zero is the seed)")
	solverPtr := flag.String("solver", "kissat", "SAT solver to invoke. Allowed values are: \"kissat\", \"cadical\", \"minisat\", \"cryptominisat\", \"glucosesimp\", \"slime\", \"ortoolsat\", where \"kissat\" is the default")
	configPtr := flag.String("config", "", "Path to the solver-path config file; defaults to config.json next to the executable")
	dimacsPtr := flag.String("dimacs", "", "Path to write the compiled DIMACS instance to; if set, the solver is not invoked")
	outPtr := flag.String("out", "", "Path to write the solved grid as CSV; if empty, it is written to the Standard Output")
	flag.Parse()

	solverStr := strings.ToLower(*solverPtr)
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}
	if *rlePtr == "" {
		log.Fatal("an RLE seed file must be specified")
	}
	if *widthPtr <= 0 || *heightPtr <= 0 {
		log.Fatal("width and height must be positive")
	}
	if *maxGenPtr < 0 {
		log.Fatal("maxgen must not be negative")
	}

	seed, err := os.ReadFile(*rlePtr)
	if err != nil {
		log.Fatalf("cannot read RLE file: %v", err)
	}
	known, err := ca.ParseRLE(string(seed))
	if err != nil {
		log.Fatalf("cannot parse RLE seed: %v", err)
	}

	problem := buildProblem(known, *widthPtr, *heightPtr, *maxGenPtr)
	if err := problem.Build(); err != nil {
		log.Fatalf("cannot build problem: %v", err)
	}

	clauses := problem.GetClauses(ca.LifeEngine)
	cnf := satproc.FromClauses(problem.NumVariables(), clauses)
	fmt.Fprintf(os.Stderr, "Variables: %v\n", cnf.Variables)
	fmt.Fprintf(os.Stderr, "Clauses: %v\n", len(cnf.Clauses))

	if *dimacsPtr != "" {
		if err := os.WriteFile(*dimacsPtr, []byte(cnf.ToDIMACS()), 0666); err != nil {
			log.Fatalf("cannot write DIMACS file: %v", err)
		}
		return
	}

	config, err := satproc.LoadConfig(resolveConfigPath(*configPtr))
	if err != nil {
		log.Fatalf("cannot load solver config: %v", err)
	}

	solver := solvers[solverStr](config)
	solution, err := solver.Solve(cnf)
	if err != nil {
		log.Fatalf("an error occurred during %v execution: %v", solverStr, err)
	}
	if solution == nil {
		fmt.Println("Not satisfiable")
		os.Exit(20)
	}

	grid := ca.ReconstructGrid(problem.Bounds(), problem.CellValue, solution.Model())

	if *outPtr == "" {
		if err := ca.WriteCSV(os.Stdout, grid); err != nil {
			log.Fatalf("cannot write solution to the Standard Output: %v", err)
		}
	} else {
		out, err := os.Create(*outPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer out.Close()
		if err := ca.WriteCSV(out, grid); err != nil {
			log.Fatalf("cannot write solution file: %v", err)
		}
	}
	os.Exit(10)
}

// buildProblem composes the RLE seed as a known sub-pattern over a
// background of otherwise-free cells spanning the full search region:
// every cell outside the seed's own generation-zero footprint, and
// every cell at generation one or later, is left for the solver to
// determine, constrained only by the CA rule.
func buildProblem(known *ca.KnownPattern, width, height, maxGen int) *ca.Problem {
	bounds := ca.NewBounds(width, height, maxGen)
	problem := ca.NewProblem(bounds)

	seedBounds := known.Bounds()
	problem.AddEntry(known, seedBounds.Contains)

	free := ca.NewVariablePattern(bounds)
	free.SetFollowsRulesIf(true, func(p ca.Point) bool { return p.T >= 1 })
	problem.AddEntry(free, func(ca.Point) bool { return true })

	return problem
}

// resolveConfigPath returns override if set, otherwise config.json next
// to the running executable. A missing file is not fatal here: the
// backends fall back to bare executable names resolved against PATH.
func resolveConfigPath(override string) string {
	if override != "" {
		return override
	}
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	return path.Join(path.Dir(execPath), "config.json")
}
