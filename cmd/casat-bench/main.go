package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/mira-tools/casat/internal/satproc"
	"github.com/mira-tools/casat/pkg/ca"
)

// problemSpec describes one synthetic search problem to benchmark: a
// width x height x (maxGen+1) region seeded with a known still life,
// oscillator or glider, free everywhere else.
type problemSpec struct {
	Name   string
	Seed   map[ca.Point]bool
	Width  int
	Height int
	MaxGen int
}

type BenchmarkResult struct {
	Problem   string
	Solver    string
	Variables int
	Clauses   int
	Compile   time.Duration
	Solve     time.Duration
	Result    string
}

func main() {
	problems := getProblems()
	solvers := getSolvers(satproc.Config{})
	results := make([]BenchmarkResult, 0, len(problems)*len(solvers))

	for _, problem := range problems {
		compileStart := time.Now()
		pr, cnf, err := compile(problem)
		compileDuration := time.Since(compileStart)
		if err != nil {
			log.Fatalf("cannot compile problem %q: %v", problem.Name, err)
		}

		var wg sync.WaitGroup
		rowCh := make(chan BenchmarkResult, len(solvers))
		for name, solver := range solvers {
			wg.Add(1)
			go func(name string, solver satproc.SATSolver) {
				defer wg.Done()
				solveStart := time.Now()
				solution, err := solver.Solve(cnf)
				solveDuration := time.Since(solveStart)

				result := "solved"
				if err != nil {
					result = fmt.Sprintf("error: %v", err)
				} else if solution == nil {
					result = "unsatisfiable"
				}

				rowCh <- BenchmarkResult{
					Problem:   problem.Name,
					Solver:    name,
					Variables: pr.NumVariables(),
					Clauses:   len(cnf.Clauses),
					Compile:   compileDuration,
					Solve:     solveDuration,
					Result:    result,
				}
			}(name, solver)
		}
		wg.Wait()
		close(rowCh)
		for row := range rowCh {
			results = append(results, row)
		}
	}

	toCsv(results)
}

func compile(problem problemSpec) (*ca.Problem, satproc.CNF, error) {
	known := ca.NewKnownPattern(problem.Seed, ca.Point{})
	bounds := ca.NewBounds(problem.Width, problem.Height, problem.MaxGen)
	pr := ca.NewProblem(bounds)

	seedBounds := known.Bounds()
	pr.AddEntry(known, seedBounds.Contains)

	free := ca.NewVariablePattern(bounds)
	free.SetFollowsRulesIf(true, func(p ca.Point) bool { return p.T >= 1 })
	pr.AddEntry(free, func(ca.Point) bool { return true })

	if err := pr.Build(); err != nil {
		return nil, satproc.CNF{}, err
	}

	cnf := satproc.FromClauses(pr.NumVariables(), pr.GetClauses(ca.LifeEngine))
	return pr, cnf, nil
}

func getProblems() []problemSpec {
	blinker := map[ca.Point]bool{
		{X: 1, Y: 0}: true, {X: 1, Y: 1}: true, {X: 1, Y: 2}: true,
	}
	boat := map[ca.Point]bool{
		{X: 0, Y: 0}: true, {X: 1, Y: 0}: true, {X: 0, Y: 1}: true,
		{X: 2, Y: 1}: true, {X: 1, Y: 2}: true,
	}
	glider := map[ca.Point]bool{
		{X: 1, Y: 0}: true, {X: 2, Y: 1}: true,
		{X: 0, Y: 2}: true, {X: 1, Y: 2}: true, {X: 2, Y: 2}: true,
	}

	return []problemSpec{
		{Name: "blinker-small", Seed: blinker, Width: 6, Height: 6, MaxGen: 2},
		{Name: "boat-small", Seed: boat, Width: 6, Height: 6, MaxGen: 2},
		{Name: "glider-medium", Seed: glider, Width: 10, Height: 10, MaxGen: 4},
		{Name: "glider-large", Seed: glider, Width: 16, Height: 16, MaxGen: 6},
	}
}

func getSolvers(config satproc.Config) map[string]satproc.SATSolver {
	return map[string]satproc.SATSolver{
		"kissat":        satproc.NewKissatSolver(config),
		"cadical":       satproc.NewCadicalSolver(config),
		"minisat":       satproc.NewMinisatSolver(config),
		"cryptominisat": satproc.NewCryptominisatSolver(config),
		"glucosesimp":   satproc.NewGlucoseSimpSolver(config),
		"slime":         satproc.NewSlimeSolver(config),
		"ortoolsat":     satproc.NewOrtoolsatSolver(config),
	}
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("casat_benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Problem", "Solver", "Variables", "Clauses", "Compile(ms)", "Solve(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Problem,
			result.Solver,
			fmt.Sprintf("%d", result.Variables),
			fmt.Sprintf("%d", result.Clauses),
			fmt.Sprintf("%d", result.Compile.Milliseconds()),
			fmt.Sprintf("%d", result.Solve.Milliseconds()),
			result.Result,
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
