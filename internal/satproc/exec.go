package satproc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// runStdin invokes name with args, feeding dimacs on stdin, and
// interprets the subprocess exit code under the SAT convention: 10
// satisfiable, 20 unsatisfiable, anything else a launch failure.
func runStdin(name string, args []string, dimacs string) (stdout string, satisfiable bool, err error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(dimacs)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	code := cmd.ProcessState.ExitCode()
	if code != 10 && code != 20 {
		if runErr == nil {
			runErr = fmt.Errorf("exit status %d", code)
		}
		return "", false, fmt.Errorf("%s: %v: %s", name, runErr, stderr.String())
	}
	return out.String(), code == 10, nil
}

// runWithTempFiles writes dimacs to a temporary input file, optionally
// allocates a temporary output file, and invokes name with args followed
// by the input path (and the output path, if requested). Every temp file
// is unlinked before return on every exit path.
func runWithTempFiles(name string, args []string, dimacs string, wantOutputFile bool) (stdout, outputContents string, satisfiable bool, err error) {
	inFile, err := os.CreateTemp("", "casat-dimacs-*.cnf")
	if err != nil {
		return "", "", false, fmt.Errorf("%s: cannot create temporary input file: %w", name, err)
	}
	defer os.Remove(inFile.Name())

	if _, err := inFile.WriteString(dimacs); err != nil {
		inFile.Close()
		return "", "", false, fmt.Errorf("%s: cannot write temporary input file: %w", name, err)
	}
	if err := inFile.Close(); err != nil {
		return "", "", false, fmt.Errorf("%s: cannot close temporary input file: %w", name, err)
	}

	fullArgs := append(append([]string{}, args...), inFile.Name())

	var outFile *os.File
	if wantOutputFile {
		outFile, err = os.CreateTemp("", "casat-output-*.cnf")
		if err != nil {
			return "", "", false, fmt.Errorf("%s: cannot create temporary output file: %w", name, err)
		}
		defer os.Remove(outFile.Name())
		defer outFile.Close()
		fullArgs = append(fullArgs, outFile.Name())
	}

	cmd := exec.Command(name, fullArgs...)
	cmd.Stdin = strings.NewReader(dimacs)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	code := cmd.ProcessState.ExitCode()
	if code != 10 && code != 20 {
		if runErr == nil {
			runErr = fmt.Errorf("exit status %d", code)
		}
		return "", "", false, fmt.Errorf("%s: %v: %s", name, runErr, stderr.String())
	}

	if wantOutputFile {
		data, readErr := io.ReadAll(outFile)
		if readErr != nil {
			return "", "", false, fmt.Errorf("%s: cannot read output file: %w", name, readErr)
		}
		outputContents = string(data)
	}

	return out.String(), outputContents, code == 10, nil
}
