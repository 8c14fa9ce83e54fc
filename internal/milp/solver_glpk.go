package milp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const glpsolPath = "glpsol"

type glpkSolver struct{}

// NewGLPKSolver returns a backend that shells out to GLPK's glpsol binary.
// It fails with ErrSolverUnavailable when glpsol is not installed.
func NewGLPKSolver() (MILPSolver, error) {
	if err := lookupBinary(glpsolPath); err != nil {
		return nil, err
	}
	return &glpkSolver{}, nil
}

func (solver *glpkSolver) Solve(ctx context.Context, instance MILP) (Assignment, error) {
	modelFile, err := writeModel(instance)
	if err != nil {
		return nil, err
	}
	defer os.Remove(modelFile)

	solutionFile, err := os.CreateTemp("", "milp-*.sol")
	if err != nil {
		return nil, fmt.Errorf("cannot create solution file: %w", err)
	}
	solutionFile.Close()
	defer os.Remove(solutionFile.Name())

	cmd := exec.CommandContext(ctx, glpsolPath, "--lp", modelFile, "--output", solutionFile.Name())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during glpsol execution: %v : %v", err.Error(), stderr.String())
	}

	output, err := os.ReadFile(solutionFile.Name())
	if err != nil {
		return nil, fmt.Errorf("cannot read glpsol solution: %w", err)
	}

	return parseGLPKSolution(string(output), instance.Variables), nil
}

// parseGLPKSolution reads glpsol's human-readable solution report. Columns
// are named xN, rows cN, so scanning every table line for an xN name with a
// numeric activity is unambiguous.
func parseGLPKSolution(report string, variables uint64) Assignment {
	lines := strings.Split(report, "\n")

	for _, line := range lines {
		if strings.HasPrefix(line, "Status:") && (strings.Contains(line, "EMPTY") || strings.Contains(line, "UNDEFINED")) {
			return nil
		}
	}

	assignment := make(Assignment, variables)
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		variable, ok := parseVariable(fields[1])
		if !ok || variable > variables {
			continue
		}
		if set, ok := parseActivity(fields[2]); ok && set {
			assignment[variable-1] = true
		}
	}

	return assignment
}
