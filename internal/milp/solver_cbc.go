package milp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const cbcPath = "cbc"

type cbcSolver struct{}

// NewCBCSolver returns a backend that shells out to the COIN-OR cbc binary.
// It fails with ErrSolverUnavailable when cbc is not installed.
func NewCBCSolver() (MILPSolver, error) {
	if err := lookupBinary(cbcPath); err != nil {
		return nil, err
	}
	return &cbcSolver{}, nil
}

func (solver *cbcSolver) Solve(ctx context.Context, instance MILP) (Assignment, error) {
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

	cmd := exec.CommandContext(ctx, cbcPath, modelFile, "solve", "solution", solutionFile.Name())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during cbc execution: %v : %v", err.Error(), stderr.String())
	}

	output, err := os.ReadFile(solutionFile.Name())
	if err != nil {
		return nil, fmt.Errorf("cannot read cbc solution: %w", err)
	}

	return parseCBCSolution(string(output), instance.Variables), nil
}

// parseCBCSolution reads cbc's solution file: a status line followed by
// "index name value cost" rows for non-zero columns.
func parseCBCSolution(report string, variables uint64) Assignment {
	lines := strings.Split(report, "\n")
	if len(lines) == 0 || strings.Contains(lines[0], "Infeasible") {
		return nil
	}

	assignment := make(Assignment, variables)
	for _, line := range lines[1:] {
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
