package milp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const scipPath = "scip"

type scipSolver struct{}

// NewSCIPSolver returns a backend that shells out to the SCIP binary.
// It fails with ErrSolverUnavailable when scip is not installed.
func NewSCIPSolver() (MILPSolver, error) {
	if err := lookupBinary(scipPath); err != nil {
		return nil, err
	}
	return &scipSolver{}, nil
}

func (solver *scipSolver) Solve(ctx context.Context, instance MILP) (Assignment, error) {
	modelFile, err := writeModel(instance)
	if err != nil {
		return nil, err
	}
	defer os.Remove(modelFile)

	cmd := exec.CommandContext(ctx, scipPath, "-c", fmt.Sprintf("read %v optimize display solution quit", modelFile))

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during scip execution: %v : %v", err.Error(), stderr.String())
	}

	return parseSCIPSolution(stdOut.String(), instance.Variables), nil
}

// parseSCIPSolution reads the "display solution" section of scip's output:
// non-zero variables listed one per line after the objective value.
func parseSCIPSolution(output string, variables uint64) Assignment {
	if strings.Contains(output, "problem is infeasible") {
		return nil
	}

	assignment := make(Assignment, variables)
	inSolution := false
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "objective value:") {
			inSolution = true
			continue
		}
		if !inSolution {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		variable, ok := parseVariable(fields[0])
		if !ok || variable > variables {
			continue
		}
		if set, ok := parseActivity(fields[1]); ok && set {
			assignment[variable-1] = true
		}
	}

	return assignment
}
