package milp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// ErrSolverUnavailable is returned by backend constructors when the external
// solver binary cannot be found. It is a configuration error, distinct from
// an infeasible program (which solves to a nil Assignment, not an error).
var ErrSolverUnavailable = errors.New("external MILP solver binary not found")

type MILPSolver interface {
	Solve(ctx context.Context, instance MILP) (Assignment, error) // Returns the optimal assignment if the program is feasible, else returns nil (both are valid outputs where error shall be nil)
}

func lookupBinary(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %v", ErrSolverUnavailable, name)
	}
	return nil
}

// writeModel dumps the LP-format program into a temp file and returns its
// path; the caller removes it.
func writeModel(instance MILP) (string, error) {
	file, err := os.CreateTemp("", "milp-*.lp")
	if err != nil {
		return "", fmt.Errorf("cannot create model file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(instance.ToLP()); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("cannot write model file: %w", err)
	}
	return file.Name(), nil
}

// parseVariable extracts the 1-based variable number from a name of the form
// xN; ok is false for any other token.
func parseVariable(name string) (uint64, bool) {
	if !strings.HasPrefix(name, "x") {
		return 0, false
	}
	variable, err := strconv.ParseUint(name[1:], 10, 64)
	if err != nil || variable == 0 {
		return 0, false
	}
	return variable, true
}

func parseActivity(token string) (bool, bool) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return false, false
	}
	return value > 0.5, true
}
