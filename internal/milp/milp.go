package milp

import (
	"fmt"
	"strings"
)

// Assignment holds the solved value of every binary variable. Variable n
// (1-based) lives at Assignment[n-1].
type Assignment []bool

// Constraint bounds the sum of a set of binary variables from above.
type Constraint struct {
	Variables []uint64 // 1-based variable numbers
	Bound     int64
}

// MILP is a pure 0/1 integer maximization program: every variable is binary,
// every constraint is a sum of variables bounded from above, and the
// objective is a weighted sum of variables.
type MILP struct {
	Variables   uint64
	Objective   []int64 // one coefficient per variable
	Constraints []Constraint
}

// ToLP serializes the program into CPLEX LP text format, which glpsol, cbc
// and scip all read natively.
func (m MILP) ToLP() string {
	var builder strings.Builder

	builder.WriteString("Maximize\n obj:")
	for i, coefficient := range m.Objective {
		if i > 0 {
			builder.WriteString(" +")
		}
		fmt.Fprintf(&builder, " %d x%d", coefficient, i+1)
	}
	builder.WriteString("\n")

	builder.WriteString("Subject To\n")
	for i, constraint := range m.Constraints {
		fmt.Fprintf(&builder, " c%d:", i+1)
		for j, variable := range constraint.Variables {
			if j > 0 {
				builder.WriteString(" +")
			}
			fmt.Fprintf(&builder, " x%d", variable)
		}
		fmt.Fprintf(&builder, " <= %d\n", constraint.Bound)
	}

	builder.WriteString("Binary\n")
	for variable := uint64(1); variable <= m.Variables; variable++ {
		fmt.Fprintf(&builder, " x%d\n", variable)
	}
	builder.WriteString("End\n")

	return builder.String()
}
