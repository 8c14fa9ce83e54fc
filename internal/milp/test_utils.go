package milp

import "math/rand/v2"

// GenerateMILPInstance builds a random feasible 0/1 program: positive
// objective weights and at-most-one constraints over random variable
// subsets. The all-zero assignment is always feasible.
func GenerateMILPInstance(variables uint64, constraints int) MILP {
	instance := MILP{
		Variables:   variables,
		Objective:   make([]int64, variables),
		Constraints: make([]Constraint, constraints),
	}

	for i := range instance.Objective {
		instance.Objective[i] = rand.Int64N(1000) + 1
	}

	for i := range constraints {
		members := make([]uint64, 0, variables)
		for variable := uint64(1); variable <= variables; variable++ {
			if rand.Float32() < 0.3 {
				members = append(members, variable)
			}
		}

		if len(members) == 0 {
			members = append(members, 1+rand.Uint64N(variables))
		}

		instance.Constraints[i] = Constraint{Variables: members, Bound: 1}
	}

	return instance
}

// AssertAssignment checks that the assignment covers every variable and
// violates no constraint.
func AssertAssignment(instance MILP, assignment Assignment) bool {
	if uint64(len(assignment)) != instance.Variables {
		return false
	}

	for _, constraint := range instance.Constraints {
		var sum int64
		for _, variable := range constraint.Variables {
			if assignment[variable-1] {
				sum++
			}
		}
		if sum > constraint.Bound {
			return false
		}
	}

	return true
}

// ObjectiveValue computes the weighted sum of the set variables.
func ObjectiveValue(instance MILP, assignment Assignment) int64 {
	var value int64
	for i, set := range assignment {
		if set {
			value += instance.Objective[i]
		}
	}
	return value
}
