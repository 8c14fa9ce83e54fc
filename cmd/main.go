package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"sessionscheduler/internal/milp"
	"sessionscheduler/internal/model"
	"sessionscheduler/internal/scenario"
)

const divider = "================================================================"

type namedScheduler struct {
	name      string
	scheduler model.Scheduler
}

type namedScenario struct {
	name     string
	requests []model.SessionRequest
	travel   model.TravelTimes
}

func main() {
	schedulers := []namedScheduler{
		{"greedy", model.NewGreedyScheduler()},
		{"backtracking", model.NewBacktrackingScheduler()},
		{"branch-and-bound", model.NewBranchAndBoundScheduler()},
	}

	if solver, err := newMILPBackend(); err != nil {
		log.Printf("skipping MILP strategy: %v", err)
	} else {
		schedulers = append(schedulers, namedScheduler{"milp", model.NewMILPScheduler(solver)})
	}

	scenarios := []namedScenario{}
	for _, build := range []struct {
		name string
		fn   func() ([]model.SessionRequest, model.TravelTimes)
	}{
		{"simple", scenario.Simple},
		{"conference", scenario.Conference},
		{"complex", scenario.Complex},
	} {
		requests, travel := build.fn()
		scenarios = append(scenarios, namedScenario{build.name, requests, travel})
	}

	for _, current := range scenarios {
		fmt.Printf("%v\nScenario: %v (%v sessions)\n%v\n", divider, current.name, len(current.requests), divider)

		for _, entry := range schedulers {
			schedule, err := entry.scheduler.OptimizeSchedule(context.Background(), current.requests, current.travel)
			if err != nil {
				log.Fatalf("%v failed on scenario %v: %v", entry.name, current.name, err)
			}

			if !model.VerifySchedule(schedule, current.travel) {
				log.Fatalf("%v returned a conflicting schedule on scenario %v", entry.name, current.name)
			}

			printResult(entry.name, entry.scheduler, current.requests, schedule)
		}
	}
}

func newMILPBackend() (milp.MILPSolver, error) {
	var errs []error
	for _, construct := range []func() (milp.MILPSolver, error){
		milp.NewGLPKSolver,
		milp.NewCBCSolver,
		milp.NewSCIPSolver,
	} {
		solver, err := construct()
		if err == nil {
			return solver, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func printResult(name string, scheduler model.Scheduler, requests []model.SessionRequest, schedule *model.Schedule) {
	statistics := model.GetStatistics(requests, schedule)

	fmt.Printf("\n[%v] scheduled %v/%v sessions (must-attend %v/%v, optional %v/%v)\n",
		name,
		statistics.ScheduledSessions, statistics.TotalSessions,
		statistics.MustAttend.Scheduled, statistics.MustAttend.Total,
		statistics.Optional.Scheduled, statistics.Optional.Total,
	)

	if search, ok := scheduler.(model.SearchScheduler); ok {
		metrics := search.Metrics()
		fmt.Printf("  nodes explored: %v, branches pruned: %v\n", metrics.NodesExplored, metrics.BranchesPruned)
	}

	entries := schedule.Entries()
	slices.SortFunc(entries, func(a, b model.Entry) int {
		return a.Slot.Start.Compare(b.Slot.Start)
	})

	for _, entry := range entries {
		marker := "o"
		if entry.Request.Priority == model.MustAttend {
			marker = "*"
		}
		fmt.Printf("  %v %v | %v - %v | %v (%v)\n",
			marker,
			entry.Request.Session.Title,
			entry.Slot.Start.Format("15:04"),
			entry.Slot.End.Format("15:04"),
			entry.Slot.Location.Name,
			entry.Slot.Location.Building,
		)
	}
}
