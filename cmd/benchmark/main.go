// The benchmark command compares the search strategies over generated
// scenarios of growing size and writes one CSV row per (size, strategy) run.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"sessionscheduler/internal/model"
	"sessionscheduler/internal/scenario"
)

const (
	outputPath  = "benchmark.csv"
	runsPerSize = 5
)

var sessionCounts = []int{5, 8, 10, 12, 14}

func main() {
	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"sessions", "seed", "strategy", "mustAttend", "total", "nodesExplored", "branchesPruned", "durationMicros"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write header: %v", err)
	}

	for _, sessionCount := range sessionCounts {
		for seed := uint64(1); seed <= runsPerSize; seed++ {
			requests, travelTimes := scenario.Random(sessionCount, seed)

			for _, entry := range []struct {
				name      string
				scheduler model.Scheduler
			}{
				{"greedy", model.NewGreedyScheduler()},
				{"backtracking", model.NewBacktrackingScheduler()},
				{"branch-and-bound", model.NewBranchAndBoundScheduler()},
			} {
				started := time.Now()
				schedule, err := entry.scheduler.OptimizeSchedule(context.Background(), requests, travelTimes)
				if err != nil {
					log.Fatalf("%v failed: %v", entry.name, err)
				}
				duration := time.Since(started)

				if !model.VerifySchedule(schedule, travelTimes) {
					log.Fatalf("%v returned a conflicting schedule (sessions=%v seed=%v)", entry.name, sessionCount, seed)
				}

				var metrics model.SearchMetrics
				if search, ok := entry.scheduler.(model.SearchScheduler); ok {
					metrics = search.Metrics()
				}

				counts := schedule.CountByPriority()
				record := []string{
					strconv.Itoa(sessionCount),
					strconv.FormatUint(seed, 10),
					entry.name,
					strconv.Itoa(counts[model.MustAttend]),
					strconv.Itoa(schedule.Len()),
					strconv.FormatUint(metrics.NodesExplored, 10),
					strconv.FormatUint(metrics.BranchesPruned, 10),
					strconv.FormatInt(duration.Microseconds(), 10),
				}
				if err := writer.Write(record); err != nil {
					log.Fatalf("cannot write record: %v", err)
				}
			}
		}
	}

	fmt.Printf("benchmark results written to %v\n", outputPath)
}
