package model

import "github.com/samber/lo"

// TierStatistics summarizes one priority tier of a schedule.
type TierStatistics struct {
	Total      int
	Scheduled  int
	Missed     int
	Percentage float64
}

// Statistics is the reporting shape consumed by external presentation code.
type Statistics struct {
	TotalSessions       int
	ScheduledSessions   int
	UnscheduledSessions int
	MustAttend          TierStatistics
	Optional            TierStatistics
}

// GetStatistics summarizes how much of the requested attendance the schedule
// achieves, overall and per priority tier.
func GetStatistics(requests []SessionRequest, schedule *Schedule) Statistics {
	counts := schedule.CountByPriority()
	totals := lo.CountValuesBy(requests, func(request SessionRequest) Priority {
		return request.Priority
	})

	return Statistics{
		TotalSessions:       len(requests),
		ScheduledSessions:   schedule.Len(),
		UnscheduledSessions: len(requests) - schedule.Len(),
		MustAttend:          tierStatistics(totals[MustAttend], counts[MustAttend]),
		Optional:            tierStatistics(totals[Optional], counts[Optional]),
	}
}

func tierStatistics(total, scheduled int) TierStatistics {
	statistics := TierStatistics{
		Total:     total,
		Scheduled: scheduled,
		Missed:    total - scheduled,
	}
	if total > 0 {
		statistics.Percentage = float64(scheduled) / float64(total) * 100
	}
	return statistics
}
