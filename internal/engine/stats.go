package engine

import (
	"context"
	"fmt"
	"time"
)

// Stats summarizes the stored posting pool at a point in time. Expiry
// is derived from each posting's validity end date against the given
// instant, never stored.
type Stats struct {
	TotalPostings   int            `json:"total_postings"`
	ActivePostings  int            `json:"active_postings"`
	ExpiredPostings int            `json:"expired_postings"`
	AverageSalary   float64        `json:"average_salary"`
	ByIndustry      map[string]int `json:"by_industry"`
	ByLocation      map[string]int `json:"by_location"`
	ByExperience    map[string]int `json:"by_experience"`
}

// PostingStats computes pool statistics as of the given instant.
func (e *Engine) PostingStats(ctx context.Context, now time.Time) (*Stats, error) {
	postings, err := e.postings.ListPostings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load postings for stats: %w", err)
	}

	stats := &Stats{
		TotalPostings: len(postings),
		ByIndustry:    make(map[string]int),
		ByLocation:    make(map[string]int),
		ByExperience:  make(map[string]int),
	}
	if len(postings) == 0 {
		return stats, nil
	}

	var salarySum float64
	for i := range postings {
		p := &postings[i]
		if p.IsExpired(now) {
			stats.ExpiredPostings++
		} else {
			stats.ActivePostings++
		}
		salarySum += p.Salary.Midpoint()
		stats.ByIndustry[p.Industry]++
		stats.ByLocation[p.WorkLocation]++
		stats.ByExperience[p.ExperienceLevel]++
	}
	stats.AverageSalary = salarySum / float64(len(postings))
	return stats, nil
}
