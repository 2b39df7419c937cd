package schema

import (
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Report records the outcome for every candidate in one batch. It is kept
// apart from the catalog, which only lists the working models.
type Report struct {
	Run         string        `json:"run"`
	Surface     Surface       `json:"surface"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	Results     []ReportEntry `json:"results"`
	Working     int           `json:"working"`
	Failed      int           `json:"failed"`
	Errored     int           `json:"errored"`
}

// ReportEntry is the outcome for one candidate
type ReportEntry struct {
	ID      string      `json:"id"`
	Outcome OutcomeKind `json:"outcome"`
	Reason  string      `json:"reason,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewReport summarises a batch of results, in order
func NewReport(run string, surface Surface, started time.Time, results []ProbeResult) *Report {
	report := &Report{
		Run:         run,
		Surface:     surface,
		StartedAt:   started.UTC(),
		CompletedAt: time.Now().UTC(),
		Results:     make([]ReportEntry, 0, len(results)),
	}
	for _, result := range results {
		report.Results = append(report.Results, ReportEntry{
			ID:      result.Descriptor.ID,
			Outcome: result.Outcome.Kind,
			Reason:  result.Outcome.Detail(),
		})
		switch result.Outcome.Kind {
		case Working:
			report.Working++
		case Failed:
			report.Failed++
		case Errored:
			report.Errored++
		}
	}
	return report
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Report) String() string {
	return Stringify(r)
}
