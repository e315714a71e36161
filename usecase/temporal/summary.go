package temporal

import (
	"github.com/radhian/credit-timeline/entity"
)

// Summary gathers every trend and oldest-vs-newest comparison per bureau. It
// is what callers serialize into a prompt.
func (r *Report) Summary() entity.Summary {
	out := entity.Summary{
		RecordCount:  r.recordCount,
		EntryCount:   r.entryCount,
		SkippedCount: r.skippedCount,
		Bureaus:      make([]entity.BureauSummary, 0, len(r.bureaus)),
	}

	for _, b := range r.bureaus {
		tl := r.timelines[b]
		bs := entity.BureauSummary{
			Bureau:      b,
			ReportDates: append([]string{}, tl.SortedDates...),
		}

		// Bureaus come from the report itself, so lookups cannot fail.
		bs.Utilization, _ = r.UtilizationTrend(string(b))
		bs.LatePayments, _ = r.LatePaymentTrend(string(b))
		bs.Scores, _ = r.ScoreProgression(string(b))
		for _, m := range entity.Metrics {
			cmp, _ := r.OldestVsNewest(string(b), m)
			bs.OldestNewest = append(bs.OldestNewest, cmp)
		}

		out.Bureaus = append(out.Bureaus, bs)
	}
	return out
}
