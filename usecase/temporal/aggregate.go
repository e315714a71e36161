package temporal

import (
	"sort"

	"github.com/radhian/credit-timeline/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate computes the totals of one bucket. A liability feeds the
// utilization totals only when both its limit and balance are present, but it
// is always counted as an account. Missing late counts were already read as 0.
func Aggregate(in BucketInput) entity.AggregateBucket {
	b := entity.AggregateBucket{
		Bureau:       in.Bureau,
		ReportDate:   in.ReportDate,
		ReportIDs:    in.ReportIDs,
		TotalLimit:   decimal.Zero,
		TotalBalance: decimal.Zero,
		InquiryCount: len(in.Inquiries),
		Scores:       in.Scores,
		Liabilities:  in.Liabilities,
		Inquiries:    in.Inquiries,
	}
	if b.ReportIDs == nil {
		b.ReportIDs = []string{}
	}

	for _, l := range in.Liabilities {
		b.AccountCount++
		b.Late30 += l.Late30
		b.Late60 += l.Late60
		b.Late90 += l.Late90

		if l.CreditLimit.Valid && l.Balance.Valid {
			b.TotalLimit = b.TotalLimit.Add(l.CreditLimit.Value)
			b.TotalBalance = b.TotalBalance.Add(l.Balance.Value)
			b.LimitAccountCount++
		}
	}

	return b
}

// Utilization is total balance over total limit as a percentage. It is
// undefined unless the total limit is positive.
func Utilization(b entity.AggregateBucket) (float64, bool) {
	if !b.TotalLimit.IsPositive() {
		return 0, false
	}
	return b.TotalBalance.Div(b.TotalLimit).Mul(hundred).InexactFloat64(), true
}

// AverageScore averages the scores that have a value; absent values are left
// out of both sum and count. Sums are kept in float64 so large values cannot
// wrap.
func AverageScore(b entity.AggregateBucket) (float64, bool) {
	values := presentScores(b.Scores)
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

func MedianScore(b entity.AggregateBucket) (float64, bool) {
	values := presentScores(b.Scores)
	if len(values) == 0 {
		return 0, false
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], true
	}
	return values[mid-1]/2 + values[mid]/2, true
}

// ModelAverages averages present scores per scoring model, ordered by model
// name. Models whose scores are all absent are omitted.
func ModelAverages(b entity.AggregateBucket) []entity.ModelAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range b.Scores {
		if !s.Value.Valid {
			continue
		}
		sums[s.Model] += float64(s.Value.Value)
		counts[s.Model]++
	}

	models := make([]string, 0, len(counts))
	for m := range counts {
		models = append(models, m)
	}
	sort.Strings(models)

	out := make([]entity.ModelAverage, 0, len(models))
	for _, m := range models {
		out = append(out, entity.ModelAverage{
			Model:   m,
			Average: sums[m] / float64(counts[m]),
			Count:   counts[m],
		})
	}
	return out
}

func ScoreCount(b entity.AggregateBucket) int {
	return len(presentScores(b.Scores))
}

func presentScores(scores []entity.ScoreEntry) []float64 {
	values := make([]float64, 0, len(scores))
	for _, s := range scores {
		if s.Value.Valid {
			values = append(values, float64(s.Value.Value))
		}
	}
	return values
}
