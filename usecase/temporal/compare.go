package temporal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/radhian/credit-timeline/entity"
)

// ErrInvalidQuery is returned only for caller mistakes such as a blank bureau
// or date. Missing data is reported through result statuses instead.
var ErrInvalidQuery = errors.New("invalid query")

// Compare measures metric on two report dates of one bureau. Direction uses
// exact equality on the computed values, with no tolerance band.
func Compare(timelines Timelines, bureau, dateA, dateB string, metric entity.Metric) (entity.ComparisonResult, error) {
	b, err := queryBureau(bureau)
	if err != nil {
		return entity.ComparisonResult{}, err
	}
	if err := validateMetric(metric); err != nil {
		return entity.ComparisonResult{}, err
	}
	if strings.TrimSpace(dateA) == "" || strings.TrimSpace(dateB) == "" {
		return entity.ComparisonResult{}, fmt.Errorf("%w: both dates are required", ErrInvalidQuery)
	}

	res := entity.ComparisonResult{
		Bureau:    b,
		Status:    entity.StatusInsufficientData,
		Metric:    metric,
		DateA:     dateA,
		DateB:     dateB,
		Direction: entity.DirectionInsufficientData,
	}

	tl, ok := timelines[b]
	if !ok {
		res.Status = entity.StatusBureauNotFound
		return res, nil
	}

	bucketA, okA := tl.Bucket(dateA)
	bucketB, okB := tl.Bucket(dateB)
	if !okA || !okB {
		return res, nil
	}

	valueA, okA := metricValue(bucketA, metric)
	valueB, okB := metricValue(bucketB, metric)
	if okA {
		res.ValueA = floatPtr(valueA)
	}
	if okB {
		res.ValueB = floatPtr(valueB)
	}
	if !okA || !okB {
		return res, nil
	}

	delta := valueB - valueA
	res.Delta = floatPtr(delta)
	res.Status = entity.StatusOK
	switch {
	case delta > 0:
		res.Direction = entity.DirectionIncreased
	case delta < 0:
		res.Direction = entity.DirectionDecreased
	default:
		res.Direction = entity.DirectionUnchanged
	}
	return res, nil
}

// CompareOldestNewest compares the first and last report dates of a bureau.
// A bureau with a single date yields insufficient data, never a zero delta.
func CompareOldestNewest(timelines Timelines, bureau string, metric entity.Metric) (entity.ComparisonResult, error) {
	b, err := queryBureau(bureau)
	if err != nil {
		return entity.ComparisonResult{}, err
	}
	if err := validateMetric(metric); err != nil {
		return entity.ComparisonResult{}, err
	}

	res := entity.ComparisonResult{
		Bureau:    b,
		Status:    entity.StatusInsufficientData,
		Metric:    metric,
		Direction: entity.DirectionInsufficientData,
	}

	tl, ok := timelines[b]
	if !ok {
		res.Status = entity.StatusBureauNotFound
		return res, nil
	}
	if tl.Len() < 2 {
		if tl.Len() == 1 {
			res.DateA = tl.SortedDates[0]
			res.DateB = tl.SortedDates[0]
		}
		return res, nil
	}

	return Compare(timelines, string(b), tl.SortedDates[0], tl.SortedDates[tl.Len()-1], metric)
}

// ByDate re-indexes every bucket by report date. Within a date buckets are
// ordered by bureau name.
func ByDate(timelines Timelines) map[string][]entity.AggregateBucket {
	out := make(map[string][]entity.AggregateBucket)
	for _, bureau := range timelines.SortedBureaus() {
		tl := timelines[bureau]
		for _, d := range tl.SortedDates {
			out[d] = append(out[d], tl.BucketsByDate[d])
		}
	}
	return out
}

func metricValue(b entity.AggregateBucket, metric entity.Metric) (float64, bool) {
	switch metric {
	case entity.MetricUtilization:
		return Utilization(b)
	case entity.MetricLatePayment:
		if b.AccountCount == 0 {
			return 0, false
		}
		return float64(b.LateTotal()), true
	case entity.MetricScore:
		return AverageScore(b)
	}
	return 0, false
}

func queryBureau(raw string) (entity.Bureau, error) {
	b, ok := entity.ResolveBureau(raw)
	if !ok {
		return "", fmt.Errorf("%w: bureau name is required", ErrInvalidQuery)
	}
	return b, nil
}

func validateMetric(metric entity.Metric) error {
	if _, ok := entity.ParseMetric(string(metric)); !ok {
		return fmt.Errorf("%w: unknown metric %q", ErrInvalidQuery, metric)
	}
	return nil
}
