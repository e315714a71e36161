package temporal

import (
	"sort"

	"github.com/radhian/credit-timeline/entity"
)

// Timelines holds one timeline per bureau. It is read-only once built.
type Timelines map[entity.Bureau]*entity.BureauTimeline

// BuildTimeline orders a bureau's buckets by report date. ISO-8601 date
// strings sort chronologically, so plain string order is used. Timelines with
// a single date are valid here; trend queries decide whether they suffice.
func BuildTimeline(bureau entity.Bureau, buckets map[string]entity.AggregateBucket) *entity.BureauTimeline {
	tl := entity.NewBureauTimeline(bureau)

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		tl.Insert(buckets[d])
	}
	return tl
}

func BuildTimelines(grouped map[entity.Bureau]map[string]entity.AggregateBucket) Timelines {
	timelines := make(Timelines, len(grouped))
	for bureau, buckets := range grouped {
		timelines[bureau] = BuildTimeline(bureau, buckets)
	}
	return timelines
}

// SortedBureaus lists the bureaus of a timeline set in name order.
func (t Timelines) SortedBureaus() []entity.Bureau {
	bureaus := make([]entity.Bureau, 0, len(t))
	for b := range t {
		bureaus = append(bureaus, b)
	}
	sort.Slice(bureaus, func(i, j int) bool { return bureaus[i] < bureaus[j] })
	return bureaus
}

func ScoreSeries(tl *entity.BureauTimeline) []entity.ScorePoint {
	points := make([]entity.ScorePoint, 0, tl.Len())
	for _, d := range tl.SortedDates {
		b := tl.BucketsByDate[d]
		p := entity.ScorePoint{
			Date:          d,
			ScoreCount:    ScoreCount(b),
			ModelAverages: ModelAverages(b),
		}
		if avg, ok := AverageScore(b); ok {
			p.AverageScore = floatPtr(avg)
		}
		if med, ok := MedianScore(b); ok {
			p.MedianScore = floatPtr(med)
		}
		points = append(points, p)
	}
	return points
}

// UtilizationSeries leaves Utilization nil on dates where it is undefined.
func UtilizationSeries(tl *entity.BureauTimeline) []entity.UtilizationPoint {
	points := make([]entity.UtilizationPoint, 0, tl.Len())
	for _, d := range tl.SortedDates {
		b := tl.BucketsByDate[d]
		p := entity.UtilizationPoint{
			Date:         d,
			TotalLimit:   b.TotalLimit,
			TotalBalance: b.TotalBalance,
			AccountCount: b.AccountCount,
		}
		if u, ok := Utilization(b); ok {
			p.Utilization = floatPtr(u)
		}
		points = append(points, p)
	}
	return points
}

func LatePaymentSeries(tl *entity.BureauTimeline) []entity.LatePaymentPoint {
	points := make([]entity.LatePaymentPoint, 0, tl.Len())
	for _, d := range tl.SortedDates {
		b := tl.BucketsByDate[d]
		points = append(points, entity.LatePaymentPoint{
			Date:         d,
			Late30:       b.Late30,
			Late60:       b.Late60,
			Late90:       b.Late90,
			Total:        b.LateTotal(),
			AccountCount: b.AccountCount,
		})
	}
	return points
}

func floatPtr(v float64) *float64 {
	return &v
}
