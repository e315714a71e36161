package temporal

import (
	"testing"

	"github.com/radhian/credit-timeline/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimelineSortsDates(t *testing.T) {
	buckets := map[string]entity.AggregateBucket{
		"2025-08-18": {Bureau: entity.TransUnion, ReportDate: "2025-08-18"},
		"2024-01-05": {Bureau: entity.TransUnion, ReportDate: "2024-01-05"},
		"2025-04-10": {Bureau: entity.TransUnion, ReportDate: "2025-04-10"},
	}

	tl := BuildTimeline(entity.TransUnion, buckets)
	assert.Equal(t, entity.TransUnion, tl.Bureau)
	assert.Equal(t, []string{"2024-01-05", "2025-04-10", "2025-08-18"}, tl.SortedDates)
	assert.Len(t, tl.BucketsByDate, 3)
}

func TestBuildTimelineAcceptsSingleDate(t *testing.T) {
	tl := BuildTimeline(entity.Experian, map[string]entity.AggregateBucket{
		"2025-06-01": {Bureau: entity.Experian, ReportDate: "2025-06-01"},
	})
	assert.Equal(t, 1, tl.Len())
}

func TestSeriesShareSortedDates(t *testing.T) {
	timelines := BuildTimelines(Group(Normalize(sampleRecords())))
	tl := timelines[entity.TransUnion]
	require.NotNil(t, tl)

	scores := ScoreSeries(tl)
	utilPoints := UtilizationSeries(tl)
	lates := LatePaymentSeries(tl)
	require.Len(t, scores, 2)
	require.Len(t, utilPoints, 2)
	require.Len(t, lates, 2)

	for i, d := range tl.SortedDates {
		assert.Equal(t, d, scores[i].Date)
		assert.Equal(t, d, utilPoints[i].Date)
		assert.Equal(t, d, lates[i].Date)
	}

	assert.Equal(t, 580.0, *scores[0].AverageScore)
	assert.Equal(t, 620.0, *scores[1].AverageScore)
	assert.Equal(t, 50.0, *utilPoints[0].Utilization)
	assert.Equal(t, 25.0, *utilPoints[1].Utilization)
	assert.Equal(t, entity.LatePaymentPoint{Date: "2025-04-10", Late30: 2, Late60: 1, Total: 3, AccountCount: 1}, lates[0])
}

func TestUtilizationSeriesLeavesUndefinedNil(t *testing.T) {
	timelines := BuildTimelines(Group(Normalize(sampleRecords())))
	points := UtilizationSeries(timelines[entity.Experian])
	require.Len(t, points, 1)
	assert.Nil(t, points[0].Utilization)
	assert.Equal(t, 1, points[0].AccountCount)
}

func TestSortedBureaus(t *testing.T) {
	timelines := BuildTimelines(Group(Normalize(sampleRecords())))
	assert.Equal(t, []entity.Bureau{entity.Equifax, entity.Experian, entity.TransUnion}, timelines.SortedBureaus())
}
