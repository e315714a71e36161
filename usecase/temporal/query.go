package temporal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/radhian/credit-timeline/entity"
)

// Report is the read-only result of one build. All query methods are safe for
// concurrent use.
type Report struct {
	timelines    Timelines
	bureaus      []entity.Bureau
	recordCount  int
	entryCount   int
	skippedCount int
	issues       []Issue
}

func NewReport(timelines Timelines) *Report {
	if timelines == nil {
		timelines = Timelines{}
	}
	return &Report{
		timelines: timelines,
		bureaus:   timelines.SortedBureaus(),
	}
}

func (r *Report) Bureaus() []entity.Bureau {
	out := make([]entity.Bureau, len(r.bureaus))
	copy(out, r.bureaus)
	return out
}

func (r *Report) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Timeline returns the bureau's timeline; the caller must not modify it.
func (r *Report) Timeline(bureau string) (*entity.BureauTimeline, entity.Status, error) {
	b, err := queryBureau(bureau)
	if err != nil {
		return nil, "", err
	}
	tl, ok := r.timelines[b]
	if !ok {
		return nil, entity.StatusBureauNotFound, nil
	}
	return tl, entity.StatusOK, nil
}

// UtilizationTrend needs at least two dates with a defined utilization.
// Points are returned even when the status is insufficient_data.
func (r *Report) UtilizationTrend(bureau string) (entity.UtilizationTrend, error) {
	tl, res, err := r.lookup(bureau)
	if err != nil {
		return entity.UtilizationTrend{}, err
	}
	out := entity.UtilizationTrend{Bureau: res.bureau, Status: res.status}
	if tl == nil {
		return out, nil
	}

	out.Points = UtilizationSeries(tl)
	defined := 0
	for _, p := range out.Points {
		if p.Utilization != nil {
			defined++
		}
	}
	out.Status = trendStatus(defined)
	return out, nil
}

// LatePaymentTrend only counts dates with at least one account as usable; a
// report without liabilities says nothing about late payments.
func (r *Report) LatePaymentTrend(bureau string) (entity.LatePaymentTrend, error) {
	tl, res, err := r.lookup(bureau)
	if err != nil {
		return entity.LatePaymentTrend{}, err
	}
	out := entity.LatePaymentTrend{Bureau: res.bureau, Status: res.status}
	if tl == nil {
		return out, nil
	}

	out.Points = LatePaymentSeries(tl)
	withAccounts := 0
	for _, p := range out.Points {
		if p.AccountCount > 0 {
			withAccounts++
		}
	}
	out.Status = trendStatus(withAccounts)
	return out, nil
}

func (r *Report) ScoreProgression(bureau string) (entity.ScoreProgression, error) {
	tl, res, err := r.lookup(bureau)
	if err != nil {
		return entity.ScoreProgression{}, err
	}
	out := entity.ScoreProgression{Bureau: res.bureau, Status: res.status}
	if tl == nil {
		return out, nil
	}

	out.Points = ScoreSeries(tl)
	scored := 0
	for _, p := range out.Points {
		if p.AverageScore != nil {
			scored++
		}
	}
	out.Status = trendStatus(scored)
	return out, nil
}

// CompareBureausAtDate lists one slot per known bureau plus any other bureau
// present in the report. Slots without a report on date are marked
// bureau_not_found (no reports at all) or insufficient_data.
func (r *Report) CompareBureausAtDate(date string) (entity.DateSnapshot, error) {
	if strings.TrimSpace(date) == "" {
		return entity.DateSnapshot{}, fmt.Errorf("%w: date is required", ErrInvalidQuery)
	}

	out := entity.DateSnapshot{Date: date, Status: entity.StatusInsufficientData}
	for _, bureau := range r.snapshotSlots() {
		slot := entity.BureauSnapshot{Bureau: bureau, Status: entity.StatusBureauNotFound}

		tl, ok := r.timelines[bureau]
		if ok {
			slot.Status = entity.StatusInsufficientData
			if b, found := tl.Bucket(date); found {
				slot = snapshotOf(b)
				out.Status = entity.StatusOK
			}
		}
		out.Bureaus = append(out.Bureaus, slot)
	}
	return out, nil
}

func (r *Report) OldestVsNewest(bureau string, metric entity.Metric) (entity.ComparisonResult, error) {
	return CompareOldestNewest(r.timelines, bureau, metric)
}

func (r *Report) Compare(bureau, dateA, dateB string, metric entity.Metric) (entity.ComparisonResult, error) {
	return Compare(r.timelines, bureau, dateA, dateB, metric)
}

type lookupResult struct {
	bureau entity.Bureau
	status entity.Status
}

func (r *Report) lookup(bureau string) (*entity.BureauTimeline, lookupResult, error) {
	b, err := queryBureau(bureau)
	if err != nil {
		return nil, lookupResult{}, err
	}
	tl, ok := r.timelines[b]
	if !ok {
		return nil, lookupResult{bureau: b, status: entity.StatusBureauNotFound}, nil
	}
	return tl, lookupResult{bureau: b, status: entity.StatusOK}, nil
}

func (r *Report) snapshotSlots() []entity.Bureau {
	slots := append([]entity.Bureau{}, entity.KnownBureaus...)
	var others []entity.Bureau
	for _, b := range r.bureaus {
		if !b.IsKnown() {
			others = append(others, b)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i] < others[j] })
	return append(slots, others...)
}

func snapshotOf(b entity.AggregateBucket) entity.BureauSnapshot {
	s := entity.BureauSnapshot{
		Bureau:       b.Bureau,
		Status:       entity.StatusOK,
		ReportIDs:    b.ReportIDs,
		TotalLimit:   b.TotalLimit,
		TotalBalance: b.TotalBalance,
		Late30:       b.Late30,
		Late60:       b.Late60,
		Late90:       b.Late90,
		AccountCount: b.AccountCount,
		InquiryCount: b.InquiryCount,
	}
	if u, ok := Utilization(b); ok {
		s.Utilization = floatPtr(u)
	}
	if avg, ok := AverageScore(b); ok {
		s.AverageScore = floatPtr(avg)
	}
	return s
}

func trendStatus(usablePoints int) entity.Status {
	if usablePoints < 2 {
		return entity.StatusInsufficientData
	}
	return entity.StatusOK
}
