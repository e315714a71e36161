package temporal

import (
	"github.com/radhian/credit-timeline/entity"
)

// BucketInput is the merged raw material of one (bureau, report date) pair
// before any metric is computed.
type BucketInput struct {
	Bureau      entity.Bureau
	ReportDate  string
	ReportIDs   []string
	Scores      []entity.ScoreEntry
	Liabilities []entity.LiabilityEntry
	Inquiries   []entity.InquiryEntry
}

type bucketKey struct {
	bureau entity.Bureau
	date   string
}

// MergeEntries concatenates entries sharing a (bureau, report date) key in
// input order. The CRM can split one report across several records.
func MergeEntries(entries []entity.NormalizedReportEntry) map[entity.Bureau]map[string]*BucketInput {
	inputs := make(map[bucketKey]*BucketInput)
	grouped := make(map[entity.Bureau]map[string]*BucketInput)

	for _, e := range entries {
		key := bucketKey{bureau: e.Bureau, date: e.ReportDate}
		in, found := inputs[key]
		if !found {
			in = &BucketInput{Bureau: e.Bureau, ReportDate: e.ReportDate}
			inputs[key] = in
			if grouped[e.Bureau] == nil {
				grouped[e.Bureau] = make(map[string]*BucketInput)
			}
			grouped[e.Bureau][e.ReportDate] = in
		}

		if e.ReportID.Valid && !containsString(in.ReportIDs, e.ReportID.Value) {
			in.ReportIDs = append(in.ReportIDs, e.ReportID.Value)
		}
		in.Scores = append(in.Scores, e.Scores...)
		in.Liabilities = append(in.Liabilities, e.Liabilities...)
		in.Inquiries = append(in.Inquiries, e.Inquiries...)
	}

	return grouped
}

// Group merges entries by (bureau, report date) and aggregates every merged
// bucket. Only pairs present in the input produce a bucket.
func Group(entries []entity.NormalizedReportEntry) map[entity.Bureau]map[string]entity.AggregateBucket {
	merged := MergeEntries(entries)

	out := make(map[entity.Bureau]map[string]entity.AggregateBucket, len(merged))
	for bureau, byDate := range merged {
		buckets := make(map[string]entity.AggregateBucket, len(byDate))
		for date, in := range byDate {
			buckets[date] = Aggregate(*in)
		}
		out[bureau] = buckets
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
