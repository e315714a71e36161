package temporal

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/entity"
	"golang.org/x/sync/errgroup"
)

// Build runs the whole pipeline over records in one pass.
func Build(records []entity.RawRecord) *Report {
	entries, issues := NormalizeWithIssues(records)
	return assemble(len(records), entries, issues)
}

// BuildSharded normalizes records in shards of shardSize concurrently. Shard
// outputs are joined in shard order, so the result equals Build(records).
func BuildSharded(ctx context.Context, records []entity.RawRecord, shardSize int) (*Report, error) {
	if shardSize <= 0 || len(records) <= shardSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Build(records), nil
	}

	shards := (len(records) + shardSize - 1) / shardSize
	entryParts := make([][]entity.NormalizedReportEntry, shards)
	issueParts := make([][]Issue, shards)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		i := i
		start := i * shardSize
		end := start + shardSize
		if end > len(records) {
			end = len(records)
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			entryParts[i], issueParts[i] = normalizeRange(records, start, end)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Errorf("[CreditTimeline] Sharded build aborted: %v", err)
		return nil, err
	}

	var entries []entity.NormalizedReportEntry
	var issues []Issue
	for i := 0; i < shards; i++ {
		entries = append(entries, entryParts[i]...)
		issues = append(issues, issueParts[i]...)
	}

	log.Debugf("[CreditTimeline] Normalized %d records in %d shards", len(records), shards)
	return assemble(len(records), entries, issues), nil
}

func assemble(recordCount int, entries []entity.NormalizedReportEntry, issues []Issue) *Report {
	timelines := BuildTimelines(Group(entries))

	skipped := 0
	for _, issue := range issues {
		if issue.Kind == IssueMissingKey {
			skipped++
		}
		log.Debugf("[CreditTimeline] %s", issue)
	}
	if len(issues) > 0 {
		log.Warnf("[CreditTimeline] %d data issues while normalizing, %d reports skipped", len(issues), skipped)
	}

	r := NewReport(timelines)
	r.recordCount = recordCount
	r.entryCount = len(entries)
	r.skippedCount = skipped
	r.issues = issues

	log.Infof("[CreditTimeline] Built %d bureau timelines from %d records (%d reports)", len(timelines), recordCount, len(entries))
	return r
}
