package temporal

import (
	"encoding/json"
	"fmt"

	"github.com/radhian/credit-timeline/consts"
	"github.com/radhian/credit-timeline/entity"
	"github.com/radhian/credit-timeline/utils"
)

type IssueKind string

const (
	// IssueMalformedInput marks a sub-entry whose shape could not be read.
	IssueMalformedInput IssueKind = "malformed_input"
	// IssueMissingKey marks a report dropped for lacking bureau or date.
	IssueMissingKey IssueKind = "missing_key"
)

// Issue describes a data-quality gap found while normalizing. Issues are
// diagnostics only; they never stop a build.
type Issue struct {
	Kind        IssueKind `json:"kind"`
	RecordIndex int       `json:"record_index"`
	Field       string    `json:"field"`
	Reason      string    `json:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: record %d field %s: %s", i.Kind, i.RecordIndex, i.Field, i.Reason)
}

// Normalize extracts one entry per embedded credit report. Reports without a
// bureau or report date are dropped.
func Normalize(records []entity.RawRecord) []entity.NormalizedReportEntry {
	entries, _ := NormalizeWithIssues(records)
	return entries
}

func NormalizeWithIssues(records []entity.RawRecord) ([]entity.NormalizedReportEntry, []Issue) {
	return normalizeRange(records, 0, len(records))
}

// normalizeRange works on records[start:end] while keeping RecordIndex
// relative to the full slice, so shards produce the same entries as a
// sequential pass.
func normalizeRange(records []entity.RawRecord, start, end int) ([]entity.NormalizedReportEntry, []Issue) {
	var entries []entity.NormalizedReportEntry
	var issues []Issue

	for i := start; i < end; i++ {
		recEntries, recIssues := normalizeRecord(i, records[i])
		entries = append(entries, recEntries...)
		issues = append(issues, recIssues...)
	}
	return entries, issues
}

func normalizeRecord(index int, record entity.RawRecord) ([]entity.NormalizedReportEntry, []Issue) {
	raw, ok := record[consts.FieldCreditResponse]
	if !ok || utils.IsNull(raw) {
		return nil, nil
	}

	reports, issues := reportObjects(index, raw)

	var entries []entity.NormalizedReportEntry
	for _, report := range reports {
		entry, ok, reportIssues := normalizeReport(index, report)
		issues = append(issues, reportIssues...)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, issues
}

// reportObjects accepts CREDIT_RESPONSE as an object, a list of objects, or a
// JSON string holding either.
func reportObjects(index int, raw interface{}) ([]map[string]interface{}, []Issue) {
	if s, ok := raw.(string); ok {
		var decoded interface{}
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, []Issue{malformed(index, consts.FieldCreditResponse, "string payload is not JSON")}
		}
		if _, isString := decoded.(string); isString {
			return nil, []Issue{malformed(index, consts.FieldCreditResponse, "string payload is not an object")}
		}
		raw = decoded
	}

	return objectList(index, consts.FieldCreditResponse, raw)
}

// objectList reads a field that should be a list of objects. A single object
// counts as a one-element list; anything else that is not a list is reported
// and yields nothing.
func objectList(index int, field string, raw interface{}) ([]map[string]interface{}, []Issue) {
	if utils.IsNull(raw) {
		return nil, nil
	}

	if obj, ok := asObject(raw); ok {
		return []map[string]interface{}{obj}, nil
	}

	switch v := raw.(type) {
	case []map[string]interface{}:
		return v, nil
	case []interface{}:
		objects := make([]map[string]interface{}, 0, len(v))
		var issues []Issue
		for pos, item := range v {
			obj, ok := asObject(item)
			if !ok {
				issues = append(issues, malformed(index, fmt.Sprintf("%s[%d]", field, pos), "element is not an object"))
				continue
			}
			objects = append(objects, obj)
		}
		return objects, issues
	}
	return nil, []Issue{malformed(index, field, fmt.Sprintf("expected list, got %T", raw))}
}

func normalizeReport(index int, report map[string]interface{}) (entity.NormalizedReportEntry, bool, []Issue) {
	var entry entity.NormalizedReportEntry

	bureauName := utils.ParseOptionalString(report[consts.FieldCreditBureau])
	bureau, ok := entity.ResolveBureau(bureauName.Value)
	if !bureauName.Valid || !ok {
		return entry, false, []Issue{missing(index, consts.FieldCreditBureau)}
	}

	date, ok := reportDate(report[consts.FieldReportDate])
	if !ok {
		return entry, false, []Issue{missing(index, consts.FieldReportDate)}
	}

	entry = entity.NormalizedReportEntry{
		Bureau:      bureau,
		ReportDate:  date,
		ReportID:    utils.ParseOptionalString(report[consts.FieldReportID]),
		RecordIndex: index,
	}

	var issues []Issue

	scores, scoreIssues := objectList(index, consts.FieldCreditScore, report[consts.FieldCreditScore])
	issues = append(issues, scoreIssues...)
	for _, s := range scores {
		entry.Scores = append(entry.Scores, entity.ScoreEntry{
			Value:  utils.ParseOptionalInt(s[consts.FieldScoreValue]),
			Model:  utils.ParseOptionalString(s[consts.FieldScoreModel]).Value,
			Source: utils.ParseOptionalString(s[consts.FieldScoreSource]).Value,
		})
	}

	liabilities, liabIssues := objectList(index, consts.FieldCreditLiab, report[consts.FieldCreditLiab])
	issues = append(issues, liabIssues...)
	for _, l := range liabilities {
		liability, lateIssues := normalizeLiability(index, l)
		issues = append(issues, lateIssues...)
		entry.Liabilities = append(entry.Liabilities, liability)
	}

	inquiries, inqIssues := objectList(index, consts.FieldCreditInquiry, report[consts.FieldCreditInquiry])
	issues = append(issues, inqIssues...)
	for _, q := range inquiries {
		entry.Inquiries = append(entry.Inquiries, entity.InquiryEntry{
			Date:   utils.ParseOptionalString(q[consts.FieldInquiryDate]),
			Name:   utils.ParseOptionalString(q[consts.FieldInquiryName]),
			Source: utils.ParseOptionalString(q[consts.FieldInquirySource]),
		})
	}

	return entry, true, issues
}

func normalizeLiability(index int, raw map[string]interface{}) (entity.LiabilityEntry, []Issue) {
	liability := entity.LiabilityEntry{
		AccountType: utils.ParseOptionalString(raw[consts.FieldAccountType]),
		CreditLimit: utils.ParseOptionalDecimal(raw[consts.FieldCreditLimit]),
		Balance:     utils.ParseOptionalDecimal(raw[consts.FieldCreditBalance]),
	}

	lateRaw := raw[consts.FieldLateCount]
	if utils.IsNull(lateRaw) {
		return liability, nil
	}

	late, ok := asObject(lateRaw)
	if !ok {
		return liability, []Issue{malformed(index, consts.FieldLateCount, fmt.Sprintf("expected object, got %T", lateRaw))}
	}
	liability.Late30 = utils.IntOrZero(late[consts.FieldDays30])
	liability.Late60 = utils.IntOrZero(late[consts.FieldDays60])
	liability.Late90 = utils.IntOrZero(late[consts.FieldDays90])
	return liability, nil
}

func asObject(raw interface{}) (map[string]interface{}, bool) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return v, true
	case entity.RawRecord:
		return v, true
	}
	return nil, false
}

// reportDate returns the date string untouched; only its presence is checked.
func reportDate(raw interface{}) (string, bool) {
	s, ok := raw.(string)
	if !ok || utils.IsNull(s) {
		return "", false
	}
	return s, true
}

func malformed(index int, field, reason string) Issue {
	return Issue{Kind: IssueMalformedInput, RecordIndex: index, Field: field, Reason: reason}
}

func missing(index int, field string) Issue {
	return Issue{Kind: IssueMissingKey, RecordIndex: index, Field: field, Reason: "missing or None"}
}
