package entity

import (
	"sort"

	"github.com/radhian/credit-timeline/utils"
	"github.com/shopspring/decimal"
)

// RawRecord is one decoded CRM record. Its shape is not trusted.
type RawRecord map[string]interface{}

type ScoreEntry struct {
	Value  utils.OptionalInt `json:"value"`
	Model  string            `json:"model"`
	Source string            `json:"source"`
}

type LiabilityEntry struct {
	AccountType utils.OptionalString  `json:"account_type"`
	CreditLimit utils.OptionalDecimal `json:"credit_limit"`
	Balance     utils.OptionalDecimal `json:"balance"`
	Late30      int64                 `json:"late_30"`
	Late60      int64                 `json:"late_60"`
	Late90      int64                 `json:"late_90"`
}

type InquiryEntry struct {
	Date   utils.OptionalString `json:"date"`
	Name   utils.OptionalString `json:"name"`
	Source utils.OptionalString `json:"source"`
}

// NormalizedReportEntry is one embedded credit report pulled out of a record.
// ReportDate is kept exactly as the CRM sent it.
type NormalizedReportEntry struct {
	Bureau      Bureau               `json:"bureau"`
	ReportDate  string               `json:"report_date"`
	ReportID    utils.OptionalString `json:"report_id"`
	Scores      []ScoreEntry         `json:"scores"`
	Liabilities []LiabilityEntry     `json:"liabilities"`
	Inquiries   []InquiryEntry       `json:"inquiries"`
	RecordIndex int                  `json:"record_index"`
}

// AggregateBucket holds everything reported by one bureau on one report date.
type AggregateBucket struct {
	Bureau     Bureau   `json:"bureau"`
	ReportDate string   `json:"report_date"`
	ReportIDs  []string `json:"report_ids"`

	// AccountCount counts every liability, LimitAccountCount only the ones
	// that carried both a limit and a balance.
	AccountCount      int             `json:"account_count"`
	LimitAccountCount int             `json:"limit_account_count"`
	TotalLimit        decimal.Decimal `json:"total_limit"`
	TotalBalance      decimal.Decimal `json:"total_balance"`

	Late30 int64 `json:"late_30"`
	Late60 int64 `json:"late_60"`
	Late90 int64 `json:"late_90"`

	InquiryCount int              `json:"inquiry_count"`
	Scores       []ScoreEntry     `json:"scores"`
	Liabilities  []LiabilityEntry `json:"-"`
	Inquiries    []InquiryEntry   `json:"-"`
}

func (b AggregateBucket) LateTotal() int64 {
	return b.Late30 + b.Late60 + b.Late90
}

type BureauTimeline struct {
	Bureau        Bureau                     `json:"bureau"`
	BucketsByDate map[string]AggregateBucket `json:"buckets_by_date"`
	SortedDates   []string                   `json:"sorted_dates"`
}

func NewBureauTimeline(bureau Bureau) *BureauTimeline {
	return &BureauTimeline{
		Bureau:        bureau,
		BucketsByDate: make(map[string]AggregateBucket),
		SortedDates:   []string{},
	}
}

// Insert stores the bucket under its report date and re-derives SortedDates
// from the map keys.
func (t *BureauTimeline) Insert(b AggregateBucket) {
	t.BucketsByDate[b.ReportDate] = b

	dates := make([]string, 0, len(t.BucketsByDate))
	for d := range t.BucketsByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	t.SortedDates = dates
}

func (t *BureauTimeline) Bucket(date string) (AggregateBucket, bool) {
	b, ok := t.BucketsByDate[date]
	return b, ok
}

func (t *BureauTimeline) Len() int {
	return len(t.SortedDates)
}
