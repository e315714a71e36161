package entity

import (
	"github.com/shopspring/decimal"
)

// Status tells callers whether a query could be answered.
type Status string

const (
	StatusOK               Status = "ok"
	StatusInsufficientData Status = "insufficient_data"
	StatusBureauNotFound   Status = "bureau_not_found"
)

type Metric string

const (
	MetricUtilization Metric = "utilization"
	MetricLatePayment Metric = "late_payment"
	MetricScore       Metric = "score"
)

var Metrics = []Metric{MetricUtilization, MetricLatePayment, MetricScore}

func ParseMetric(s string) (Metric, bool) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

type Direction string

const (
	DirectionIncreased        Direction = "increased"
	DirectionDecreased        Direction = "decreased"
	DirectionUnchanged        Direction = "unchanged"
	DirectionInsufficientData Direction = "insufficient_data"
)

type ComparisonResult struct {
	Bureau    Bureau    `json:"bureau"`
	Status    Status    `json:"status"`
	Metric    Metric    `json:"metric"`
	DateA     string    `json:"date_a"`
	DateB     string    `json:"date_b"`
	ValueA    *float64  `json:"value_a"`
	ValueB    *float64  `json:"value_b"`
	Delta     *float64  `json:"delta"`
	Direction Direction `json:"direction"`
}

type UtilizationPoint struct {
	Date         string          `json:"date"`
	Utilization  *float64        `json:"utilization"`
	TotalLimit   decimal.Decimal `json:"total_limit"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	AccountCount int             `json:"account_count"`
}

type LatePaymentPoint struct {
	Date         string `json:"date"`
	Late30       int64  `json:"late_30"`
	Late60       int64  `json:"late_60"`
	Late90       int64  `json:"late_90"`
	Total        int64  `json:"total"`
	AccountCount int    `json:"account_count"`
}

type ModelAverage struct {
	Model   string  `json:"model"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type ScorePoint struct {
	Date          string         `json:"date"`
	AverageScore  *float64       `json:"average_score"`
	MedianScore   *float64       `json:"median_score"`
	ScoreCount    int            `json:"score_count"`
	ModelAverages []ModelAverage `json:"model_averages"`
}

type UtilizationTrend struct {
	Bureau Bureau             `json:"bureau"`
	Status Status             `json:"status"`
	Points []UtilizationPoint `json:"points"`
}

type LatePaymentTrend struct {
	Bureau Bureau             `json:"bureau"`
	Status Status             `json:"status"`
	Points []LatePaymentPoint `json:"points"`
}

type ScoreProgression struct {
	Bureau Bureau       `json:"bureau"`
	Status Status       `json:"status"`
	Points []ScorePoint `json:"points"`
}

// BureauSnapshot is one bureau's slot in a cross-bureau view of a single date.
// Metric fields are only set when Status is ok.
type BureauSnapshot struct {
	Bureau       Bureau          `json:"bureau"`
	Status       Status          `json:"status"`
	ReportIDs    []string        `json:"report_ids,omitempty"`
	Utilization  *float64        `json:"utilization"`
	TotalLimit   decimal.Decimal `json:"total_limit"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	Late30       int64           `json:"late_30"`
	Late60       int64           `json:"late_60"`
	Late90       int64           `json:"late_90"`
	AverageScore *float64        `json:"average_score"`
	AccountCount int             `json:"account_count"`
	InquiryCount int             `json:"inquiry_count"`
}

type DateSnapshot struct {
	Date    string           `json:"date"`
	Status  Status           `json:"status"`
	Bureaus []BureauSnapshot `json:"bureaus"`
}

type BureauSummary struct {
	Bureau       Bureau             `json:"bureau"`
	ReportDates  []string           `json:"report_dates"`
	Utilization  UtilizationTrend   `json:"utilization_trend"`
	LatePayments LatePaymentTrend   `json:"late_payment_trend"`
	Scores       ScoreProgression   `json:"score_progression"`
	OldestNewest []ComparisonResult `json:"oldest_vs_newest"`
}

// Summary is the full serialized view handed to the response generator.
type Summary struct {
	RecordCount  int             `json:"record_count"`
	EntryCount   int             `json:"entry_count"`
	SkippedCount int             `json:"skipped_count"`
	Bureaus      []BureauSummary `json:"bureaus"`
}

type ImportResult struct {
	CustomerID    string `json:"customer_id"`
	BatchID       string `json:"batch_id"`
	Imported      int    `json:"imported"`
	CreditReports int    `json:"credit_reports"`
}

type RecordsRequest struct {
	Records  []RawRecord `json:"records"`
	Operator string      `json:"operator,omitempty"`
}
