package creditreport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/entity"
	"github.com/radhian/credit-timeline/usecase/temporal"
)

// BuildReport loads a customer's mirrored records and builds their timelines.
// Stored payloads that no longer decode are skipped.
func (u *creditReportUsecase) BuildReport(ctx context.Context, customerID string) (*temporal.Report, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", temporal.ErrInvalidQuery)
	}

	rows, err := u.dao.GetCreditRecordsByCustomerID(customerID)
	if err != nil {
		log.Errorf("[CreditReport] Could not fetch records for customer %s: %v", customerID, err)
		return nil, err
	}

	records := make([]entity.RawRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		var rec entity.RawRecord
		if err := json.Unmarshal([]byte(row.Payload), &rec); err != nil {
			log.Warnf("[CreditReport] Skipping record %d of customer %s: %v", row.ID, customerID, err)
			skipped++
			continue
		}
		records = append(records, rec)
	}

	log.Infof("[CreditReport] Building report for customer %s from %d records (skipped %d)", customerID, len(records), skipped)
	return temporal.BuildSharded(ctx, records, u.shardSize)
}

func (u *creditReportUsecase) Summarize(ctx context.Context, records []entity.RawRecord) (*temporal.Report, error) {
	return temporal.BuildSharded(ctx, records, u.shardSize)
}
