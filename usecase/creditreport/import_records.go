package creditreport

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/consts"
	"github.com/radhian/credit-timeline/entity"
	"github.com/radhian/credit-timeline/infra/db/model"
)

var ErrInvalidImport = errors.New("invalid import")

// ImportRecords mirrors raw CRM records for a customer under a fresh batch id.
func (u *creditReportUsecase) ImportRecords(customerID string, records []entity.RawRecord, operator string) (*entity.ImportResult, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidImport)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: at least one record is required", ErrInvalidImport)
	}
	if strings.TrimSpace(operator) == "" {
		operator = consts.DefaultOperator
	}

	batchID := uuid.NewString()
	timeNowUnix := time.Now().Unix()

	rows := make([]model.CreditRecord, 0, len(records))
	creditReports := 0
	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d cannot be encoded: %v", ErrInvalidImport, i, err)
		}
		if _, ok := rec[consts.FieldCreditResponse]; ok {
			creditReports++
		}
		rows = append(rows, model.CreditRecord{
			CustomerID: customerID,
			BatchID:    batchID,
			Payload:    string(payload),
			CreateTime: timeNowUnix,
			CreateBy:   operator,
		})
	}

	if err := u.dao.CreateCreditRecords(rows); err != nil {
		log.Errorf("[CreditImport] Failed to store batch %s for customer %s: %v", batchID, customerID, err)
		return nil, err
	}

	log.Infof("[CreditImport] Stored %d records (%d with credit reports) for customer %s, batch %s",
		len(rows), creditReports, customerID, batchID)

	return &entity.ImportResult{
		CustomerID:    customerID,
		BatchID:       batchID,
		Imported:      len(rows),
		CreditReports: creditReports,
	}, nil
}

func (u *creditReportUsecase) ListCustomers() ([]string, error) {
	return u.dao.ListCustomerIDs()
}
