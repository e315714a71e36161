package dao

import (
	"fmt"

	"github.com/radhian/credit-timeline/infra/db/model"
)

// CreateCreditRecords stores a whole import batch in one transaction.
func (d *dao) CreateCreditRecords(payloadList []model.CreditRecord) error {
	tx := d.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	for i := range payloadList {
		if err := tx.Create(&payloadList[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save credit record: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit credit records: %w", err)
	}
	return nil
}

// GetCreditRecordsByCustomerID returns records in insertion order, which keeps
// report merging deterministic.
func (d *dao) GetCreditRecordsByCustomerID(customerID string) ([]model.CreditRecord, error) {
	var records []model.CreditRecord
	if err := d.db.
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch credit records: %w", err)
	}
	return records, nil
}

func (d *dao) ListCustomerIDs() ([]string, error) {
	var ids []string
	if err := d.db.
		Model(&model.CreditRecord{}).
		Order("customer_id ASC").
		Pluck("DISTINCT customer_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return ids, nil
}
