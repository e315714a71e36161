package dao

import (
	"github.com/radhian/credit-timeline/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	CreateCreditRecords(payloadList []model.CreditRecord) error
	GetCreditRecordsByCustomerID(customerID string) ([]model.CreditRecord, error)
	ListCustomerIDs() ([]string, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
