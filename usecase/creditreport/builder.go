package creditreport

import (
	"context"

	"github.com/radhian/credit-timeline/entity"
	"github.com/radhian/credit-timeline/infra/db/dao"
	"github.com/radhian/credit-timeline/usecase/temporal"
)

type CreditReportUsecase interface {
	ImportRecords(customerID string, records []entity.RawRecord, operator string) (*entity.ImportResult, error)
	BuildReport(ctx context.Context, customerID string) (*temporal.Report, error)
	Summarize(ctx context.Context, records []entity.RawRecord) (*temporal.Report, error)
	ListCustomers() ([]string, error)
}

type creditReportUsecase struct {
	dao       dao.DaoMethod
	shardSize int
}

func NewCreditReportUsecase(d dao.DaoMethod, shardSize int) CreditReportUsecase {
	return &creditReportUsecase{dao: d, shardSize: shardSize}
}
