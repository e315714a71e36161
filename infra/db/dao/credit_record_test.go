package dao

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
	"github.com/radhian/credit-timeline/infra/db/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// every new connection to :memory: would see an empty database
	db.DB().SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.CreditRecord{}).Error)
	return db
}

func TestCreateAndFetchCreditRecords(t *testing.T) {
	d := NewDaoMethod(newTestDB(t))

	require.NoError(t, d.CreateCreditRecords([]model.CreditRecord{
		{CustomerID: "C-2", BatchID: "b1", Payload: `{"n":1}`, CreateTime: 1, CreateBy: "tester"},
		{CustomerID: "C-1", BatchID: "b1", Payload: `{"n":2}`, CreateTime: 1, CreateBy: "tester"},
		{CustomerID: "C-2", BatchID: "b2", Payload: `{"n":3}`, CreateTime: 2, CreateBy: "tester"},
	}))

	records, err := d.GetCreditRecordsByCustomerID("C-2")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `{"n":1}`, records[0].Payload)
	assert.Equal(t, `{"n":3}`, records[1].Payload)
	assert.Less(t, records[0].ID, records[1].ID)

	records, err = d.GetCreditRecordsByCustomerID("missing")
	require.NoError(t, err)
	assert.Empty(t, records)

	ids, err := d.ListCustomerIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"C-1", "C-2"}, ids)
}
