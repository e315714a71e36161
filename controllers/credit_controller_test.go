package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/radhian/credit-timeline/entity"
	"github.com/radhian/credit-timeline/handler"
	usecase "github.com/radhian/credit-timeline/usecase/creditreport"
	"github.com/radhian/credit-timeline/usecase/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	records  map[string][]entity.RawRecord
	buildErr error
}

func (f *fakeUsecase) ImportRecords(customerID string, records []entity.RawRecord, operator string) (*entity.ImportResult, error) {
	if customerID == "" || len(records) == 0 {
		return nil, usecase.ErrInvalidImport
	}
	f.records[customerID] = append(f.records[customerID], records...)
	return &entity.ImportResult{CustomerID: customerID, BatchID: "batch-1", Imported: len(records)}, nil
}

func (f *fakeUsecase) BuildReport(ctx context.Context, customerID string) (*temporal.Report, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return temporal.Build(f.records[customerID]), nil
}

func (f *fakeUsecase) Summarize(ctx context.Context, records []entity.RawRecord) (*temporal.Report, error) {
	return temporal.Build(records), nil
}

func (f *fakeUsecase) ListCustomers() ([]string, error) {
	var ids []string
	for id := range f.records {
		ids = append(ids, id)
	}
	return ids, nil
}

const transUnionRecords = `{"records": [
	{"CREDIT_RESPONSE": {"CREDIT_BUREAU": "TransUnion", "CreditReportFirstIssuedDate": "2025-04-10",
		"CREDIT_SCORE": [{"Value": "580", "ModelNameType": "FICO"}],
		"CREDIT_LIABILITY": [{"CreditLimitAmount": "1000", "CreditBalance": "500", "LateCount": {"Days30": "1"}}]}},
	{"CREDIT_RESPONSE": {"CREDIT_BUREAU": "TransUnion", "CreditReportFirstIssuedDate": "2025-08-18",
		"CREDIT_SCORE": [{"Value": "620", "ModelNameType": "FICO"}],
		"CREDIT_LIABILITY": [{"CreditLimitAmount": "1000", "CreditBalance": "250"}]}}
]}`

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(uc usecase.CreditReportUsecase) *mux.Router {
	r := mux.NewRouter()
	RegisterCreditRoutes(r, handler.NewCreditHandler(uc))
	return r
}

func do(t *testing.T, router http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec.Code, env
}

func TestCreditSummaryEndpoint(t *testing.T) {
	router := newRouter(&fakeUsecase{records: map[string][]entity.RawRecord{}})

	code, env := do(t, router, http.MethodPost, "/credit_summary", transUnionRecords)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	var summary entity.Summary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	require.Len(t, summary.Bureaus, 1)
	assert.Equal(t, entity.TransUnion, summary.Bureaus[0].Bureau)

	code, env = do(t, router, http.MethodPost, "/credit_summary", "{nope")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
}

func TestImportAndQueryEndpoints(t *testing.T) {
	router := newRouter(&fakeUsecase{records: map[string][]entity.RawRecord{}})

	code, env := do(t, router, http.MethodPost, "/customers/C-7/records", transUnionRecords)
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = do(t, router, http.MethodGet, "/customers/C-7/oldest_vs_newest?bureau=TransUnion&metric=score", "")
	require.Equal(t, http.StatusOK, code)
	var cmp entity.ComparisonResult
	require.NoError(t, json.Unmarshal(env.Data, &cmp))
	assert.Equal(t, entity.DirectionIncreased, cmp.Direction)
	assert.Equal(t, 40.0, *cmp.Delta)

	code, env = do(t, router, http.MethodGet, "/customers/C-7/utilization_trend?bureau=TransUnion", "")
	require.Equal(t, http.StatusOK, code)
	var trend entity.UtilizationTrend
	require.NoError(t, json.Unmarshal(env.Data, &trend))
	assert.Equal(t, entity.StatusOK, trend.Status)
	assert.Equal(t, 50.0, *trend.Points[0].Utilization)
	assert.Equal(t, 25.0, *trend.Points[1].Utilization)

	code, env = do(t, router, http.MethodGet, "/customers/C-7/late_payment_trend?bureau=Equifax", "")
	require.Equal(t, http.StatusOK, code)
	var late entity.LatePaymentTrend
	require.NoError(t, json.Unmarshal(env.Data, &late))
	assert.Equal(t, entity.StatusBureauNotFound, late.Status)

	code, env = do(t, router, http.MethodGet, "/customers/C-7/snapshot?date=2099-01-01", "")
	require.Equal(t, http.StatusOK, code)
	var snap entity.DateSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, entity.StatusInsufficientData, snap.Status)
	assert.Len(t, snap.Bureaus, 3)

	code, env = do(t, router, http.MethodGet, "/customers/C-7/compare?bureau=TransUnion&date_a=2025-04-10&date_b=2025-08-18&metric=late_payment", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &cmp))
	assert.Equal(t, entity.DirectionDecreased, cmp.Direction)

	code, env = do(t, router, http.MethodGet, "/customers/C-7/score_progression?bureau=TransUnion", "")
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, router, http.MethodGet, "/customers/C-7/bureaus", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["TransUnion"]`, string(env.Data))

	code, env = do(t, router, http.MethodGet, "/customers", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["C-7"]`, string(env.Data))
}

func TestQueryEndpointsRejectInvalidQueries(t *testing.T) {
	router := newRouter(&fakeUsecase{records: map[string][]entity.RawRecord{}})

	code, env := do(t, router, http.MethodGet, "/customers/C-1/utilization_trend", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "invalid query")

	code, _ = do(t, router, http.MethodGet, "/customers/C-1/oldest_vs_newest?bureau=Equifax&metric=balance", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodGet, "/customers/C-1/snapshot", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodPost, "/customers/C-1/records", `{"records": []}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestQueryEndpointStorageFailure(t *testing.T) {
	router := newRouter(&fakeUsecase{buildErr: errors.New("db down")})

	code, env := do(t, router, http.MethodGet, "/customers/C-1/summary", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to build credit report", env.Message)
}
