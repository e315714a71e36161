package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/entity"
	"github.com/radhian/credit-timeline/usecase/temporal"
)

// withReport loads the customer's report and hands it to fn. fn returns the
// payload to send or an error from the query layer.
func (h *CreditHandler) withReport(w http.ResponseWriter, r *http.Request, fn func(*temporal.Report) (interface{}, error)) {
	customerID := mux.Vars(r)["customer_id"]

	report, err := h.Usecase.BuildReport(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, temporal.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("[CreditHandler] Building report for customer %s failed: %v", customerID, err)
		writeError(w, http.StatusInternalServerError, "Failed to build credit report")
		return
	}

	data, err := fn(report)
	if err != nil {
		if errors.Is(err, temporal.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("[CreditHandler] Query for customer %s failed: %v", customerID, err)
		writeError(w, http.StatusInternalServerError, "Failed to answer query")
		return
	}

	writeSuccess(w, data)
}

func (h *CreditHandler) Bureaus(w http.ResponseWriter, r *http.Request) {
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.Bureaus(), nil
	})
}

func (h *CreditHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.Summary(), nil
	})
}

func (h *CreditHandler) UtilizationTrend(w http.ResponseWriter, r *http.Request) {
	bureau := r.URL.Query().Get("bureau")
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.UtilizationTrend(bureau)
	})
}

func (h *CreditHandler) LatePaymentTrend(w http.ResponseWriter, r *http.Request) {
	bureau := r.URL.Query().Get("bureau")
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.LatePaymentTrend(bureau)
	})
}

func (h *CreditHandler) ScoreProgression(w http.ResponseWriter, r *http.Request) {
	bureau := r.URL.Query().Get("bureau")
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.ScoreProgression(bureau)
	})
}

func (h *CreditHandler) OldestVsNewest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bureau := q.Get("bureau")
	metric := entity.Metric(q.Get("metric"))
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.OldestVsNewest(bureau, metric)
	})
}

func (h *CreditHandler) Compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bureau, dateA, dateB := q.Get("bureau"), q.Get("date_a"), q.Get("date_b")
	metric := entity.Metric(q.Get("metric"))
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.Compare(bureau, dateA, dateB, metric)
	})
}

func (h *CreditHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	h.withReport(w, r, func(report *temporal.Report) (interface{}, error) {
		return report.CompareBureausAtDate(date)
	})
}
