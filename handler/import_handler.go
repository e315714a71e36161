package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/entity"
	usecase "github.com/radhian/credit-timeline/usecase/creditreport"
)

func (h *CreditHandler) ImportRecords(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customer_id"]

	var req entity.RecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.Usecase.ImportRecords(customerID, req.Records, req.Operator)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidImport) {
			log.Warnf("[CreditHandler] Invalid import for customer %s: %v", customerID, err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("[CreditHandler] Import failed for customer %s: %v", customerID, err)
		writeError(w, http.StatusInternalServerError, "Failed to import records")
		return
	}

	writeSuccess(w, res)
}

func (h *CreditHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Usecase.ListCustomers()
	if err != nil {
		log.Errorf("[CreditHandler] Listing customers failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list customers")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeSuccess(w, ids)
}
