package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/entity"
)

// CreditSummary builds timelines from the records in the body without
// touching the record store.
func (h *CreditHandler) CreditSummary(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req entity.RecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.Infof("[CreditHandler] request %s: summarizing %d records", requestID, len(req.Records))

	report, err := h.Usecase.Summarize(r.Context(), req.Records)
	if err != nil {
		log.Errorf("[CreditHandler] request %s: summary failed: %v", requestID, err)
		writeError(w, http.StatusInternalServerError, "Failed to build credit summary")
		return
	}

	writeSuccess(w, report.Summary())
}
