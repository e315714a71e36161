package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/gommon/log"
	usecase "github.com/radhian/credit-timeline/usecase/creditreport"
)

type CreditHandler struct {
	Usecase usecase.CreditReportUsecase
}

func NewCreditHandler(uc usecase.CreditReportUsecase) *CreditHandler {
	return &CreditHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("[CreditHandler] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, APIResponse{Status: "error", Message: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Status: "success", Data: data})
}
