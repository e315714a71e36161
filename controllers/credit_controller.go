package controllers

import (
	"github.com/radhian/credit-timeline/handler"

	"github.com/gorilla/mux"
)

func RegisterCreditRoutes(router *mux.Router, h *handler.CreditHandler) {
	router.HandleFunc("/credit_summary", h.CreditSummary).Methods("POST")
	router.HandleFunc("/customers", h.ListCustomers).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/records", h.ImportRecords).Methods("POST")
	router.HandleFunc("/customers/{customer_id}/bureaus", h.Bureaus).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/summary", h.Summary).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/utilization_trend", h.UtilizationTrend).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/late_payment_trend", h.LatePaymentTrend).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/score_progression", h.ScoreProgression).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/oldest_vs_newest", h.OldestVsNewest).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/compare", h.Compare).Methods("GET")
	router.HandleFunc("/customers/{customer_id}/snapshot", h.Snapshot).Methods("GET")
}
