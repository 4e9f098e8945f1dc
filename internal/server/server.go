// Package server exposes the amortization calculator over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/loan-amortizer/internal/config"
	"github.com/iwvelando/loan-amortizer/internal/schedule"
	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/iwvelando/loan-amortizer/pkg/constants"
	"github.com/iwvelando/loan-amortizer/pkg/output"
	"github.com/iwvelando/loan-amortizer/pkg/validation"
	"go.uber.org/zap"
)

// RequestIDHeader carries the identifier assigned to every request.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the amortization API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Schedule computation from loan parameters
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Schedule computation from a YAML configuration body
	mux.HandleFunc("/api/config", h.handleConfig)

	// Schedule exports
	mux.HandleFunc("/api/export", h.handleExportText)
	mux.HandleFunc("/api/export/xlsx", h.handleExportXLSX)

	mux.HandleFunc("/api/version", h.handleVersion)

	return h.withRequestID(mux)
}

type scheduleRequest struct {
	Principal     float64         `json:"principal"`
	AnnualRate    float64         `json:"annualRate"`
	Term          int             `json:"term"`
	TermUnit      string          `json:"termUnit,omitempty"`
	StartDate     string          `json:"startDate,omitempty"`
	ExtraPayments map[int]float64 `json:"extraPayments,omitempty"`
}

type scheduleResponse struct {
	Result        *amortization.Result  `json:"result"`
	PayoffPeriods int                   `json:"payoffPeriods"`
	Dates         []string              `json:"dates,omitempty"`
	ExtraPayments *extraPaymentSummary  `json:"extraPayments,omitempty"`
	Savings       *amortization.Savings `json:"savings,omitempty"`
	Warnings      []string              `json:"warnings,omitempty"`
	Duration      string                `json:"duration"`
}

type extraPaymentSummary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type exportRequest struct {
	Schedule []amortization.PaymentRecord `json:"schedule"`
	Result   *amortization.Result         `json:"result,omitempty"`
	Dates    []string                     `json:"dates,omitempty"`
}

// configuration converts the request into the same configuration shape the
// CLI reads, one single-payment event per extra payment.
func (req scheduleRequest) configuration() (*config.Configuration, error) {
	extras := amortization.ExtraPayments(req.ExtraPayments)
	if err := validation.ValidateExtraPayments(extras); err != nil {
		return nil, err
	}

	conf := &config.Configuration{
		Loan: config.Loan{
			Principal:  req.Principal,
			AnnualRate: req.AnnualRate,
			Term:       req.Term,
			TermUnit:   req.TermUnit,
			StartDate:  req.StartDate,
		},
	}
	for _, paymentNumber := range extras.PaymentNumbers() {
		conf.ExtraPayments = append(conf.ExtraPayments, config.ExtraPayment{
			Name:         fmt.Sprintf("payment %d", paymentNumber),
			Amount:       extras[paymentNumber],
			StartPayment: paymentNumber,
		})
	}
	return conf, nil
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req scheduleRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	conf, err := req.configuration()
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.runSchedule(w, r, conf, start, op)
}

func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfig"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(http.MaxBytesReader(w, r.Body, h.maxBodySize)); err != nil {
		h.respondBodyError(w, r, err, op)
		return
	}

	conf, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.runSchedule(w, r, conf, start, op)
}

func (h *handler) runSchedule(w http.ResponseWriter, r *http.Request, conf *config.Configuration, start time.Time, op string) {
	computed, err := schedule.GetSchedule(h.logger, conf)
	if err != nil {
		// Everything GetSchedule rejects comes from the submitted loan.
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	response := scheduleResponse{
		Result:        computed.Result,
		PayoffPeriods: computed.Result.PayoffPeriods(),
		Dates:         computed.Dates,
		Savings:       computed.Savings,
		Warnings:      computed.Warnings,
		Duration:      elapsed.String(),
	}
	if computed.ExtraPayments != nil {
		response.ExtraPayments = &extraPaymentSummary{
			Count: computed.ExtraPayments.Count(),
			Total: computed.ExtraPayments.Total(),
		}
	}

	h.logger.Info("schedule computed",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.Int("payments", response.PayoffPeriods),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleExportText(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExportText"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req exportRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	text := amortization.ExportToText(req.records())
	setAttachment(w, "text/csv; charset=utf-8", constants.TextExportFilename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		h.logger.Error("failed to write export",
			zap.String("op", op),
			zap.String("request_id", requestID(r)),
			zap.Error(err),
		)
	}
}

func (h *handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExportXLSX"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req exportRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	// Render into a buffer first so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := output.XLSXFormat(&buf, req.result(), req.Dates); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	setAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", constants.XLSXExportFilename)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write export",
			zap.String("op", op),
			zap.String("request_id", requestID(r)),
			zap.Error(err),
		)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (req exportRequest) records() []amortization.PaymentRecord {
	if len(req.Schedule) == 0 && req.Result != nil {
		return req.Result.Schedule
	}
	return req.Schedule
}

// result returns the submitted result, or one summarized from the bare
// schedule. A bare schedule has no base payment, so the first payment stands in.
func (req exportRequest) result() *amortization.Result {
	if req.Result != nil && len(req.Schedule) == 0 {
		return req.Result
	}
	result := &amortization.Result{Schedule: req.Schedule}
	if req.Result != nil {
		result.MonthlyPayment = req.Result.MonthlyPayment
	} else if len(req.Schedule) > 0 {
		result.MonthlyPayment = req.Schedule[0].PaymentAmount
	}
	for _, payment := range req.Schedule {
		result.TotalInterest += payment.InterestPayment
		result.TotalPaid += payment.PaymentAmount
	}
	return result
}

func setAttachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		h.respondBodyError(w, r, err, op)
		return false
	}
	return true
}

func (h *handler) respondBodyError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		return
	}
	h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("amortization request failed",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes before sending the status so an encoding failure becomes a 500.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// withRequestID keeps a well-formed incoming X-Request-ID and assigns a fresh
// UUID otherwise. The identifier is echoed on the response.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		h.logger.Debug("request received",
			zap.String("op", "server.withRequestID"),
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
