package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hr-backend-go/internal/service/file"
	payrollsvc "github.com/peoplecore/hr-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	GeneratePayslips(w http.ResponseWriter, r *http.Request)
	CompletePeriod(w http.ResponseWriter, r *http.Request)
	CancelPeriod(w http.ResponseWriter, r *http.Request)

	ListPayslips(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslipPDF(w http.ResponseWriter, r *http.Request)
	MarkPayslipPaid(w http.ResponseWriter, r *http.Request)
	CancelPayslip(w http.ResponseWriter, r *http.Request)

	CreateSalaryStructure(w http.ResponseWriter, r *http.Request)
	GetActiveSalaryStructure(w http.ResponseWriter, r *http.Request)

	CreateDeductionType(w http.ResponseWriter, r *http.Request)
	ListDeductionTypes(w http.ResponseWriter, r *http.Request)
	AssignDeduction(w http.ResponseWriter, r *http.Request)
	UnassignDeduction(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollsvc.Service
	fileService    file.FileService
}

func NewPayrollHandler(payrollService *payrollsvc.Service, fileService file.FileService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		fileService:    fileService,
	}
}

// CreatePeriod implements PayrollHandler.
func (h *payrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created", result)
}

// ListPeriods implements PayrollHandler.
func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPeriod implements PayrollHandler.
func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GeneratePayslips implements PayrollHandler.
func (h *payrollHandlerImpl) GeneratePayslips(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Generate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslips generated", result)
}

// CompletePeriod implements PayrollHandler.
func (h *payrollHandlerImpl) CompletePeriod(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.CompletePeriod(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period completed", nil)
}

// CancelPeriod implements PayrollHandler.
func (h *payrollHandlerImpl) CancelPeriod(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.CancelPeriod(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period cancelled", nil)
}

// ListPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPayslips(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadPayslipPDF implements PayrollHandler.
func (h *payrollHandlerImpl) DownloadPayslipPDF(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "id")

	pdf, err := h.payrollService.RenderPayslipPDF(r.Context(), payslipID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Keep a copy in storage under a stable key; re-renders overwrite it.
	if _, err := h.fileService.StorePayslipPDF(r.Context(), payslipID, pdf); err != nil {
		slog.Error("Failed to store payslip PDF", "error", err, "payslip_id", payslipID)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, payslipID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.Error("Failed to write PDF response", "error", err, "payslip_id", payslipID)
	}
}

// MarkPayslipPaid implements PayrollHandler.
func (h *payrollHandlerImpl) MarkPayslipPaid(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.MarkPayslipPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip marked as paid", result)
}

// CancelPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) CancelPayslip(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.CancelPayslip(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip cancelled", nil)
}

// CreateSalaryStructure implements PayrollHandler.
func (h *payrollHandlerImpl) CreateSalaryStructure(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.CreateSalaryStructure(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure created", result)
}

// GetActiveSalaryStructure implements PayrollHandler.
func (h *payrollHandlerImpl) GetActiveSalaryStructure(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetActiveSalaryStructure(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateDeductionType implements PayrollHandler.
func (h *payrollHandlerImpl) CreateDeductionType(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateDeductionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.CreateDeductionType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction type created", result)
}

// ListDeductionTypes implements PayrollHandler.
func (h *payrollHandlerImpl) ListDeductionTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListDeductionTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignDeduction implements PayrollHandler.
func (h *payrollHandlerImpl) AssignDeduction(w http.ResponseWriter, r *http.Request) {
	var req payroll.AssignDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.AssignDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction assigned", result)
}

// UnassignDeduction implements PayrollHandler.
func (h *payrollHandlerImpl) UnassignDeduction(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.UnassignDeduction(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction unassigned", nil)
}
