package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/personnel-roster/internal/domain"
	"github.com/personnel-roster/internal/dto"
	"github.com/personnel-roster/internal/hierarchy"
	"github.com/personnel-roster/internal/service"
	"github.com/personnel-roster/internal/summary"
)

type RosterHandler struct {
	rosterService service.RosterService
	validator     *validator.Validate
	logger        *slog.Logger
}

func NewRosterHandler(rosterService service.RosterService, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.toListResponse(h.rosterService.List(r.Context())))
}

func (h *RosterHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	query := dto.IDQuery{ID: id}
	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.rosterService.GetByID(r.Context(), query.ID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toEmployeeResponse(&emp))
}

func (h *RosterHandler) GetByName(w http.ResponseWriter, r *http.Request, name string) {
	query := dto.NameQuery{Name: name}
	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emp, err := h.rosterService.GetByName(r.Context(), query.Name)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toEmployeeResponse(&emp))
}

func (h *RosterHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := h.parseSearchQuery(r)
	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	emps, err := h.rosterService.Search(r.Context(), &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toListResponse(emps))
}

func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request, id string) {
	req := dto.RemoveRequest{ID: id}
	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	result, err := h.rosterService.Remove(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.RemoveResponse{
		Removed:    h.toEmployeeResponse(&result.Removed),
		Reassigned: result.Reassigned,
	})
}

func (h *RosterHandler) DirectReports(w http.ResponseWriter, r *http.Request) {
	groups := h.rosterService.DirectReports(r.Context())
	h.respondJSON(w, http.StatusOK, h.toReportGroupResponses(groups))
}

func (h *RosterHandler) ChainToRoot(w http.ResponseWriter, r *http.Request, name string) {
	query := dto.NameQuery{Name: name}
	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	chain, err := h.rosterService.ChainToRoot(r.Context(), query.Name)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ChainResponse{Name: query.Name, Chain: chain})
}

func (h *RosterHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.toSummaryResponse(h.rosterService.Summary(r.Context())))
}

func (h *RosterHandler) parseSearchQuery(r *http.Request) dto.SearchQuery {
	values := r.URL.Query()
	query := dto.SearchQuery{
		Field:    values.Get("field"),
		Operator: values.Get("operator"),
		Value:    values.Get("value"),
	}
	// Короткая форма op= для удобства
	if query.Operator == "" {
		query.Operator = values.Get("op")
	}
	return query
}

func (h *RosterHandler) toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Age:         emp.Age,
		Designation: emp.Designation,
		Department:  emp.Department,
		Salary:      emp.Salary,
		Manager:     emp.Manager,
	}
}

func (h *RosterHandler) toEmployeeResponses(emps []domain.Employee) []dto.EmployeeResponse {
	resp := make([]dto.EmployeeResponse, len(emps))
	for i := range emps {
		resp[i] = h.toEmployeeResponse(&emps[i])
	}
	return resp
}

func (h *RosterHandler) toListResponse(emps []domain.Employee) dto.ListResponse {
	return dto.ListResponse{
		Count:     len(emps),
		Employees: h.toEmployeeResponses(emps),
	}
}

func (h *RosterHandler) toReportGroupResponses(groups []hierarchy.ReportGroup) []dto.ReportGroupResponse {
	resp := make([]dto.ReportGroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = dto.ReportGroupResponse{Manager: g.Manager, Reports: g.Reports}
	}
	return resp
}

func toGroupCountResponses(groups []summary.GroupCount) []dto.GroupCountResponse {
	resp := make([]dto.GroupCountResponse, len(groups))
	for i, g := range groups {
		resp[i] = dto.GroupCountResponse{Key: g.Key, Count: g.Count}
	}
	return resp
}

func (h *RosterHandler) toSummaryResponse(report summary.Report) dto.SummaryResponse {
	resp := dto.SummaryResponse{
		Total:         report.Total,
		ByDepartment:  toGroupCountResponses(report.ByDepartment),
		AverageSalary: report.AverageSalary,
		DirectReports: toGroupCountResponses(report.DirectReports),
		TopEarners:    h.toEmployeeResponses(report.TopEarners),
	}

	// Для пустого списка максимум и минимум не выводятся
	if report.SalaryRange != nil {
		maxSalary, minSalary := report.SalaryRange.Max, report.SalaryRange.Min
		resp.MaxSalary = &maxSalary
		resp.MinSalary = &minSalary
	}

	return resp
}

func (h *RosterHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", err.Error())
	case errors.Is(err, domain.ErrInvalidField):
		h.respondError(w, http.StatusBadRequest, "invalid field", err.Error())
	case errors.Is(err, domain.ErrInvalidOperator):
		h.respondError(w, http.StatusBadRequest, "invalid operator", err.Error())
	case errors.Is(err, domain.ErrInvalidValue):
		h.respondError(w, http.StatusBadRequest, "invalid value", err.Error())
	case errors.Is(err, domain.ErrCycleDetected):
		h.respondError(w, http.StatusConflict, "reporting chain contains a cycle", err.Error())
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *RosterHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *RosterHandler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
