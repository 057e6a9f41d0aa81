package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/badgerttl/ipcalc/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 256
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	// The calculator is stateless; readiness has no dependencies to probe.
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Calculate subnet attributes
// @Description Parses an address/mask expression (CIDR, explicit mask, wildcard mask or bare address) and returns the derived subnet report.
// @Tags calc
// @Accept json
// @Produce json
// @Param payload body CalculateRequest true "Address/mask expression"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/calc [post]
func (a *API) handleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[CalculateRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling calculation request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	report, err := a.Service.Calculate(ctx, req.Expression)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, reportToResponse(report))
}

// @Summary List child subnets
// @Description Enumerates the child subnets of a parent network one page at a time. When child_prefix is omitted the parent snaps to the nearest class boundary and the children keep the expression's prefix length.
// @Tags subnets
// @Produce json
// @Param expression query string true "Parent address/mask expression" example(192.168.0.0/16)
// @Param child_prefix query int false "Child prefix length, parent prefix..32"
// @Param page query int false "Zero-based page index"
// @Param page_size query int false "Subnets per page, max 256 (default 20)"
// @Success 200 {object} SubnetListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets [get]
func (a *API) handleListSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	input := domain.ListSubnetsInput{
		Expression:     q.Get("expression"),
		ChildPrefixLen: -1,
		PageIndex:      0,
		PageSize:       defaultPageSize,
	}

	var err error
	if raw := q.Get("child_prefix"); raw != "" {
		input.ChildPrefixLen, err = strconv.Atoi(raw)
		if err != nil {
			a.Logger.DebugContext(ctx, "invalid child_prefix", "child_prefix", raw)
			a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "child_prefix must be an integer"})
			return
		}
	}
	if raw := q.Get("page"); raw != "" {
		input.PageIndex, err = strconv.Atoi(raw)
		if err != nil || input.PageIndex < 0 {
			a.Logger.DebugContext(ctx, "invalid page", "page", raw)
			a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "page must be a non-negative integer"})
			return
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		input.PageSize, err = strconv.Atoi(raw)
		if err != nil || input.PageSize <= 0 || input.PageSize > maxPageSize {
			a.Logger.DebugContext(ctx, "invalid page_size", "page_size", raw)
			a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "page_size must be between 1 and 256"})
			return
		}
	}

	page, err := a.Service.ListSubnets(ctx, input)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, pageToResponse(page))
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

func (a *API) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidRange) {
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	a.Logger.ErrorContext(r.Context(), "uncaught service error", "err", err.Error())
	a.respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
