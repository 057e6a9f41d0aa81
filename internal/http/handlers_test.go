package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/badgerttl/ipcalc/internal/domain"
)

type stubService struct {
	calculateFn   func(context.Context, string) (domain.Report, error)
	listSubnetsFn func(context.Context, domain.ListSubnetsInput) (domain.SubnetPage, error)
}

func (s stubService) Calculate(ctx context.Context, expression string) (domain.Report, error) {
	if s.calculateFn == nil {
		return domain.Report{}, nil
	}
	return s.calculateFn(ctx, expression)
}

func (s stubService) ListSubnets(ctx context.Context, input domain.ListSubnetsInput) (domain.SubnetPage, error) {
	if s.listSubnetsFn == nil {
		return domain.SubnetPage{}, nil
	}
	return s.listSubnetsFn(ctx, input)
}

func newHandlerTestAPI(service domain.CalculatorService) *API {
	return NewAPI(slog.New(slog.NewTextHandler(io.Discard, nil)), service)
}

func TestHealthzReturnsOK(t *testing.T) {
	api := newHandlerTestAPI(stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestCalculateReturnsReport(t *testing.T) {
	api := newHandlerTestAPI(realService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calc", strings.NewReader(`{"expression":"192.168.1.10/24"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp ReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Network != "192.168.1.0" {
		t.Errorf("network: got %s", resp.Network)
	}
	if resp.Broadcast != "192.168.1.255" {
		t.Errorf("broadcast: got %s", resp.Broadcast)
	}
	if resp.UsableHosts != 254 {
		t.Errorf("usable hosts: got %d", resp.UsableHosts)
	}
	if resp.ReverseDNS != "1.168.192.in-addr.arpa" {
		t.Errorf("reverse dns: got %s", resp.ReverseDNS)
	}
}

func TestCalculateReturnsBadRequestOnInvalidExpression(t *testing.T) {
	api := newHandlerTestAPI(realService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calc", strings.NewReader(`{"expression":"999.1.1.1/24"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid input") {
		t.Fatalf("expected invalid input message, got %q", rec.Body.String())
	}
}

func TestCalculateReturnsBadRequestOnMalformedJSON(t *testing.T) {
	api := newHandlerTestAPI(stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calc", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestListSubnetsPassesQueryToService(t *testing.T) {
	var got domain.ListSubnetsInput
	api := newHandlerTestAPI(stubService{
		listSubnetsFn: func(_ context.Context, input domain.ListSubnetsInput) (domain.SubnetPage, error) {
			got = input
			return domain.SubnetPage{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subnets?expression=192.168.0.0/16&child_prefix=24&page=3&page_size=50", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	want := domain.ListSubnetsInput{
		Expression:     "192.168.0.0/16",
		ChildPrefixLen: 24,
		PageIndex:      3,
		PageSize:       50,
	}
	if got != want {
		t.Fatalf("service input: got %+v, want %+v", got, want)
	}
}

func TestListSubnetsDefaultsPageParams(t *testing.T) {
	var got domain.ListSubnetsInput
	api := newHandlerTestAPI(stubService{
		listSubnetsFn: func(_ context.Context, input domain.ListSubnetsInput) (domain.SubnetPage, error) {
			got = input
			return domain.SubnetPage{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subnets?expression=10.0.0.0/8", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if got.ChildPrefixLen != -1 {
		t.Errorf("child prefix: got %d, want -1", got.ChildPrefixLen)
	}
	if got.PageIndex != 0 || got.PageSize != 20 {
		t.Errorf("paging defaults: got page %d size %d", got.PageIndex, got.PageSize)
	}
}

func TestListSubnetsReturnsPage(t *testing.T) {
	api := newHandlerTestAPI(realService())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subnets?expression=192.168.0.0/16&child_prefix=24&page=0&page_size=10", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp SubnetListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.TotalSubnets != 256 {
		t.Errorf("total subnets: got %d", resp.TotalSubnets)
	}
	if len(resp.Subnets) != 10 {
		t.Fatalf("subnets: got %d, want 10", len(resp.Subnets))
	}
	if resp.Subnets[0].CIDR != "192.168.0.0/24" {
		t.Errorf("first subnet: got %s", resp.Subnets[0].CIDR)
	}
	if resp.Subnets[9].CIDR != "192.168.9.0/24" {
		t.Errorf("last subnet: got %s", resp.Subnets[9].CIDR)
	}
}

func TestListSubnetsReturnsBadRequestOnInvalidRange(t *testing.T) {
	api := newHandlerTestAPI(realService())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subnets?expression=192.168.0.0/16&child_prefix=8", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid range") {
		t.Fatalf("expected invalid range message, got %q", rec.Body.String())
	}
}

func TestListSubnetsRejectsBadQueryParams(t *testing.T) {
	api := newHandlerTestAPI(stubService{})

	for _, query := range []string{
		"expression=10.0.0.0/8&child_prefix=abc",
		"expression=10.0.0.0/8&page=-1",
		"expression=10.0.0.0/8&page=abc",
		"expression=10.0.0.0/8&page_size=0",
		"expression=10.0.0.0/8&page_size=10000",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/subnets?"+query, nil)
		rec := httptest.NewRecorder()
		api.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected %d, got %d", query, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	api := newHandlerTestAPI(stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected X-Request-Id header")
	}
}

func TestRequestIDHeaderIsPreserved(t *testing.T) {
	api := newHandlerTestAPI(stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
}

func realService() domain.CalculatorService {
	return domain.NewCalculatorService()
}
