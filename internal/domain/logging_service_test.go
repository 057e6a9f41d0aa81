package domain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

type stubCalculatorService struct {
	calculateFn   func(context.Context, string) (Report, error)
	listSubnetsFn func(context.Context, ListSubnetsInput) (SubnetPage, error)
}

func (s stubCalculatorService) Calculate(ctx context.Context, expression string) (Report, error) {
	if s.calculateFn == nil {
		return Report{}, nil
	}
	return s.calculateFn(ctx, expression)
}

func (s stubCalculatorService) ListSubnets(ctx context.Context, input ListSubnetsInput) (SubnetPage, error) {
	if s.listSubnetsFn == nil {
		return SubnetPage{}, nil
	}
	return s.listSubnetsFn(ctx, input)
}

func TestNewLoggingCalculatorServiceWithoutLoggerReturnsNext(t *testing.T) {
	got := NewLoggingCalculatorService(nil, stubCalculatorService{})
	if _, ok := got.(stubCalculatorService); !ok {
		t.Fatalf("expected the wrapped service back when logger is nil, got %T", got)
	}
}

func TestLoggingCalculatorServicePassesThroughResults(t *testing.T) {
	want := BuildReport(mustParse(t, "192.168.1.0/24"))
	svc := NewLoggingCalculatorService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubCalculatorService{
			calculateFn: func(context.Context, string) (Report, error) {
				return want, nil
			},
		},
	)

	got, err := svc.Calculate(context.Background(), "192.168.1.0/24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != want {
		t.Fatalf("report changed through decorator")
	}
}

func TestLoggingCalculatorServiceLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	svc := NewLoggingCalculatorService(
		slog.New(slog.NewTextHandler(&buf, nil)),
		stubCalculatorService{
			calculateFn: func(context.Context, string) (Report, error) {
				return Report{}, errors.New("boom")
			},
		},
	)

	_, err := svc.Calculate(context.Background(), "whatever")
	if err == nil {
		t.Fatal("expected error to propagate")
	}
	if !strings.Contains(buf.String(), "calculate failed") {
		t.Fatalf("expected failure log, got %q", buf.String())
	}
}

func TestLoggingCalculatorServiceLogsListFailures(t *testing.T) {
	var buf bytes.Buffer
	svc := NewLoggingCalculatorService(
		slog.New(slog.NewTextHandler(&buf, nil)),
		stubCalculatorService{
			listSubnetsFn: func(context.Context, ListSubnetsInput) (SubnetPage, error) {
				return SubnetPage{}, ErrInvalidRange
			},
		},
	)

	_, err := svc.ListSubnets(context.Background(), ListSubnetsInput{Expression: "10.0.0.0/8"})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if !strings.Contains(buf.String(), "list subnets failed") {
		t.Fatalf("expected failure log, got %q", buf.String())
	}
}
