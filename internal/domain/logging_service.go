package domain

import (
	"context"
	"log/slog"
)

type loggingCalculatorService struct {
	logger *slog.Logger
	next   CalculatorService
}

func NewLoggingCalculatorService(logger *slog.Logger, next CalculatorService) CalculatorService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingCalculatorService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingCalculatorService) Calculate(ctx context.Context, expression string) (Report, error) {
	report, err := s.next.Calculate(ctx, expression)
	if err != nil {
		s.logger.ErrorContext(ctx, "calculate failed", "expression", expression, "err", err.Error())
		return Report{}, err
	}

	s.logger.DebugContext(ctx, "calculated", "expression", expression, "cidr", report.CIDR)
	return report, nil
}

func (s *loggingCalculatorService) ListSubnets(ctx context.Context, input ListSubnetsInput) (SubnetPage, error) {
	page, err := s.next.ListSubnets(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "list subnets failed",
			"expression", input.Expression,
			"child_prefix", input.ChildPrefixLen,
			"page", input.PageIndex,
			"err", err.Error())
		return SubnetPage{}, err
	}

	s.logger.DebugContext(ctx, "subnets listed",
		"parent", page.Parent.String(),
		"child_prefix", page.ChildPrefixLen,
		"page", page.PageIndex,
		"total", page.Total)
	return page, nil
}
