package domain

import "context"

// ListSubnetsInput describes one listing query. A ChildPrefixLen of -1 asks
// the service to derive both sides: the children keep the expression's own
// prefix length and the parent is the class-boundary supernet.
type ListSubnetsInput struct {
	Expression     string
	ChildPrefixLen int
	PageIndex      int
	PageSize       int
}

type CalculatorService interface {
	Calculate(ctx context.Context, expression string) (Report, error)
	ListSubnets(ctx context.Context, input ListSubnetsInput) (SubnetPage, error)
}
