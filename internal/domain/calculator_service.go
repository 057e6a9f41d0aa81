package domain

import (
	"context"
	"fmt"
)

type calculatorService struct{}

func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

func (s *calculatorService) Calculate(_ context.Context, expression string) (Report, error) {
	addr, mask, err := ParseExpression(expression)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(addr, mask), nil
}

func (s *calculatorService) ListSubnets(_ context.Context, input ListSubnetsInput) (SubnetPage, error) {
	addr, mask, err := ParseExpression(input.Expression)
	if err != nil {
		return SubnetPage{}, err
	}
	network := NetworkOf(addr, mask)

	parent := network
	childPrefixLen := input.ChildPrefixLen
	if childPrefixLen < 0 {
		// No explicit child prefix: list the expression's siblings within
		// its class-boundary parent.
		parent = ParentNetwork(network)
		childPrefixLen = network.PrefixLen
	}

	page, err := EnumerateSubnets(parent, childPrefixLen, input.PageIndex, input.PageSize)
	if err != nil {
		return SubnetPage{}, err
	}

	if network.PrefixLen == childPrefixLen {
		childSize := uint64(1) << (32 - childPrefixLen)
		currentIndex := uint64(network.Addr-parent.Addr) / childSize
		for i := range page.Entries {
			if page.Entries[i].Index == currentIndex {
				page.Entries[i].Current = true
			}
		}
	}

	page.Title = listTitle(page)
	return page, nil
}

func listTitle(page SubnetPage) string {
	if page.Total <= 1 {
		return fmt.Sprintf("Network: %s", page.Parent)
	}
	return fmt.Sprintf("All %s possible /%d networks in %s",
		formatCount(page.Total), page.ChildPrefixLen, page.Parent.StarNotation())
}
