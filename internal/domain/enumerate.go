package domain

import "fmt"

// Network is a derived (address, prefix) pair with the host bits cleared.
type Network struct {
	Addr      Addr
	PrefixLen int
}

// NetworkOf masks the address down to its network.
func NetworkOf(addr Addr, mask Mask) Network {
	return Network{Addr: addr & Addr(mask), PrefixLen: mask.Bits()}
}

func (n Network) String() string {
	return fmt.Sprintf("%s/%d", n.Addr, n.PrefixLen)
}

// StarNotation renders the network with its host octets wildcarded,
// e.g. 192.168.0.0/16 -> "192.168.*.*".
func (n Network) StarNotation() string {
	mask, _ := PrefixMask(n.PrefixLen)
	o := n.Addr.Octets()
	m := Addr(mask).Octets()
	out := make([]byte, 0, 15)
	for i := 0; i < 4; i++ {
		if i > 0 {
			out = append(out, '.')
		}
		if m[i] == 255 {
			out = fmt.Appendf(out, "%d", o[i])
		} else {
			out = append(out, '*')
		}
	}
	return string(out)
}

// SubnetEntry is one child network in an enumeration page.
type SubnetEntry struct {
	Index     uint64
	Network   Addr
	PrefixLen int
	Broadcast Addr
	FirstHost Addr
	LastHost  Addr
	HasHosts  bool
	Current   bool
}

// SubnetPage is one page of the child subnets of a parent network.
type SubnetPage struct {
	Parent         Network
	ChildPrefixLen int
	PageIndex      int
	PageSize       int
	Total          uint64
	TotalPages     uint64
	Title          string
	Entries        []SubnetEntry
}

// EnumerateSubnets returns page pageIndex (zero-based) of the /childPrefixLen
// subnets of parent. Children are addressed by index arithmetic, so cost is
// O(pageSize) no matter how many children exist; a page index past the end
// yields an empty page with the true totals.
func EnumerateSubnets(parent Network, childPrefixLen, pageIndex, pageSize int) (SubnetPage, error) {
	if parent.PrefixLen < 0 || parent.PrefixLen > 32 {
		return SubnetPage{}, fmt.Errorf("%w: parent prefix length %d", ErrInvalidRange, parent.PrefixLen)
	}
	if childPrefixLen < parent.PrefixLen || childPrefixLen > 32 {
		return SubnetPage{}, fmt.Errorf("%w: child prefix length %d must be between %d and 32", ErrInvalidRange, childPrefixLen, parent.PrefixLen)
	}
	if pageIndex < 0 {
		return SubnetPage{}, fmt.Errorf("%w: page index %d", ErrInvalidRange, pageIndex)
	}
	if pageSize <= 0 {
		return SubnetPage{}, fmt.Errorf("%w: page size %d", ErrInvalidRange, pageSize)
	}

	total := uint64(1) << (childPrefixLen - parent.PrefixLen)
	childSize := uint64(1) << (32 - childPrefixLen)

	page := SubnetPage{
		Parent:         parent,
		ChildPrefixLen: childPrefixLen,
		PageIndex:      pageIndex,
		PageSize:       pageSize,
		Total:          total,
		TotalPages:     (total + uint64(pageSize) - 1) / uint64(pageSize),
	}

	if uint64(pageIndex) >= page.TotalPages {
		return page, nil
	}
	start := uint64(pageIndex) * uint64(pageSize)
	end := start + uint64(pageSize)
	if end > total {
		end = total
	}

	page.Entries = make([]SubnetEntry, 0, end-start)
	for idx := start; idx < end; idx++ {
		network := Addr(uint64(parent.Addr) + idx*childSize)
		broadcast := Addr(uint64(network) + childSize - 1)
		first, last, _, hasHosts := hostRange(network, broadcast, childPrefixLen)
		page.Entries = append(page.Entries, SubnetEntry{
			Index:     idx,
			Network:   network,
			PrefixLen: childPrefixLen,
			Broadcast: broadcast,
			FirstHost: first,
			LastHost:  last,
			HasHosts:  hasHosts,
		})
	}
	return page, nil
}

// ParentNetwork snaps the network up to the nearest octet boundary below
// its prefix: /24 for longer prefixes, then /16, then /8. Networks at /8 or
// wider are their own class-boundary parent.
func ParentNetwork(n Network) Network {
	var bits int
	switch {
	case n.PrefixLen > 24:
		bits = 24
	case n.PrefixLen > 16:
		bits = 16
	case n.PrefixLen > 8:
		bits = 8
	default:
		return n
	}
	mask, _ := PrefixMask(bits)
	return Network{Addr: n.Addr & Addr(mask), PrefixLen: bits}
}
