package http

import (
	"github.com/badgerttl/ipcalc/internal/domain"
)

// CalculateRequest is the payload accepted by the calculation endpoint.
type CalculateRequest struct {
	Expression string `json:"expression" example:"192.168.1.10/24" validate:"required"`
}

// ReportResponse is the full subnet report returned to clients and used in
// Swagger.
type ReportResponse struct {
	Network     string `json:"network" example:"192.168.1.0"`
	Broadcast   string `json:"broadcast" example:"192.168.1.255"`
	Netmask     string `json:"netmask" example:"255.255.255.0"`
	Wildcard    string `json:"wildcard" example:"0.0.0.255"`
	PrefixLen   int    `json:"prefix_len" example:"24"`
	CIDR        string `json:"cidr" example:"192.168.1.0/24"`
	HostMin     string `json:"host_min" example:"192.168.1.1"`
	HostMax     string `json:"host_max" example:"192.168.1.254"`
	HostRange   string `json:"host_range" example:"192.168.1.1 - 192.168.1.254"`
	UsableHosts uint64 `json:"usable_hosts" example:"254"`
	Class       string `json:"class" example:"C"`
	Type        string `json:"type" example:"Private"`
	ReverseDNS  string `json:"reverse_dns" example:"1.168.192.in-addr.arpa"`
	BinaryID    string `json:"binary_id" example:"11000000.10101000.00000001.00000000"`
	BinaryMask  string `json:"binary_mask" example:"11111111.11111111.11111111.00000000"`
	Summary     string `json:"summary"`
}

// SubnetEntryResponse is one child network of an enumeration page.
type SubnetEntryResponse struct {
	Index     uint64 `json:"index" example:"0"`
	CIDR      string `json:"cidr" example:"192.168.0.0/24"`
	Network   string `json:"network" example:"192.168.0.0"`
	HostRange string `json:"host_range" example:"192.168.0.1 - 192.168.0.254"`
	Broadcast string `json:"broadcast" example:"192.168.0.255"`
	Current   bool   `json:"current" example:"false"`
}

// SubnetListResponse is one page of child subnets plus paging totals.
type SubnetListResponse struct {
	Title        string                `json:"title" example:"All 256 possible /24 networks in 192.168.*.*"`
	Parent       string                `json:"parent" example:"192.168.0.0/16"`
	ChildPrefix  int                   `json:"child_prefix" example:"24"`
	Page         int                   `json:"page" example:"0"`
	PageSize     int                   `json:"page_size" example:"20"`
	TotalSubnets uint64                `json:"total_subnets" example:"256"`
	TotalPages   uint64                `json:"total_pages" example:"13"`
	Subnets      []SubnetEntryResponse `json:"subnets"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid input: empty expression"`
}

func reportToResponse(r domain.Report) ReportResponse {
	resp := ReportResponse{
		Network:     r.Network.String(),
		Broadcast:   r.Broadcast.String(),
		Netmask:     r.Mask.String(),
		Wildcard:    r.Wildcard.String(),
		PrefixLen:   r.PrefixLen,
		CIDR:        r.CIDR,
		HostRange:   r.HostRangeString(),
		UsableHosts: r.UsableHosts,
		Class:       r.Class,
		Type:        r.Scope,
		ReverseDNS:  r.ReverseDNS,
		BinaryID:    r.BinaryID,
		BinaryMask:  r.BinaryMask,
		Summary:     r.Summary,
	}
	if r.HasHosts {
		resp.HostMin = r.FirstHost.String()
		resp.HostMax = r.LastHost.String()
	}
	return resp
}

func pageToResponse(p domain.SubnetPage) SubnetListResponse {
	out := SubnetListResponse{
		Title:        p.Title,
		Parent:       p.Parent.String(),
		ChildPrefix:  p.ChildPrefixLen,
		Page:         p.PageIndex,
		PageSize:     p.PageSize,
		TotalSubnets: p.Total,
		TotalPages:   p.TotalPages,
		Subnets:      make([]SubnetEntryResponse, 0, len(p.Entries)),
	}
	for _, e := range p.Entries {
		out.Subnets = append(out.Subnets, entryToResponse(e))
	}
	return out
}

func entryToResponse(e domain.SubnetEntry) SubnetEntryResponse {
	hostRange := "N/A"
	if e.HasHosts {
		hostRange = e.FirstHost.String() + " - " + e.LastHost.String()
	}
	return SubnetEntryResponse{
		Index:     e.Index,
		CIDR:      domain.Network{Addr: e.Network, PrefixLen: e.PrefixLen}.String(),
		Network:   e.Network.String(),
		HostRange: hostRange,
		Broadcast: e.Broadcast.String(),
		Current:   e.Current,
	}
}
