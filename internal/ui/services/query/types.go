package query

import (
	"context"

	"countryexplorer/internal/countries"
	"countryexplorer/internal/domain"
)

// Status is the lifecycle of the list query state
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Kind identifies the shape of a resolved query
type Kind int

const (
	KindAll Kind = iota
	KindTerm
	KindRegion
)

func (k Kind) String() string {
	switch k {
	case KindTerm:
		return "term"
	case KindRegion:
		return "region"
	default:
		return "all"
	}
}

// SearchQuery is the resolved query a trigger maps to
type SearchQuery struct {
	Kind  Kind
	Value string // term or region, empty for KindAll
}

// State is a snapshot of the list query state. Results is shared with the
// service and must not be modified.
type State struct {
	Results   []domain.CountrySummary
	Status    Status
	ErrorKind countries.ErrorKind // set only when Status is StatusFailed
	Query     SearchQuery
	Seq       uint64 // sequence number of the latest issued trigger
}

// ErrorMessage returns the user-facing text for a failed state
func (s State) ErrorMessage() string {
	if s.Status != StatusFailed {
		return ""
	}
	return s.ErrorKind.Message()
}

// DataSource is the subset of the countries client the service needs
type DataSource interface {
	FetchAll(ctx context.Context) ([]domain.CountrySummary, error)
	SearchByTerm(ctx context.Context, term string) ([]domain.CountrySummary, error)
	FilterByRegion(ctx context.Context, region string) ([]domain.CountrySummary, error)
}

// ResultMsg carries a settled fetch back into the update loop
type ResultMsg struct {
	Seq     uint64
	Query   SearchQuery
	Results []domain.CountrySummary
	Err     error
}
