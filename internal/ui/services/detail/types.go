package detail

import (
	"context"

	"countryexplorer/internal/countries"
	"countryexplorer/internal/domain"
)

// Status is the lifecycle of a detail lookup
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusNotFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Lookup says how the country is identified
type Lookup int

const (
	ByCode Lookup = iota
	ByName
)

// State is a snapshot of the detail loader. It is reset to Idle on Deactivate.
type State struct {
	Key       string // country code, or exact name for ByName
	Lookup    Lookup
	Detail    *domain.CountryDetail
	Status    Status
	ErrorKind countries.ErrorKind
	Seq       uint64
}

// ErrorMessage returns the user-facing text for NotFound and Failed
func (s State) ErrorMessage() string {
	switch s.Status {
	case StatusNotFound, StatusFailed:
		return s.ErrorKind.Message()
	default:
		return ""
	}
}

// Source is the subset of the countries client the loader needs
type Source interface {
	FetchByCode(ctx context.Context, code string) (*domain.CountryDetail, error)
	FetchByExactName(ctx context.Context, name string) (*domain.CountryDetail, error)
}

// ResultMsg carries a settled detail fetch back into the update loop
type ResultMsg struct {
	Seq    uint64
	Key    string
	Detail *domain.CountryDetail
	Err    error
}
