package query

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/countries"
	"countryexplorer/internal/domain"
	"countryexplorer/internal/eventbus"
)

// Service owns the list query state. Triggers and Apply must be called from
// a single goroutine (the update loop); only the returned commands run
// concurrently, and they never touch the state.
type Service struct {
	source DataSource
	bus    eventbus.EventBus

	state    *State
	latest   uint64
	cancel   context.CancelFunc
	disposed bool
}

// NewService creates a new query service
func NewService(source DataSource, bus eventbus.EventBus) *Service {
	return &Service{
		source: source,
		bus:    bus,
		state: &State{
			Results: []domain.CountrySummary{},
			Status:  StatusIdle,
		},
	}
}

// Load reloads every country
func (s *Service) Load() tea.Cmd {
	return s.issue(SearchQuery{Kind: KindAll})
}

// Search queries countries by name. A blank term reloads every country.
func (s *Service) Search(term string) tea.Cmd {
	if strings.TrimSpace(term) == "" {
		return s.Load()
	}
	return s.issue(SearchQuery{Kind: KindTerm, Value: term})
}

// FilterByRegion queries the countries of a region. A blank region reloads every country.
func (s *Service) FilterByRegion(region string) tea.Cmd {
	region = strings.TrimSpace(region)
	if region == "" {
		return s.Load()
	}
	return s.issue(SearchQuery{Kind: KindRegion, Value: region})
}

// Retry re-issues the last query
func (s *Service) Retry() tea.Cmd {
	return s.issue(s.state.Query)
}

// State returns a snapshot of the current state
func (s *Service) State() State {
	return *s.state
}

// Dispose cancels the in-flight request and makes every outstanding result stale
func (s *Service) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.latest++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// issue moves the state to Loading, supersedes any in-flight request and
// returns the command performing the fetch
func (s *Service) issue(q SearchQuery) tea.Cmd {
	if s.disposed {
		return nil
	}

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.latest++
	seq := s.latest

	// previous results stay visible while loading
	s.state.Status = StatusLoading
	s.state.ErrorKind = ""
	s.state.Query = q
	s.state.Seq = seq

	s.publish(eventbus.QueryStartedEvent{Seq: seq, Kind: q.Kind.String(), Value: q.Value})

	source := s.source
	return func() tea.Msg {
		defer cancel()

		var results []domain.CountrySummary
		var err error
		switch q.Kind {
		case KindTerm:
			results, err = source.SearchByTerm(ctx, q.Value)
		case KindRegion:
			results, err = source.FilterByRegion(ctx, q.Value)
		default:
			results, err = source.FetchAll(ctx)
		}
		return ResultMsg{Seq: seq, Query: q, Results: results, Err: err}
	}
}

// Apply commits msg if it answers the latest issued trigger and reports
// whether it did. Superseded results leave the state untouched.
func (s *Service) Apply(msg ResultMsg) bool {
	if msg.Seq != s.latest || s.disposed {
		s.publish(eventbus.ResultDiscardedEvent{Source: "query", Seq: msg.Seq, Latest: s.latest})
		return false
	}
	s.cancel = nil

	if msg.Err != nil {
		kind := errorKindFor(msg.Query.Kind, msg.Err)
		s.state.Results = []domain.CountrySummary{}
		s.state.Status = StatusFailed
		s.state.ErrorKind = kind
		s.publish(eventbus.QueryFailedEvent{
			Seq:       msg.Seq,
			Kind:      msg.Query.Kind.String(),
			Value:     msg.Query.Value,
			ErrorKind: string(kind),
			Err:       msg.Err,
		})
		return true
	}

	results := msg.Results
	if results == nil {
		results = []domain.CountrySummary{}
	}
	s.state.Results = results
	s.state.Status = StatusReady
	s.state.ErrorKind = ""
	s.publish(eventbus.QueryCommittedEvent{
		Seq:   msg.Seq,
		Kind:  msg.Query.Kind.String(),
		Value: msg.Query.Value,
		Count: len(results),
	})
	return true
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// errorKindFor classifies err, falling back to the kind of the operation
// when err did not come from the countries client
func errorKindFor(k Kind, err error) countries.ErrorKind {
	if kind, ok := countries.KindOf(err); ok {
		return kind
	}
	switch k {
	case KindTerm:
		return countries.KindSearchFailed
	case KindRegion:
		return countries.KindFilterFailed
	default:
		return countries.KindFetchFailed
	}
}
