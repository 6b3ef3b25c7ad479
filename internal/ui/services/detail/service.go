package detail

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/countries"
	"countryexplorer/internal/eventbus"
)

// Service loads one country at a time for the detail view. Like the query
// service it is driven from the update loop only.
type Service struct {
	source Source
	bus    eventbus.EventBus

	state  State
	latest uint64
	cancel context.CancelFunc
}

// NewService creates a new detail service
func NewService(source Source, bus eventbus.EventBus) *Service {
	return &Service{
		source: source,
		bus:    bus,
	}
}

// Activate starts loading the country with code, superseding any lookup in flight
func (s *Service) Activate(code string) tea.Cmd {
	return s.activate(strings.TrimSpace(code), ByCode)
}

// ActivateByName starts loading the country whose name is exactly name
func (s *Service) ActivateByName(name string) tea.Cmd {
	return s.activate(strings.TrimSpace(name), ByName)
}

// Retry reloads the current country. It does nothing while Idle.
func (s *Service) Retry() tea.Cmd {
	if s.state.Status == StatusIdle || s.state.Key == "" {
		return nil
	}
	return s.activate(s.state.Key, s.state.Lookup)
}

// Deactivate discards the current state; results still in flight become stale
func (s *Service) Deactivate() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.latest++
	s.state = State{Seq: s.latest}
}

// State returns a snapshot of the current state
func (s *Service) State() State {
	return s.state
}

// Active reports whether a country is loading or shown
func (s *Service) Active() bool {
	return s.state.Status != StatusIdle
}

func (s *Service) activate(key string, lookup Lookup) tea.Cmd {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.latest++
	seq := s.latest
	s.state = State{
		Key:    key,
		Lookup: lookup,
		Status: StatusLoading,
		Seq:    seq,
	}

	source := s.source
	return func() tea.Msg {
		defer cancel()

		msg := ResultMsg{Seq: seq, Key: key}
		if lookup == ByName {
			msg.Detail, msg.Err = source.FetchByExactName(ctx, key)
		} else {
			msg.Detail, msg.Err = source.FetchByCode(ctx, key)
		}
		return msg
	}
}

// Apply commits msg if it answers the latest activation and reports whether it did
func (s *Service) Apply(msg ResultMsg) bool {
	if msg.Seq != s.latest || s.state.Status != StatusLoading {
		s.publish(eventbus.ResultDiscardedEvent{Source: "detail", Seq: msg.Seq, Latest: s.latest})
		return false
	}
	s.cancel = nil

	switch {
	case msg.Err == nil && msg.Detail != nil:
		s.state.Detail = msg.Detail
		s.state.Status = StatusReady
	case msg.Err == nil, countries.IsNotFound(msg.Err):
		s.state.Status = StatusNotFound
		s.state.ErrorKind = countries.KindCountryNotFound
	default:
		s.state.Status = StatusFailed
		s.state.ErrorKind = countries.KindFetchDetailFailed
		if kind, ok := countries.KindOf(msg.Err); ok {
			s.state.ErrorKind = kind
		}
	}

	s.publish(eventbus.DetailResolvedEvent{Code: s.state.Key, Status: s.state.Status.String(), Err: msg.Err})
	return true
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
