package detail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"countryexplorer/internal/countries"
	"countryexplorer/internal/domain"
	"countryexplorer/internal/eventbus"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) FetchByCode(ctx context.Context, code string) (*domain.CountryDetail, error) {
	args := m.Called(ctx, code)
	d, _ := args.Get(0).(*domain.CountryDetail)
	return d, args.Error(1)
}

func (m *mockSource) FetchByExactName(ctx context.Context, name string) (*domain.CountryDetail, error) {
	args := m.Called(ctx, name)
	d, _ := args.Get(0).(*domain.CountryDetail)
	return d, args.Error(1)
}

func country(code, name string) *domain.CountryDetail {
	return &domain.CountryDetail{
		CountrySummary: domain.CountrySummary{Name: domain.Name{Common: name, Official: name}, Code: code},
	}
}

func TestActivateResolvesReady(t *testing.T) {
	src := &mockSource{}
	jpn := country("JPN", "Japan")
	src.On("FetchByCode", mock.Anything, "JPN").Return(jpn, nil).Once()

	s := NewService(src, nil)
	assert.Equal(t, StatusIdle, s.State().Status)

	cmd := s.Activate("JPN")
	assert.Equal(t, StatusLoading, s.State().Status)
	assert.Equal(t, "JPN", s.State().Key)
	assert.True(t, s.Active())

	require.True(t, s.Apply(cmd().(ResultMsg)))
	assert.Equal(t, StatusReady, s.State().Status)
	assert.Same(t, jpn, s.State().Detail)
	assert.Empty(t, s.State().ErrorMessage())
	src.AssertExpectations(t)
}

func TestReactivationSupersedesInFlight(t *testing.T) {
	src := &mockSource{}
	src.On("FetchByCode", mock.Anything, "JPN").Return(country("JPN", "Japan"), nil)
	src.On("FetchByCode", mock.Anything, "FRA").Return(country("FRA", "France"), nil)

	s := NewService(src, nil)
	jpn := s.Activate("JPN")
	fra := s.Activate("FRA")

	// JPN settles after FRA was issued, in both orders
	jpnMsg := jpn().(ResultMsg)
	assert.False(t, s.Apply(jpnMsg))
	assert.Equal(t, StatusLoading, s.State().Status)
	assert.Equal(t, "FRA", s.State().Key)

	require.True(t, s.Apply(fra().(ResultMsg)))
	assert.False(t, s.Apply(jpnMsg))

	st := s.State()
	assert.Equal(t, StatusReady, st.Status)
	assert.Equal(t, "FRA", st.Detail.Code)
}

func TestNotFoundIsDistinctFromFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		detail  *domain.CountryDetail
		status  Status
		kind    countries.ErrorKind
		message string
	}{
		{
			name:    "not found",
			err:     &countries.Error{Kind: countries.KindCountryNotFound, Status: 404},
			status:  StatusNotFound,
			kind:    countries.KindCountryNotFound,
			message: "Country not found",
		},
		{
			name:    "server error",
			err:     &countries.Error{Kind: countries.KindFetchDetailFailed, Status: 500},
			status:  StatusFailed,
			kind:    countries.KindFetchDetailFailed,
			message: "Failed to fetch country",
		},
		{
			name:    "foreign error",
			err:     errors.New("connection reset"),
			status:  StatusFailed,
			kind:    countries.KindFetchDetailFailed,
			message: "Failed to fetch country",
		},
		{
			name:    "empty payload",
			status:  StatusNotFound,
			kind:    countries.KindCountryNotFound,
			message: "Country not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockSource{}
			src.On("FetchByCode", mock.Anything, "XXX").Return(tt.detail, tt.err)

			s := NewService(src, nil)
			require.True(t, s.Apply(s.Activate("XXX")().(ResultMsg)))

			st := s.State()
			assert.Equal(t, tt.status, st.Status)
			assert.Equal(t, tt.kind, st.ErrorKind)
			assert.Equal(t, tt.message, st.ErrorMessage())
			assert.Nil(t, st.Detail)
		})
	}
}

func TestRetryReloadsCurrentCountry(t *testing.T) {
	src := &mockSource{}
	src.On("FetchByCode", mock.Anything, "BRA").Return(nil, &countries.Error{Kind: countries.KindFetchDetailFailed}).Once()
	src.On("FetchByCode", mock.Anything, "BRA").Return(country("BRA", "Brazil"), nil).Once()

	s := NewService(src, nil)
	assert.Nil(t, s.Retry(), "retry while idle does nothing")

	require.True(t, s.Apply(s.Activate("BRA")().(ResultMsg)))
	require.Equal(t, StatusFailed, s.State().Status)

	cmd := s.Retry()
	require.NotNil(t, cmd)
	assert.Equal(t, StatusLoading, s.State().Status)
	require.True(t, s.Apply(cmd().(ResultMsg)))
	assert.Equal(t, StatusReady, s.State().Status)
	src.AssertExpectations(t)
}

func TestTerminalStatesOnlyLeaveViaActivation(t *testing.T) {
	src := &mockSource{}
	src.On("FetchByCode", mock.Anything, "KEN").Return(country("KEN", "Kenya"), nil)

	s := NewService(src, nil)
	cmd := s.Activate("KEN")
	msg := cmd().(ResultMsg)
	require.True(t, s.Apply(msg))

	// a duplicate delivery cannot re-enter or change a settled state
	assert.False(t, s.Apply(msg))
	assert.Equal(t, StatusReady, s.State().Status)
}

func TestDeactivateDropsInFlightResult(t *testing.T) {
	src := &mockSource{}
	var seen context.Context
	src.On("FetchByCode", mock.Anything, "CHL").Run(func(args mock.Arguments) {
		seen = args.Get(0).(context.Context)
	}).Return(country("CHL", "Chile"), nil)

	s := NewService(src, nil)
	cmd := s.Activate("CHL")
	s.Deactivate()

	msg := cmd().(ResultMsg)
	assert.ErrorIs(t, seen.Err(), context.Canceled)
	assert.False(t, s.Apply(msg))

	st := s.State()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Empty(t, st.Key)
	assert.Nil(t, st.Detail)
	assert.False(t, s.Active())
}

func TestActivateByNameUsesExactLookup(t *testing.T) {
	src := &mockSource{}
	src.On("FetchByExactName", mock.Anything, "Japan").Return(country("JPN", "Japan"), nil).Twice()

	s := NewService(src, nil)
	require.True(t, s.Apply(s.ActivateByName(" Japan ")().(ResultMsg)))
	assert.Equal(t, ByName, s.State().Lookup)
	assert.Equal(t, "JPN", s.State().Detail.Code)

	require.True(t, s.Apply(s.Retry()().(ResultMsg)))
	src.AssertExpectations(t)
	src.AssertNotCalled(t, "FetchByCode", mock.Anything, mock.Anything)
}

func TestPublishesResolvedAndDiscarded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	resolved := make(chan eventbus.DetailResolvedEvent, 4)
	discarded := make(chan eventbus.ResultDiscardedEvent, 4)
	bus.Subscribe(eventbus.EventDetailResolved, func(e eventbus.DomainEvent) {
		resolved <- e.(eventbus.DetailResolvedEvent)
	})
	bus.Subscribe(eventbus.EventResultDiscarded, func(e eventbus.DomainEvent) {
		discarded <- e.(eventbus.ResultDiscardedEvent)
	})

	src := &mockSource{}
	src.On("FetchByCode", mock.Anything, mock.Anything).Return(nil, &countries.Error{Kind: countries.KindCountryNotFound})

	s := NewService(src, bus)
	old := s.Activate("AAA")
	cur := s.Activate("BBB")
	s.Apply(old().(ResultMsg))
	s.Apply(cur().(ResultMsg))

	select {
	case e := <-discarded:
		assert.Equal(t, "detail", e.Source)
		assert.Less(t, e.Seq, e.Latest)
	case <-time.After(time.Second):
		t.Fatal("no discard event")
	}
	select {
	case e := <-resolved:
		assert.Equal(t, "BBB", e.Code)
		assert.Equal(t, "not_found", e.Status)
	case <-time.After(time.Second):
		t.Fatal("no resolved event")
	}
}
