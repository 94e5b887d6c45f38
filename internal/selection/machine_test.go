package selection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"antipodes-api/internal/geo"
	"antipodes-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockResolver is a mock implementation of the Resolver interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, c models.Coordinate) (models.SelectionResult, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.SelectionResult), args.Error(1)
}

// recorder collects published snapshots and checks the state/annotation invariant on each.
type recorder struct {
	t     *testing.T
	mu    sync.Mutex
	snaps []Snapshot
}

func record(t *testing.T, m *Machine) *recorder {
	r := &recorder{t: t}
	unsubscribe := m.Subscribe(r.observe)
	t.Cleanup(unsubscribe)
	return r
}

func (r *recorder) observe(s Snapshot) {
	switch {
	case s.State.IsFailed():
		assert.Nil(r.t, s.Primary)
		assert.Nil(r.t, s.Antipode)
	case s.State.IsIdle():
		assert.Equal(r.t, s.Primary == nil, s.Antipode == nil, "annotations must be set or cleared together")
	}
	r.mu.Lock()
	r.snaps = append(r.snaps, s)
	r.mu.Unlock()
}

func (r *recorder) kinds() []models.StateKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.StateKind, 0, len(r.snaps))
	for _, s := range r.snaps {
		out = append(out, s.State.Kind)
	}
	return out
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("selection did not complete")
	}
}

var london = models.Coordinate{Latitude: 51.520847, Longitude: -0.195521}

func TestMachine_Select_Success(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, london).Return(models.SelectionResult{
		Primary: models.ResolvedLocation{Words: "test.words.here", Coordinate: london},
		// Provider squares are not exactly the mathematical antipode.
		Antipode: models.ResolvedLocation{Words: "other.words.there", Coordinate: models.Coordinate{Latitude: -51.52, Longitude: 179.8}},
	}, nil)

	m := New(resolver)
	rec := record(t, m)

	wait(t, m.Select(context.Background(), london))

	snap := m.Snapshot()
	assert.Equal(t, models.Idle(), snap.State)
	require.NotNil(t, snap.Primary)
	require.NotNil(t, snap.Antipode)
	assert.Equal(t, models.LocationAnnotation{Coordinate: london, Words: "test.words.here", Role: models.RolePrimary}, *snap.Primary)
	assert.Equal(t, models.LocationAnnotation{Coordinate: geo.Antipode(london), Words: "other.words.there", Role: models.RoleAntipode}, *snap.Antipode)
	assert.Equal(t, []models.StateKind{models.StateIdle, models.StateLoading, models.StateIdle}, rec.kinds())
	resolver.AssertNumberOfCalls(t, "Resolve", 1)
}

func TestMachine_Select_Failure(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{
			name:            "lookup failed",
			err:             models.NewLookupFailed("Test error"),
			expectedMessage: "lookup failed: Test error",
		},
		{
			name:            "missing words",
			err:             models.ErrMissingWords,
			expectedMessage: models.ErrMissingWords.Error(),
		},
		{
			name:            "missing coordinates",
			err:             models.ErrMissingCoordinates,
			expectedMessage: models.ErrMissingCoordinates.Error(),
		},
		{
			name:            "arbitrary error",
			err:             errors.New("boom"),
			expectedMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(MockResolver)
			resolver.On("Resolve", mock.Anything, london).Return(models.SelectionResult{
				Primary:  models.ResolvedLocation{Words: "a.b.c"},
				Antipode: models.ResolvedLocation{Words: "d.e.f"},
			}, nil).Once()
			resolver.On("Resolve", mock.Anything, london).Return(models.SelectionResult{}, tt.err).Once()

			m := New(resolver)
			rec := record(t, m)

			wait(t, m.Select(context.Background(), london))
			require.NotNil(t, m.Snapshot().Primary)

			wait(t, m.Select(context.Background(), london))

			snap := m.Snapshot()
			assert.Equal(t, models.Failed(tt.expectedMessage), snap.State)
			assert.Nil(t, snap.Primary)
			assert.Nil(t, snap.Antipode)
			assert.Equal(t, []models.StateKind{
				models.StateIdle, models.StateLoading, models.StateIdle, models.StateLoading, models.StateFailed,
			}, rec.kinds())
		})
	}
}

func TestMachine_Select_LoadingBeforeLookupCompletes(t *testing.T) {
	release := make(chan struct{})
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, london).
		Run(func(mock.Arguments) { <-release }).
		Return(models.SelectionResult{}, nil)

	m := New(resolver)
	done := m.Select(context.Background(), london)

	assert.Equal(t, models.Loading(), m.Snapshot().State)

	close(release)
	wait(t, done)
	assert.Equal(t, models.Idle(), m.Snapshot().State)
}

func TestMachine_Clear(t *testing.T) {
	t.Run("idle machine stays idle without publishing", func(t *testing.T) {
		m := New(new(MockResolver))
		rec := record(t, m)

		m.Clear()
		m.Clear()

		assert.Equal(t, Snapshot{State: models.Idle()}, m.Snapshot())
		assert.Equal(t, []models.StateKind{models.StateIdle}, rec.kinds())
	})

	t.Run("removes annotations after a selection", func(t *testing.T) {
		resolver := new(MockResolver)
		resolver.On("Resolve", mock.Anything, london).Return(models.SelectionResult{
			Primary:  models.ResolvedLocation{Words: "a.b.c"},
			Antipode: models.ResolvedLocation{Words: "d.e.f"},
		}, nil)

		m := New(resolver)
		wait(t, m.Select(context.Background(), london))
		m.Clear()

		assert.Equal(t, Snapshot{State: models.Idle()}, m.Snapshot())
	})

	t.Run("resets a failed state", func(t *testing.T) {
		resolver := new(MockResolver)
		resolver.On("Resolve", mock.Anything, london).Return(models.SelectionResult{}, models.ErrMissingWords)

		m := New(resolver)
		wait(t, m.Select(context.Background(), london))
		require.True(t, m.Snapshot().State.IsFailed())

		m.Clear()
		assert.Equal(t, Snapshot{State: models.Idle()}, m.Snapshot())
	})
}

func TestMachine_ClearDuringSelection(t *testing.T) {
	tests := []struct {
		name            string
		policy          Policy
		expectAnnotated bool
	}{
		{name: "last write wins keeps the late result", policy: LastWriteWins, expectAnnotated: true},
		{name: "latest selection drops the late result", policy: LatestSelection, expectAnnotated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := make(chan struct{})
			resolver := new(MockResolver)
			resolver.On("Resolve", mock.Anything, london).
				Run(func(mock.Arguments) { <-release }).
				Return(models.SelectionResult{
					Primary:  models.ResolvedLocation{Words: "a.b.c"},
					Antipode: models.ResolvedLocation{Words: "d.e.f"},
				}, nil)

			m := New(resolver, WithPolicy(tt.policy))
			done := m.Select(context.Background(), london)
			m.Clear()
			assert.Equal(t, Snapshot{State: models.Idle()}, m.Snapshot())

			close(release)
			wait(t, done)

			snap := m.Snapshot()
			assert.Equal(t, models.Idle(), snap.State)
			assert.Equal(t, tt.expectAnnotated, snap.Primary != nil)
			assert.Equal(t, tt.expectAnnotated, snap.Antipode != nil)
		})
	}
}

func TestMachine_OverlappingSelections(t *testing.T) {
	sydney := models.Coordinate{Latitude: -33.8688, Longitude: 151.2093}

	tests := []struct {
		name          string
		policy        Policy
		expectedWords string
	}{
		{name: "last write wins publishes the slower first selection", policy: LastWriteWins, expectedWords: "first.slow.one"},
		{name: "latest selection keeps the second selection", policy: LatestSelection, expectedWords: "second.fast.one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			releaseFirst := make(chan struct{})
			resolver := new(MockResolver)
			resolver.On("Resolve", mock.Anything, london).
				Run(func(mock.Arguments) { <-releaseFirst }).
				Return(models.SelectionResult{
					Primary:  models.ResolvedLocation{Words: "first.slow.one"},
					Antipode: models.ResolvedLocation{Words: "x.y.z"},
				}, nil)
			resolver.On("Resolve", mock.Anything, sydney).
				Return(models.SelectionResult{
					Primary:  models.ResolvedLocation{Words: "second.fast.one"},
					Antipode: models.ResolvedLocation{Words: "x.y.z"},
				}, nil)

			m := New(resolver, WithPolicy(tt.policy))
			rec := record(t, m)

			first := m.Select(context.Background(), london)
			wait(t, m.Select(context.Background(), sydney))
			close(releaseFirst)
			wait(t, first)

			snap := m.Snapshot()
			require.NotNil(t, snap.Primary)
			assert.Equal(t, tt.expectedWords, snap.Primary.Words)
			assert.Equal(t, models.Idle(), snap.State)
			assert.Equal(t, models.StateLoading, rec.kinds()[1])
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, LastWriteWins, p)

	p, err = ParsePolicy("latest-selection")
	require.NoError(t, err)
	assert.Equal(t, LatestSelection, p)

	_, err = ParsePolicy("fifo")
	assert.Error(t, err)
}

func TestMachine_Unsubscribe(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, london).Return(models.SelectionResult{}, models.ErrMissingWords)

	m := New(resolver)
	var count int
	unsubscribe := m.Subscribe(func(Snapshot) { count++ })
	unsubscribe()
	unsubscribe()

	wait(t, m.Select(context.Background(), london))
	assert.Equal(t, 1, count)
}
