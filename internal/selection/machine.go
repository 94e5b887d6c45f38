// Package selection tracks the view state of the antipode map: the current
// ViewState and the primary and antipode annotations of the last resolved
// selection. Presentation layers observe it through Subscribe and drive it
// through Select and Clear.
package selection

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"antipodes-api/internal/geo"
	"antipodes-api/internal/models"
)

// Resolver resolves a coordinate and its antipode to words.
type Resolver interface {
	Resolve(ctx context.Context, c models.Coordinate) (models.SelectionResult, error)
}

// Policy decides what happens to the result of a selection that has been
// overtaken by a newer Select or Clear.
type Policy string

const (
	// LastWriteWins publishes every result, so the selection that completes last wins.
	LastWriteWins Policy = "last-write-wins"
	// LatestSelection drops results of selections superseded by a later Select or Clear.
	LatestSelection Policy = "latest-selection"
)

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case LastWriteWins, LatestSelection:
		return p, nil
	case "":
		return LastWriteWins, nil
	default:
		return "", fmt.Errorf("selection: unknown policy %q", s)
	}
}

// Snapshot is the observable triple. State and annotations always change together.
type Snapshot struct {
	State    models.ViewState           `json:"state"`
	Primary  *models.LocationAnnotation `json:"primary"`
	Antipode *models.LocationAnnotation `json:"antipode"`
}

// Equal reports whether two snapshots hold the same state and annotations.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.State == o.State && sameAnnotation(s.Primary, o.Primary) && sameAnnotation(s.Antipode, o.Antipode)
}

func sameAnnotation(a, b *models.LocationAnnotation) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Observer receives every published snapshot in publication order.
// Observers run synchronously and must not call back into the Machine.
type Observer func(Snapshot)

// Machine is the selection state machine.
type Machine struct {
	resolver Resolver
	policy   Policy

	// pubMu serializes state writes with observer notification.
	pubMu      sync.Mutex
	generation uint64
	observers  map[int]Observer
	nextID     int

	mu   sync.RWMutex
	snap Snapshot
}

// Option configures a Machine.
type Option func(*Machine)

// WithPolicy sets how superseded selections are handled. The default is LastWriteWins.
func WithPolicy(p Policy) Option {
	return func(m *Machine) { m.policy = p }
}

// New creates an idle Machine with no annotations.
func New(resolver Resolver, opts ...Option) *Machine {
	m := &Machine{
		resolver:  resolver,
		policy:    LastWriteWins,
		observers: make(map[int]Observer),
		snap:      Snapshot{State: models.Idle()},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Policy returns the configured policy.
func (m *Machine) Policy() Policy {
	return m.policy
}

// Snapshot returns the current state and annotations.
func (m *Machine) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Subscribe registers fn and immediately delivers the current snapshot to it.
// The returned function removes the observer.
func (m *Machine) Subscribe(fn Observer) (unsubscribe func()) {
	m.pubMu.Lock()
	id := m.nextID
	m.nextID++
	m.observers[id] = fn
	current := m.Snapshot()
	fn(current)
	m.pubMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.pubMu.Lock()
			delete(m.observers, id)
			m.pubMu.Unlock()
		})
	}
}

// Select moves the machine to Loading before returning and resolves c in the
// background. The returned channel is closed once the outcome is handled.
//
// On success the primary annotation is placed at c and the antipode annotation
// at geo.Antipode(c), whatever coordinates the provider reported. On failure
// both annotations are cleared and the state becomes Failed with the error text.
func (m *Machine) Select(ctx context.Context, c models.Coordinate) <-chan struct{} {
	m.pubMu.Lock()
	m.generation++
	gen := m.generation
	loading := m.Snapshot()
	loading.State = models.Loading()
	m.publishLocked(loading)
	m.pubMu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := m.resolver.Resolve(ctx, c)
		m.finish(gen, c, result, err)
	}()
	return done
}

func (m *Machine) finish(gen uint64, c models.Coordinate, result models.SelectionResult, err error) {
	var next Snapshot
	if err != nil {
		next = Snapshot{State: models.Failed(err.Error())}
	} else {
		next = Snapshot{
			State: models.Idle(),
			Primary: &models.LocationAnnotation{
				Coordinate: c,
				Words:      result.Primary.Words,
				Role:       models.RolePrimary,
			},
			Antipode: &models.LocationAnnotation{
				Coordinate: geo.Antipode(c),
				Words:      result.Antipode.Words,
				Role:       models.RoleAntipode,
			},
		}
	}

	m.pubMu.Lock()
	defer m.pubMu.Unlock()
	if m.policy == LatestSelection && gen != m.generation {
		return
	}
	m.publishLocked(next)
}

// Clear removes both annotations and returns to Idle, regardless of any
// selection still in flight. Under LastWriteWins a later result still lands.
func (m *Machine) Clear() {
	m.pubMu.Lock()
	defer m.pubMu.Unlock()

	m.generation++
	next := Snapshot{State: models.Idle()}
	if next.Equal(m.Snapshot()) {
		return
	}
	m.publishLocked(next)
}

// publishLocked stores next and notifies observers. pubMu must be held.
func (m *Machine) publishLocked(next Snapshot) {
	m.mu.Lock()
	m.snap = next
	m.mu.Unlock()

	ids := make([]int, 0, len(m.observers))
	for id := range m.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		m.observers[id](next)
	}
}
