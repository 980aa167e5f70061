package engine

import (
	"github.com/balkashynov/wrkday/internal/clock"
	"github.com/balkashynov/wrkday/internal/models"
)

// Store is the persistence collaborator. The engine writes through it
// after every successful mutation; it never reads storage mid-operation.
type Store interface {
	Save(state *models.State) error
	Load() (*models.State, error)
}

// Notifier receives fire-and-forget events emitted by the engine.
type Notifier interface {
	LeaveSubmitted(category models.LeaveCategory, days float64)
}

// Engine is the activity-ledger core for one employee session. It owns
// the session state exclusively; the CLI and TUI layers only call the
// operation methods and render what comes back.
//
// Every operation validates first and mutates second, so a failed call
// never leaves state partially updated.
type Engine struct {
	state    *models.State
	clock    clock.Clock
	store    Store
	notifier Notifier

	saveErr error
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore attaches a persistence collaborator.
func WithStore(s Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithNotifier attaches an event consumer.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// New creates an engine around an existing state container.
func New(state *models.State, c clock.Clock, opts ...Option) *Engine {
	if state == nil {
		state = &models.State{}
	}
	e := &Engine{state: state, clock: c}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open loads state from the store and builds an engine over it.
func Open(c clock.Clock, store Store, opts ...Option) (*Engine, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	e := New(state, c, opts...)
	e.store = store
	return e, nil
}

// persist writes state through the store. Persistence is write-after-
// mutate: a failure is recorded but the in-memory mutation stands.
func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	e.saveErr = e.store.Save(e.state)
}

// SaveErr reports the error of the most recent persistence attempt, if
// any. Callers surface it as a warning, not a rollback.
func (e *Engine) SaveErr() error { return e.saveErr }

// State exposes the owned state container for the persistence layer and
// tests. UI code must not mutate it directly.
func (e *Engine) State() *models.State { return e.state }

// nextID allocates the next entity ID within one slice of state. IDs
// are stable across save/load because the store persists them as-is.
func nextID[T any](items []T, id func(T) uint) uint {
	var max uint
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
