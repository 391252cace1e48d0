package fbitda

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the single source of truth of a game: it owns the inputs, the
// derived valuation, the review statuses, the elapsed time, the user and the
// visibility flags.
//
// Every mutation runs atomically: the field update, the valuation recompute
// and the persistence of the PersistedSubset happen before any other
// operation can observe the state. Mutations the current role is not
// allowed to perform, and invalid values, are silently ignored.
//
// A Store is safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	gateway     *Gateway
	catalog     *Catalog
	saveTimeout time.Duration
	closed      bool

	sessionID  string
	inputs     SimulationInputs
	valuation  Valuation
	reviews    Reviews
	elapsed    ElapsedTime
	user       UserContext
	visibility Visibility

	// notifyMu keeps notifications in mutation order.
	notifyMu    sync.Mutex
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Option configures a Store.
type Option func(*Store)

// WithGateway persists the PersistedSubset through g, and restores it when
// the Store is created.
func WithGateway(g *Gateway) Option { return func(s *Store) { s.gateway = g } }

// WithCatalog replaces the embedded term catalog used to validate inputs.
func WithCatalog(c *Catalog) Option { return func(s *Store) { s.catalog = c } }

// WithSaveTimeout bounds every write to the Gateway.
func WithSaveTimeout(d time.Duration) Option { return func(s *Store) { s.saveTimeout = d } }

// NewStore creates a Store with default values, then restores the persisted
// subset when a Gateway is configured.
func NewStore(ctx context.Context, opts ...Option) *Store {
	s := &Store{
		catalog:     Terms(),
		saveTimeout: 2 * time.Second,
		visibility:  DefaultVisibility(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetSessionLocked()

	if s.gateway != nil {
		p := s.gateway.Load(ctx)
		s.user = p.User
		s.visibility.Guidance = p.FirstTimeGuidanceOpen
	}
	return s
}

// Close tears the Store down: the persisted subset is flushed one last time,
// subscribers are dropped and every later mutation is ignored.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.notifyMu.Lock()
	s.subscribers = nil
	s.notifyMu.Unlock()

	if s.gateway == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()
	return s.gateway.Save(ctx, s.persistedLocked())
}

// effect is what a mutation did to the state.
type effect struct {
	changed bool // the snapshot differs, subscribers are notified
	persist bool // the persisted subset must be saved
}

// apply runs mutate under the lock, saves and notifies according to its effect.
func (s *Store) apply(mutate func() effect) {
	s.mu.Lock()
	locked := true
	defer func() {
		if locked {
			s.mu.Unlock()
		}
	}()
	if s.closed {
		return
	}
	e := mutate()
	if e.persist {
		s.saveLocked()
	}
	if !e.changed {
		return
	}
	snap := s.snapshotLocked()
	// notifyMu is taken before releasing mu so that notifications cannot be
	// reordered by a concurrent mutation.
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.Unlock()
	locked = false
	for _, sub := range s.subscribers {
		sub.fn(snap)
	}
}

func (s *Store) saveLocked() {
	if s.gateway == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()
	if err := s.gateway.Save(ctx, s.persistedLocked()); err != nil {
		log.Printf("warning, cannot persist user settings: %v", err)
	}
}

// UpdateInput sets a simulation input and recomputes the valuation. Only
// RoleInput may update inputs.
//
// Numeric fields accept strings, decimals, integers and floats. A value that
// is not a finite number, or is outside the field bounds, is ignored. Text
// fields store the value verbatim.
func (s *Store) UpdateInput(f Field, raw any) {
	s.apply(func() effect {
		if !Permitted(s.user.Role, OpUpdateInput) || !f.Valid() {
			return effect{}
		}
		if !f.IsNumeric() {
			text := parseText(raw)
			if old, _ := s.inputs.Text(f); old == text {
				return effect{}
			}
			s.inputs.setText(f, text)
			return effect{changed: true}
		}

		d, ok := parseNumber(raw)
		if !ok {
			return effect{}
		}
		if t, ok := s.catalog.Lookup(f); ok && !t.Accepts(d) {
			return effect{}
		}
		if old, _ := s.inputs.Number(f); old.Equal(d) {
			return effect{}
		}
		s.inputs.setNumber(f, d)
		s.valuation = Calculate(s.inputs)
		return effect{changed: true}
	})
}

// UpdateFieldStatus sets the review status of one field. Only RoleApprove
// may review fields.
func (s *Store) UpdateFieldStatus(f Field, status ReviewStatus) {
	s.apply(func() effect {
		if !Permitted(s.user.Role, OpUpdateFieldStatus) {
			return effect{}
		}
		return effect{changed: s.reviews.set(f, status)}
	})
}

// ToggleFieldStatus switches a field between ToBeDetermined and Approved.
// Only RoleApprove may review fields.
func (s *Store) ToggleFieldStatus(f Field) {
	s.apply(func() effect {
		if !Permitted(s.user.Role, OpUpdateFieldStatus) {
			return effect{}
		}
		return effect{changed: s.reviews.set(f, s.reviews.Status(f).Toggle())}
	})
}

// Tick adds exactly one second to the elapsed time. It is a pure increment:
// calling it twice counts two seconds.
func (s *Store) Tick() {
	s.apply(func() effect {
		s.elapsed = NewElapsedTime(s.elapsed.TotalSeconds + 1)
		return effect{changed: true}
	})
}

// ResetSession restores the inputs, the review statuses and the elapsed
// time to their defaults, and starts a new session. The user and the
// visibility flags are kept.
func (s *Store) ResetSession() {
	s.apply(func() effect {
		s.resetSessionLocked()
		return effect{changed: true}
	})
}

func (s *Store) resetSessionLocked() {
	s.sessionID = uuid.NewString()
	s.inputs = DefaultInputs()
	s.valuation = Calculate(s.inputs)
	s.reviews = DefaultReviews()
	s.elapsed = NewElapsedTime(0)
}

// SetRole assigns the user role. It is always permitted and persisted.
// Unknown roles are ignored.
func (s *Store) SetRole(r Role) {
	s.apply(func() effect {
		role, err := ParseRole(string(r))
		if err != nil {
			return effect{}
		}
		changed := s.user.Role != role
		s.user.Role = role
		return effect{changed: changed, persist: true}
	})
}

// SetDisplayName sets the user name. It is always permitted and persisted.
func (s *Store) SetDisplayName(name string) {
	s.apply(func() effect {
		changed := s.user.Name != name
		s.user.Name = name
		return effect{changed: changed, persist: true}
	})
}

// SetVisibility opens or closes a panel. Only the guidance panel is persisted.
func (s *Store) SetVisibility(f Flag, value bool) {
	s.apply(func() effect {
		changed := s.visibility.set(f, value)
		return effect{changed: changed, persist: changed && f == FlagGuidance}
	})
}

// Subscribe registers fn to receive a snapshot after every mutation that
// changed the state, in mutation order. fn runs on the mutating goroutine
// and must not call back into the Store, it gets everything it needs in the
// snapshot. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns an immutable copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Advisories returns the classification and warnings of the current inputs.
func (s *Store) Advisories() []Advice {
	s.mu.Lock()
	in := s.inputs
	c := s.catalog
	s.mu.Unlock()
	return c.Advise(in)
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID:  s.sessionID,
		Inputs:     s.inputs,
		Valuation:  s.valuation,
		Reviews:    s.reviews,
		Elapsed:    s.elapsed,
		User:       s.user,
		Visibility: s.visibility,
	}
}

func (s *Store) persistedLocked() PersistedSubset {
	return PersistedSubset{FirstTimeGuidanceOpen: s.visibility.Guidance, User: s.user}
}
