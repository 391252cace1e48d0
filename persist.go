package fbitda

import (
	"context"
	"errors"
	"fmt"
	"log"

	json "github.com/goccy/go-json"

	"github.com/etnz/fbitda/storage"
)

// StorageKey is the well-known key the persisted subset is saved under.
const StorageKey = "fbitda-storage"

// PersistedSubset is the only part of the state that survives a restart.
type PersistedSubset struct {
	FirstTimeGuidanceOpen bool        `json:"isFirstTimeGuidanceOpen"`
	User                  UserContext `json:"user"`
}

// DefaultPersistedSubset is used when nothing valid was ever saved.
func DefaultPersistedSubset() PersistedSubset {
	return PersistedSubset{FirstTimeGuidanceOpen: DefaultVisibility().Guidance}
}

// Storage is a durable key/value storage.
// Get returns storage.ErrNotFound when the key was never written.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Gateway saves and loads the PersistedSubset.
type Gateway struct {
	storage Storage
	key     string
}

// NewGateway returns a Gateway storing the subset under StorageKey.
func NewGateway(s Storage) *Gateway {
	return &Gateway{storage: s, key: StorageKey}
}

// Save writes the subset.
func (g *Gateway) Save(ctx context.Context, p PersistedSubset) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal persisted subset: %w", err)
	}
	if err := g.storage.Put(ctx, g.key, payload); err != nil {
		return fmt.Errorf("save %q: %w", g.key, err)
	}
	return nil
}

// Load reads the subset back. It never fails: a missing record, an
// unreadable storage or a record that does not match the expected shape all
// yield DefaultPersistedSubset. A corrupted record is overwritten with the
// defaults.
func (g *Gateway) Load(ctx context.Context) PersistedSubset {
	payload, err := g.storage.Get(ctx, g.key)
	if errors.Is(err, storage.ErrNotFound) {
		return DefaultPersistedSubset()
	}
	if err != nil {
		log.Printf("warning, cannot read %q, using defaults: %v", g.key, err)
		return DefaultPersistedSubset()
	}

	p, err := decodePersistedSubset(payload)
	if err != nil {
		log.Printf("warning, discarding corrupted record %q: %v", g.key, err)
		p = DefaultPersistedSubset()
		if err := g.Save(ctx, p); err != nil {
			log.Printf("warning, cannot reset %q: %v", g.key, err)
		}
	}
	return p
}

// decodePersistedSubset parses a stored record, every property is required.
func decodePersistedSubset(payload []byte) (PersistedSubset, error) {
	// to parse the json, we use a dedicated local struct with pointers to
	// detect missing properties.
	type juser struct {
		Name *string `json:"name"`
		Role *Role   `json:"role"`
	}
	type jrecord struct {
		Guidance *bool  `json:"isFirstTimeGuidanceOpen"`
		User     *juser `json:"user"`
	}

	var rec jrecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return PersistedSubset{}, fmt.Errorf("not a valid record: %w", err)
	}
	switch {
	case rec.Guidance == nil:
		return PersistedSubset{}, fmt.Errorf("missing property %q", "isFirstTimeGuidanceOpen")
	case rec.User == nil:
		return PersistedSubset{}, fmt.Errorf("missing property %q", "user")
	case rec.User.Name == nil:
		return PersistedSubset{}, fmt.Errorf("missing property %q", "user.name")
	case rec.User.Role == nil:
		return PersistedSubset{}, fmt.Errorf("missing property %q", "user.role")
	}
	return PersistedSubset{
		FirstTimeGuidanceOpen: *rec.Guidance,
		User:                  UserContext{Name: *rec.User.Name, Role: *rec.User.Role},
	}, nil
}
