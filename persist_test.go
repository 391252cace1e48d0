package fbitda

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/etnz/fbitda/storage"
)

// memStorage is an in-memory Storage that counts writes.
type memStorage struct {
	mu     sync.Mutex
	data   map[string][]byte
	puts   int
	getErr error
	putErr error
}

func newMemStorage() *memStorage { return &memStorage{data: make(map[string][]byte)} }

func (m *memStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return bytes.Clone(v), nil
}

func (m *memStorage) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = bytes.Clone(value)
	return nil
}

func (m *memStorage) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

func TestGateway_RoundTrip(t *testing.T) {
	ctx := context.Background()
	tests := []PersistedSubset{
		DefaultPersistedSubset(),
		{FirstTimeGuidanceOpen: false, User: UserContext{Name: "Ada", Role: RoleInput}},
		{FirstTimeGuidanceOpen: true, User: UserContext{Name: "Grace \"G\" Hopper", Role: RoleApprove}},
		{FirstTimeGuidanceOpen: false, User: UserContext{Name: "", Role: RoleNone}},
	}
	for _, want := range tests {
		t.Run(want.User.Name, func(t *testing.T) {
			g := NewGateway(newMemStorage())
			if err := g.Save(ctx, want); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got := g.Load(ctx)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGateway_RecordFormat(t *testing.T) {
	m := newMemStorage()
	g := NewGateway(m)
	p := PersistedSubset{FirstTimeGuidanceOpen: false, User: UserContext{Name: "Ada", Role: RoleApprove}}
	if err := g.Save(context.Background(), p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	want := `{"isFirstTimeGuidanceOpen":false,"user":{"name":"Ada","role":"team2"}}`
	if got := string(m.data[StorageKey]); got != want {
		t.Errorf("record = %s, want %s", got, want)
	}
}

func TestGateway_Load(t *testing.T) {
	tests := []struct {
		name    string
		record  string // empty for no record
		want    PersistedSubset
		corrupt bool // the record is replaced by the defaults
	}{
		{
			name: "missing record",
			want: DefaultPersistedSubset(),
		},
		{
			name:   "valid record",
			record: `{"isFirstTimeGuidanceOpen":false,"user":{"name":"Ada","role":"team1"}}`,
			want:   PersistedSubset{User: UserContext{Name: "Ada", Role: RoleInput}},
		},
		{
			name:   "extra properties are ignored",
			record: `{"isFirstTimeGuidanceOpen":true,"user":{"name":"Ada","role":"team1","age":36},"v":1}`,
			want:   PersistedSubset{FirstTimeGuidanceOpen: true, User: UserContext{Name: "Ada", Role: RoleInput}},
		},
		{name: "not json", record: `{not json`, want: DefaultPersistedSubset(), corrupt: true},
		{name: "not an object", record: `[1,2]`, want: DefaultPersistedSubset(), corrupt: true},
		{name: "missing guidance", record: `{"user":{"name":"Ada","role":"team1"}}`, want: DefaultPersistedSubset(), corrupt: true},
		{name: "missing user", record: `{"isFirstTimeGuidanceOpen":false}`, want: DefaultPersistedSubset(), corrupt: true},
		{name: "missing role", record: `{"isFirstTimeGuidanceOpen":false,"user":{"name":"Ada"}}`, want: DefaultPersistedSubset(), corrupt: true},
		{name: "unknown role", record: `{"isFirstTimeGuidanceOpen":false,"user":{"name":"Ada","role":"admin"}}`, want: DefaultPersistedSubset(), corrupt: true},
		{name: "wrong type", record: `{"isFirstTimeGuidanceOpen":"no","user":{"name":"Ada","role":"team1"}}`, want: DefaultPersistedSubset(), corrupt: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMemStorage()
			if tt.record != "" {
				m.data[StorageKey] = []byte(tt.record)
			}
			got := NewGateway(m).Load(context.Background())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
			if tt.corrupt {
				if m.writes() != 1 {
					t.Errorf("corrupted record was not reset, %d writes", m.writes())
				}
				again := NewGateway(m).Load(context.Background())
				if diff := cmp.Diff(DefaultPersistedSubset(), again); diff != "" {
					t.Errorf("reloaded record mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestGateway_LoadReadError(t *testing.T) {
	m := newMemStorage()
	m.getErr = errors.New("disk on fire")
	got := NewGateway(m).Load(context.Background())
	if diff := cmp.Diff(DefaultPersistedSubset(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if m.writes() != 0 {
		t.Errorf("an unreadable storage was overwritten")
	}
}

func TestGateway_SaveError(t *testing.T) {
	m := newMemStorage()
	m.putErr = errors.New("read-only")
	err := NewGateway(m).Save(context.Background(), DefaultPersistedSubset())
	if !errors.Is(err, m.putErr) {
		t.Errorf("Save() error = %v, want %v", err, m.putErr)
	}
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	m := newMemStorage()
	s := NewStore(ctx, WithGateway(NewGateway(m)))

	s.SetRole(RoleInput)
	s.SetDisplayName("Ada")
	if got := m.writes(); got != 2 {
		t.Errorf("writes after SetRole and SetDisplayName = %d, want 2", got)
	}

	// Non persisted state never reaches the storage.
	s.UpdateInput(FieldEBITDA, "1000")
	s.Tick()
	s.SetVisibility(FlagVideo, true)
	s.SetVisibility(FlagText, true)
	s.ResetSession()
	if got := m.writes(); got != 2 {
		t.Errorf("writes after non persisted changes = %d, want 2", got)
	}

	s.SetVisibility(FlagGuidance, false)
	if got := m.writes(); got != 3 {
		t.Errorf("writes after closing the guidance = %d, want 3", got)
	}
	s.SetVisibility(FlagGuidance, false) // unchanged
	if got := m.writes(); got != 3 {
		t.Errorf("writes after an unchanged guidance = %d, want 3", got)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// A new store restores the subset, and only the subset.
	restored := NewStore(ctx, WithGateway(NewGateway(m)))
	defer restored.Close()
	got := restored.Snapshot()
	want := PersistedSubset{FirstTimeGuidanceOpen: false, User: UserContext{Name: "Ada", Role: RoleInput}}
	if diff := cmp.Diff(want, got.Persisted()); diff != "" {
		t.Errorf("restored subset mismatch (-want +got):\n%s", diff)
	}
	if got.Visibility.Video || got.Visibility.Text {
		t.Errorf("overlays were restored: %+v", got.Visibility)
	}
	if !got.Inputs.Equal(DefaultInputs()) {
		t.Errorf("inputs were restored: %+v", got.Inputs)
	}
}

func TestStore_PersistenceFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fbitda.json")

	f, err := storage.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	s := NewStore(ctx, WithGateway(NewGateway(f)))
	s.SetRole(RoleApprove)
	s.SetDisplayName("Grace")
	s.Close()

	f, err = storage.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	got := NewGateway(f).Load(ctx)
	want := PersistedSubset{FirstTimeGuidanceOpen: true, User: UserContext{Name: "Grace", Role: RoleApprove}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_SaveErrorIsNotSurfaced(t *testing.T) {
	m := newMemStorage()
	m.putErr = errors.New("read-only")
	s := NewStore(context.Background(), WithGateway(NewGateway(m)))
	s.SetRole(RoleInput)
	s.SetDisplayName("Ada")
	if got := s.Snapshot().User; got != (UserContext{Name: "Ada", Role: RoleInput}) {
		t.Errorf("User = %+v, the in-memory state must survive a failed save", got)
	}
}
