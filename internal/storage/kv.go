// ABOUTME: Repository implementation over any byte-oriented key-value store.
// ABOUTME: Records are JSON under type-prefixed keys, filtered client-side.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
)

// Key prefixes for each record type.
const (
	PlayerPrefix = "player:"
	EntryPrefix  = "entry:"
	InjuryPrefix = "injury:"
	SettingsKey  = "settings"
)

// ErrKeyNotFound is returned by KV.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// KV is the minimal key-value contract the wellness data needs.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Keys() ([][]byte, error)
	Close() error
}

// KVStore implements Repository on a KV.
type KVStore struct {
	kv KV
}

// NewKVStore wraps a KV.
func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

func entryKey(e *models.WellnessEntry) string {
	return EntryPrefix + e.Date + ":" + e.Name
}

func (s *KVStore) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.kv.Set([]byte(key), data)
}

func (s *KVStore) remove(key string) error {
	if _, err := s.kv.Get([]byte(key)); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return fmt.Errorf("delete %s: %w", key, ErrNotFound)
		}
		return err
	}
	return s.kv.Delete([]byte(key))
}

// valuesByPrefix returns all values whose key starts with prefix.
func (s *KVStore) valuesByPrefix(prefix string) ([][]byte, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}

	var out [][]byte
	p := []byte(prefix)
	for _, key := range keys {
		if !bytes.HasPrefix(key, p) {
			continue
		}
		val, err := s.kv.Get(key)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

func listJSON[T any](s *KVStore, prefix string) ([]*T, error) {
	values, err := s.valuesByPrefix(prefix)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(values))
	for _, data := range values {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			continue // Skip invalid entries
		}
		out = append(out, &v)
	}
	return out, nil
}

// SavePlayer stores a player under its ID.
func (s *KVStore) SavePlayer(p *models.Player) error {
	if err := s.put(PlayerPrefix+p.ID.String(), p); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

// DeletePlayer removes a player.
func (s *KVStore) DeletePlayer(id uuid.UUID) error {
	return s.remove(PlayerPrefix + id.String())
}

// ListPlayers returns every player sorted by name.
func (s *KVStore) ListPlayers() ([]*models.Player, error) {
	players, err := listJSON[models.Player](s, PlayerPrefix)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

// SaveEntries upserts entries by (date, name).
func (s *KVStore) SaveEntries(entries []*models.WellnessEntry) error {
	for _, e := range entries {
		if err := s.put(entryKey(e), e); err != nil {
			return fmt.Errorf("save entry %s/%s: %w", e.Date, e.Name, err)
		}
	}
	return nil
}

// SaveImport writes players then entries. On failure every key it touched
// is put back to its previous value.
func (s *KVStore) SaveImport(players []*models.Player, entries []*models.WellnessEntry) error {
	type prior struct {
		key   []byte
		value []byte
	}
	var written []prior

	write := func(key string, v any) error {
		old, err := s.kv.Get([]byte(key))
		if err != nil && !errors.Is(err, ErrKeyNotFound) {
			return err
		}
		written = append(written, prior{key: []byte(key), value: old})
		return s.put(key, v)
	}

	var err error
	for _, p := range players {
		if err = write(PlayerPrefix+p.ID.String(), p); err != nil {
			err = fmt.Errorf("save player %s: %w", p.Name, err)
			break
		}
	}
	if err == nil {
		for _, e := range entries {
			if err = write(entryKey(e), e); err != nil {
				err = fmt.Errorf("save entry %s/%s: %w", e.Date, e.Name, err)
				break
			}
		}
	}
	if err == nil {
		return nil
	}

	for i := len(written) - 1; i >= 0; i-- {
		w := written[i]
		if w.value == nil {
			_ = s.kv.Delete(w.key)
		} else {
			_ = s.kv.Set(w.key, w.value)
		}
	}
	return err
}

// ListEntries returns every entry ordered by date then name.
func (s *KVStore) ListEntries() ([]*models.WellnessEntry, error) {
	entries, err := listJSON[models.WellnessEntry](s, EntryPrefix)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// SaveInjury stores an injury under its ID.
func (s *KVStore) SaveInjury(i *models.Injury) error {
	if err := s.put(InjuryPrefix+i.ID.String(), i); err != nil {
		return fmt.Errorf("save injury: %w", err)
	}
	return nil
}

// DeleteInjury removes an injury.
func (s *KVStore) DeleteInjury(id uuid.UUID) error {
	return s.remove(InjuryPrefix + id.String())
}

// ListInjuries returns every injury, most recent first.
func (s *KVStore) ListInjuries() ([]*models.Injury, error) {
	injuries, err := listJSON[models.Injury](s, InjuryPrefix)
	if err != nil {
		return nil, fmt.Errorf("list injuries: %w", err)
	}
	sort.Slice(injuries, func(i, j int) bool {
		if !injuries[i].Date.Equal(injuries[j].Date) {
			return injuries[i].Date.After(injuries[j].Date)
		}
		return injuries[i].CreatedAt.After(injuries[j].CreatedAt)
	})
	return injuries, nil
}

// SaveSettings stores the settings document.
func (s *KVStore) SaveSettings(settings models.Settings) error {
	if err := s.put(SettingsKey, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadSettings returns the stored settings, or nil if none were saved.
func (s *KVStore) LoadSettings() (*models.Settings, error) {
	data, err := s.kv.Get([]byte(SettingsKey))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return decodeSettings(data)
}

// Clear deletes every wellness key.
func (s *KVStore) Clear() error {
	keys, err := s.kv.Keys()
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	for _, key := range keys {
		if isWellnessKey(key) {
			if err := s.kv.Delete(key); err != nil {
				return fmt.Errorf("clear %s: %w", key, err)
			}
		}
	}
	return nil
}

func isWellnessKey(key []byte) bool {
	for _, p := range []string{PlayerPrefix, EntryPrefix, InjuryPrefix} {
		if bytes.HasPrefix(key, []byte(p)) {
			return true
		}
	}
	return string(key) == SettingsKey
}

// Close closes the underlying KV.
func (s *KVStore) Close() error {
	return s.kv.Close()
}

// MemoryKV is a process-local KV for the ephemeral backend and tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns a copy of the value for key.
func (m *MemoryKV) Get(key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value.
func (m *MemoryKV) Set(key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[string(key)] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (m *MemoryKV) Delete(key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, string(key))
	return nil
}

// Keys returns every key in sorted order.
func (m *MemoryKV) Keys() ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.data))
	for k := range m.data {
		names = append(names, k)
	}
	sort.Strings(names)
	keys := make([][]byte, len(names))
	for i, k := range names {
		keys[i] = []byte(k)
	}
	return keys, nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error {
	return nil
}
