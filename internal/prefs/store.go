// ABOUTME: User preference store backed by Badger.
// ABOUTME: Holds home stat selection, weight unit, and language; corrupt values fall back to defaults.
package prefs

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
)

// Preference keys. Each key maps to one serialized value; writes are
// last-write-wins with no cross-key transactions.
const (
	keyEnabledStats = "enabled_home_stats"
	keyWeightUnit   = "weight_unit"
	keyAppLanguage  = "app_language"
)

// DefaultLanguage is used until the user picks something else.
const DefaultLanguage = "en"

// Store persists user preferences in a Badger database. Preferences
// live in their own consistency domain, separate from the fitness
// records store.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the preference database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get returns the raw value for a key, or nil when the key is unset.
func (s *Store) get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preference %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("write preference %s: %w", key, err)
	}
	return nil
}

// EnabledStats returns the ordered list of stats shown on the home
// screen. Unset or corrupt values yield the default selection.
func (s *Store) EnabledStats() ([]models.StatType, error) {
	raw, err := s.get(keyEnabledStats)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return defaultStats(), nil
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		// Corrupt payload: fall back rather than fail.
		return defaultStats(), nil
	}
	stats := models.ParseStatTypes(names)
	if len(stats) == 0 {
		return defaultStats(), nil
	}
	return stats, nil
}

// SetEnabledStats replaces the ordered home stat selection.
func (s *Store) SetEnabledStats(stats []models.StatType) error {
	names := make([]string, len(stats))
	for i, st := range stats {
		names[i] = string(st)
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return s.set(keyEnabledStats, raw)
}

// ToggleStat enables a disabled stat (appended at the end) or disables
// an enabled one, preserving the order of the rest.
func (s *Store) ToggleStat(stat models.StatType) error {
	current, err := s.EnabledStats()
	if err != nil {
		return err
	}

	next := current[:0:0]
	removed := false
	for _, st := range current {
		if st == stat {
			removed = true
			continue
		}
		next = append(next, st)
	}
	if !removed {
		next = append(next, stat)
	}
	return s.SetEnabledStats(next)
}

// MoveStat repositions an enabled stat to the given index. Out-of-range
// targets clamp to the list bounds; moving an absent stat is a no-op.
func (s *Store) MoveStat(stat models.StatType, to int) error {
	current, err := s.EnabledStats()
	if err != nil {
		return err
	}

	from := -1
	for i, st := range current {
		if st == stat {
			from = i
			break
		}
	}
	if from == -1 {
		return nil
	}

	current = append(current[:from], current[from+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(current) {
		to = len(current)
	}
	current = append(current[:to], append([]models.StatType{stat}, current[to:]...)...)
	return s.SetEnabledStats(current)
}

// WeightUnit returns the display unit for weights, defaulting to
// kilograms. Stored values never change the canonical kg storage.
func (s *Store) WeightUnit() (models.WeightUnit, error) {
	raw, err := s.get(keyWeightUnit)
	if err != nil {
		return models.UnitKilograms, err
	}
	switch string(raw) {
	case string(models.UnitPounds):
		return models.UnitPounds, nil
	case string(models.UnitKilograms), "":
		return models.UnitKilograms, nil
	default:
		// Corrupt value, keep the default.
		return models.UnitKilograms, nil
	}
}

// SetWeightUnit sets the display unit for weights.
func (s *Store) SetWeightUnit(u models.WeightUnit) error {
	return s.set(keyWeightUnit, []byte(u))
}

// Language returns the UI language code, defaulting to English.
func (s *Store) Language() (string, error) {
	raw, err := s.get(keyAppLanguage)
	if err != nil {
		return DefaultLanguage, err
	}
	if len(raw) == 0 {
		return DefaultLanguage, nil
	}
	return string(raw), nil
}

// SetLanguage sets the UI language code. Codes are stored verbatim;
// unknown languages fall back at lookup time, not here.
func (s *Store) SetLanguage(code string) error {
	return s.set(keyAppLanguage, []byte(code))
}

// defaultStats copies the default selection so callers cannot mutate it.
func defaultStats() []models.StatType {
	return append([]models.StatType(nil), models.DefaultHomeStats...)
}
