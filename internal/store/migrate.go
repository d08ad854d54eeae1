package store

import (
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/rebalance/internal/money"
)

// Migrate upgrades stored values to SchemaVersion. It is run by Open and
// is safe to call again.
func (s *Store) Migrate() error {
	v, err := s.Version()
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if v < 2 {
		if err := s.foldLegacySurvival(); err != nil {
			return fmt.Errorf("v2: %w", err)
		}
	}
	if v != SchemaVersion {
		return s.setVersion(SchemaVersion)
	}
	return nil
}

// foldLegacySurvival moves the standalone survival cost into settings,
// unless settings already carry one.
func (s *Store) foldLegacySurvival() error {
	raw, ok, err := s.Get(KeyLegacySurvival)
	if err != nil || !ok {
		return err
	}
	var legacy any
	if err := json.Unmarshal(raw, &legacy); err != nil {
		legacy = string(raw)
	}

	settings := map[string]any{"includeDebtInSurvival": true}
	if data, ok, err := s.Get(KeySettings); err != nil {
		return err
	} else if ok {
		var existing map[string]any
		if json.Unmarshal(data, &existing) == nil && existing != nil {
			settings = existing
		}
	}
	if _, has := settings["survivalCost"]; has {
		return nil
	}
	settings["survivalCost"] = money.SafeInt(legacy)
	return s.Save(KeySettings, settings)
}
