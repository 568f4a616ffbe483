// Package solutions loads the catalogue mapping abstract setting
// identifiers to concrete platform handlers and dispatches
// get/set/increment through the matching handler.
package solutions

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrNotFound is returned by GetSetting for ids absent from the catalogue.
// Callers treat this as recoverable, never fatal to the whole catalogue.
var ErrNotFound = errors.New("setting not found")

// Solutions is the loaded catalogue. Loaded once at startup and read-only
// thereafter; shared by every action that references settings.
type Solutions struct {
	settings map[string]*Setting
}

// document is the JSON shape of a solutions catalogue file.
type document struct {
	Solutions []struct {
		ID       string `json:"id"`
		Settings []struct {
			Name    string             `json:"name"`
			Handler HandlerDescription `json:"handler"`
		} `json:"settings"`
	} `json:"solutions"`
}

// Load reads and validates a solutions catalogue file. A malformed entry
// fails the whole load so the catalogue never contains half-initialized
// settings.
func Load(path string) (*Solutions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load solutions: %w", err)
	}
	return Parse(b)
}

// Parse decodes a solutions catalogue document.
func Parse(b []byte) (*Solutions, error) {
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse solutions: %w", err)
	}

	s := &Solutions{settings: make(map[string]*Setting)}
	for _, sol := range doc.Solutions {
		if sol.ID == "" {
			return nil, fmt.Errorf("parse solutions: solution with empty id")
		}
		for _, set := range sol.Settings {
			if set.Name == "" {
				return nil, fmt.Errorf("parse solutions: solution %s has a setting with empty name", sol.ID)
			}
			setting := &Setting{
				SolutionID: sol.ID,
				Name:       set.Name,
				Handler:    set.Handler,
			}
			if _, dup := s.settings[setting.ID()]; dup {
				return nil, fmt.Errorf("parse solutions: duplicate setting id %s", setting.ID())
			}
			s.settings[setting.ID()] = setting
		}
	}
	return s, nil
}

// GetSetting looks up a setting by its fully qualified id
// ("solution/name"). Absent ids return ErrNotFound.
func (s *Solutions) GetSetting(id string) (*Setting, error) {
	setting, ok := s.settings[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return setting, nil
}

// IDs returns all fully qualified setting ids, sorted.
func (s *Solutions) IDs() []string {
	ids := make([]string, 0, len(s.settings))
	for id := range s.settings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
