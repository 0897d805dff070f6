package team

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Registry is the teams.json document: the set of teams tracked across runs.
type Registry struct {
	Teams []Config `json:"teams"`
}

// LoadRegistry reads a team registry file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading team registry: %w", err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing team registry: %w", err)
	}

	return &reg, nil
}

// Save writes the registry to disk, teams sorted by display name.
func (r *Registry) Save(path string) error {
	sort.Slice(r.Teams, func(i, j int) bool {
		return r.Teams[i].Name < r.Teams[j].Name
	})

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding team registry: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing team registry: %w", err)
	}

	return nil
}

// Merge folds freshly discovered teams into the registry. A previously
// stored team keeps its curated short_name and emoji; discovered values
// only fill in teams not seen before.
func (r *Registry) Merge(discovered []Config) {
	existing := make(map[string]Config, len(r.Teams))
	for _, t := range r.Teams {
		existing[t.Slug] = t
	}

	for _, t := range discovered {
		if old, ok := existing[t.Slug]; ok {
			if old.ShortName != "" {
				t.ShortName = old.ShortName
			}
			if old.Emoji != "" {
				t.Emoji = old.Emoji
			}
		}
		existing[t.Slug] = t
	}

	merged := make([]Config, 0, len(existing))
	for _, t := range existing {
		merged = append(merged, t)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})
	r.Teams = merged
}

// Leagues is the leagues.json document consumed by team discovery.
type Leagues struct {
	Leagues []League `json:"leagues"`
}

// LoadLeagues reads a league list file.
func LoadLeagues(path string) (*Leagues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading league list: %w", err)
	}

	var ll Leagues
	if err := json.Unmarshal(data, &ll); err != nil {
		return nil, fmt.Errorf("parsing league list: %w", err)
	}

	return &ll, nil
}
