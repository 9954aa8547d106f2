// Package species holds the evolution table used to decide whether a creature can still evolve.
package species

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/osse101/BattleItems_Go/configs"
	"github.com/osse101/BattleItems_Go/internal/domain"
)

// Entry is one species row in the YAML table
type Entry struct {
	ID        string   `yaml:"id"`
	EvolvesTo []string `yaml:"evolves_to"`
}

type file struct {
	Version string  `yaml:"version"`
	Species []Entry `yaml:"species"`
}

// Table answers evolution questions. It is read-only after construction and safe for concurrent use.
type Table struct {
	version    string
	evolutions map[domain.SpeciesID][]domain.SpeciesID
}

// Parse decodes and validates a YAML species table
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgParseFailed, domain.ErrInvalidSpecies, err)
	}
	if len(f.Species) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSpecies, ErrMsgNoSpecies)
	}

	t := &Table{
		version:    f.Version,
		evolutions: make(map[domain.SpeciesID][]domain.SpeciesID, len(f.Species)),
	}
	for i, e := range f.Species {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: "+ErrFmtEmptyID, domain.ErrInvalidSpecies, i)
		}
		id := domain.SpeciesID(e.ID)
		if _, dup := t.evolutions[id]; dup {
			return nil, fmt.Errorf("%w: "+ErrFmtDuplicate, domain.ErrInvalidSpecies, e.ID)
		}
		targets := make([]domain.SpeciesID, 0, len(e.EvolvesTo))
		for _, to := range e.EvolvesTo {
			if to == e.ID {
				return nil, fmt.Errorf("%w: "+ErrFmtSelfEvolution, domain.ErrInvalidSpecies, e.ID)
			}
			targets = append(targets, domain.SpeciesID(to))
		}
		t.evolutions[id] = targets
	}

	// Every evolution target must itself be listed
	for id, targets := range t.evolutions {
		for _, to := range targets {
			if _, ok := t.evolutions[to]; !ok {
				return nil, fmt.Errorf("%w: "+ErrFmtUnknownTarget, domain.ErrInvalidSpecies, id, to)
			}
		}
	}

	return t, nil
}

// Load reads a species table from disk
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, err)
	}
	return Parse(data)
}

// LoadDefault returns the table shipped with the module
func LoadDefault() (*Table, error) {
	data, err := configs.FS.ReadFile(configs.SpeciesPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, err)
	}
	return Parse(data)
}

// Version of the loaded table
func (t *Table) Version() string { return t.version }

// Len is the number of species in the table
func (t *Table) Len() int { return len(t.evolutions) }

// Known reports whether the species is in the table
func (t *Table) Known(id domain.SpeciesID) bool {
	_, ok := t.evolutions[id]
	return ok
}

// CanEvolve reports whether the species has at least one evolution. Unknown species cannot evolve.
func (t *Table) CanEvolve(id domain.SpeciesID) bool {
	return len(t.evolutions[id]) > 0
}

// EvolutionsOf returns the species id evolves into, in table order
func (t *Table) EvolutionsOf(id domain.SpeciesID) []domain.SpeciesID {
	return slices.Clone(t.evolutions[id])
}
