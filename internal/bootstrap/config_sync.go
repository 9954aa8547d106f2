package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/BattleItems_Go/internal/catalog"
	"github.com/osse101/BattleItems_Go/internal/config"
	"github.com/osse101/BattleItems_Go/internal/helditem"
	"github.com/osse101/BattleItems_Go/internal/species"
)

// LoadCatalog loads the held item catalog from cfg.CatalogPath, or the embedded
// catalog when no path is set. The catalog is returned unfrozen.
func LoadCatalog(cfg *config.Config) (*helditem.Catalog, error) {
	source := sourceName(cfg.CatalogPath)
	slog.Info(LogMsgLoadingCatalog, "source", source)

	var (
		cat *helditem.Catalog
		err error
	)
	if cfg.CatalogPath == "" {
		cat, err = catalog.LoadDefault()
	} else {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded, "source", source, "items", cat.Len())
	return cat, nil
}

// LoadSpecies loads the evolution table from cfg.SpeciesPath, or the embedded table
func LoadSpecies(cfg *config.Config) (*species.Table, error) {
	source := sourceName(cfg.SpeciesPath)
	slog.Info(LogMsgLoadingSpecies, "source", source)

	var (
		table *species.Table
		err   error
	)
	if cfg.SpeciesPath == "" {
		table, err = species.LoadDefault()
	} else {
		table, err = species.Load(cfg.SpeciesPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSpecies, err)
	}

	slog.Info(LogMsgSpeciesLoaded, "source", source, "species", table.Len(), "version", table.Version())
	return table, nil
}

func sourceName(path string) string {
	if path == "" {
		return SourceEmbedded
	}
	return path
}
