package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/osse101/BattleItems_Go/internal/bootstrap"
	"github.com/osse101/BattleItems_Go/internal/config"
	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.SetupLogger(cfg, os.Stderr)

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		fail(err)
	}
	table, err := bootstrap.LoadSpecies(cfg)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Held item catalog: %d items\n", cat.Len())
	for _, kind := range helditem.EffectKinds() {
		ids := cat.ByEffect(kind)
		fmt.Printf("  %-26s %3d\n", kind, len(ids))
	}

	missing := 0
	for _, id := range domain.HeldItemIDs() {
		if _, err := cat.Lookup(id); err != nil {
			fmt.Printf("  ⚠ %s has no catalog entry\n", id)
			missing++
		}
	}

	fmt.Printf("Species table %s: %d species\n", table.Version(), table.Len())
	if missing > 0 {
		fmt.Printf("✗ %d held item(s) missing from the catalog\n", missing)
		os.Exit(1)
	}
	fmt.Println("✓ Catalog and species table are valid")
}

func fail(err error) {
	if errors.Is(err, domain.ErrConfiguration) {
		fmt.Fprintf(os.Stderr, "✗ Configuration error: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
	}
	os.Exit(1)
}
