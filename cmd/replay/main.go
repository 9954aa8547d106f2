package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/osse101/BattleItems_Go/internal/bootstrap"
	"github.com/osse101/BattleItems_Go/internal/config"
	"github.com/osse101/BattleItems_Go/internal/replay"
)

func main() {
	scenarioPath := flag.String("scenario", "configs/scenarios/showcase.toml", "Path to a TOML replay scenario")
	asJSON := flag.Bool("json", false, "Print the first run as JSON instead of the transcript")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.SetupLogger(cfg, os.Stderr)

	sc, err := replay.Load(*scenarioPath)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}
	if sc.Seed == "" {
		sc.Seed = cfg.BattleSeed
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	table, err := bootstrap.LoadSpecies(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	runner := replay.NewRunner(cat, table)
	first, second, err := runner.Verify(context.Background(), sc)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	if *asJSON {
		data, err := first.ToPrettyJSON()
		if err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Println(strings.Join(first.Lines(), "\n"))
	}

	exitCode := 0
	if !first.Success {
		fmt.Fprintf(os.Stderr, "✗ Scenario %q failed: %d assertion(s) failed %s\n", first.Scenario, first.FailedAssertions(), first.Error)
		exitCode = 1
	}
	if line, a, b, differs := first.Diff(second); differs {
		fmt.Fprintf(os.Stderr, "✗ Replay diverged at line %d:\n  first:  %s\n  second: %s\n", line, a, b)
		exitCode = 1
	}
	if exitCode == 0 {
		fmt.Fprintf(os.Stderr, "✓ Scenario %q replayed identically with seed %q (%d draws)\n", first.Scenario, first.Seed, first.Draws)
	}
	os.Exit(exitCode)
}
