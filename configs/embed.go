// Package configs embeds the default data files shipped with the module.
package configs

import "embed"

// Paths inside FS
const (
	HeldItemsPath       = "held_items.json"
	HeldItemsSchemaPath = "schemas/held_items.schema.json"
	SpeciesPath         = "species.yaml"
)

// FS holds the default held item catalog, its schema and the species table
//
//go:embed held_items.json species.yaml schemas/*.json
var FS embed.FS
