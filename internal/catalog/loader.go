// Package catalog loads the held item catalog from its JSON definition.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BattleItems_Go/configs"
	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
	"github.com/osse101/BattleItems_Go/internal/validation"
)

// Config represents the JSON configuration for held items
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"required,min=1,dive"`
}

// Def represents a single held item definition in the JSON
type Def struct {
	ID             string `json:"id" validate:"required"`
	MaxStack       int    `json:"max_stack" validate:"min=1"`
	Behavior       string `json:"behavior" validate:"required"`
	Description    string `json:"description"`
	Untransferable bool   `json:"untransferable,omitempty"`
	Unstealable    bool   `json:"unstealable,omitempty"`
	Unsuppressable bool   `json:"unsuppressable,omitempty"`
	Params         Params `json:"params"`
}

// Params holds behavior-specific values; which ones are required depends on the behavior
type Params struct {
	Type          string   `json:"type,omitempty"`
	Stat          string   `json:"stat,omitempty"`
	Stats         []string `json:"stats,omitempty"`
	Species       []string `json:"species,omitempty"`
	Multiplier    float64  `json:"multiplier,omitempty" validate:"gte=0"`
	BoostPercent  float64  `json:"boost_percent,omitempty" validate:"gte=0"`
	ChancePercent float64  `json:"chance_percent,omitempty" validate:"gte=0,lte=100"`
	Amount        int      `json:"amount,omitempty"`
	Stages        int      `json:"stages,omitempty" validate:"gte=0"`
	Status        string   `json:"status,omitempty"`
	Berry         string   `json:"berry,omitempty"`
	TurnsPerStack int      `json:"turns_per_stack,omitempty" validate:"gte=0"`
	Required      int      `json:"required,omitempty" validate:"gte=0"`
}

// Loader handles loading and validating the held item catalog
type Loader interface {
	Load(path string) (*Config, error)
	LoadBytes(data []byte, source string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) (*helditem.Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader. The schema is always read from the embedded configs.
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewFSSchemaValidator(configs.FS),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// LoadDefault builds the catalog shipped with the module
func LoadDefault() (*helditem.Catalog, error) {
	data, err := configs.FS.ReadFile(configs.HeldItemsPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return loadAndBuild(NewLoader(), data, SourceEmbedded)
}

// LoadFile builds a catalog from a file on disk
func LoadFile(path string) (*helditem.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return loadAndBuild(NewLoader(), data, path)
}

func loadAndBuild(l Loader, data []byte, source string) (*helditem.Catalog, error) {
	config, err := l.LoadBytes(data, source)
	if err != nil {
		return nil, err
	}
	c, err := l.Build(config)
	if err != nil {
		return nil, err
	}
	slog.Default().Debug(LogMsgCatalogLoaded, "source", source, "items", c.Len())
	return c, nil
}

// Load reads and parses a held item catalog file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.LoadBytes(data, path)
}

// LoadBytes validates data against the catalog schema and parses it
func (l *catalogLoader) LoadBytes(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, configs.HeldItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgSchemaFailed, domain.ErrInvalidCatalog, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgParseConfigFailed, domain.ErrInvalidCatalog, err)
	}

	return &config, nil
}

// Validate checks the catalog for errors without building it
func (l *catalogLoader) Validate(config *Config) error {
	_, err := l.definitions(config)
	return err
}

// Build validates the catalog and registers every item. The returned catalog is not frozen.
func (l *catalogLoader) Build(config *Config) (*helditem.Catalog, error) {
	defs, err := l.definitions(config)
	if err != nil {
		return nil, err
	}

	c := helditem.NewCatalog()
	for _, def := range defs {
		if err := c.Register(def.ID(), def); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (l *catalogLoader) definitions(config *Config) ([]*helditem.Definition, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}
	if err := l.validate.Struct(config); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, formatValidationError(err))
	}

	// Track ids for duplicate detection
	seen := make(map[domain.HeldItemID]bool, len(config.Items))
	defs := make([]*helditem.Definition, 0, len(config.Items))
	for i := range config.Items {
		def, err := buildDefinition(i, &config.Items[i], seen)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func buildDefinition(index int, item *Def, seen map[domain.HeldItemID]bool) (*helditem.Definition, error) {
	id, err := domain.ParseHeldItemID(item.ID)
	if err != nil {
		return nil, fmt.Errorf("item at index %d: %w", index, err)
	}
	if seen[id] {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrDuplicateItemID, item.ID)
	}
	seen[id] = true

	behavior, err := buildBehavior(item)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtItemInvalid, domain.ErrInvalidDefinition, index, item.ID, err)
	}

	return helditem.NewDefinition(id, item.MaxStack, behavior, helditem.Flags{
		Untransferable: item.Untransferable,
		Unstealable:    item.Unstealable,
		Unsuppressable: item.Unsuppressable,
	})
}

// formatValidationError flattens validator errors into "field: problem" pairs
// without leaking Go struct names
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" "+FieldMsgRequired)
		case "min", "gte":
			msgs = append(msgs, field+" "+fmt.Sprintf(FieldMsgMin, e.Param()))
		default:
			msgs = append(msgs, field+" "+FieldMsgInvalid)
		}
	}
	return strings.Join(msgs, "; ")
}
