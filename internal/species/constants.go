package species

// Error messages
const (
	ErrMsgReadFailed    = "failed to read species table: %w"
	ErrMsgParseFailed   = "failed to parse species YAML: %w"
	ErrFmtEmptyID       = "species at index %d has no id"
	ErrFmtDuplicate     = "duplicate species '%s'"
	ErrFmtUnknownTarget = "species '%s' evolves to unknown species '%s'"
	ErrFmtSelfEvolution = "species '%s' evolves into itself"
	ErrMsgNoSpecies     = "no species defined"
)
