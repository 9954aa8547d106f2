package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Stat identifies a permanent or in-battle stat
type Stat string

const (
	StatHP    Stat = "HP"
	StatATK   Stat = "ATK"
	StatDEF   Stat = "DEF"
	StatSPATK Stat = "SPATK"
	StatSPDEF Stat = "SPDEF"
	StatSPD   Stat = "SPD"
	StatACC   Stat = "ACC"
	StatEVA   Stat = "EVA"
)

// PermanentStats are the stats a base-stat array is indexed by, in array order.
var PermanentStats = []Stat{StatHP, StatATK, StatDEF, StatSPATK, StatSPDEF, StatSPD}

// BattleStats are the stats that carry an in-battle stage.
var BattleStats = []Stat{StatATK, StatDEF, StatSPATK, StatSPDEF, StatSPD, StatACC, StatEVA}

// Index returns the position of a permanent stat in a base-stat array, or -1.
func (s Stat) Index() int {
	return slices.Index(PermanentStats, s)
}

// IsPermanent reports whether the stat belongs to a base-stat array
func (s Stat) IsPermanent() bool {
	return s.Index() >= 0
}

// Valid reports whether s is a known stat
func (s Stat) Valid() bool {
	return s.IsPermanent() || s == StatACC || s == StatEVA
}

// ParseStat resolves a stat name (case-insensitive)
func ParseStat(name string) (Stat, error) {
	s := Stat(strings.ToUpper(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown stat %q", ErrInvalidInput, name)
	}
	return s, nil
}

// PokemonType is an elemental type of a move or creature
type PokemonType string

const (
	TypeNormal   PokemonType = "NORMAL"
	TypeFighting PokemonType = "FIGHTING"
	TypeFlying   PokemonType = "FLYING"
	TypePoison   PokemonType = "POISON"
	TypeGround   PokemonType = "GROUND"
	TypeRock     PokemonType = "ROCK"
	TypeBug      PokemonType = "BUG"
	TypeGhost    PokemonType = "GHOST"
	TypeSteel    PokemonType = "STEEL"
	TypeFire     PokemonType = "FIRE"
	TypeWater    PokemonType = "WATER"
	TypeGrass    PokemonType = "GRASS"
	TypeElectric PokemonType = "ELECTRIC"
	TypePsychic  PokemonType = "PSYCHIC"
	TypeIce      PokemonType = "ICE"
	TypeDragon   PokemonType = "DRAGON"
	TypeDark     PokemonType = "DARK"
	TypeFairy    PokemonType = "FAIRY"
)

var pokemonTypes = []PokemonType{
	TypeNormal, TypeFighting, TypeFlying, TypePoison, TypeGround, TypeRock,
	TypeBug, TypeGhost, TypeSteel, TypeFire, TypeWater, TypeGrass,
	TypeElectric, TypePsychic, TypeIce, TypeDragon, TypeDark, TypeFairy,
}

// Valid reports whether t is a known type
func (t PokemonType) Valid() bool {
	return slices.Contains(pokemonTypes, t)
}

// StatusEffect is a non-volatile status condition
type StatusEffect string

const (
	StatusNone      StatusEffect = "NONE"
	StatusPoison    StatusEffect = "POISON"
	StatusToxic     StatusEffect = "TOXIC"
	StatusParalysis StatusEffect = "PARALYSIS"
	StatusSleep     StatusEffect = "SLEEP"
	StatusFreeze    StatusEffect = "FREEZE"
	StatusBurn      StatusEffect = "BURN"
	StatusFaint     StatusEffect = "FAINT"
)

// Valid reports whether s is a status a held item may inflict
func (s StatusEffect) Valid() bool {
	switch s {
	case StatusPoison, StatusToxic, StatusParalysis, StatusSleep, StatusFreeze, StatusBurn:
		return true
	default:
		return false
	}
}

// BerryType identifies a berry's effect
type BerryType string

const (
	BerrySitrus BerryType = "SITRUS"
	BerryLum    BerryType = "LUM"
	BerryLeppa  BerryType = "LEPPA"
	BerryLiechi BerryType = "LIECHI"
	BerryGanlon BerryType = "GANLON"
	BerrySalac  BerryType = "SALAC"
	BerryPetaya BerryType = "PETAYA"
	BerryApicot BerryType = "APICOT"
)

// berryStats maps stat-raising berries to the stat they raise
var berryStats = map[BerryType]Stat{
	BerryLiechi: StatATK,
	BerryGanlon: StatDEF,
	BerrySalac:  StatSPD,
	BerryPetaya: StatSPATK,
	BerryApicot: StatSPDEF,
}

// StatRaised returns the stat a pinch berry raises
func (b BerryType) StatRaised() (Stat, bool) {
	s, ok := berryStats[b]
	return s, ok
}

// Valid reports whether b is a known berry
func (b BerryType) Valid() bool {
	switch b {
	case BerrySitrus, BerryLum, BerryLeppa:
		return true
	}
	_, ok := berryStats[b]
	return ok
}

// SpeciesID names a species, e.g. "PIKACHU" or "ALOLA_MAROWAK"
type SpeciesID string
