package domain

import (
	"fmt"
	"strings"
)

// HeldItemID is the stable key of a held item. Values are append-only and never reused.
type HeldItemID int

const (
	HeldItemNone HeldItemID = iota

	// Attack type boosters
	HeldItemSilkScarf
	HeldItemBlackBelt
	HeldItemSharpBeak
	HeldItemPoisonBarb
	HeldItemSoftSand
	HeldItemHardStone
	HeldItemSilverPowder
	HeldItemSpellTag
	HeldItemMetalCoat
	HeldItemCharcoal
	HeldItemMysticWater
	HeldItemMiracleSeed
	HeldItemMagnet
	HeldItemTwistedSpoon
	HeldItemNeverMeltIce
	HeldItemDragonFang
	HeldItemBlackGlasses
	HeldItemFairyFeather

	// Stat boosters
	HeldItemLightBall
	HeldItemThickClub
	HeldItemMetalPowder
	HeldItemQuickPowder
	HeldItemEviolite

	// Crit boosters
	HeldItemScopeLens
	HeldItemLeek

	// Chance triggers
	HeldItemFocusBand
	HeldItemQuickClaw
	HeldItemKingsRock

	// Recovery and status
	HeldItemLeftovers
	HeldItemShellBell
	HeldItemToxicOrb
	HeldItemFlameOrb
	HeldItemReviverSeed
	HeldItemWhiteHerb

	// Battle utilities
	HeldItemMysticalRock
	HeldItemWideLens
	HeldItemMultiLens
	HeldItemGoldenPunch
	HeldItemBaton
	HeldItemGripClaw
	HeldItemMiniBlackHole

	// Progression
	HeldItemLuckyEgg
	HeldItemGoldenEgg
	HeldItemSootheBell
	HeldItemSoulDew

	// Base stat items
	HeldItemHPUp
	HeldItemProtein
	HeldItemIron
	HeldItemCalcium
	HeldItemZinc
	HeldItemCarbos
	HeldItemShuckleJuice
	HeldItemOldGateau
	HeldItemMachoBrace
	HeldItemGimmighoulEvoTracker

	// Berries
	HeldItemSitrusBerry
	HeldItemLumBerry
	HeldItemLeppaBerry
	HeldItemLiechiBerry
	HeldItemGanlonBerry
	HeldItemSalacBerry
	HeldItemPetayaBerry
	HeldItemApicotBerry
)

var heldItemNames = map[HeldItemID]string{
	HeldItemNone:                 "NONE",
	HeldItemSilkScarf:            "SILK_SCARF",
	HeldItemBlackBelt:            "BLACK_BELT",
	HeldItemSharpBeak:            "SHARP_BEAK",
	HeldItemPoisonBarb:           "POISON_BARB",
	HeldItemSoftSand:             "SOFT_SAND",
	HeldItemHardStone:            "HARD_STONE",
	HeldItemSilverPowder:         "SILVER_POWDER",
	HeldItemSpellTag:             "SPELL_TAG",
	HeldItemMetalCoat:            "METAL_COAT",
	HeldItemCharcoal:             "CHARCOAL",
	HeldItemMysticWater:          "MYSTIC_WATER",
	HeldItemMiracleSeed:          "MIRACLE_SEED",
	HeldItemMagnet:               "MAGNET",
	HeldItemTwistedSpoon:         "TWISTED_SPOON",
	HeldItemNeverMeltIce:         "NEVER_MELT_ICE",
	HeldItemDragonFang:           "DRAGON_FANG",
	HeldItemBlackGlasses:         "BLACK_GLASSES",
	HeldItemFairyFeather:         "FAIRY_FEATHER",
	HeldItemLightBall:            "LIGHT_BALL",
	HeldItemThickClub:            "THICK_CLUB",
	HeldItemMetalPowder:          "METAL_POWDER",
	HeldItemQuickPowder:          "QUICK_POWDER",
	HeldItemEviolite:             "EVIOLITE",
	HeldItemScopeLens:            "SCOPE_LENS",
	HeldItemLeek:                 "LEEK",
	HeldItemFocusBand:            "FOCUS_BAND",
	HeldItemQuickClaw:            "QUICK_CLAW",
	HeldItemKingsRock:            "KINGS_ROCK",
	HeldItemLeftovers:            "LEFTOVERS",
	HeldItemShellBell:            "SHELL_BELL",
	HeldItemToxicOrb:             "TOXIC_ORB",
	HeldItemFlameOrb:             "FLAME_ORB",
	HeldItemReviverSeed:          "REVIVER_SEED",
	HeldItemWhiteHerb:            "WHITE_HERB",
	HeldItemMysticalRock:         "MYSTICAL_ROCK",
	HeldItemWideLens:             "WIDE_LENS",
	HeldItemMultiLens:            "MULTI_LENS",
	HeldItemGoldenPunch:          "GOLDEN_PUNCH",
	HeldItemBaton:                "BATON",
	HeldItemGripClaw:             "GRIP_CLAW",
	HeldItemMiniBlackHole:        "MINI_BLACK_HOLE",
	HeldItemLuckyEgg:             "LUCKY_EGG",
	HeldItemGoldenEgg:            "GOLDEN_EGG",
	HeldItemSootheBell:           "SOOTHE_BELL",
	HeldItemSoulDew:              "SOUL_DEW",
	HeldItemHPUp:                 "HP_UP",
	HeldItemProtein:              "PROTEIN",
	HeldItemIron:                 "IRON",
	HeldItemCalcium:              "CALCIUM",
	HeldItemZinc:                 "ZINC",
	HeldItemCarbos:               "CARBOS",
	HeldItemShuckleJuice:         "SHUCKLE_JUICE",
	HeldItemOldGateau:            "OLD_GATEAU",
	HeldItemMachoBrace:           "MACHO_BRACE",
	HeldItemGimmighoulEvoTracker: "GIMMIGHOUL_EVO_TRACKER",
	HeldItemSitrusBerry:          "SITRUS_BERRY",
	HeldItemLumBerry:             "LUM_BERRY",
	HeldItemLeppaBerry:           "LEPPA_BERRY",
	HeldItemLiechiBerry:          "LIECHI_BERRY",
	HeldItemGanlonBerry:          "GANLON_BERRY",
	HeldItemSalacBerry:           "SALAC_BERRY",
	HeldItemPetayaBerry:          "PETAYA_BERRY",
	HeldItemApicotBerry:          "APICOT_BERRY",
}

var heldItemsByName = func() map[string]HeldItemID {
	m := make(map[string]HeldItemID, len(heldItemNames))
	for id, name := range heldItemNames {
		m[name] = id
	}
	return m
}()

// String returns the catalog key of the item, e.g. "LIGHT_BALL".
func (id HeldItemID) String() string {
	if name, ok := heldItemNames[id]; ok {
		return name
	}
	return fmt.Sprintf("HELD_ITEM(%d)", int(id))
}

// ParseHeldItemID resolves a catalog key (case-insensitive) to its id.
func ParseHeldItemID(name string) (HeldItemID, error) {
	id, ok := heldItemsByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok || id == HeldItemNone {
		return HeldItemNone, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return id, nil
}

// HeldItemIDs returns every known held item id in declaration order, excluding HeldItemNone.
func HeldItemIDs() []HeldItemID {
	ids := make([]HeldItemID, 0, len(heldItemNames))
	for id := HeldItemNone + 1; id <= HeldItemApicotBerry; id++ {
		ids = append(ids, id)
	}
	return ids
}
