package domain

// Stat stage bounds
const (
	MinStatStage = -6
	MaxStatStage = 6
)

// Base stat bounds applied after flat base-stat adjustments
const (
	MinBaseStat = 1
	MaxBaseStat = 999999
)
