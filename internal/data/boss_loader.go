package data

import "slices"

// Bosses returns every boss slot in encounter order.
// The returned slice is shared; callers must not mutate it.
func Bosses() []*bossDef {
	out := make([]*bossDef, len(bossDefs))
	for i := range bossDefs {
		out[i] = &bossDefs[i]
	}
	return out
}

// BossCount returns the number of boss slots.
func BossCount() int { return len(bossDefs) }

// BossAt returns the boss slot at position i.
// Returns nil если индекс вне диапазона.
func BossAt(i int) *bossDef {
	if i < 0 || i >= len(bossDefs) {
		return nil
	}
	return &bossDefs[i]
}

// StandInBoss returns the fallback boss usable to replace any slot.
func StandInBoss() *bossDef { return &standInBossDef }

// BossDef accessor methods
func (d *bossDef) Name() string      { return d.name }
func (d *bossDef) GameID() int32     { return d.gameID }
func (d *bossDef) Unlocks() []string { return d.unlocks }

// UnlocksLocation reports whether defeating this boss unblocks the named
// location.
func (d *bossDef) UnlocksLocation(name string) bool {
	return slices.Contains(d.unlocks, name)
}
