package data

import "fmt"

// categoryGroupLabels maps every item category to exactly one location
// group. The table must stay total over ItemCategory: a missing entry is a
// data-authoring defect surfaced at load time.
var categoryGroupLabels = map[ItemCategory]string{
	CategoryWeaponUpgrade5:           "Weapons",
	CategoryWeaponUpgrade10:          "Weapons",
	CategoryWeaponUpgrade10Infusible: "Weapons",
	CategoryShield:                   "Shields",
	CategoryShieldInfusible:          "Shields",
	CategoryArmor:                    "Armor",
	CategoryRing:                     "Rings",
	CategorySpell:                    "Spells",
	CategoryMisc:                     "Miscellaneous",
	CategoryUnique:                   "Unique",
	CategoryBossSoul:                 "Boss Souls",
	CategorySmallSoul:                "Small Souls",
	CategoryUpgrade:                  "Upgrade",
	CategoryHealing:                  "Healing",
}

// standardGroupLabels — все группы, существующие независимо от того, попала
// ли в них хоть одна локация. Порядок повторяет порядок заполнения.
var standardGroupLabels = []string{
	"Prominent",
	"Progression",
	"Boss Rewards",
	"Miniboss Rewards",
	"Mimic Rewards",
	"Hostile NPC Rewards",
	"Friendly NPC Rewards",
	"Small Crystal Lizards",
	"Upgrade",
	"Small Souls",
	"Boss Souls",
	"Unique",
	"Healing",
	"Miscellaneous",
	"Hidden",
	"Weapons",
	"Shields",
	"Armor",
	"Rings",
	"Spells",
}

// groupLabels computes the location groups this location appears in, from
// its flags and its default item's metadata. Events never reach here.
// Progression can be emitted twice (flag and item tier); the destination is
// a set, so the duplicate is harmless.
func (d *locationDef) groupLabels(item ItemInfo) ([]string, error) {
	var names []string
	if d.prominent {
		names = append(names, "Prominent")
	}
	if d.progression {
		names = append(names, "Progression")
	}
	if d.boss {
		names = append(names, "Boss Rewards")
	}
	if d.miniboss {
		names = append(names, "Miniboss Rewards")
	}
	if d.mimic {
		names = append(names, "Mimic Rewards")
	}
	if d.hostileNPC {
		names = append(names, "Hostile NPC Rewards")
	}
	if d.npc {
		names = append(names, "Friendly NPC Rewards")
	}
	if d.lizard {
		names = append(names, "Small Crystal Lizards")
	}
	if d.hidden {
		names = append(names, "Hidden")
	}

	label, ok := categoryGroupLabels[item.Category]
	if !ok {
		return nil, fmt.Errorf("item category %s of %q has no group label", item.Category, item.Name)
	}
	names = append(names, label)

	if item.Classification == ClassificationProgression {
		names = append(names, "Progression")
	}
	return names, nil
}

// GroupDescriptions documents what each standard location group contains.
// Exposed so host-side UIs can render helptext.
var GroupDescriptions = map[string]string{
	"Prominent": "A small number of locations that are in very obvious locations. Mostly boss " +
		"drops. Ideal for setting as priority locations.",
	"Progression": "Locations that contain items in vanilla which unlock other locations.",
	"Boss Rewards": "Boss drops. Does not include soul transfusions or shop items.",
	"Miniboss Rewards": "Miniboss drops. Only includes enemies considered minibosses by the " +
		"enemy randomizer.",
	"Mimic Rewards": "Drops from enemies that are mimics in vanilla.",
	"Hostile NPC Rewards": "Drops from NPCs that are hostile to you. This includes scripted " +
		"invaders and initially-friendly NPCs that must be fought as part of their quest.",
	"Small Crystal Lizards": "Drops from small crystal lizards.",
	"Friendly NPC Rewards": "Items given by friendly NPCs as part of their quests or from " +
		"non-violent interaction.",
	"Upgrade": "Locations that contain upgrade items in vanilla, including titanite, gems, and " +
		"Shriving Stones.",
	"Small Souls": "Locations that contain soul items in vanilla, not including boss souls.",
	"Boss Souls":  "Locations that contain boss souls in vanilla, as well as Soul of Rosaria.",
	"Unique": "Locations that contain items in vanilla that are unique per NG cycle, such as " +
		"scrolls, keys, ashes, and so on. Doesn't cover equipment, spells, or souls.",
	"Healing": "Locations that contain Undead Bone Shards and Estus Shards in vanilla.",
	"Miscellaneous": "Locations that contain generic stackable items in vanilla, such as arrows, " +
		"firebombs, buffs, and so on.",
	"Hidden": "Locations that are particularly difficult to find, such as behind illusory " +
		"walls, down hidden drops, and so on. Does not include large locations like Untended " +
		"Graves or Archdragon Peak.",
	"Weapons": "Locations that contain weapons in vanilla.",
	"Shields": "Locations that contain shields in vanilla.",
	"Armor":   "Locations that contain armor in vanilla.",
	"Rings":   "Locations that contain rings in vanilla.",
	"Spells":  "Locations that contain spells in vanilla.",
}
