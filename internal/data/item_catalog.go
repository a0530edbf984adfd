package data

import (
	"fmt"
	"log/slog"
)

// ItemCategory — категория предмета из ванильной игры.
// Определяет, в какую item-category группу попадает локация предмета.
type ItemCategory int32

const (
	CategoryWeaponUpgrade5 ItemCategory = iota
	CategoryWeaponUpgrade10
	CategoryWeaponUpgrade10Infusible
	CategoryShield
	CategoryShieldInfusible
	CategoryArmor
	CategoryRing
	CategorySpell
	CategoryMisc
	CategoryUnique
	CategoryBossSoul
	CategorySmallSoul
	CategoryUpgrade
	CategoryHealing
)

// String returns human-readable category name.
func (c ItemCategory) String() string {
	switch c {
	case CategoryWeaponUpgrade5:
		return "WeaponUpgrade5"
	case CategoryWeaponUpgrade10:
		return "WeaponUpgrade10"
	case CategoryWeaponUpgrade10Infusible:
		return "WeaponUpgrade10Infusible"
	case CategoryShield:
		return "Shield"
	case CategoryShieldInfusible:
		return "ShieldInfusible"
	case CategoryArmor:
		return "Armor"
	case CategoryRing:
		return "Ring"
	case CategorySpell:
		return "Spell"
	case CategoryMisc:
		return "Misc"
	case CategoryUnique:
		return "Unique"
	case CategoryBossSoul:
		return "BossSoul"
	case CategorySmallSoul:
		return "SmallSoul"
	case CategoryUpgrade:
		return "Upgrade"
	case CategoryHealing:
		return "Healing"
	default:
		return "Unknown"
	}
}

// ItemClassification mirrors the host framework's item tiers.
type ItemClassification int32

const (
	ClassificationFiller ItemClassification = iota
	ClassificationUseful
	ClassificationProgression
)

// String returns human-readable classification name.
func (c ItemClassification) String() string {
	switch c {
	case ClassificationFiller:
		return "Filler"
	case ClassificationUseful:
		return "Useful"
	case ClassificationProgression:
		return "Progression"
	default:
		return "Unknown"
	}
}

// ItemInfo is what location loading needs to know about a default item.
type ItemInfo struct {
	Name           string
	Category       ItemCategory
	Classification ItemClassification
}

// ItemCatalog resolves a default item name to its metadata.
// The builtin catalog backs production loads; tests inject fakes.
type ItemCatalog interface {
	Resolve(name string) (ItemInfo, error)
}

// ItemTable — глобальный registry всех item definitions.
// map[name]*itemDef
var ItemTable map[string]*itemDef

// GetItemDef возвращает itemDef по имени предмета.
// Returns nil если предмет не найден.
func GetItemDef(name string) *itemDef {
	if ItemTable == nil {
		return nil
	}
	return ItemTable[name]
}

// LoadItems строит ItemTable из Go-литералов (itemDefs).
func LoadItems() error {
	ItemTable = make(map[string]*itemDef, len(itemDefs))

	for i := range itemDefs {
		d := &itemDefs[i]
		if _, ok := ItemTable[d.name]; ok {
			return fmt.Errorf("duplicate item name %q in item table", d.name)
		}
		ItemTable[d.name] = d
	}

	slog.Info("loaded item catalog", "count", len(ItemTable))
	return nil
}

// ItemDef accessor methods
func (d *itemDef) Name() string                       { return d.name }
func (d *itemDef) Category() ItemCategory             { return d.category }
func (d *itemDef) Classification() ItemClassification { return d.classification }

// builtinCatalog resolves names against ItemTable.
type builtinCatalog struct{}

// Resolve implements ItemCatalog. Failing to find a name is a
// data-authoring mistake, not a runtime condition.
func (builtinCatalog) Resolve(name string) (ItemInfo, error) {
	d := GetItemDef(name)
	if d == nil {
		return ItemInfo{}, fmt.Errorf("item %q is not in the item catalog", name)
	}
	return ItemInfo{Name: d.name, Category: d.category, Classification: d.classification}, nil
}

// Catalog returns the builtin item catalog.
// LoadItems must have run before the first Resolve call.
func Catalog() ItemCatalog {
	return builtinCatalog{}
}
