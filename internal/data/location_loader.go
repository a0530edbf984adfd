package data

import (
	"fmt"
	"log/slog"
	"strings"
)

// locationAddressBase — первый address, выдаваемый не-event локациям.
const locationAddressBase = 100000

// LocationTable — глобальный registry всех локаций.
// map[name]*locationDef
var LocationTable map[string]*locationDef

// LocationGroups — глобальный group index.
// map[label]set-of-location-names
var LocationGroups map[string]map[string]struct{}

// GetLocation возвращает locationDef по имени.
// Returns nil если локация не найдена.
func GetLocation(name string) *locationDef {
	if LocationTable == nil {
		return nil
	}
	return LocationTable[name]
}

// GroupMembers returns the set of location names in the named group, or nil
// if no such group exists. Callers must not mutate the returned set.
func GroupMembers(label string) map[string]struct{} {
	if LocationGroups == nil {
		return nil
	}
	return LocationGroups[label]
}

// Regions returns region names in table-declaration order.
func Regions() []string {
	out := make([]string, len(locationSlots))
	for i := range locationSlots {
		out[i] = locationSlots[i].region
	}
	return out
}

// RegionLocations returns the ordered location table of the given region,
// or nil if the region has no declared table.
func RegionLocations(region string) []*locationDef {
	for i := range locationSlots {
		if locationSlots[i].region != region {
			continue
		}
		locs := locationSlots[i].locations
		out := make([]*locationDef, len(locs))
		for j := range locs {
			out[j] = &locs[j]
		}
		return out
	}
	return nil
}

// RegionRank returns the position of the region in RegionOrder.
func RegionRank(region string) (int, bool) {
	for i, r := range RegionOrder {
		if r == region {
			return i, true
		}
	}
	return 0, false
}

// LoadLocations строит LocationTable и LocationGroups из Go-литералов
// (locationSlots), прогоняя annotation pass поверх таблиц.
// Любая ошибка здесь — дефект статических данных; загрузка прерывается.
func LoadLocations(catalog ItemCatalog) error {
	idx, err := buildLocations(locationSlots, RegionOrder, conditionalRegions, catalog)
	if err != nil {
		return err
	}
	LocationTable = idx.byName
	LocationGroups = idx.groups

	slog.Info("loaded location tables",
		"regions", len(locationSlots),
		"locations", len(LocationTable),
		"groups", len(LocationGroups))
	return nil
}

// locationIndex — результат annotation pass.
type locationIndex struct {
	byName map[string]*locationDef
	groups map[string]map[string]struct{}
}

// buildLocations runs the annotation pass over the given tables:
//
//  1. Assigns sequential addresses to non-event records in declaration
//     order across all tables.
//  2. Derives the drop flag from miniboss/mimic/hostileNPC/lizard.
//  3. Assigns each record the rank of its region in the priority list.
//  4. Forces conditional on every record of the conditional regions.
//  5. Builds the name index, rejecting duplicate names.
//  6. Builds the group index from groupLabels plus one region-named group
//     per region whose name does not end in " Shop".
//
// The pass is deterministic and idempotent: re-running it over the same
// tables assigns the same addresses and builds the same indices.
func buildLocations(
	slots []regionTableDef,
	order []string,
	conditional map[string]struct{},
	catalog ItemCatalog,
) (*locationIndex, error) {
	ranks := make(map[string]int, len(order))
	for i, region := range order {
		ranks[region] = i
	}

	total := 0
	for i := range slots {
		total += len(slots[i].locations)
	}
	idx := &locationIndex{
		byName: make(map[string]*locationDef, total),
		groups: make(map[string]map[string]struct{}, len(standardGroupLabels)+len(slots)),
	}
	for _, label := range standardGroupLabels {
		idx.groups[label] = make(map[string]struct{})
	}

	next := locationAddressBase
	for si := range slots {
		slot := &slots[si]
		rank, ok := ranks[slot.region]
		if !ok {
			return nil, fmt.Errorf("region %q is not in the region priority list", slot.region)
		}
		_, forceConditional := conditional[slot.region]

		for li := range slot.locations {
			loc := &slot.locations[li]

			if !loc.IsEvent() {
				loc.address = next
				next++
			}
			if loc.miniboss || loc.mimic || loc.hostileNPC || loc.lizard {
				loc.drop = true
			}
			loc.regionRank = rank
			if forceConditional {
				loc.conditional = true
			}

			if _, dup := idx.byName[loc.name]; dup {
				return nil, fmt.Errorf("duplicate location name %q (region %q)", loc.name, slot.region)
			}
			idx.byName[loc.name] = loc

			if loc.IsEvent() {
				continue
			}
			item, err := catalog.Resolve(loc.defaultItem)
			if err != nil {
				return nil, fmt.Errorf("location %q: %w", loc.name, err)
			}
			labels, err := loc.groupLabels(item)
			if err != nil {
				return nil, fmt.Errorf("location %q: %w", loc.name, err)
			}
			for _, label := range labels {
				idx.groups[label][loc.name] = struct{}{}
			}
		}

		// Whole regions double as groups, except shop inventories.
		if !strings.HasSuffix(slot.region, " Shop") {
			set := make(map[string]struct{}, len(slot.locations))
			for li := range slot.locations {
				if !slot.locations[li].IsEvent() {
					set[slot.locations[li].name] = struct{}{}
				}
			}
			idx.groups[slot.region] = set
		}
	}

	return idx, nil
}

// LocationDef accessor methods
func (d *locationDef) Name() string        { return d.name }
func (d *locationDef) DefaultItem() string { return d.defaultItem }
func (d *locationDef) StaticKey() string   { return d.staticKey }
func (d *locationDef) Address() int        { return d.address }
func (d *locationDef) RegionRank() int     { return d.regionRank }

func (d *locationDef) IsMissable() bool    { return d.missable }
func (d *locationDef) IsNPC() bool         { return d.npc }
func (d *locationDef) IsProminent() bool   { return d.prominent }
func (d *locationDef) IsProgression() bool { return d.progression }
func (d *locationDef) IsBoss() bool        { return d.boss }
func (d *locationDef) IsMiniboss() bool    { return d.miniboss }
func (d *locationDef) IsDrop() bool        { return d.drop }
func (d *locationDef) IsMimic() bool       { return d.mimic }
func (d *locationDef) IsHostileNPC() bool  { return d.hostileNPC }
func (d *locationDef) IsLizard() bool      { return d.lizard }
func (d *locationDef) IsShop() bool        { return d.shop }
func (d *locationDef) IsConditional() bool { return d.conditional }
func (d *locationDef) IsHidden() bool      { return d.hidden }

// IsEvent reports whether this location is a progression marker with no
// placeable item.
func (d *locationDef) IsEvent() bool { return d.defaultItem == "" }
