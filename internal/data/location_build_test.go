package data

import (
	"fmt"
	"strings"
	"testing"
)

// fakeCatalog resolves only the names it was given.
type fakeCatalog map[string]ItemInfo

func (c fakeCatalog) Resolve(name string) (ItemInfo, error) {
	info, ok := c[name]
	if !ok {
		return ItemInfo{}, fmt.Errorf("item %q is not in the item catalog", name)
	}
	return info, nil
}

var testCatalog = fakeCatalog{
	"Test Sword": {Name: "Test Sword", Category: CategoryWeaponUpgrade10, Classification: ClassificationFiller},
	"Test Key":   {Name: "Test Key", Category: CategoryUnique, Classification: ClassificationProgression},
}

func testSlots() []regionTableDef {
	return []regionTableDef{
		{
			region: "Alpha",
			locations: []locationDef{
				{name: "A: sword", defaultItem: "Test Sword"},
				{name: "A: reached bell", drop: true}, // event, literal drop stays
				{name: "A: key", defaultItem: "Test Key", lizard: true},
			},
		},
		{
			region: "Beta Shop",
			locations: []locationDef{
				{name: "B: sword", defaultItem: "Test Sword", shop: true},
			},
		},
	}
}

var testOrder = []string{"Alpha", "Gamma", "Beta Shop"}

func TestBuildAssignsAddressesAcrossTables(t *testing.T) {
	t.Parallel()

	idx, err := buildLocations(testSlots(), testOrder, nil, testCatalog)
	if err != nil {
		t.Fatal(err)
	}

	if got := idx.byName["A: sword"].address; got != locationAddressBase {
		t.Errorf("first non-event address = %d; want %d", got, locationAddressBase)
	}
	if got := idx.byName["A: reached bell"].address; got != 0 {
		t.Errorf("event address = %d; want none", got)
	}
	if got := idx.byName["A: key"].address; got != locationAddressBase+1 {
		t.Errorf("second non-event address = %d; want %d", got, locationAddressBase+1)
	}
	if got := idx.byName["B: sword"].address; got != locationAddressBase+2 {
		t.Errorf("address continues across tables: got %d; want %d", got, locationAddressBase+2)
	}
}

func TestBuildDerivesDropAndKeepsLiteral(t *testing.T) {
	t.Parallel()

	idx, err := buildLocations(testSlots(), testOrder, nil, testCatalog)
	if err != nil {
		t.Fatal(err)
	}

	if !idx.byName["A: key"].drop {
		t.Error("lizard location did not get drop=true")
	}
	if !idx.byName["A: reached bell"].drop {
		t.Error("literal drop declaration was cleared")
	}
}

func TestBuildRegionRanksAndSparseOrder(t *testing.T) {
	t.Parallel()

	idx, err := buildLocations(testSlots(), testOrder, nil, testCatalog)
	if err != nil {
		t.Fatal(err)
	}

	if got := idx.byName["A: sword"].regionRank; got != 0 {
		t.Errorf("Alpha rank = %d; want 0", got)
	}
	// Gamma has no table; Beta Shop still ranks by list position.
	if got := idx.byName["B: sword"].regionRank; got != 2 {
		t.Errorf("Beta Shop rank = %d; want 2", got)
	}
}

func TestBuildForcesConditional(t *testing.T) {
	t.Parallel()

	conditional := map[string]struct{}{"Beta Shop": {}}
	idx, err := buildLocations(testSlots(), testOrder, conditional, testCatalog)
	if err != nil {
		t.Fatal(err)
	}

	if !idx.byName["B: sword"].conditional {
		t.Error("location in conditional region not forced conditional")
	}
	if idx.byName["A: sword"].conditional {
		t.Error("location outside conditional regions became conditional")
	}
}

func TestBuildEventsExcludedFromGroups(t *testing.T) {
	t.Parallel()

	idx, err := buildLocations(testSlots(), testOrder, nil, testCatalog)
	if err != nil {
		t.Fatal(err)
	}

	for label, members := range idx.groups {
		if _, ok := members["A: reached bell"]; ok {
			t.Errorf("event found in group %q", label)
		}
	}
	if _, ok := idx.byName["A: reached bell"]; !ok {
		t.Error("event missing from name index")
	}
}

func TestBuildShopRegionsGetNoRegionGroup(t *testing.T) {
	t.Parallel()

	idx, err := buildLocations(testSlots(), testOrder, nil, testCatalog)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := idx.groups["Beta Shop"]; ok {
		t.Error("shop region got a region group")
	}
	if _, ok := idx.groups["Alpha"]; !ok {
		t.Error("non-shop region has no region group")
	}
}

func TestBuildProgressionFromItemTier(t *testing.T) {
	t.Parallel()

	idx, err := buildLocations(testSlots(), testOrder, nil, testCatalog)
	if err != nil {
		t.Fatal(err)
	}

	// "A: key" has no progression flag; its item tier puts it there anyway.
	if _, ok := idx.groups["Progression"]["A: key"]; !ok {
		t.Error("progression-tier item did not reach the Progression group")
	}
	if _, ok := idx.groups["Unique"]["A: key"]; !ok {
		t.Error("item category label missing")
	}
	if _, ok := idx.groups["Small Crystal Lizards"]["A: key"]; !ok {
		t.Error("lizard flag label missing")
	}
}

func TestBuildRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	slots := testSlots()
	slots[1].locations[0].name = "A: sword"
	_, err := buildLocations(slots, testOrder, nil, testCatalog)
	if err == nil {
		t.Fatal("duplicate name accepted")
	}
	if !strings.Contains(err.Error(), "A: sword") {
		t.Errorf("error %q does not name the duplicate", err)
	}
}

func TestBuildRejectsUnknownRegion(t *testing.T) {
	t.Parallel()

	slots := testSlots()
	slots[0].region = "Nowhere"
	_, err := buildLocations(slots, testOrder, nil, testCatalog)
	if err == nil {
		t.Fatal("unranked region accepted")
	}
	if !strings.Contains(err.Error(), "Nowhere") {
		t.Errorf("error %q does not name the region", err)
	}
}

func TestBuildRejectsUnknownItem(t *testing.T) {
	t.Parallel()

	slots := testSlots()
	slots[0].locations[0].defaultItem = "No Such Item"
	_, err := buildLocations(slots, testOrder, nil, testCatalog)
	if err == nil {
		t.Fatal("unknown item accepted")
	}
	if !strings.Contains(err.Error(), "No Such Item") {
		t.Errorf("error %q does not name the item", err)
	}
}
