package data

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func allLocations() []*locationDef {
	var out []*locationDef
	for _, region := range Regions() {
		out = append(out, RegionLocations(region)...)
	}
	return out
}

func TestAddressesUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	seen := make(map[int]string)
	prev := locationAddressBase - 1
	for _, loc := range allLocations() {
		if loc.IsEvent() {
			if loc.Address() != 0 {
				t.Errorf("event %q has address %d; want none", loc.Name(), loc.Address())
			}
			continue
		}
		addr := loc.Address()
		if addr < locationAddressBase {
			t.Errorf("%q address %d below base %d", loc.Name(), addr, locationAddressBase)
		}
		if other, dup := seen[addr]; dup {
			t.Errorf("address %d assigned to both %q and %q", addr, other, loc.Name())
		}
		seen[addr] = loc.Name()
		if addr <= prev {
			t.Errorf("%q address %d not increasing in declaration order (prev %d)", loc.Name(), addr, prev)
		}
		prev = addr
	}
}

func TestDropDerivedFromEnemyFlags(t *testing.T) {
	t.Parallel()

	for _, loc := range allLocations() {
		if (loc.IsMiniboss() || loc.IsMimic() || loc.IsHostileNPC() || loc.IsLizard()) && !loc.IsDrop() {
			t.Errorf("%q has an enemy-drop flag but drop=false", loc.Name())
		}
	}
}

func TestRegionRanks(t *testing.T) {
	t.Parallel()

	for _, region := range Regions() {
		want, ok := RegionRank(region)
		if !ok {
			t.Fatalf("region %q missing from RegionOrder", region)
		}
		for _, loc := range RegionLocations(region) {
			if loc.RegionRank() != want {
				t.Errorf("%q regionRank = %d; want %d (rank of %q)", loc.Name(), loc.RegionRank(), want, region)
			}
		}
	}
}

func TestConditionalRegionsForced(t *testing.T) {
	t.Parallel()

	for region := range conditionalRegions {
		locs := RegionLocations(region)
		if len(locs) == 0 {
			continue
		}
		for _, loc := range locs {
			if !loc.IsConditional() {
				t.Errorf("%q in conditional region %q has conditional=false", loc.Name(), region)
			}
		}
	}
}

func TestNameIndexRoundTrip(t *testing.T) {
	t.Parallel()

	for _, loc := range allLocations() {
		got := GetLocation(loc.Name())
		if got != loc {
			t.Errorf("GetLocation(%q) returned a different record", loc.Name())
		}
	}
	if GetLocation("no such location") != nil {
		t.Error("GetLocation of unknown name returned a record")
	}
}

func TestRegionGroupsPartitionNonShopLocations(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string) // location name -> region group
	for _, region := range Regions() {
		members := GroupMembers(region)
		if strings.HasSuffix(region, " Shop") {
			if members != nil {
				t.Errorf("shop region %q has a region group", region)
			}
			continue
		}
		if members == nil {
			t.Fatalf("region %q has no region group", region)
		}
		for name := range members {
			if prev, dup := seen[name]; dup {
				t.Errorf("%q in region groups %q and %q", name, prev, region)
			}
			seen[name] = region

			loc := GetLocation(name)
			if loc == nil {
				t.Errorf("region group %q member %q has no record", region, name)
				continue
			}
			if loc.IsEvent() {
				t.Errorf("event %q appears in region group %q", name, region)
			}
		}
	}

	// Every non-event location of a non-shop region is covered.
	for _, region := range Regions() {
		if strings.HasSuffix(region, " Shop") {
			continue
		}
		for _, loc := range RegionLocations(region) {
			if loc.IsEvent() {
				continue
			}
			if _, ok := seen[loc.Name()]; !ok {
				t.Errorf("%q missing from its region group", loc.Name())
			}
		}
	}
}

func TestStandardGroupsAlwaysExist(t *testing.T) {
	t.Parallel()

	for _, label := range standardGroupLabels {
		if GroupMembers(label) == nil {
			t.Errorf("standard group %q missing from index", label)
		}
	}
}

func TestCoiledSwordGroups(t *testing.T) {
	t.Parallel()

	const name = "CA: Coiled Sword - boss drop"
	want := []string{"Prominent", "Progression", "Boss Rewards", "Unique", "Cemetery of Ash"}
	for _, label := range want {
		if _, ok := GroupMembers(label)[name]; !ok {
			t.Errorf("%q missing from group %q", name, label)
		}
	}
	for _, label := range []string{"Hidden", "Miniboss Rewards", "Weapons"} {
		if _, ok := GroupMembers(label)[name]; ok {
			t.Errorf("%q unexpectedly in group %q", name, label)
		}
	}
}

func TestKarlasShopAllConditional(t *testing.T) {
	t.Parallel()

	locs := RegionLocations("Karla's Shop")
	if len(locs) == 0 {
		t.Fatal("Karla's Shop has no locations")
	}
	for _, loc := range locs {
		if !loc.IsConditional() {
			t.Errorf("%q not conditional after load", loc.Name())
		}
	}
}

func TestMimicRewards(t *testing.T) {
	t.Parallel()

	members := GroupMembers("Mimic Rewards")
	if len(members) != 1 {
		t.Fatalf("Mimic Rewards has %d members; want 1", len(members))
	}
	if _, ok := members["HWL: Battle Axe - flame tower, mimic"]; !ok {
		t.Error("HWL mimic location missing from Mimic Rewards")
	}
}

func TestStaticKeysPreserved(t *testing.T) {
	t.Parallel()

	loc := GetLocation("FS: Ember - shop")
	if loc == nil {
		t.Fatal("FS: Ember - shop missing")
	}
	if loc.StaticKey() != "99,0:-1:110000:" {
		t.Errorf("StaticKey = %q; want explicit shop slot key", loc.StaticKey())
	}
}

func TestLocationNamesAreCleanUTF8(t *testing.T) {
	t.Parallel()

	// The crow trade for Siegbräu once carried a double-encoded "√§".
	if GetLocation("FSBT: Armor of the Sun - crow for Siegbräu") == nil {
		t.Error("Siegbräu crow trade missing or misspelled")
	}
	for name := range LocationTable {
		if !utf8.ValidString(name) || strings.ContainsRune(name, '√') {
			t.Errorf("location name %q carries an encoding artifact", name)
		}
	}
}
