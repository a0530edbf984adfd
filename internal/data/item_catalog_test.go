package data

import (
	"strings"
	"testing"
)

func TestEveryDefaultItemResolves(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	for _, loc := range allLocations() {
		if loc.IsEvent() {
			continue
		}
		if _, err := catalog.Resolve(loc.DefaultItem()); err != nil {
			t.Errorf("location %q: %v", loc.Name(), err)
		}
	}
}

func TestResolveUnknownItem(t *testing.T) {
	t.Parallel()

	_, err := Catalog().Resolve("Moonlight Butterfly Horn")
	if err == nil {
		t.Fatal("unknown item resolved")
	}
	if !strings.Contains(err.Error(), "Moonlight Butterfly Horn") {
		t.Errorf("error %q does not name the item", err)
	}
}

func TestCategoryGroupLabelsTotal(t *testing.T) {
	t.Parallel()

	for c := CategoryWeaponUpgrade5; c <= CategoryHealing; c++ {
		if c.String() == "Unknown" {
			t.Fatalf("category %d has no String name", c)
		}
		if _, ok := categoryGroupLabels[c]; !ok {
			t.Errorf("category %s has no group label", c)
		}
	}
}

func TestWeaponCategoriesShareLabel(t *testing.T) {
	t.Parallel()

	for _, c := range []ItemCategory{CategoryWeaponUpgrade5, CategoryWeaponUpgrade10, CategoryWeaponUpgrade10Infusible} {
		if categoryGroupLabels[c] != "Weapons" {
			t.Errorf("%s label = %q; want Weapons", c, categoryGroupLabels[c])
		}
	}
	for _, c := range []ItemCategory{CategoryShield, CategoryShieldInfusible} {
		if categoryGroupLabels[c] != "Shields" {
			t.Errorf("%s label = %q; want Shields", c, categoryGroupLabels[c])
		}
	}
}

func TestKnownItemMetadata(t *testing.T) {
	t.Parallel()

	info, err := Catalog().Resolve("Coiled Sword")
	if err != nil {
		t.Fatal(err)
	}
	if info.Category != CategoryUnique {
		t.Errorf("Coiled Sword category = %s; want Unique", info.Category)
	}
	if info.Classification != ClassificationProgression {
		t.Errorf("Coiled Sword classification = %s; want Progression", info.Classification)
	}

	info, err = Catalog().Resolve("Soul of Boreal Valley Vordt")
	if err != nil {
		t.Fatal(err)
	}
	if info.Category != CategoryBossSoul {
		t.Errorf("Vordt soul category = %s; want BossSoul", info.Category)
	}
}

func TestGroupDescriptionsCoverStandardGroups(t *testing.T) {
	t.Parallel()

	for _, label := range standardGroupLabels {
		if _, ok := GroupDescriptions[label]; !ok {
			t.Errorf("group %q has no description", label)
		}
	}
}
