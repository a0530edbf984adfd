package data

// itemDef — определение одного предмета ванильной игры.
// Категория управляет группировкой локаций, classification — тиром предмета
// в хост-фреймворке.
type itemDef struct {
	name           string
	category       ItemCategory
	classification ItemClassification
}

// itemDefs covers every item referenced as a default item by the location
// tables. Order within a section is alphabetical; sections follow category.
var itemDefs = []itemDef{

	// Boss and transposed weapons (upgrade with Titanite Scale, +5 max)
	{name: "Arstor's Spear", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Cleric's Candlestick", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Crystal Sage's Rapier", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Dancer's Enchanted Swords", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Darkmoon Longbow", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Demon's Fist", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Demon's Greataxe", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Dragonslayer Greataxe", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Dragonslayer Swordspear", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Farron Greatsword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Greatsword of Judgment", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Gundyr's Halberd", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Hollowslayer Greatsword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Lifehunt Scythe", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Lorian's Greatsword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Lothric's Holy Sword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Moonlight Greatsword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Old King's Great Hammer", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Profaned Greatsword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Storm Curved Sword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Vordt's Great Hammer", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Wolf Knight's Greatsword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Wolnir's Holy Sword", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},
	{name: "Yhorm's Great Machete", category: CategoryWeaponUpgrade5, classification: ClassificationFiller},

	// Standard infusible weapons (+10 max)
	{name: "Astora Straight Sword", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Battle Axe", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Broadsword", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Broken Straight Sword", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Claymore", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Club", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Longbow", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Lucerne", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Mail Breaker", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Rapier", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Uchigatana", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},
	{name: "Washing Pole", category: CategoryWeaponUpgrade10Infusible, classification: ClassificationFiller},

	// Shields
	{name: "Dragonslayer Greatshield", category: CategoryShield, classification: ClassificationFiller},
	{name: "Yhorm's Greatshield", category: CategoryShield, classification: ClassificationFiller},

	// Infusible shields
	{name: "East-West Shield", category: CategoryShieldInfusible, classification: ClassificationFiller},
	{name: "Porcine Shield", category: CategoryShieldInfusible, classification: ClassificationFiller},
	{name: "Silver Eagle Kite Shield", category: CategoryShieldInfusible, classification: ClassificationFiller},
	{name: "Sunlight Shield", category: CategoryShieldInfusible, classification: ClassificationFiller},

	// Armor
	{name: "Armor of the Sun", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Eastern Armor", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Eastern Gauntlets", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Eastern Helm", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Eastern Leggings", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Fire Keeper Gloves", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Fire Keeper Robe", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Fire Keeper Skirt", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Iron Bracelets", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Iron Helm", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Iron Leggings", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Karla's Coat", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Karla's Gloves", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Karla's Pointed Hat", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Karla's Trousers", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Lucatiel's Mask", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Master's Attire", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Master's Gloves", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Millwood Knight Armor", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Millwood Knight Gauntlets", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Millwood Knight Helm", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Millwood Knight Leggings", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Xanthous Gloves", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Xanthous Overcoat", category: CategoryArmor, classification: ClassificationFiller},
	{name: "Xanthous Trousers", category: CategoryArmor, classification: ClassificationFiller},

	// Rings
	{name: "Covetous Silver Serpent Ring", category: CategoryRing, classification: ClassificationFiller},
	{name: "Estus Ring", category: CategoryRing, classification: ClassificationFiller},
	{name: "Fleshbite Ring+1", category: CategoryRing, classification: ClassificationFiller},
	{name: "Havel's Ring", category: CategoryRing, classification: ClassificationFiller},
	{name: "Life Ring", category: CategoryRing, classification: ClassificationFiller},
	{name: "Lloyd's Shield Ring", category: CategoryRing, classification: ClassificationFiller},
	{name: "Pontiff's Left Eye", category: CategoryRing, classification: ClassificationFiller},
	{name: "Prisoner's Chain", category: CategoryRing, classification: ClassificationFiller},
	{name: "Ring of Sacrifice", category: CategoryRing, classification: ClassificationFiller},
	{name: "Ring of the Evil Eye+2", category: CategoryRing, classification: ClassificationFiller},
	{name: "Skull Ring", category: CategoryRing, classification: ClassificationFiller},
	{name: "Speckled Stoneplate Ring+1", category: CategoryRing, classification: ClassificationFiller},
	{name: "Wolf Ring+2", category: CategoryRing, classification: ClassificationFiller},
	{name: "Wood Grain Ring", category: CategoryRing, classification: ClassificationFiller},

	// Sorceries, pyromancies and miracles
	{name: "Affinity", category: CategorySpell, classification: ClassificationFiller},
	{name: "Black Fire Orb", category: CategorySpell, classification: ClassificationFiller},
	{name: "Black Flame", category: CategorySpell, classification: ClassificationFiller},
	{name: "Black Serpent", category: CategorySpell, classification: ClassificationFiller},
	{name: "Boulder Heave", category: CategorySpell, classification: ClassificationFiller},
	{name: "Bountiful Sunlight", category: CategorySpell, classification: ClassificationFiller},
	{name: "Chaos Bed Vestiges", category: CategorySpell, classification: ClassificationFiller},
	{name: "Crystal Hail", category: CategorySpell, classification: ClassificationFiller},
	{name: "Dark Blade", category: CategorySpell, classification: ClassificationFiller},
	{name: "Dark Edge", category: CategorySpell, classification: ClassificationFiller},
	{name: "Dead Again", category: CategorySpell, classification: ClassificationFiller},
	{name: "Deep Protection", category: CategorySpell, classification: ClassificationFiller},
	{name: "Deep Soul", category: CategorySpell, classification: ClassificationFiller},
	{name: "Farron Dart", category: CategorySpell, classification: ClassificationFiller},
	{name: "Fire Whip", category: CategorySpell, classification: ClassificationFiller},
	{name: "Firestorm", category: CategorySpell, classification: ClassificationFiller},
	{name: "Gnaw", category: CategorySpell, classification: ClassificationFiller},
	{name: "Heal Aid", category: CategorySpell, classification: ClassificationFiller},
	{name: "Lightning Storm", category: CategorySpell, classification: ClassificationFiller},
	{name: "Rapport", category: CategorySpell, classification: ClassificationFiller},
	{name: "Soothing Sunlight", category: CategorySpell, classification: ClassificationFiller},
	{name: "Soul Arrow", category: CategorySpell, classification: ClassificationFiller},
	{name: "Vow of Silence", category: CategorySpell, classification: ClassificationFiller},
	{name: "White Dragon Breath", category: CategorySpell, classification: ClassificationFiller},

	// Boss souls
	{name: "Soul of Boreal Valley Vordt", category: CategoryBossSoul, classification: ClassificationUseful},
	{name: "Soul of the Dancer", category: CategoryBossSoul, classification: ClassificationUseful},

	// Consumable souls
	{name: "Large Soul of a Deserted Corpse", category: CategorySmallSoul, classification: ClassificationFiller},
	{name: "Soul of a Deserted Corpse", category: CategorySmallSoul, classification: ClassificationFiller},
	{name: "Soul of an Unknown Traveler", category: CategorySmallSoul, classification: ClassificationFiller},

	// Upgrade materials and gems
	{name: "Blessed Gem", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Hollow Gem", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Large Titanite Shard", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Lightning Gem", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Raw Gem", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Refined Gem", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Titanite Chunk", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Titanite Scale", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Titanite Scale x3", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Titanite Shard", category: CategoryUpgrade, classification: ClassificationFiller},
	{name: "Titanite Slab", category: CategoryUpgrade, classification: ClassificationUseful},
	{name: "Twinkling Titanite", category: CategoryUpgrade, classification: ClassificationFiller},

	// Flask upgrades
	{name: "Estus Shard", category: CategoryHealing, classification: ClassificationUseful},

	// Unique per-cycle items: keys, tomes, carvings
	{name: "Basin of Vows", category: CategoryUnique, classification: ClassificationProgression},
	{name: "Binoculars", category: CategoryUnique, classification: ClassificationFiller},
	{name: "Cell Key", category: CategoryUnique, classification: ClassificationProgression},
	{name: "Coiled Sword", category: CategoryUnique, classification: ClassificationProgression},
	{name: "Dried Finger", category: CategoryUnique, classification: ClassificationUseful},
	{name: "Fire Keeper Soul", category: CategoryUnique, classification: ClassificationUseful},
	{name: "Grave Key", category: CategoryUnique, classification: ClassificationProgression},
	{name: "Hello Carving", category: CategoryUnique, classification: ClassificationFiller},
	{name: "Help me! Carving", category: CategoryUnique, classification: ClassificationFiller},
	{name: "I'm sorry Carving", category: CategoryUnique, classification: ClassificationFiller},
	{name: "Lift Chamber Key", category: CategoryUnique, classification: ClassificationProgression},
	{name: "Red Eye Orb", category: CategoryUnique, classification: ClassificationUseful},
	{name: "Small Lothric Banner", category: CategoryUnique, classification: ClassificationProgression},
	{name: "Thank you Carving", category: CategoryUnique, classification: ClassificationFiller},
	{name: "Tower Key", category: CategoryUnique, classification: ClassificationProgression},
	{name: "Very good! Carving", category: CategoryUnique, classification: ClassificationFiller},
	{name: "Way of Blue", category: CategoryUnique, classification: ClassificationFiller},
	{name: "White Sign Soapstone", category: CategoryUnique, classification: ClassificationUseful},

	// Generic stackable consumables
	{name: "Alluring Skull", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Black Firebomb x3", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Cracked Red Eye Orb x5", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Divine Blessing", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Ember", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Firebomb x2", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Firebomb x3", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Firebomb x5", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Gold Pine Resin x2", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Green Blossom x2", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Green Blossom x3", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Hidden Blessing", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Homeward Bone", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Homeward Bone x3", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Standard Arrow x12", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Throwing Knife x6", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Throwing Knife x8", category: CategoryMisc, classification: ClassificationFiller},
	{name: "Undead Hunter Charm x2", category: CategoryMisc, classification: ClassificationFiller},
}
