package data

// locationDef — одна локация (точка, где лежит предмет или происходит event).
// address и regionRank заполняются в LoadLocations; всё остальное — литералы.
type locationDef struct {
	name        string
	defaultItem string // "" = event location (progression marker, no placeable item)
	staticKey   string // explicit static-randomizer slot key when the name heuristic is ambiguous
	address     int    // assigned sequentially at load; 0 for events
	regionRank  int    // index of the containing region in RegionOrder

	missable    bool
	npc         bool
	prominent   bool
	progression bool
	boss        bool
	miniboss    bool
	drop        bool // forced true when miniboss/mimic/hostileNPC/lizard is set
	mimic       bool
	hostileNPC  bool
	lizard      bool
	shop        bool
	conditional bool
	hidden      bool
}

// regionTableDef — per-region ordered location table.
type regionTableDef struct {
	region    string
	locations []locationDef
}

// RegionOrder ranks regions by approximate reward quality, mostly measured
// by how good the upgrade items are in each region. Every region with a
// declared table must appear here.
var RegionOrder = []string{
	"Cemetery of Ash",
	"Firelink Shrine",
	"High Wall of Lothric",
	"Greirat's Shop",
	"Undead Settlement",
	"Road of Sacrifices",
	"Farron Keep",
	"Cathedral of the Deep",
	"Catacombs of Carthus",
	"Smouldering Lake",
	"Irithyll of the Boreal Valley",
	"Irithyll Dungeon",
	"Karla's Shop",
	"Anor Londo",
	"Profaned Capital",
	"Lothric Castle",
	"Consumed King's Garden",
	"Untended Graves",
	"Firelink Shrine Bell Tower",
	"Grand Archives",
	"Archdragon Peak",
	"Kiln of the First Flame",
}

// conditionalRegions are reachable only after a prerequisite action
// (a key, an ash turn-in), so every location in them is conditional
// regardless of its literal declaration.
var conditionalRegions = map[string]struct{}{
	"Firelink Shrine Bell Tower": {},
	"Greirat's Shop":             {},
	"Karla's Shop":               {},
}

// locationSlots — literal location tables in declaration order. Address
// assignment follows this order, not RegionOrder.
//
// Naming conventions:
//
//   - The prefix matches the physical region where the item is picked up,
//     even when the logical region differs (shop stock bought at Firelink
//     keeps the "FS:" prefix).
//   - Use generic landmarks ("mob", "boss", "miniboss") instead of vanilla
//     enemy names, which the enemy randomizer moves around.
//   - Keep descriptions terse; a general area or quest hint is enough.
var locationSlots = []regionTableDef{
	{
		region: "Cemetery of Ash",
		locations: []locationDef{
			{name: "CA: Soul of a Deserted Corpse - right of spawn", defaultItem: "Soul of a Deserted Corpse"},
			{name: "CA: Firebomb - down the cliff edge", defaultItem: "Firebomb x5"},
			{name: "CA: Titanite Shard - jump to coffin", defaultItem: "Titanite Shard"},
			{name: "CA: Soul of an Unknown Traveler - by miniboss", defaultItem: "Soul of an Unknown Traveler"},
			{name: "CA: Speckled Stoneplate Ring+1 - by miniboss", defaultItem: "Speckled Stoneplate Ring+1"},
			{name: "CA: Titanite Scale - miniboss drop", defaultItem: "Titanite Scale", miniboss: true},
			{name: "CA: Coiled Sword - boss drop", defaultItem: "Coiled Sword", prominent: true, progression: true, boss: true},
		},
	},
	{
		region: "Firelink Shrine",
		locations: []locationDef{
			// Ludleth drop, does not permanently die
			{name: "FS: Skull Ring - kill Ludleth", defaultItem: "Skull Ring", npc: true, drop: true, hidden: true},
			// Sword Master drops
			{name: "FS: Uchigatana - NPC drop", defaultItem: "Uchigatana", hostileNPC: true},
			{name: "FS: Master's Attire - NPC drop", defaultItem: "Master's Attire", hostileNPC: true},
			{name: "FS: Master's Gloves - NPC drop", defaultItem: "Master's Gloves", hostileNPC: true},
			{name: "FS: Broken Straight Sword - gravestone after boss", defaultItem: "Broken Straight Sword"},
			{name: "FS: Homeward Bone - cliff edge after boss", defaultItem: "Homeward Bone"},
			{name: "FS: Ember - path right of Firelink entrance", defaultItem: "Ember"},
			{name: "FS: Soul of a Deserted Corpse - bell tower door", defaultItem: "Soul of a Deserted Corpse"},
			{name: "FS: East-West Shield - tree by shrine entrance", defaultItem: "East-West Shield"},
			{name: "FS: Homeward Bone - path above shrine entrance", defaultItem: "Homeward Bone"},
			{name: "FS: Ember - above shrine entrance", defaultItem: "Ember"},
			{name: "FS: Wolf Ring+2 - left of boss room exit", defaultItem: "Wolf Ring+2"},
			// Leonhard (quest)
			{name: "FS: Cracked Red Eye Orb - Leonhard", defaultItem: "Cracked Red Eye Orb x5", missable: true, npc: true},
			// Leonhard (kill or quest), missable because he can disappear sometimes
			{name: "FS: Lift Chamber Key - Leonhard", defaultItem: "Lift Chamber Key", missable: true, npc: true, drop: true},

			// Shrine Handmaid shop
			{name: "FS: White Sign Soapstone - shop", defaultItem: "White Sign Soapstone", shop: true},
			{name: "FS: Dried Finger - shop", defaultItem: "Dried Finger", shop: true},
			{name: "FS: Tower Key - shop", defaultItem: "Tower Key", progression: true, shop: true},
			{name: "FS: Ember - shop", defaultItem: "Ember", staticKey: "99,0:-1:110000:", shop: true},
			{name: "FS: Farron Dart - shop", defaultItem: "Farron Dart", staticKey: "99,0:-1:110000:", shop: true},
			{name: "FS: Soul Arrow - shop", defaultItem: "Soul Arrow", staticKey: "99,0:-1:110000:", shop: true},
			{name: "FS: Heal Aid - shop", defaultItem: "Heal Aid", shop: true},
			{name: "FS: Alluring Skull - Mortician's Ashes", defaultItem: "Alluring Skull", shop: true, conditional: true},
			{name: "FS: Ember - Mortician's Ashes", defaultItem: "Ember", staticKey: "99,0:-1:110000,70000100:", shop: true, conditional: true},
			{name: "FS: Grave Key - Mortician's Ashes", defaultItem: "Grave Key", shop: true, conditional: true},
			{name: "FS: Life Ring - Dreamchaser's Ashes", defaultItem: "Life Ring", shop: true, conditional: true},
			// Only if you say where the ashes were found
			{name: "FS: Hidden Blessing - Dreamchaser's Ashes", defaultItem: "Hidden Blessing", missable: true, shop: true},
			{name: "FS: Lloyd's Shield Ring - Paladin's Ashes", defaultItem: "Lloyd's Shield Ring", shop: true, conditional: true},
			{name: "FS: Ember - Grave Warden's Ashes", defaultItem: "Ember", staticKey: "99,0:-1:110000,70000103:", shop: true, conditional: true},
			{name: "FS: Karla's Pointed Hat - Prisoner Chief's Ashes", defaultItem: "Karla's Pointed Hat", staticKey: "99,0:-1:110000,70000105:", shop: true, conditional: true},
			{name: "FS: Karla's Coat - Prisoner Chief's Ashes", defaultItem: "Karla's Coat", staticKey: "99,0:-1:110000,70000105:", shop: true, conditional: true},
			{name: "FS: Karla's Gloves - Prisoner Chief's Ashes", defaultItem: "Karla's Gloves", staticKey: "99,0:-1:110000,70000105:", shop: true, conditional: true},
			{name: "FS: Karla's Trousers - Prisoner Chief's Ashes", defaultItem: "Karla's Trousers", staticKey: "99,0:-1:110000,70000105:", shop: true, conditional: true},
			{name: "FS: Xanthous Overcoat - Xanthous Ashes", defaultItem: "Xanthous Overcoat", shop: true, conditional: true},
			{name: "FS: Xanthous Gloves - Xanthous Ashes", defaultItem: "Xanthous Gloves", shop: true, conditional: true},
			{name: "FS: Xanthous Trousers - Xanthous Ashes", defaultItem: "Xanthous Trousers", shop: true, conditional: true},
			{name: "FS: Ember - Dragon Chaser's Ashes", defaultItem: "Ember", staticKey: "99,0:-1:110000,70000108:", shop: true, conditional: true},
			{name: "FS: Washing Pole - Easterner's Ashes", defaultItem: "Washing Pole", shop: true, conditional: true},
			{name: "FS: Eastern Helm - Easterner's Ashes", defaultItem: "Eastern Helm", shop: true, conditional: true},
			{name: "FS: Eastern Armor - Easterner's Ashes", defaultItem: "Eastern Armor", shop: true, conditional: true},
			{name: "FS: Eastern Gauntlets - Easterner's Ashes", defaultItem: "Eastern Gauntlets", shop: true, conditional: true},
			{name: "FS: Eastern Leggings - Easterner's Ashes", defaultItem: "Eastern Leggings", shop: true, conditional: true},
			{name: "FS: Wood Grain Ring - Easterner's Ashes", defaultItem: "Wood Grain Ring", shop: true, conditional: true},
			{name: "FS: Millwood Knight Helm - Captain's Ashes", defaultItem: "Millwood Knight Helm", shop: true, conditional: true},
			{name: "FS: Millwood Knight Armor - Captain's Ashes", defaultItem: "Millwood Knight Armor", shop: true, conditional: true},
			{name: "FS: Millwood Knight Gauntlets - Captain's Ashes", defaultItem: "Millwood Knight Gauntlets", shop: true, conditional: true},
			{name: "FS: Millwood Knight Leggings - Captain's Ashes", defaultItem: "Millwood Knight Leggings", shop: true, conditional: true},
			{name: "FS: Refined Gem - Captain's Ashes", defaultItem: "Refined Gem", shop: true, conditional: true},

			// Ludleth transpositions
			{name: "FS: Vordt's Great Hammer - Ludleth for Vordt", defaultItem: "Vordt's Great Hammer", missable: true, boss: true, shop: true},
			{name: "FS: Pontiff's Left Eye - Ludleth for Vordt", defaultItem: "Pontiff's Left Eye", missable: true, boss: true, shop: true},
			{name: "FS: Bountiful Sunlight - Ludleth for Rosaria", defaultItem: "Bountiful Sunlight", missable: true, boss: true, shop: true},
			{name: "FS: Darkmoon Longbow - Ludleth for Aldrich", defaultItem: "Darkmoon Longbow", missable: true, boss: true, shop: true},
			{name: "FS: Lifehunt Scythe - Ludleth for Aldrich", defaultItem: "Lifehunt Scythe", missable: true, boss: true, shop: true},
			{name: "FS: Hollowslayer Greatsword - Ludleth for Greatwood", defaultItem: "Hollowslayer Greatsword", missable: true, boss: true, shop: true},
			{name: "FS: Arstor's Spear - Ludleth for Greatwood", defaultItem: "Arstor's Spear", missable: true, boss: true, shop: true},
			{name: "FS: Crystal Sage's Rapier - Ludleth for Sage", defaultItem: "Crystal Sage's Rapier", missable: true, boss: true, shop: true},
			{name: "FS: Crystal Hail - Ludleth for Sage", defaultItem: "Crystal Hail", missable: true, boss: true, shop: true},
			{name: "FS: Cleric's Candlestick - Ludleth for Deacons", defaultItem: "Cleric's Candlestick", missable: true, boss: true, shop: true},
			{name: "FS: Deep Soul - Ludleth for Deacons", defaultItem: "Deep Soul", missable: true, boss: true, shop: true},
			{name: "FS: Havel's Ring - Ludleth for Stray Demon", defaultItem: "Havel's Ring", missable: true, boss: true, shop: true},
			{name: "FS: Boulder Heave - Ludleth for Stray Demon", defaultItem: "Boulder Heave", missable: true, boss: true, shop: true},
			{name: "FS: Farron Greatsword - Ludleth for Abyss Watchers", defaultItem: "Farron Greatsword", missable: true, boss: true, shop: true},
			{name: "FS: Wolf Knight's Greatsword - Ludleth for Abyss Watchers", defaultItem: "Wolf Knight's Greatsword", missable: true, boss: true, shop: true},
			{name: "FS: Wolnir's Holy Sword - Ludleth for Wolnir", defaultItem: "Wolnir's Holy Sword", missable: true, boss: true, shop: true},
			{name: "FS: Black Serpent - Ludleth for Wolnir", defaultItem: "Black Serpent", missable: true, boss: true, shop: true},
			{name: "FS: Demon's Greataxe - Ludleth for Fire Demon", defaultItem: "Demon's Greataxe", missable: true, boss: true, shop: true},
			{name: "FS: Demon's Fist - Ludleth for Fire Demon", defaultItem: "Demon's Fist", missable: true, boss: true, shop: true},
			{name: "FS: Old King's Great Hammer - Ludleth for Old Demon King", defaultItem: "Old King's Great Hammer", missable: true, boss: true, shop: true},
			{name: "FS: Chaos Bed Vestiges - Ludleth for Old Demon King", defaultItem: "Chaos Bed Vestiges", missable: true, boss: true, shop: true},
			{name: "FS: Greatsword of Judgment - Ludleth for Pontiff", defaultItem: "Greatsword of Judgment", missable: true, boss: true, shop: true},
			{name: "FS: Profaned Greatsword - Ludleth for Pontiff", defaultItem: "Profaned Greatsword", missable: true, boss: true, shop: true},
			{name: "FS: Yhorm's Great Machete - Ludleth for Yhorm", defaultItem: "Yhorm's Great Machete", missable: true, boss: true, shop: true},
			{name: "FS: Yhorm's Greatshield - Ludleth for Yhorm", defaultItem: "Yhorm's Greatshield", missable: true, boss: true, shop: true},
			{name: "FS: Dancer's Enchanted Swords - Ludleth for Dancer", defaultItem: "Dancer's Enchanted Swords", missable: true, boss: true, shop: true},
			{name: "FS: Soothing Sunlight - Ludleth for Dancer", defaultItem: "Soothing Sunlight", missable: true, boss: true, shop: true},
			{name: "FS: Dragonslayer Greataxe - Ludleth for Dragonslayer", defaultItem: "Dragonslayer Greataxe", missable: true, boss: true, shop: true},
			{name: "FS: Dragonslayer Greatshield - Ludleth for Dragonslayer", defaultItem: "Dragonslayer Greatshield", missable: true, boss: true, shop: true},
			{name: "FS: Moonlight Greatsword - Ludleth for Oceiros", defaultItem: "Moonlight Greatsword", missable: true, boss: true, shop: true},
			{name: "FS: White Dragon Breath - Ludleth for Oceiros", defaultItem: "White Dragon Breath", missable: true, boss: true, shop: true},
			{name: "FS: Lorian's Greatsword - Ludleth for Princes", defaultItem: "Lorian's Greatsword", missable: true, boss: true, shop: true},
			{name: "FS: Lothric's Holy Sword - Ludleth for Princes", defaultItem: "Lothric's Holy Sword", missable: true, boss: true, shop: true},
			{name: "FS: Gundyr's Halberd - Ludleth for Champion", defaultItem: "Gundyr's Halberd", missable: true, boss: true, shop: true},
			{name: "FS: Prisoner's Chain - Ludleth for Champion", defaultItem: "Prisoner's Chain", missable: true, boss: true, shop: true},
			{name: "FS: Storm Curved Sword - Ludleth for Nameless", defaultItem: "Storm Curved Sword", missable: true, boss: true, shop: true},
			{name: "FS: Dragonslayer Swordspear - Ludleth for Nameless", defaultItem: "Dragonslayer Swordspear", missable: true, boss: true, shop: true},
			{name: "FS: Lightning Storm - Ludleth for Nameless", defaultItem: "Lightning Storm", missable: true, boss: true, shop: true},
		},
	},
	{
		region: "Greirat's Shop",
		locations: []locationDef{
			// Stock added after each pillaging trip; gone for good if he dies out there
			{name: "FS: Divine Blessing - Greirat from US", defaultItem: "Divine Blessing", missable: true, npc: true, shop: true},
			{name: "FS: Ember - Greirat from US", defaultItem: "Ember", staticKey: "99,0:-1:110600:", missable: true, npc: true, shop: true},
			{name: "FS: Titanite Shard - Greirat from US", defaultItem: "Titanite Shard", missable: true, npc: true, shop: true},
			{name: "FS: Divine Blessing - Greirat from IBV", defaultItem: "Divine Blessing", missable: true, npc: true, shop: true},
			{name: "FS: Hidden Blessing - Greirat from IBV", defaultItem: "Hidden Blessing", missable: true, npc: true, shop: true},
			{name: "FS: Titanite Scale - Greirat from IBV", defaultItem: "Titanite Scale", missable: true, npc: true, shop: true},
			{name: "FS: Twinkling Titanite - Greirat from IBV", defaultItem: "Twinkling Titanite", missable: true, npc: true, shop: true},
			{name: "FS: Ember - Greirat from IBV", defaultItem: "Ember", staticKey: "99,0:-1:110600,70000151:", missable: true, npc: true, shop: true},
		},
	},
	{
		region: "Firelink Shrine Bell Tower",
		locations: []locationDef{
			// Guarded by Tower Key
			{name: "FSBT: Homeward Bone - roof", defaultItem: "Homeward Bone x3"},
			{name: "FSBT: Estus Ring - tower base", defaultItem: "Estus Ring"},
			{name: "FSBT: Estus Shard - rafters", defaultItem: "Estus Shard"},
			{name: "FSBT: Fire Keeper Soul - tower top", defaultItem: "Fire Keeper Soul"},
			{name: "FSBT: Fire Keeper Robe - partway down tower", defaultItem: "Fire Keeper Robe"},
			{name: "FSBT: Fire Keeper Gloves - partway down tower", defaultItem: "Fire Keeper Gloves"},
			{name: "FSBT: Fire Keeper Skirt - partway down tower", defaultItem: "Fire Keeper Skirt"},
			{name: "FSBT: Covetous Silver Serpent Ring - illusory wall past rafters", defaultItem: "Covetous Silver Serpent Ring", hidden: true},
			{name: "FSBT: Twinkling Titanite - lizard behind Firelink", defaultItem: "Twinkling Titanite", lizard: true},

			// Mark all crow trades as missable since no one wants to have to try
			// trading everything just in case it gives a progression item.
			{name: "FSBT: Iron Bracelets - crow for Homeward Bone", defaultItem: "Iron Bracelets", missable: true},
			{name: "FSBT: Ring of Sacrifice - crow for Loretta's Bone", defaultItem: "Ring of Sacrifice", missable: true},
			{name: "FSBT: Porcine Shield - crow for Undead Bone Shard", defaultItem: "Porcine Shield", missable: true},
			{name: "FSBT: Lucatiel's Mask - crow for Vertebra Shackle", defaultItem: "Lucatiel's Mask", missable: true},
			{name: "FSBT: Very good! Carving - crow for Divine Blessing", defaultItem: "Very good! Carving", missable: true},
			{name: "FSBT: Thank you Carving - crow for Hidden Blessing", defaultItem: "Thank you Carving", missable: true},
			{name: "FSBT: I'm sorry Carving - crow for Shriving Stone", defaultItem: "I'm sorry Carving", missable: true},
			{name: "FSBT: Sunlight Shield - crow for Mendicant's Staff", defaultItem: "Sunlight Shield", missable: true},
			{name: "FSBT: Hollow Gem - crow for Eleonora", defaultItem: "Hollow Gem", missable: true},
			{name: "FSBT: Titanite Scale - crow for Blacksmith Hammer", defaultItem: "Titanite Scale x3", staticKey: "99,0:50004330::", missable: true},
			{name: "FSBT: Help me! Carving - crow for any sacred chime", defaultItem: "Help me! Carving", missable: true},
			{name: "FSBT: Titanite Slab - crow for Coiled Sword Fragment", defaultItem: "Titanite Slab", missable: true},
			{name: "FSBT: Hello Carving - crow for Alluring Skull", defaultItem: "Hello Carving", missable: true},
			{name: "FSBT: Armor of the Sun - crow for Siegbräu", defaultItem: "Armor of the Sun", missable: true},
			{name: "FSBT: Large Titanite Shard - crow for Firebomb", defaultItem: "Large Titanite Shard", missable: true},
			{name: "FSBT: Titanite Chunk - crow for Black Firebomb", defaultItem: "Titanite Chunk", missable: true},
			{name: "FSBT: Iron Helm - crow for Lightning Urn", defaultItem: "Iron Helm", missable: true},
			{name: "FSBT: Twinkling Titanite - crow for Prism Stone", defaultItem: "Twinkling Titanite", missable: true},
			{name: "FSBT: Iron Leggings - crow for Seed of a Giant Tree", defaultItem: "Iron Leggings", missable: true},
			{name: "FSBT: Lightning Gem - crow for Xanthous Crown", defaultItem: "Lightning Gem", missable: true},
			{name: "FSBT: Twinkling Titanite - crow for Large Leather Shield", defaultItem: "Twinkling Titanite", missable: true},
			{name: "FSBT: Blessed Gem - crow for Moaning Shield", defaultItem: "Blessed Gem", missable: true},
		},
	},
	{
		region: "High Wall of Lothric",
		locations: []locationDef{
			{name: "HWL: Soul of Boreal Valley Vordt", defaultItem: "Soul of Boreal Valley Vordt", prominent: true, boss: true},
			{name: "HWL: Soul of the Dancer", defaultItem: "Soul of the Dancer", prominent: true, boss: true},
			{name: "HWL: Basin of Vows - Emma", defaultItem: "Basin of Vows", prominent: true, progression: true, conditional: true},
			{name: "HWL: Small Lothric Banner - Emma", defaultItem: "Small Lothric Banner", prominent: true, progression: true},
			{name: "HWL: Green Blossom - fort walkway, hall behind wheel", defaultItem: "Green Blossom x2", hidden: true},
			{name: "HWL: Gold Pine Resin - corpse tower, drop", defaultItem: "Gold Pine Resin x2", hidden: true},
			{name: "HWL: Large Soul of a Deserted Corpse - flame plaza", defaultItem: "Large Soul of a Deserted Corpse"},
			{name: "HWL: Soul of a Deserted Corpse - by wall tower door", defaultItem: "Soul of a Deserted Corpse"},
			{name: "HWL: Standard Arrow - back tower", defaultItem: "Standard Arrow x12"},
			{name: "HWL: Longbow - back tower", defaultItem: "Longbow"},
			{name: "HWL: Firebomb - wall tower, beam", defaultItem: "Firebomb x3"},
			{name: "HWL: Throwing Knife - wall tower, path to Greirat", defaultItem: "Throwing Knife x8"},
			{name: "HWL: Soul of a Deserted Corpse - corpse tower, bottom floor", defaultItem: "Soul of a Deserted Corpse"},
			{name: "HWL: Club - flame plaza", defaultItem: "Club"},
			{name: "HWL: Claymore - flame plaza", defaultItem: "Claymore"},
			{name: "HWL: Ember - flame plaza", defaultItem: "Ember"},
			{name: "HWL: Firebomb - corpse tower, under table", defaultItem: "Firebomb x2"},
			{name: "HWL: Titanite Shard - wall tower, corner by bonfire", defaultItem: "Titanite Shard", hidden: true},
			{name: "HWL: Undead Hunter Charm - fort, room off entry, in pot", defaultItem: "Undead Hunter Charm x2", hidden: true},
			{name: "HWL: Firebomb - top of ladder to fountain", defaultItem: "Firebomb x3"},
			{name: "HWL: Cell Key - fort ground, down stairs", defaultItem: "Cell Key"},
			{name: "HWL: Ember - fountain #1", defaultItem: "Ember"},
			{name: "HWL: Soul of a Deserted Corpse - fort entry, corner", defaultItem: "Soul of a Deserted Corpse"},
			{name: "HWL: Lucerne - promenade, side path", defaultItem: "Lucerne"},
			{name: "HWL: Mail Breaker - wall tower, path to Greirat", defaultItem: "Mail Breaker"},
			{name: "HWL: Titanite Shard - fort ground behind crates", defaultItem: "Titanite Shard", hidden: true},
			{name: "HWL: Rapier - fountain, corner", defaultItem: "Rapier"},
			{name: "HWL: Titanite Shard - fort, room off entry", defaultItem: "Titanite Shard"},
			{name: "HWL: Large Soul of a Deserted Corpse - fort roof", defaultItem: "Large Soul of a Deserted Corpse"},
			{name: "HWL: Black Firebomb - small roof over fountain", defaultItem: "Black Firebomb x3"},
			{name: "HWL: Soul of a Deserted Corpse - path to corpse tower", defaultItem: "Soul of a Deserted Corpse"},
			{name: "HWL: Ember - fountain #2", defaultItem: "Ember"},
			{name: "HWL: Large Soul of a Deserted Corpse - platform by fountain", defaultItem: "Large Soul of a Deserted Corpse", hidden: true}, // easily missed turnoff
			{name: "HWL: Binoculars - corpse tower, upper platform", defaultItem: "Binoculars"},
			{name: "HWL: Ring of Sacrifice - awning by fountain", defaultItem: "Ring of Sacrifice", hidden: true}, // easily missed turnoff
			{name: "HWL: Throwing Knife - shortcut, lift top", defaultItem: "Throwing Knife x6"},
			{name: "HWL: Soul of a Deserted Corpse - path to back tower, by lift door", defaultItem: "Soul of a Deserted Corpse"},
			{name: "HWL: Green Blossom - shortcut, lower courtyard", defaultItem: "Green Blossom x3"},
			{name: "HWL: Broadsword - fort, room off walkway", defaultItem: "Broadsword"},
			{name: "HWL: Soul of a Deserted Corpse - fountain, path to promenade", defaultItem: "Soul of a Deserted Corpse"},
			{name: "HWL: Firebomb - fort roof", defaultItem: "Firebomb x3"},
			{name: "HWL: Soul of a Deserted Corpse - wall tower, right of exit", defaultItem: "Soul of a Deserted Corpse"},
			{name: "HWL: Estus Shard - fort ground, on anvil", defaultItem: "Estus Shard"},
			{name: "HWL: Fleshbite Ring+1 - fort roof, jump to other roof", defaultItem: "Fleshbite Ring+1", hidden: true}, // hidden jump
			{name: "HWL: Ring of the Evil Eye+2 - fort ground, far wall", defaultItem: "Ring of the Evil Eye+2", hidden: true}, // in barrels
			{name: "HWL: Silver Eagle Kite Shield - fort mezzanine", defaultItem: "Silver Eagle Kite Shield"},
			{name: "HWL: Astora Straight Sword - fort walkway, drop down", defaultItem: "Astora Straight Sword", hidden: true}, // hidden fall
			{name: "HWL: Battle Axe - flame tower, mimic", defaultItem: "Battle Axe", staticKey: "01,0:53000960::", mimic: true},

			// Only dropped after transformation
			{name: "HWL: Ember - fort roof, transforming hollow", defaultItem: "Ember", hidden: true},
			{name: "HWL: Titanite Shard - fort roof, transforming hollow", defaultItem: "Titanite Shard", hidden: true},
			{name: "HWL: Ember - back tower, transforming hollow", defaultItem: "Ember", hidden: true},
			{name: "HWL: Titanite Shard - back tower, transforming hollow", defaultItem: "Titanite Shard", hidden: true},
			{name: "HWL: Refined Gem - promenade miniboss", defaultItem: "Refined Gem", miniboss: true},
			{name: "HWL: Way of Blue - Emma", defaultItem: "Way of Blue"},
			// npc so it stays put when the Lift Chamber Key is not randomized (missable in that case)
			{name: "HWL: Red Eye Orb - wall tower, miniboss", defaultItem: "Red Eye Orb", npc: true, miniboss: true, conditional: true},
			{name: "HWL: Raw Gem - fort roof, lizard", defaultItem: "Raw Gem", lizard: true},
		},
	},
	{
		region: "Karla's Shop",
		locations: []locationDef{
			{name: "FS: Affinity - Karla", defaultItem: "Affinity", npc: true, shop: true},
			{name: "FS: Dark Edge - Karla", defaultItem: "Dark Edge", npc: true, shop: true},

			// Quelana Pyromancy Tome
			{name: "FS: Firestorm - Karla for Quelana Tome", defaultItem: "Firestorm", missable: true, npc: true, shop: true},
			{name: "FS: Rapport - Karla for Quelana Tome", defaultItem: "Rapport", missable: true, npc: true, shop: true},
			{name: "FS: Fire Whip - Karla for Quelana Tome", defaultItem: "Fire Whip", missable: true, npc: true, shop: true},

			// Grave Warden Pyromancy Tome
			{name: "FS: Black Flame - Karla for Grave Warden Tome", defaultItem: "Black Flame", missable: true, npc: true, shop: true},
			{name: "FS: Black Fire Orb - Karla for Grave Warden Tome", defaultItem: "Black Fire Orb", missable: true, npc: true, shop: true},

			// Deep Braille Divine Tome. This can also be given to Irina, but it will fail her quest
			{name: "FS: Gnaw - Karla for Deep Braille Tome", defaultItem: "Gnaw", missable: true, npc: true, shop: true},
			{name: "FS: Deep Protection - Karla for Deep Braille Tome", defaultItem: "Deep Protection", missable: true, npc: true, shop: true},

			// Londor Braille Divine Tome. This can also be given to Irina, but it will fail her quest
			{name: "FS: Vow of Silence - Karla for Londor Tome", defaultItem: "Vow of Silence", missable: true, npc: true, shop: true},
			{name: "FS: Dark Blade - Karla for Londor Tome", defaultItem: "Dark Blade", missable: true, npc: true, shop: true},
			{name: "FS: Dead Again - Karla for Londor Tome", defaultItem: "Dead Again", missable: true, npc: true, shop: true},

			// Drops on death. Missable because the player has to decide between
			// killing her and seeing everything she sells.
			{name: "FS: Karla's Pointed Hat - kill Karla", defaultItem: "Karla's Pointed Hat", staticKey: "07,0:50006150::", missable: true, npc: true, drop: true},
			{name: "FS: Karla's Coat - kill Karla", defaultItem: "Karla's Coat", staticKey: "07,0:50006150::", missable: true, npc: true, drop: true},
			{name: "FS: Karla's Gloves - kill Karla", defaultItem: "Karla's Gloves", staticKey: "07,0:50006150::", missable: true, npc: true, drop: true},
			{name: "FS: Karla's Trousers - kill Karla", defaultItem: "Karla's Trousers", staticKey: "07,0:50006150::", missable: true, npc: true, drop: true},
		},
	},
}
