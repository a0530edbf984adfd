package data

// bossDef — один босс и набор локаций, которые открываются после его смерти.
// gameID дублируется у многофазных боссов: каждая фаза — отдельный слот,
// который рандомизатор может заменить независимо.
type bossDef struct {
	name    string
	gameID  int32
	unlocks []string
}

// bossDefs lists every replaceable boss slot in encounter order.
var bossDefs = []bossDef{
	{
		name:   "Iudex Gundyr",
		gameID: 4000800,
		unlocks: []string{
			"CA: Coiled Sword - boss drop",
		},
	},
	{
		name:   "Vordt of the Boreal Valley",
		gameID: 3000800,
		unlocks: []string{
			"HWL: Soul of Boreal Valley Vordt",
		},
	},
	{
		name:   "Curse-rotted Greatwood",
		gameID: 3100800,
		unlocks: []string{
			"US: Soul of the Rotted Greatwood",
			"US: Transposing Kiln - boss drop",
			"US: Wargod Wooden Shield - Pit of Hollows",
			"FS: Hawkwood's Shield - gravestone after Hawkwood leaves",
			"FS: Sunset Shield - by grave after killing Hodrick w/Sirris",
			"US: Sunset Helm - Pit of Hollows after killing Hodrick w/Sirris",
			"US: Sunset Armor - pit of hollows after killing Hodrick w/Sirris",
			"US: Sunset Gauntlets - pit of hollows after killing Hodrick w/Sirris",
			"US: Sunset Leggings - pit of hollows after killing Hodrick w/Sirris",
			"FS: Sunless Talisman - Sirris, kill GA boss",
			"FS: Sunless Veil - shop, Sirris quest, kill GA boss",
			"FS: Sunless Armor - shop, Sirris quest, kill GA boss",
			"FS: Sunless Gauntlets - shop, Sirris quest, kill GA boss",
			"FS: Sunless Leggings - shop, Sirris quest, kill GA boss",
		},
	},
	{
		name:   "Crystal Sage",
		gameID: 3300850,
		unlocks: []string{
			"RS: Soul of a Crystal Sage",
			"FS: Sage's Big Hat - shop after killing RS boss",
			"FS: Hawkwood's Shield - gravestone after Hawkwood leaves",
		},
	},
	{
		name:   "Deacons of the Deep",
		gameID: 3500800,
		unlocks: []string{
			"CD: Soul of the Deacons of the Deep",
			"CD: Small Doll - boss drop",
			"CD: Archdeacon White Crown - boss room after killing boss",
			"CD: Archdeacon Holy Garb - boss room after killing boss",
			"CD: Archdeacon Skirt - boss room after killing boss",
			"FS: Hawkwood's Shield - gravestone after Hawkwood leaves",
		},
	},
	{
		name:   "Abyss Watchers",
		gameID: 3300801,
		unlocks: []string{
			"FK: Soul of the Blood of the Wolf",
			"FK: Cinders of a Lord - Abyss Watcher",
			"FS: Undead Legion Helm - shop after killing FK boss",
			"FS: Undead Legion Armor - shop after killing FK boss",
			"FS: Undead Legion Gauntlet - shop after killing FK boss",
			"FS: Undead Legion Leggings - shop after killing FK boss",
			"FS: Farron Ring - Hawkwood",
			"FS: Hawkwood's Shield - gravestone after Hawkwood leaves",
		},
	},
	{
		name:   "High Lord Wolnir",
		gameID: 3800800,
		unlocks: []string{
			"CC: Soul of High Lord Wolnir",
			"FS: Wolnir's Crown - shop after killing CC boss",
			"CC: Homeward Bone - Irithyll bridge",
			"CC: Pontiff's Right Eye - Irithyll bridge, miniboss drop",
		},
	},
	{
		name:   "Pontiff Sulyvahn",
		gameID: 3700850,
		unlocks: []string{
			"IBV: Soul of Pontiff Sulyvahn",
		},
	},
	{
		name:   "Old Demon King",
		gameID: 3800830,
		unlocks: []string{
			"SL: Soul of the Old Demon King",
		},
	},
	{
		name:   "Aldrich, Devourer of Gods",
		gameID: 3700800,
		unlocks: []string{
			"AL: Soul of Aldrich",
			"AL: Cinders of a Lord - Aldrich",
			"FS: Smough's Helm - shop after killing AL boss",
			"FS: Smough's Armor - shop after killing AL boss",
			"FS: Smough's Gauntlets - shop after killing AL boss",
			"FS: Smough's Leggings - shop after killing AL boss",
			"AL: Sun Princess Ring - dark cathedral, after boss",
			"FS: Leonhard's Garb - shop after killing Leonhard",
			"FS: Leonhard's Gauntlets - shop after killing Leonhard",
			"FS: Leonhard's Trousers - shop after killing Leonhard",
		},
	},
	{
		name:   "Dancer of the Boreal Valley",
		gameID: 3000899,
		unlocks: []string{
			"HWL: Soul of the Dancer",
			"FS: Dancer's Crown - shop after killing LC entry boss",
			"FS: Dancer's Armor - shop after killing LC entry boss",
			"FS: Dancer's Gauntlets - shop after killing LC entry boss",
			"FS: Dancer's Leggings - shop after killing LC entry boss",
		},
	},
	{
		name:   "Dragonslayer Armour",
		gameID: 3010800,
		unlocks: []string{
			"LC: Soul of Dragonslayer Armour",
			"FS: Morne's Helm - shop after killing Eygon or LC boss",
			"FS: Morne's Armor - shop after killing Eygon or LC boss",
			"FS: Morne's Gauntlets - shop after killing Eygon or LC boss",
			"FS: Morne's Leggings - shop after killing Eygon or LC boss",
			"LC: Titanite Chunk - down stairs after boss",
		},
	},
	{
		name:   "Consumed King Oceiros",
		gameID: 3000830,
		unlocks: []string{
			"CKG: Soul of Consumed Oceiros",
			"CKG: Titanite Scale - tomb, chest #1",
			"CKG: Titanite Scale - tomb, chest #2",
			"CKG: Drakeblood Helm - tomb, after killing AP mausoleum NPC",
			"CKG: Drakeblood Armor - tomb, after killing AP mausoleum NPC",
			"CKG: Drakeblood Gauntlets - tomb, after killing AP mausoleum NPC",
			"CKG: Drakeblood Leggings - tomb, after killing AP mausoleum NPC",
		},
	},
	{
		name:   "Champion Gundyr",
		gameID: 4000830,
		unlocks: []string{
			"UG: Soul of Champion Gundyr",
			"FS: Gundyr's Helm - shop after killing UG boss",
			"FS: Gundyr's Armor - shop after killing UG boss",
			"FS: Gundyr's Gauntlets - shop after killing UG boss",
			"FS: Gundyr's Leggings - shop after killing UG boss",
			"UG: Hornet Ring - environs, right of main path after killing FK boss",
			"UG: Chaos Blade - environs, left of shrine",
			"UG: Blacksmith Hammer - shrine, Andre's room",
			"UG: Eyes of a Fire Keeper - shrine, Irina's room",
			"UG: Coiled Sword Fragment - shrine, dead bonfire",
			"UG: Soul of a Crestfallen Knight - environs, above shrine entrance",
			"UG: Life Ring+3 - shrine, behind big throne",
			"UG: Ring of Steel Protection+1 - environs, behind bell tower",
			"FS: Ring of Sacrifice - Yuria shop",
			"UG: Ember - shop",
			"UG: Priestess Ring - shop",
			"UG: Wolf Knight Helm - shop after killing FK boss",
			"UG: Wolf Knight Armor - shop after killing FK boss",
			"UG: Wolf Knight Gauntlets - shop after killing FK boss",
			"UG: Wolf Knight Leggings - shop after killing FK boss",
		},
	},
	{
		name:   "Ancient Wyvern",
		gameID: 3200800,
	},
	{
		name:   "King of the Storm",
		gameID: 3200850,
		unlocks: []string{
			"AP: Soul of the Nameless King",
			"FS: Golden Crown - shop after killing AP boss",
			"FS: Dragonscale Armor - shop after killing AP boss",
			"FS: Golden Bracelets - shop after killing AP boss",
			"FS: Dragonscale Waistcloth - shop after killing AP boss",
			"AP: Titanite Slab - plaza",
			"AP: Covetous Gold Serpent Ring+2 - plaza",
			"AP: Dragonslayer Helm - plaza",
			"AP: Dragonslayer Armor - plaza",
			"AP: Dragonslayer Gauntlets - plaza",
			"AP: Dragonslayer Leggings - plaza",
		},
	},
	{
		name:   "Nameless King",
		gameID: 3200851,
		unlocks: []string{
			"AP: Soul of the Nameless King",
			"FS: Golden Crown - shop after killing AP boss",
			"FS: Dragonscale Armor - shop after killing AP boss",
			"FS: Golden Bracelets - shop after killing AP boss",
			"FS: Dragonscale Waistcloth - shop after killing AP boss",
			"AP: Titanite Slab - plaza",
			"AP: Covetous Gold Serpent Ring+2 - plaza",
			"AP: Dragonslayer Helm - plaza",
			"AP: Dragonslayer Armor - plaza",
			"AP: Dragonslayer Gauntlets - plaza",
			"AP: Dragonslayer Leggings - plaza",
		},
	},
	{
		name:   "Lothric, Younger Prince",
		gameID: 3410830,
		unlocks: []string{
			"GA: Soul of the Twin Princes",
			"GA: Cinders of a Lord - Lothric Prince",
		},
	},
	{
		name:   "Lorian, Elder Prince",
		gameID: 3410832,
		unlocks: []string{
			"GA: Soul of the Twin Princes",
			"GA: Cinders of a Lord - Lothric Prince",
			"FS: Lorian's Helm - shop after killing GA boss",
			"FS: Lorian's Armor - shop after killing GA boss",
			"FS: Lorian's Gauntlets - shop after killing GA boss",
			"FS: Lorian's Leggings - shop after killing GA boss",
		},
	},
}

// standInBossDef is the fallback fight that can be swapped into any boss
// slot above.
var standInBossDef = bossDef{
	name:   "Yhorm the Giant",
	gameID: 3900800,
	unlocks: []string{
		"PC: Soul of Yhorm the Giant",
		"PC: Cinders of a Lord - Yhorm the Giant",
		"PC: Siegbräu - Siegward after killing boss",
	},
}
