package world

// Build constructs the Village of Theron at its starting state.
func Build() *World {
	locations := map[string]*Location{
		"village_square": {
			Key:         "village_square",
			Description: "Village Square. Smithy smoke curls into the sky. Cottages ring a worn well, and a forest path leads north.",
			Exits:       []string{"blacksmith_shop", "elder_house", "general_store", "forest_path"},
		},
		"blacksmith_shop": {
			Key:         "blacksmith_shop",
			Description: "Blacksmith Shop. Heat and hammering. Tools line the walls.",
			Exits:       []string{"village_square"},
			NPCs:        []string{"blacksmith"},
		},
		"elder_house": {
			Key:         "elder_house",
			Description: "Elder's House. Dried herbs hang from the rafters. The air smells of candle wax and old paper.",
			Exits:       []string{"village_square"},
			NPCs:        []string{"elder"},
		},
		"general_store": {
			Key:         "general_store",
			Description: "General Store. Shelves crowded with jars, rope, and oddments from passing traders.",
			Exits:       []string{"village_square"},
			NPCs:        []string{"merchant"},
		},
		"forest_path": {
			Key:             "forest_path",
			Description:     "Forest Path. Tall pines, damp earth. A narrow track disappears into darker woods.",
			Exits:           []string{"village_square", "deep_forest", "hidden_cave"},
			EncounterChance: 20,
			EncounterKey:    "forest_wolf",
			FleeFallback:    "village_square",
		},
		"deep_forest": {
			Key:             "deep_forest",
			Description:     "Deep Forest. The canopy swallows the light. Something rustles beyond the ferns.",
			Exits:           []string{"forest_path", "old_mine"},
			NPCs:            []string{"herbalist"},
			Items:           []string{"silver_locket", "moonpetal_herb"},
			EncounterChance: 20,
			EncounterKey:    "forest_wolf",
			FleeFallback:    "forest_path",
		},
		"hidden_cave": {
			Key:             "hidden_cave",
			Description:     "Hidden Cave. Your footsteps echo; the air is cool and still.",
			Exits:           []string{"forest_path"},
			Boss:            &BossState{MonsterKey: "cave_beast"},
			SeedItems:       []string{"glimmering_gem"},
			EncounterChance: 15,
			EncounterKey:    "giant_rat",
			FleeFallback:    "forest_path",
		},
		"old_mine": {
			Key:             "old_mine",
			Description:     "Old Mine. Rotted timbers brace a tunnel that slopes into the dark.",
			Exits:           []string{"deep_forest", "ancient_ruins"},
			Boss:            &BossState{MonsterKey: "tunnel_lurker"},
			EncounterChance: 15,
			EncounterKey:    "giant_rat",
			FleeFallback:    "deep_forest",
		},
		"ancient_ruins": {
			Key:             "ancient_ruins",
			Description:     "Ancient Ruins. Broken columns and a stair descending to a sealed vault door.",
			Exits:           []string{"old_mine", "treasure_vault"},
			Boss:            &BossState{MonsterKey: "ruin_guardian"},
			EncounterChance: 10,
			EncounterKey:    "restless_wisp",
			FleeFallback:    "old_mine",
		},
		"treasure_vault": {
			Key:          "treasure_vault",
			Description:  "Treasure Vault. Gold-dust motes drift in a shaft of pale light. On a stone plinth rests the crown.",
			Exits:        []string{"ancient_ruins"},
			Items:        []string{"crown_of_theron"},
			FleeFallback: "ancient_ruins",
			RequiresItem: "vault_key",
			BlockedText:  "The vault door is sealed. Its lock wants a very particular key.",
		},
	}

	npcs := map[string]*NPC{
		"blacksmith": {
			Key:         "blacksmith",
			Name:        "Rogan the Blacksmith",
			Personality: "Gruff but helpful, secretly fond of gossip.",
			Memory:      []string{"Met the player in the village square.", "Heard rumors of a lost gem in the cave."},
			Emotion:     EmotionCalm,
			Shop: map[string]int{
				"rusty_sword":   10,
				"iron_sword":    25,
				"leather_armor": 20,
				"iron_armor":    45,
			},
		},
		"elder": {
			Key:         "elder",
			Name:        "Elder Maren",
			Personality: "Frail keeper of the village lore, patient and precise.",
			Memory:      []string{"Watched the player arrive from the south road."},
			Emotion:     EmotionCalm,
		},
		"merchant": {
			Key:         "merchant",
			Name:        "Tilda the Merchant",
			Personality: "Cheerful trader who haggles out of habit, not need.",
			Memory:      []string{"Opened the store shutters at dawn."},
			Emotion:     EmotionHappy,
			Shop: map[string]int{
				"health_potion": 10,
				"lucky_charm":   15,
				"ember_amulet":  35,
			},
		},
		"herbalist": {
			Key:         "herbalist",
			Name:        "Sera the Herbalist",
			Personality: "Quiet forest dweller, speaks more to plants than people.",
			Memory:      []string{"Gathered moonpetal before sunrise."},
			Emotion:     EmotionCalm,
		},
	}

	player := &Player{
		Location:   "village_square",
		Inventory:  []string{},
		Quests:     map[string]QuestStage{},
		Gold:       15,
		HP:         20,
		MaxHP:      20,
		BaseAttack: 3,
		Explored:   map[string]bool{"village_square": true},
	}

	return &World{
		Player:    player,
		Locations: locations,
		NPCs:      npcs,
		Flags:     map[Flag]bool{},
	}
}
