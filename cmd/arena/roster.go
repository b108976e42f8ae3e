package main

import (
	"github.com/coachfight/arena-api/internal/entities"
)

// demoSetup builds the two showcase teams used by the CLI commands
func demoSetup(mode entities.BattleMode, stakes int32, envModifiers map[string]int32) *entities.BattleSetup {
	player := &entities.Team{
		ID:        "team_wandering_blades",
		Name:      "The Wandering Blades",
		CoachName: "Coach Okabe",
		Chemistry: 55,
		Fighters: []*entities.Character{
			{
				ID:        "char_musashi",
				Name:      "Miyamoto Musashi",
				Archetype: entities.ArchetypeTactician,
				Attack:    14,
				Defense:   8,
				Speed:     12,
				CurrentHP: 60,
				MaxHP:     60,
				Abilities: []entities.Ability{
					{ID: "ability_two_heavens", Name: "Two Heavens Cut", Power: 6},
				},
			},
			{
				ID:        "char_joan",
				Name:      "Joan of Arc",
				Archetype: entities.ArchetypeZealot,
				Attack:    12,
				Defense:   10,
				Speed:     9,
				CurrentHP: 65,
				MaxHP:     65,
				Abilities: []entities.Ability{
					{ID: "ability_banner_charge", Name: "Banner Charge", Power: 5},
				},
			},
		},
	}

	opponent := &entities.Team{
		ID:        "team_storm_crows",
		Name:      "The Storm Crows",
		CoachName: "Coach Vane",
		Chemistry: 50,
		Fighters: []*entities.Character{
			{
				ID:        "char_blackbeard",
				Name:      "Blackbeard",
				Archetype: entities.ArchetypeBrawler,
				Attack:    15,
				Defense:   6,
				Speed:     8,
				CurrentHP: 70,
				MaxHP:     70,
				Abilities: []entities.Ability{
					{ID: "ability_broadside", Name: "Broadside", Power: 7},
				},
			},
			{
				ID:        "char_tesla",
				Name:      "Nikola Tesla",
				Archetype: entities.ArchetypeShowman,
				Attack:    11,
				Defense:   7,
				Speed:     13,
				CurrentHP: 55,
				MaxHP:     55,
				Abilities: []entities.Ability{
					{ID: "ability_coil_arc", Name: "Coil Arc", Power: 8},
				},
			},
		},
	}

	return &entities.BattleSetup{
		PlayerTeam:           player,
		OpponentTeam:         opponent,
		Mode:                 mode,
		WeightClass:          entities.WeightClassMiddle,
		Stakes:               stakes,
		EnvironmentModifiers: envModifiers,
	}
}
