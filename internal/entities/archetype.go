package entities

// Archetype is the closed set of fighting personalities. All
// archetype-dependent behavior goes through lookup tables keyed on these
// values, never on free-form strings.
type Archetype string

// Archetype constants
const (
	ArchetypeBrawler   Archetype = "ARCHETYPE_BRAWLER"   // aggressive, high-risk
	ArchetypeTactician Archetype = "ARCHETYPE_TACTICIAN" // cerebral, self-protective
	ArchetypeTrickster Archetype = "ARCHETYPE_TRICKSTER" // unpredictable, evasive
	ArchetypeGuardian  Archetype = "ARCHETYPE_GUARDIAN"  // defensive, steady
	ArchetypeShowman   Archetype = "ARCHETYPE_SHOWMAN"   // grandstanding, crowd-driven
	ArchetypeZealot    Archetype = "ARCHETYPE_ZEALOT"    // relentless, volatile
)

// Archetypes lists every known archetype
var Archetypes = []Archetype{
	ArchetypeBrawler,
	ArchetypeTactician,
	ArchetypeTrickster,
	ArchetypeGuardian,
	ArchetypeShowman,
	ArchetypeZealot,
}

// Valid reports whether a is a known archetype
func (a Archetype) Valid() bool {
	for _, known := range Archetypes {
		if a == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for narration
func (a Archetype) DisplayName() string {
	switch a {
	case ArchetypeBrawler:
		return "brawler"
	case ArchetypeTactician:
		return "tactician"
	case ArchetypeTrickster:
		return "trickster"
	case ArchetypeGuardian:
		return "guardian"
	case ArchetypeShowman:
		return "showman"
	case ArchetypeZealot:
		return "zealot"
	default:
		return "fighter"
	}
}
