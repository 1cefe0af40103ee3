// Package domain defines the core types for the learner persona engine:
// the archetype and role catalogs, the survey dataset model, resolved
// column mappings, segment and persona-card aggregates, and the operation
// contracts executed by the report workflow.
//
// Everything in this package is either immutable catalog data or a pure
// value type. No function here performs I/O, and the catalogs are never
// mutated after process start.
package domain

// Archetype is one of the five fixed learner persona labels assigned to
// every respondent by the classifier.
type Archetype string

// The five archetypes. Declaration order is significant: it is the
// documented tie-break order for classification (the first archetype to
// reach the maximum score wins) and the iteration order for any output
// that walks the full catalog.
const (
	ArchetypePathfinder Archetype = "Pathfinder"
	ArchetypePragmatist Archetype = "Pragmatist"
	ArchetypeInquirer   Archetype = "Inquirer"
	ArchetypeNavigator  Archetype = "Navigator"
	ArchetypeConnector  Archetype = "Connector"
)

// Archetypes lists the full catalog in declaration (tie-break) order.
var Archetypes = [5]Archetype{
	ArchetypePathfinder,
	ArchetypePragmatist,
	ArchetypeInquirer,
	ArchetypeNavigator,
	ArchetypeConnector,
}

// String returns the archetype name.
func (a Archetype) String() string { return string(a) }

// Valid reports whether a names one of the five catalog archetypes.
func (a Archetype) Valid() bool {
	_, ok := archetypeCatalog[a]
	return ok
}

// ArchetypeInfo carries the static display metadata for one archetype.
type ArchetypeInfo struct {
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`

	// Attitude is the first-person quote shown on persona cards.
	Attitude string `json:"-"`
}

// Info returns the static metadata for a. Unknown archetypes return the
// zero value; callers that classified through this package never see that.
func (a Archetype) Info() ArchetypeInfo { return archetypeCatalog[a] }

var archetypeCatalog = map[Archetype]ArchetypeInfo{
	ArchetypePathfinder: {
		Emoji:       "🧭",
		Color:       "#0d6efd",
		Tagline:     "Driven by growth, always moving forward",
		Description: "Highly motivated learners who connect every module to their next career move. They engage frequently, prefer structured progression, and respond strongly to recognition.",
		Attitude:    "Show me where this learning takes me. If I can see a clear line between this module and my next role, I am all in. I engage daily and I want structured progress.",
	},
	ArchetypePragmatist: {
		Emoji:       "⚡",
		Color:       "#d97706",
		Tagline:     "Time is precious — make every minute count",
		Description: "Busy, results-oriented learners who need content that is immediately applicable. They favour short formats, dislike abstract content, and drop off quickly if relevance is not clear.",
		Attitude:    "Give me what I need in the shortest time possible. Short videos, clear takeaways, immediately usable. I do not have time for content that does not apply to my day.",
	},
	ArchetypeInquirer: {
		Emoji:       "🔬",
		Color:       "#0891b2",
		Tagline:     "Depth over breadth, evidence over assertion",
		Description: "Curious learners who go beyond the surface. They read, explore case studies, and want to understand the 'why'. Scientific and clinical depth energises them.",
		Attitude:    "I want to understand the evidence, the mechanism, the reasoning. Do not just tell me what — tell me why. Case studies and clinical depth are where I come alive.",
	},
	ArchetypeNavigator: {
		Emoji:       "🗺️",
		Color:       "#7c3aed",
		Tagline:     "Experience-led, self-directed, performance-focused",
		Description: "Seasoned professionals who know what they need. They self-direct their learning, prefer flexibility, and are motivated by improving outcomes rather than advancement.",
		Attitude:    "I know what I need. Give me flexibility and let me drive. I am motivated by improving my outcomes, not by completing a course for its own sake.",
	},
	ArchetypeConnector: {
		Emoji:       "🤝",
		Color:       "#059669",
		Tagline:     "Learning is better together",
		Description: "Collaborative learners energised by peer interaction, team scenarios, and shared challenges. Coaching simulations and group formats resonate most with them.",
		Attitude:    "Put me with my peers. Coaching scenarios, team discussions, shared challenges — that is where I learn best. Isolation kills my motivation.",
	},
}
