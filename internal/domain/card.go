package domain

// LearnPref summarizes a card subset's headline learning preferences.
type LearnPref struct {
	Format   string `json:"format"`
	Duration string `json:"duration"`
	Category string `json:"category"`
	Time     string `json:"time"`
}

// Card is the detailed profile for one (role, archetype) pair: modal
// demographics, top-ranked responses, and composed narrative text.
// A card is only built for non-empty subsets.
type Card struct {
	N int `json:"n" validate:"min=1"`

	RoleKey     string `json:"role_key"`
	RoleDisplay string `json:"role_display"`
	RoleColor   string `json:"role_color"`
	RoleEmoji   string `json:"role_emoji"`

	PersonaName    string `json:"persona_name" validate:"required"`
	PersonaEmoji   string `json:"persona_emoji"`
	PersonaColor   string `json:"persona_color"`
	PersonaTagline string `json:"persona_tagline"`

	// Modal demographic values for the subset.
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
	Frequency  string `json:"frequency"`

	About    string `json:"about"`
	Focus    string `json:"focus"`
	Attitude string `json:"attitude"`

	LearnPref   LearnPref `json:"learnPref"`
	TopNeeds    []string  `json:"topNeeds"`
	Motivations []string  `json:"motivations"`
	Challenges  []string  `json:"challenges"`

	EmpStatus      map[string]int `json:"es_dist"`
	DominantStatus string         `json:"dom_es"`
	MetroPct       int            `json:"metro_pct" validate:"min=0,max=100"`

	Graphs Graphs `json:"graphs"`
}

// Validate checks the card against its structural invariants.
func (c *Card) Validate() error { return validate.Struct(c) }
