package domain

// AnonRow is one respondent reduced to the categorical fields the report
// layer may filter on. Raw free-text survey answers are deliberately
// excluded; this is the payload's privacy boundary.
type AnonRow struct {
	Role      string `json:"role"`
	Persona   string `json:"persona"`
	Cluster   string `json:"cluster"`
	Division  string `json:"subdept2"`
	Metro     string `json:"metro"`
	EmpStatus string `json:"empStatus"`
}

// Payload is the fully materialized report data tree returned by one
// engine invocation. The JSON key names are a stable contract with the
// downstream renderer.
type Payload struct {
	TotalN int `json:"total_n" validate:"min=0"`

	// Sorted distinct values per detected filter dimension; empty when
	// the dimension was not detected.
	Clusters  []string `json:"clusters"`
	Divisions []string `json:"bu_divisions"`
	Roles     []string `json:"roles"`
	Metros    []string `json:"metros"`

	// Static catalogs, repeated into every payload so the renderer
	// needs no side channel.
	PersonaTypes map[string]ArchetypeInfo `json:"persona_types"`
	RoleColors   map[string]string        `json:"role_colors"`
	RoleDisplay  map[string]string        `json:"role_display"`
	RoleEmojis   map[string]string        `json:"role_emojis"`

	Rows []AnonRow `json:"rows"`

	// Precomputed maps filter-key strings (FilterKey* helpers) to their
	// segment summaries. Combinations below the minimum segment size are
	// omitted entirely.
	Precomputed map[string]*Segment `json:"precomputed"`

	// PersonaCards maps "<role>::<archetype>" to the pair's card.
	// Empty (role, archetype) subsets are omitted.
	PersonaCards map[string]*Card `json:"persona_cards"`

	// Diagnostic echo of the column resolution.
	ColumnNames  map[string]string `json:"col_names"`
	DetectedCols map[string]string `json:"detected_cols"`
}

// Validate checks the payload against its structural invariants.
func (p *Payload) Validate() error { return validate.Struct(p) }

// Filter-key constructors. The key grammar is part of the payload
// contract: "overall", "role::X", "cluster::X", "bu::X", and
// "cluster::X::role::Y".
const FilterKeyOverall = "overall"

func FilterKeyRole(role string) string       { return "role::" + role }
func FilterKeyCluster(cluster string) string { return "cluster::" + cluster }
func FilterKeyDivision(div string) string    { return "bu::" + div }

func FilterKeyClusterRole(cluster, role string) string {
	return "cluster::" + cluster + "::role::" + role
}

// CardKey names the persona_cards entry for one (role, archetype) pair.
func CardKey(role string, a Archetype) string { return role + "::" + string(a) }
