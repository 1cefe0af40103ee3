package domain

// Entry is one (label, percentage) pair of a response distribution.
// Percentages are integer-rounded against the distribution's own
// denominator (the count of respondents who answered that question).
type Entry struct {
	Label string `json:"label"`
	Pct   int    `json:"pct"`
}

// ChallengeEntry is an Entry decorated with the icon the report layer
// renders next to each engagement barrier.
type ChallengeEntry struct {
	Label string `json:"label"`
	Pct   int    `json:"pct"`
	Icon  string `json:"icon"`
}

// ArchetypeShare is one archetype's slice of a segment's distribution,
// flattened with its catalog metadata for the renderer.
type ArchetypeShare struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Pct         int    `json:"pct"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// Graphs groups the per-question response distributions of a segment.
type Graphs struct {
	Motivation    []Entry          `json:"motivation"`
	Format        []Entry          `json:"format"`
	Style         []Entry          `json:"style"`
	Challenges    []ChallengeEntry `json:"challenges"`
	DevNeeds      []Entry          `json:"devNeeds"`
	Participation []Entry          `json:"participation,omitempty"`
}

// Insight is the generated narrative for one segment: always exactly six
// paragraphs, however small the segment.
type Insight struct {
	Paragraphs []string `json:"paragraphs"`
}

// Segment is the full statistical summary of one respondent subset.
// It is a pure function-result of its input rows and is never mutated
// after construction.
//
// Each percentage is rounded independently; percentages within one
// distribution are not renormalized and need not sum to exactly 100.
type Segment struct {
	N           int              `json:"n" validate:"min=1"`
	MetroN      int              `json:"metro_n"`
	NonMetroN   int              `json:"nmetro_n"`
	MetroPct    int              `json:"metro_pct" validate:"min=0,max=100"`
	NonMetroPct int              `json:"nmetro_pct" validate:"min=0,max=100"`
	EmpStatus   map[string]int   `json:"es_dist"`
	Personas    []ArchetypeShare `json:"persona_dist" validate:"len=5"`
	Graphs      Graphs           `json:"graphs"`
	Insight     Insight          `json:"insight"`
}

// Validate checks the segment against its structural invariants.
func (s *Segment) Validate() error { return validate.Struct(s) }
