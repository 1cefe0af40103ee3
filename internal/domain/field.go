package domain

// Field names a logical survey dimension the column mapper tries to
// locate in the dataset. The string values double as the diagnostic keys
// reported in the payload's detected_cols map.
type Field string

// The full set of detectable logical fields.
const (
	FieldCluster       Field = "cluster"
	FieldDivision      Field = "subdept2"
	FieldRole          Field = "role"
	FieldMetro         Field = "metro"
	FieldEmpStatus     Field = "emp_status"
	FieldMotivation    Field = "motiv"
	FieldFormat        Field = "format"
	FieldStyle         Field = "style"
	FieldTime          Field = "time"
	FieldFrequency     Field = "frequency"
	FieldChallenges    Field = "challenges"
	FieldDevNeeds      Field = "dev_needs"
	FieldParticipation Field = "participation"
	FieldEducation     Field = "education"
	FieldExperience    Field = "exp"
)

// Resolved is the explicit result of mapping one logical field onto the
// dataset. A field either resolved to a concrete column (Ok true) or is
// absent (Ok false); downstream consumers pattern-match on Ok and treat
// absent as "contributes nothing", never as an error.
type Resolved struct {
	// Column is the concrete column identifier, or the rank-1 column
	// when the question is spread across ranked columns.
	Column string `json:"column"`

	// Ranked lists all columns of a multi-column ranked question in
	// ascending rank order. Empty for single-column fields.
	Ranked []string `json:"ranked,omitempty"`

	Ok bool `json:"ok"`
}

// All returns every concrete column backing the field: the ranked set
// for multi-column questions, else the single resolved column.
func (r Resolved) All() []string {
	if !r.Ok {
		return nil
	}
	if len(r.Ranked) > 0 {
		return r.Ranked
	}
	return []string{r.Column}
}

// Mapping is the per-dataset resolution of every logical field, built
// once by the column mapper and read-only afterwards. Fields that could
// not be detected are simply not present.
type Mapping map[Field]Resolved

// Lookup returns the resolution for f; the zero Resolved (Ok false)
// when the field was not detected.
func (m Mapping) Lookup(f Field) Resolved { return m[f] }
