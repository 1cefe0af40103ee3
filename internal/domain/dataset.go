package domain

// Row is one survey response: raw cell text keyed by the dataset's
// original column name. An empty string means the respondent left the
// question blank. Rows are read-only after ingestion; derived attributes
// (role, archetype) live on Respondent, never inside the Row.
type Row map[string]string

// Dataset is the in-memory tabular survey export handed to the engine.
// Column names are arbitrary text; no schema is required, every logical
// field is optionally detected.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Respondent pairs an immutable survey row with its two derived
// attributes: the normalized role and the classified archetype.
type Respondent struct {
	Row       Row       `json:"row"`
	Role      string    `json:"role"`
	Archetype Archetype `json:"archetype"`
}

// RowsOf projects the raw rows out of a respondent subset, preserving
// order, for handing to the response aggregator.
func RowsOf(resps []Respondent) []Row {
	rows := make([]Row, len(resps))
	for i := range resps {
		rows[i] = resps[i].Row
	}
	return rows
}
