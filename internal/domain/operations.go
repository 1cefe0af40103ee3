package domain

// Operation contracts for the report workflow. Each activity takes one
// input struct and returns one output struct; both sides validate so a
// corrupted history or hand-built request fails fast instead of
// producing a silently wrong report.

// ReportRequest starts one report generation run.
type ReportRequest struct {
	Dataset Dataset `json:"dataset" validate:"required"`
	Options Options `json:"options" validate:"required"`
}

// Validate checks the request against the operation contract.
func (r *ReportRequest) Validate() error { return validate.Struct(r) }

// ClassifyRowsInput asks for column resolution, role normalization, and
// per-row archetype classification of the whole dataset.
type ClassifyRowsInput struct {
	Dataset Dataset `json:"dataset" validate:"required"`
}

// Validate checks the input against the operation contract.
func (c *ClassifyRowsInput) Validate() error { return validate.Struct(c) }

// ClassifyRowsOutput carries the classified rows plus the detected
// filter dimensions. Dimension slices are sorted and may be empty when
// the dimension was not detected.
type ClassifyRowsOutput struct {
	Mapping     Mapping      `json:"mapping"`
	Respondents []Respondent `json:"respondents"`

	Clusters  []string `json:"clusters"`
	Divisions []string `json:"divisions"`
	Roles     []string `json:"roles"`
	Metros    []string `json:"metros"`
}

// Validate checks the output against the operation contract.
func (c *ClassifyRowsOutput) Validate() error { return validate.Struct(c) }

// BuildSegmentsInput asks for the full precomputed segment map over the
// classified rows.
type BuildSegmentsInput struct {
	Respondents []Respondent `json:"respondents"`
	Mapping     Mapping      `json:"mapping"`
	Options     Options      `json:"options" validate:"required"`

	Clusters  []string `json:"clusters"`
	Divisions []string `json:"divisions"`
	Roles     []string `json:"roles"`
}

// Validate checks the input against the operation contract.
func (b *BuildSegmentsInput) Validate() error { return validate.Struct(b) }

// BuildSegmentsOutput carries the precomputed segments keyed by filter
// key. Empty and under-threshold combinations are absent.
type BuildSegmentsOutput struct {
	Segments map[string]*Segment `json:"segments"`
}

// Validate checks the output against the operation contract.
func (b *BuildSegmentsOutput) Validate() error { return validate.Struct(b) }

// BuildCardsInput asks for one persona card per (role, archetype) pair
// present in the classified rows.
type BuildCardsInput struct {
	Respondents []Respondent `json:"respondents"`
	Mapping     Mapping      `json:"mapping"`
	Options     Options      `json:"options" validate:"required"`
	Roles       []string     `json:"roles"`
}

// Validate checks the input against the operation contract.
func (b *BuildCardsInput) Validate() error { return validate.Struct(b) }

// BuildCardsOutput carries the persona cards keyed "<role>::<archetype>".
// Empty pairs are absent.
type BuildCardsOutput struct {
	Cards map[string]*Card `json:"cards"`
}

// Validate checks the output against the operation contract.
func (b *BuildCardsOutput) Validate() error { return validate.Struct(b) }
