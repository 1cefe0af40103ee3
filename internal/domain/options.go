package domain

// Options carries the tunable knobs of one engine invocation. The zero
// value is not usable; start from DefaultOptions and override fields.
type Options struct {
	// Top-N truncation per tracked question, matching the report
	// layout's chart sizes.
	TopMotivations   int `json:"top_motivations"   yaml:"top_motivations"   validate:"min=1"`
	TopFormats       int `json:"top_formats"       yaml:"top_formats"       validate:"min=1"`
	TopStyles        int `json:"top_styles"        yaml:"top_styles"        validate:"min=1"`
	TopTimeBrackets  int `json:"top_time_brackets" yaml:"top_time_brackets" validate:"min=1"`
	TopChallenges    int `json:"top_challenges"    yaml:"top_challenges"    validate:"min=1"`
	TopDevNeeds      int `json:"top_dev_needs"     yaml:"top_dev_needs"     validate:"min=1"`
	TopParticipation int `json:"top_participation" yaml:"top_participation" validate:"min=1"`

	// MinSegmentSize is the smallest (cluster, role) subset that still
	// gets a precomputed segment; smaller combinations are omitted so
	// unstable percentages never reach the report.
	MinSegmentSize int `json:"min_segment_size" yaml:"min_segment_size" validate:"min=1"`
}

// DefaultOptions returns the engine defaults used by the report layout.
func DefaultOptions() Options {
	return Options{
		TopMotivations:   6,
		TopFormats:       6,
		TopStyles:        4,
		TopTimeBrackets:  4,
		TopChallenges:    5,
		TopDevNeeds:      5,
		TopParticipation: 5,
		MinSegmentSize:   10,
	}
}

// Validate checks the options against their bounds.
func (o *Options) Validate() error { return validate.Struct(o) }
