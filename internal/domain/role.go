package domain

import "strings"

// RoleUnknown is assigned when the dataset carries no detectable role
// column. Raw role text that matches no catalog entry passes through
// verbatim instead.
const RoleUnknown = "Unknown"

// RoleKeys lists the fixed field-role catalog in display order.
var RoleKeys = [6]string{"TM", "ABM", "HBM/SBM", "RBM", "ZBM", "Marketing"}

// Static per-role display metadata, keyed by catalog role key.
var (
	RoleColors = map[string]string{
		"TM":        "#0d6efd",
		"ABM":       "#7c3aed",
		"HBM/SBM":   "#0891b2",
		"RBM":       "#d97706",
		"ZBM":       "#be123c",
		"Marketing": "#059669",
	}

	RoleDisplay = map[string]string{
		"TM":        "Therapy Manager",
		"ABM":       "Area Business Manager",
		"HBM/SBM":   "Hospital / Scientific BM",
		"RBM":       "Regional Business Manager",
		"ZBM":       "Zonal Business Manager",
		"Marketing": "Marketing Team",
	}

	RoleEmojis = map[string]string{
		"TM":        "👨‍⚕️",
		"ABM":       "👨‍💼",
		"HBM/SBM":   "👩‍🔬",
		"RBM":       "📊",
		"ZBM":       "🌐",
		"Marketing": "📣",
	}
)

// RoleNarrative is the free-text pair used when composing persona card
// prose: About describes who the learner is, Focus what they are working
// toward.
type RoleNarrative struct {
	About string
	Focus string
}

// RoleAbout carries the per-role narrative pairs for the card builder.
var RoleAbout = map[string]RoleNarrative{
	"TM": {
		About: "a frontline Territory Manager covering Tier 2 and Tier 3 cities, meeting doctors, pharmacists, and stockists daily. Territory performance is directly tied to product knowledge and communication effectiveness.",
		Focus: "build product expertise and sharpen communication skills to grow into a leadership role.",
	},
	"ABM": {
		About: "an Area Business Manager leading a team of 4–6 TMs across multiple territories, responsible for coverage, coaching, and business outcomes.",
		Focus: "build management and leadership capability while staying sharp on product and clinical updates.",
	},
	"HBM/SBM": {
		About: "a Hospital or Scientific Business Manager engaging with consultants, intensivists, and specialists who demand clinical depth and evidence-based conversations.",
		Focus: "deepen scientific and product knowledge to engage confidently with specialist physicians.",
	},
	"RBM": {
		About: "a Regional Business Manager overseeing multiple areas, responsible for regional P&L, coaching ABMs, and driving strategic business outcomes.",
		Focus: "build strategic coaching capability and leadership depth to move into a Zonal or national role.",
	},
	"ZBM": {
		About: "a Zonal Business Manager leading an entire zone, owning zonal P&L, setting strategic direction, and coaching RBMs across multiple regions.",
		Focus: "sharpen strategic leadership and stay ahead of market and competitive shifts.",
	},
	"Marketing": {
		About: "a Brand Manager owning therapy brand communication strategy, campaigns, and promotional material — collaborating with medical, regulatory, and sales teams.",
		Focus: "build strategic brand management capability while staying updated on scientific and market developments.",
	},
}

// DefaultRoleNarrative is used for roles outside the catalog.
var DefaultRoleNarrative = RoleNarrative{
	About: "a field professional in the organisation.",
	Focus: "continue developing their skills.",
}

// roleSynonyms normalizes free-text designations to catalog role keys.
// Lookup is case-insensitive on the trimmed raw value.
var roleSynonyms = map[string]string{
	"territory manager":           "TM",
	"tm":                          "TM",
	"area business manager":       "ABM",
	"abm":                         "ABM",
	"hospital business manager":   "HBM/SBM",
	"hbm":                         "HBM/SBM",
	"scientific business manager": "HBM/SBM",
	"sbm":                         "HBM/SBM",
	"hbm/sbm":                     "HBM/SBM",
	"regional business manager":   "RBM",
	"rbm":                         "RBM",
	"zonal business manager":      "ZBM",
	"zbm":                         "ZBM",
	"marketing":                   "Marketing",
	"brand manager":               "Marketing",
}

// NormalizeRole maps raw role or designation text onto the role catalog.
// Unrecognized non-empty values pass through verbatim (trimmed) so that
// uncommon roles still form their own filter dimension; empty input maps
// to RoleUnknown.
func NormalizeRole(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RoleUnknown
	}
	if key, ok := roleSynonyms[strings.ToLower(trimmed)]; ok {
		return key
	}
	return trimmed
}
