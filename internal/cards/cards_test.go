package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlearn/personas/internal/domain"
)

func testMapping() domain.Mapping {
	m := make(domain.Mapping)
	for _, f := range []domain.Field{
		domain.FieldMotivation, domain.FieldFormat, domain.FieldStyle,
		domain.FieldTime, domain.FieldChallenges, domain.FieldDevNeeds,
		domain.FieldMetro, domain.FieldEmpStatus, domain.FieldFrequency,
		domain.FieldEducation, domain.FieldExperience,
	} {
		m[f] = domain.Resolved{Column: string(f), Ok: true}
	}
	return m
}

func respondent(role string, a domain.Archetype, cells map[domain.Field]string) domain.Respondent {
	row := make(domain.Row, len(cells))
	for f, v := range cells {
		row[string(f)] = v
	}
	return domain.Respondent{Row: row, Role: role, Archetype: a}
}

func TestBuildEmptyPair(t *testing.T) {
	resps := []domain.Respondent{
		respondent("TM", domain.ArchetypePathfinder, nil),
	}

	card, ok := Build(resps, testMapping(), "TM", domain.ArchetypeConnector, domain.DefaultOptions())
	assert.False(t, ok)
	assert.Nil(t, card)
}

func TestBuildFiltersRoleAndArchetype(t *testing.T) {
	resps := []domain.Respondent{
		respondent("TM", domain.ArchetypePathfinder, map[domain.Field]string{domain.FieldMotivation: "Career advancement"}),
		respondent("TM", domain.ArchetypePathfinder, map[domain.Field]string{domain.FieldMotivation: "Career advancement"}),
		respondent("TM", domain.ArchetypePragmatist, map[domain.Field]string{domain.FieldMotivation: "Better job performance"}),
		respondent("ABM", domain.ArchetypePathfinder, map[domain.Field]string{domain.FieldMotivation: "Personal growth"}),
	}

	card, ok := Build(resps, testMapping(), "TM", domain.ArchetypePathfinder, domain.DefaultOptions())
	require.True(t, ok)

	assert.Equal(t, 2, card.N)
	assert.Equal(t, "TM", card.RoleKey)
	assert.Equal(t, "Therapy Manager", card.RoleDisplay)
	assert.Equal(t, "Pathfinder", card.PersonaName)
	// Only the two TM Pathfinders feed the distributions.
	require.Len(t, card.Graphs.Motivation, 1)
	assert.Equal(t, "Career advancement", card.Graphs.Motivation[0].Label)
	assert.Equal(t, 100, card.Graphs.Motivation[0].Pct)
}

func TestBuildAbsentRoleDegradesToArchetypeWide(t *testing.T) {
	resps := []domain.Respondent{
		respondent("TM", domain.ArchetypeInquirer, nil),
		respondent("ABM", domain.ArchetypeInquirer, nil),
	}

	// "RBM" occurs nowhere, so the role filter is skipped instead of
	// producing an empty card.
	card, ok := Build(resps, testMapping(), "RBM", domain.ArchetypeInquirer, domain.DefaultOptions())
	require.True(t, ok)
	assert.Equal(t, 2, card.N)
	assert.Equal(t, "RBM", card.RoleKey)
}

func TestBuildDemographicDefaults(t *testing.T) {
	resps := []domain.Respondent{
		respondent("TM", domain.ArchetypePragmatist, nil),
	}

	card, ok := Build(resps, domain.Mapping{}, "TM", domain.ArchetypePragmatist, domain.DefaultOptions())
	require.True(t, ok)

	assert.Equal(t, "Graduate", card.Education)
	assert.Equal(t, "1–3 years", card.Experience)
	assert.Equal(t, "Weekly", card.Frequency)
	assert.Equal(t, "Mixed (0% Metro)", card.Location)
	assert.Equal(t, "1–2 hrs / week", card.LearnPref.Time)
	assert.Equal(t, "Short Videos", card.LearnPref.Format)
	assert.Equal(t, "Short < 5 min", card.LearnPref.Duration)
	assert.Equal(t, "Career advancement", card.LearnPref.Category)
	assert.Equal(t, "—", card.DominantStatus)
}

func TestBuildModalDemographics(t *testing.T) {
	resps := []domain.Respondent{
		respondent("TM", domain.ArchetypeNavigator, map[domain.Field]string{
			domain.FieldEducation:  "Post-Graduate",
			domain.FieldExperience: "5+ years",
			domain.FieldMetro:      "Metro",
		}),
		respondent("TM", domain.ArchetypeNavigator, map[domain.Field]string{
			domain.FieldEducation:  "Post-Graduate",
			domain.FieldExperience: "1-3 years",
			domain.FieldMetro:      "Metro",
		}),
		respondent("TM", domain.ArchetypeNavigator, map[domain.Field]string{
			domain.FieldEducation:  "Graduate",
			domain.FieldExperience: "5+ years",
			domain.FieldMetro:      "Non Metro",
		}),
	}

	card, ok := Build(resps, testMapping(), "TM", domain.ArchetypeNavigator, domain.DefaultOptions())
	require.True(t, ok)

	assert.Equal(t, "Post-Graduate", card.Education)
	assert.Equal(t, "5+ years", card.Experience)
	// 2 of 3 metro rounds to 67, at or above the 50 threshold.
	assert.Equal(t, "Metro (67% Metro)", card.Location)
	assert.Equal(t, 67, card.MetroPct)
}

func TestBuildDominantStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{name: "clear majority", statuses: []string{"HEHP", "HEHP", "LELP"}, want: "HEHP"},
		{name: "tie breaks lexicographically", statuses: []string{"LELP", "HEHP"}, want: "HEHP"},
		{name: "no statuses", statuses: []string{"", ""}, want: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resps []domain.Respondent
			for _, s := range tt.statuses {
				resps = append(resps, respondent("TM", domain.ArchetypeConnector,
					map[domain.Field]string{domain.FieldEmpStatus: s}))
			}
			card, ok := Build(resps, testMapping(), "TM", domain.ArchetypeConnector, domain.DefaultOptions())
			require.True(t, ok)
			assert.Equal(t, tt.want, card.DominantStatus)
		})
	}
}

func TestBuildAboutComposition(t *testing.T) {
	resps := []domain.Respondent{
		respondent("ABM", domain.ArchetypeInquirer, nil),
	}

	card, ok := Build(resps, testMapping(), "ABM", domain.ArchetypeInquirer, domain.DefaultOptions())
	require.True(t, ok)

	assert.Contains(t, card.About, "Area Business Manager")
	assert.Contains(t, card.About, "As a Inquirer")
	assert.Contains(t, card.About, "represent 1 of the learners")
	assert.Equal(t, domain.RoleAbout["ABM"].Focus, card.Focus)
	assert.Equal(t, domain.ArchetypeInquirer.Info().Attitude, card.Attitude)
}

func TestBuildUnknownRoleFallbacks(t *testing.T) {
	resps := []domain.Respondent{
		respondent("Medical Advisor", domain.ArchetypePathfinder, nil),
	}

	card, ok := Build(resps, testMapping(), "Medical Advisor", domain.ArchetypePathfinder, domain.DefaultOptions())
	require.True(t, ok)

	assert.Equal(t, "Medical Advisor", card.RoleDisplay)
	assert.Equal(t, defaultRoleColor, card.RoleColor)
	assert.Equal(t, defaultRoleEmoji, card.RoleEmoji)
	assert.Contains(t, card.About, "a field professional in the organisation.")
}

func TestBuildDurationFollowsFormat(t *testing.T) {
	resps := []domain.Respondent{
		respondent("TM", domain.ArchetypeInquirer,
			map[domain.Field]string{domain.FieldFormat: "Books and articles"}),
	}

	card, ok := Build(resps, testMapping(), "TM", domain.ArchetypeInquirer, domain.DefaultOptions())
	require.True(t, ok)

	assert.Equal(t, "Books and articles", card.LearnPref.Format)
	assert.Equal(t, "Flexible", card.LearnPref.Duration)
}

func TestBuildValidates(t *testing.T) {
	resps := []domain.Respondent{
		respondent("TM", domain.ArchetypePathfinder, map[domain.Field]string{
			domain.FieldMotivation: "Career advancement",
			domain.FieldMetro:      "Metro",
			domain.FieldEmpStatus:  "HEHP",
		}),
	}

	card, ok := Build(resps, testMapping(), "TM", domain.ArchetypePathfinder, domain.DefaultOptions())
	require.True(t, ok)
	assert.NoError(t, card.Validate())
}
