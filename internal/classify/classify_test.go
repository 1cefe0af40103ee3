package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldlearn/personas/internal/domain"
)

// testMapping resolves every scored dimension to a same-named column.
func testMapping() domain.Mapping {
	m := make(domain.Mapping)
	for _, f := range []domain.Field{
		domain.FieldMotivation, domain.FieldFormat, domain.FieldStyle,
		domain.FieldFrequency, domain.FieldTime, domain.FieldEmpStatus,
	} {
		m[f] = domain.Resolved{Column: string(f), Ok: true}
	}
	return m
}

func TestClassify(t *testing.T) {
	m := testMapping()

	tests := []struct {
		name string
		row  domain.Row
		want domain.Archetype
	}{
		{
			name: "empty row ties break to first catalog entry",
			row:  domain.Row{},
			want: domain.ArchetypePathfinder,
		},
		{
			name: "career motivation dominates",
			row: domain.Row{
				string(domain.FieldMotivation): "Career advancement",
			},
			want: domain.ArchetypePathfinder,
		},
		{
			name: "only the first ranked motivation scores",
			row: domain.Row{
				string(domain.FieldMotivation): "Career advancement;Personal growth",
			},
			want: domain.ArchetypePathfinder,
		},
		{
			name: "growth motivation favors inquirer",
			row: domain.Row{
				string(domain.FieldMotivation): "Personal growth",
			},
			want: domain.ArchetypeInquirer,
		},
		{
			name: "job performance motivation favors navigator",
			row: domain.Row{
				string(domain.FieldMotivation): "Better job performance",
			},
			want: domain.ArchetypeNavigator,
		},
		{
			name: "reading format stacks onto inquirer",
			row: domain.Row{
				string(domain.FieldFormat): "Books and articles",
				string(domain.FieldStyle):  "Reading and writing",
			},
			want: domain.ArchetypeInquirer,
		},
		{
			name: "video format plus short time favors pragmatist",
			row: domain.Row{
				string(domain.FieldFormat): "Short videos",
				string(domain.FieldTime):   "<1 hour",
			},
			want: domain.ArchetypePragmatist,
		},
		{
			name: "gamified format plus simulation style favors connector",
			row: domain.Row{
				string(domain.FieldFormat): "Gamified modules",
				string(domain.FieldStyle):  "Simulations and games",
			},
			want: domain.ArchetypeConnector,
		},
		{
			name: "podcast plus occasional use favors navigator",
			row: domain.Row{
				string(domain.FieldFormat):    "Podcasts",
				string(domain.FieldFrequency): "Occasionally",
			},
			want: domain.ArchetypeNavigator,
		},
		{
			name: "pathfinder profile across dimensions",
			row: domain.Row{
				string(domain.FieldMotivation): "Career advancement",
				string(domain.FieldFrequency):  "Daily",
				string(domain.FieldEmpStatus):  "HEHP",
			},
			want: domain.ArchetypePathfinder,
		},
		{
			name: "emp status alone nudges connector",
			row: domain.Row{
				string(domain.FieldEmpStatus): "lelp",
			},
			want: domain.ArchetypeConnector,
		},
		{
			name: "mixed case matching",
			row: domain.Row{
				string(domain.FieldMotivation): "CAREER Advancement",
			},
			want: domain.ArchetypePathfinder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.row, m))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	m := testMapping()
	row := domain.Row{
		string(domain.FieldMotivation): "Personal growth",
		string(domain.FieldFormat):     "Short videos",
		string(domain.FieldTime):       "1-2 hours",
	}

	first := Classify(row, m)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(row, m))
	}
}

func TestClassifyRankedColumns(t *testing.T) {
	// When motivation spans rank columns, only the designated rank-1
	// column decides the motivation dimension.
	m := testMapping()
	m[domain.FieldMotivation] = domain.Resolved{
		Column: "motiv_rank1",
		Ranked: []string{"motiv_rank1", "motiv_rank2"},
		Ok:     true,
	}

	row := domain.Row{
		"motiv_rank1": "Staying ahead of industry trends",
		"motiv_rank2": "Career advancement",
	}
	assert.Equal(t, domain.ArchetypeInquirer, Classify(row, m))
}

func TestClassifyAbsentMapping(t *testing.T) {
	got := Classify(domain.Row{"anything": "Career advancement"}, domain.Mapping{})
	assert.Equal(t, domain.ArchetypePathfinder, got)
}
