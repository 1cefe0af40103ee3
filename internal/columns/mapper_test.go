package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlearn/personas/internal/domain"
)

func TestResolveBasicFields(t *testing.T) {
	cols := []string{
		"Cluster",
		"Sub Dept 2",
		"Role / Designation",
		"Metro/Non Metro",
		"Employee Status",
		"Time willing to spend on learning per week",
		"Digital platform frequency of use",
		"Challenges faced with digital learning",
		"Professional development needs",
		"Would you participate in a pilot program",
		"Highest education qualification",
		"Years in role",
	}
	m := Resolve(cols)

	tests := []struct {
		field domain.Field
		col   string
	}{
		{domain.FieldCluster, "Cluster"},
		{domain.FieldDivision, "Sub Dept 2"},
		{domain.FieldRole, "Role / Designation"},
		{domain.FieldMetro, "Metro/Non Metro"},
		{domain.FieldEmpStatus, "Employee Status"},
		{domain.FieldTime, "Time willing to spend on learning per week"},
		{domain.FieldFrequency, "Digital platform frequency of use"},
		{domain.FieldChallenges, "Challenges faced with digital learning"},
		{domain.FieldDevNeeds, "Professional development needs"},
		{domain.FieldParticipation, "Would you participate in a pilot program"},
		{domain.FieldEducation, "Highest education qualification"},
		{domain.FieldExperience, "Years in role"},
	}
	for _, tt := range tests {
		res := m.Lookup(tt.field)
		require.True(t, res.Ok, "field %s not resolved", tt.field)
		assert.Equal(t, tt.col, res.Column, "field %s", tt.field)
	}
}

func TestResolveNormalizesWhitespaceAndCase(t *testing.T) {
	m := Resolve([]string{"  CLUSTER  ", "Employee   Status"})

	assert.Equal(t, "  CLUSTER  ", m.Lookup(domain.FieldCluster).Column)
	assert.Equal(t, "Employee   Status", m.Lookup(domain.FieldEmpStatus).Column)
}

func TestResolveAbsentFields(t *testing.T) {
	m := Resolve([]string{"Timestamp", "Email Address"})

	for _, f := range []domain.Field{
		domain.FieldCluster, domain.FieldRole, domain.FieldMotivation,
	} {
		assert.False(t, m.Lookup(f).Ok, "field %s should be absent", f)
	}
}

func TestResolveRankedColumns(t *testing.T) {
	cols := []string{
		"Respondent ID",
		"Learning motivation - Rank 2",
		"Learning motivation - Rank 1",
		"Learning motivation - Rank 3",
		"Preferred content format",
	}
	m := Resolve(cols)

	motiv := m.Lookup(domain.FieldMotivation)
	require.True(t, motiv.Ok)
	assert.Equal(t, []string{
		"Learning motivation - Rank 1",
		"Learning motivation - Rank 2",
		"Learning motivation - Rank 3",
	}, motiv.Ranked, "rank columns must order by trailing number, not dataset order")
	assert.Equal(t, "Learning motivation - Rank 1", motiv.Column)

	// A single matching column never becomes a ranked set.
	format := m.Lookup(domain.FieldFormat)
	require.True(t, format.Ok)
	assert.Empty(t, format.Ranked)
	assert.Equal(t, "Preferred content format", format.Column)
}

func TestResolveRankedUnnumberedSortsLast(t *testing.T) {
	m := Resolve([]string{
		"Learning motivation (other)",
		"Learning motivation - Rank 1",
	})

	motiv := m.Lookup(domain.FieldMotivation)
	require.True(t, motiv.Ok)
	assert.Equal(t, []string{
		"Learning motivation - Rank 1",
		"Learning motivation (other)",
	}, motiv.Ranked)
}

func TestResolveExactBeatsSubstring(t *testing.T) {
	// "status" as a bare fragment would also hit the first column by
	// containment; the exact phase must pick the dedicated one first.
	m := Resolve([]string{"Marital status of respondent", "Status"})

	assert.Equal(t, "Status", m.Lookup(domain.FieldEmpStatus).Column)
}
