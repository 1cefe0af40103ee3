// Package engine drives the full report pipeline: resolve columns,
// normalize roles, classify every row, precompute segment summaries for
// every meaningful filter combination, build persona cards, and
// assemble the final payload.
//
// Process is the synchronous single-call contract: one in-memory dataset
// in, one fully materialized payload out, no I/O and no state between
// invocations. The same steps are also exposed individually so the
// report workflow can run them as separate activities.
package engine

import (
	"sort"
	"strings"

	"github.com/fieldlearn/personas/internal/cards"
	"github.com/fieldlearn/personas/internal/classify"
	"github.com/fieldlearn/personas/internal/columns"
	"github.com/fieldlearn/personas/internal/domain"
	"github.com/fieldlearn/personas/internal/segment"
)

// Process runs the whole pipeline over one dataset. Missing optional
// dimensions never fail the run; they just shrink the payload. The only
// hard failure mode lives upstream, in ingestion.
func Process(ds domain.Dataset, opts domain.Options) (*domain.Payload, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	classified := ClassifyRows(ds)
	segments := PrecomputeSegments(classified, opts)
	personaCards := BuildAllCards(classified, opts)
	return AssemblePayload(classified, segments, personaCards), nil
}

// Classified bundles the outputs of the classification step: the column
// resolution, every respondent with derived role and archetype, and the
// distinct values of each filter dimension.
type Classified struct {
	Mapping     domain.Mapping
	Respondents []domain.Respondent

	Clusters  []string
	Divisions []string
	Roles     []string
	Metros    []string
}

// ClassifyRows resolves columns, normalizes each row's role, classifies
// each row into an archetype, and enumerates the filter dimensions
// present in the data.
func ClassifyRows(ds domain.Dataset) Classified {
	m := columns.Resolve(ds.Columns)

	roleRes := m.Lookup(domain.FieldRole)
	resps := make([]domain.Respondent, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		role := domain.RoleUnknown
		if roleRes.Ok {
			role = domain.NormalizeRole(row[roleRes.Column])
		}
		resps = append(resps, domain.Respondent{
			Row:       row,
			Role:      role,
			Archetype: classify.Classify(row, m),
		})
	}

	return Classified{
		Mapping:     m,
		Respondents: resps,
		Clusters:    distinctValues(ds.Rows, m.Lookup(domain.FieldCluster)),
		Divisions:   distinctValues(ds.Rows, m.Lookup(domain.FieldDivision)),
		Roles:       distinctRoles(resps),
		Metros:      distinctValues(ds.Rows, m.Lookup(domain.FieldMetro)),
	}
}

// PrecomputeSegments builds the segment map over the classified rows:
// the unfiltered whole, each single role, each single cluster, each
// single business division, and each (cluster, role) pair that meets the
// minimum segment size. Empty combinations are omitted, not erred on.
func PrecomputeSegments(c Classified, opts domain.Options) map[string]*domain.Segment {
	segments := make(map[string]*domain.Segment)

	put := func(key string, subset []domain.Respondent) {
		if seg, ok := segment.Build(subset, c.Mapping, opts); ok {
			segments[key] = seg
		}
	}

	put(domain.FilterKeyOverall, c.Respondents)

	for _, role := range c.Roles {
		put(domain.FilterKeyRole(role), filterByRole(c.Respondents, role))
	}

	clusterRes := c.Mapping.Lookup(domain.FieldCluster)
	for _, cluster := range c.Clusters {
		put(domain.FilterKeyCluster(cluster), filterByColumn(c.Respondents, clusterRes, cluster))
	}

	divisionRes := c.Mapping.Lookup(domain.FieldDivision)
	for _, div := range c.Divisions {
		put(domain.FilterKeyDivision(div), filterByColumn(c.Respondents, divisionRes, div))
	}

	// Cluster-by-role cells are the finest precomputed grain; below the
	// minimum size their percentages are too unstable to publish.
	for _, cluster := range c.Clusters {
		byCluster := filterByColumn(c.Respondents, clusterRes, cluster)
		for _, role := range c.Roles {
			cell := filterByRole(byCluster, role)
			if len(cell) < opts.MinSegmentSize {
				continue
			}
			put(domain.FilterKeyClusterRole(cluster, role), cell)
		}
	}

	return segments
}

// BuildAllCards builds one persona card per (role, archetype) pair that
// has at least one respondent.
func BuildAllCards(c Classified, opts domain.Options) map[string]*domain.Card {
	out := make(map[string]*domain.Card)
	for _, role := range c.Roles {
		for _, a := range domain.Archetypes {
			if card, ok := cards.Build(c.Respondents, c.Mapping, role, a, opts); ok {
				out[domain.CardKey(role, a)] = card
			}
		}
	}
	return out
}

// AssemblePayload combines the pipeline outputs into the final payload
// tree. Pure data plumbing; deterministic given its inputs.
func AssemblePayload(c Classified, segments map[string]*domain.Segment, personaCards map[string]*domain.Card) *domain.Payload {
	personaTypes := make(map[string]domain.ArchetypeInfo, len(domain.Archetypes))
	for _, a := range domain.Archetypes {
		personaTypes[a.String()] = a.Info()
	}

	return &domain.Payload{
		TotalN:       len(c.Respondents),
		Clusters:     c.Clusters,
		Divisions:    c.Divisions,
		Roles:        c.Roles,
		Metros:       c.Metros,
		PersonaTypes: personaTypes,
		RoleColors:   domain.RoleColors,
		RoleDisplay:  domain.RoleDisplay,
		RoleEmojis:   domain.RoleEmojis,
		Rows:         anonymize(c),
		Precomputed:  segments,
		PersonaCards: personaCards,
		ColumnNames:  filterColumnNames(c.Mapping),
		DetectedCols: detectedColumns(c.Mapping),
	}
}

// anonymize reduces every respondent to the six categorical fields the
// report may filter on. Raw free-text answers never cross this boundary.
func anonymize(c Classified) []domain.AnonRow {
	cluster := c.Mapping.Lookup(domain.FieldCluster)
	division := c.Mapping.Lookup(domain.FieldDivision)
	metro := c.Mapping.Lookup(domain.FieldMetro)
	status := c.Mapping.Lookup(domain.FieldEmpStatus)

	rows := make([]domain.AnonRow, len(c.Respondents))
	for i, r := range c.Respondents {
		rows[i] = domain.AnonRow{
			Role:      r.Role,
			Persona:   r.Archetype.String(),
			Cluster:   cellOf(r.Row, cluster),
			Division:  cellOf(r.Row, division),
			Metro:     cellOf(r.Row, metro),
			EmpStatus: cellOf(r.Row, status),
		}
	}
	return rows
}

func cellOf(row domain.Row, res domain.Resolved) string {
	if !res.Ok {
		return ""
	}
	return strings.TrimSpace(row[res.Column])
}

// filterColumnNames echoes the four filter-dimension columns for the
// renderer's diagnostics panel, empty strings for undetected ones. The
// keys are the renderer's names, which differ from the internal field
// identifiers for the employee-status entry.
func filterColumnNames(m domain.Mapping) map[string]string {
	return map[string]string{
		"cluster":   m.Lookup(domain.FieldCluster).Column,
		"subdept2":  m.Lookup(domain.FieldDivision).Column,
		"metro":     m.Lookup(domain.FieldMetro).Column,
		"empStatus": m.Lookup(domain.FieldEmpStatus).Column,
	}
}

// detectedColumns echoes the full resolution, one entry per detected
// logical field.
func detectedColumns(m domain.Mapping) map[string]string {
	out := make(map[string]string, len(m))
	for field, res := range m {
		out[string(field)] = res.Column
	}
	return out
}

func filterByRole(resps []domain.Respondent, role string) []domain.Respondent {
	var out []domain.Respondent
	for _, r := range resps {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

func filterByColumn(resps []domain.Respondent, res domain.Resolved, value string) []domain.Respondent {
	if !res.Ok {
		return nil
	}
	var out []domain.Respondent
	for _, r := range resps {
		if strings.TrimSpace(r.Row[res.Column]) == value {
			out = append(out, r)
		}
	}
	return out
}

// distinctValues enumerates the sorted distinct non-blank values of one
// detected column. The result is always non-nil, so an undetected
// dimension serializes as an empty JSON list rather than null.
func distinctValues(rows []domain.Row, res domain.Resolved) []string {
	out := []string{}
	if !res.Ok {
		return out
	}
	seen := make(map[string]struct{})
	for _, row := range rows {
		v := strings.TrimSpace(row[res.Column])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func distinctRoles(resps []domain.Respondent) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range resps {
		if _, dup := seen[r.Role]; dup {
			continue
		}
		seen[r.Role] = struct{}{}
		out = append(out, r.Role)
	}
	sort.Strings(out)
	return out
}
