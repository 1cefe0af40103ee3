package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRanked(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{
			name: "empty cell",
			cell: "",
			want: nil,
		},
		{
			name: "single item",
			cell: "Short videos",
			want: []string{"Short videos"},
		},
		{
			name: "semicolon separated with spaces",
			cell: "Short videos; Case studies ;Podcasts",
			want: []string{"Short videos", "Case studies", "Podcasts"},
		},
		{
			name: "newline separated",
			cell: "Short videos\nCase studies",
			want: []string{"Short videos", "Case studies"},
		},
		{
			name: "commas are not delimiters",
			cell: "Books, articles & reading material;Podcasts",
			want: []string{"Books, articles & reading material", "Podcasts"},
		},
		{
			name: "blank fragments dropped",
			cell: ";; Short videos ;;",
			want: []string{"Short videos"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRanked(tt.cell))
		})
	}
}

func TestFirstChoice(t *testing.T) {
	assert.Equal(t, "Short videos", FirstChoice("Short videos;Podcasts"))
	assert.Equal(t, "Short videos", FirstChoice("  Short videos  "))
	assert.Equal(t, "", FirstChoice(""))
	assert.Equal(t, "", FirstChoice(" ; ; "))
}

func TestSplitMulti(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{
			name: "empty cell",
			cell: "",
			want: nil,
		},
		{
			name: "semicolon and comma both delimit",
			cell: "Time constraint;Technical difficulties, Lack of relevance",
			want: []string{"Time constraint", "Technical difficulties", "Lack of relevance"},
		},
		{
			name: "single char fragments dropped as comma noise",
			cell: "Time constraint, a, Network issues",
			want: []string{"Time constraint", "Network issues"},
		},
		{
			name: "newline separated",
			cell: "Time constraint\nNetwork issues",
			want: []string{"Time constraint", "Network issues"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMulti(tt.cell))
		})
	}
}
