package ingest

import (
	"testing"
	"time"

	"github.com/anshpatel080/kanban/internal/source"
)

func TestNormalizePassesColumnsThroughInOrder(t *testing.T) {
	payload := &source.Payload{
		Statuses: []source.Status{
			{ID: "s1", Name: "Planned", Color: "#5B9BD5"},
			{ID: "s2", Name: "In Progress", Color: "#FFD93D"},
			{ID: "s3", Name: "Done", Color: "#6BCB77"},
		},
	}

	columns, items := Normalize(payload)

	if len(items) != 0 {
		t.Errorf("items = %v, want none", items)
	}
	want := []string{"s1", "s2", "s3"}
	if len(columns) != len(want) {
		t.Fatalf("column count = %d, want %d", len(columns), len(want))
	}
	for i, id := range want {
		if columns[i].ID != id {
			t.Errorf("columns[%d].ID = %s, want %s", i, columns[i].ID, id)
		}
	}

	// Palette colors get their derived shades filled in.
	if columns[0].LightColor == "" || columns[0].TextColor == "" {
		t.Errorf("accent shades not derived for %+v", columns[0])
	}
}

func TestNormalizeResolvesStatusReferences(t *testing.T) {
	payload := &source.Payload{
		Statuses: []source.Status{
			{ID: "s1", Name: "Planned"},
			{ID: "s2", Name: "Done"},
		},
		Features: []source.Feature{
			{
				ID:       "f1",
				Name:     "Feature one",
				StartAt:  "2026-01-05",
				EndAt:    "2026-02-20",
				StatusID: "s2",
				Owner:    source.Owner{ID: "u1", Name: "Dana", Image: "https://img/u1"},
				Initiative: source.Ref{
					ID: "in1", Name: "Q1",
				},
				Release: source.Ref{
					ID: "r1", Name: "v1.0",
				},
			},
		},
	}

	_, items := Normalize(payload)

	if len(items) != 1 {
		t.Fatalf("item count = %d, want 1", len(items))
	}
	item := items[0]
	if item.ColumnID != "s2" || item.Column.ID != "s2" || item.Column.Name != "Done" {
		t.Errorf("status not resolved: %+v", item)
	}
	if item.Owner.Name != "Dana" || item.Initiative.Name != "Q1" || item.Release.Name != "v1.0" {
		t.Errorf("descriptive fields not carried through: %+v", item)
	}
	if item.StartAt.IsZero() || item.EndAt.IsZero() {
		t.Errorf("dates not parsed: start=%v end=%v", item.StartAt, item.EndAt)
	}
	if !item.EndAt.After(item.StartAt) {
		t.Errorf("window inverted: start=%v end=%v", item.StartAt, item.EndAt)
	}
}

func TestNormalizeDanglingReferenceFallsBackToFirstColumn(t *testing.T) {
	payload := &source.Payload{
		Statuses: []source.Status{
			{ID: "s1", Name: "Planned"},
			{ID: "s2", Name: "Done"},
		},
		Features: []source.Feature{
			{ID: "f1", Name: "Orphan", StatusID: "ghost"},
		},
	}

	_, items := Normalize(payload)

	if len(items) != 1 {
		t.Fatalf("item count = %d, want 1", len(items))
	}
	if items[0].ColumnID != "s1" || items[0].Column.ID != "s1" {
		t.Errorf("dangling reference resolved to %q, want fallback s1", items[0].ColumnID)
	}
}

func TestNormalizeEmptyColumnListSynthesizesUnassigned(t *testing.T) {
	payload := &source.Payload{
		Features: []source.Feature{
			{ID: "f1", Name: "Orphan", StatusID: "ghost"},
		},
	}

	columns, items := Normalize(payload)

	if len(columns) != 1 || columns[0].ID != UnassignedColumn.ID {
		t.Fatalf("columns = %+v, want the synthesized unassigned column", columns)
	}
	if len(items) != 1 {
		t.Fatalf("item count = %d, want 1", len(items))
	}
	if items[0].ColumnID != UnassignedColumn.ID || items[0].Column.ID != UnassignedColumn.ID {
		t.Errorf("orphan assigned to %q, want %q", items[0].ColumnID, UnassignedColumn.ID)
	}
}

func TestNormalizeEmptyPayload(t *testing.T) {
	columns, items := Normalize(&source.Payload{})
	if len(columns) != 0 || len(items) != 0 {
		t.Errorf("got %d columns, %d items; want an empty board", len(columns), len(items))
	}
}

func TestNormalizeNilPayload(t *testing.T) {
	columns, items := Normalize(nil)
	if len(columns) != 0 || len(items) != 0 {
		t.Errorf("got %d columns, %d items; want an empty board", len(columns), len(items))
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2026-03-15T10:30:00Z",
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2026-03-15",
			want:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{name: "malformed", input: "next tuesday", want: time.Time{}},
		{name: "empty", input: "", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseInstant(tt.input); !got.Equal(tt.want) {
				t.Errorf("parseInstant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKeepsMalformedDateItems(t *testing.T) {
	payload := &source.Payload{
		Statuses: []source.Status{{ID: "s1", Name: "Planned"}},
		Features: []source.Feature{
			{ID: "f1", Name: "Bad dates", StartAt: "not a date", EndAt: "also bad", StatusID: "s1"},
		},
	}

	_, items := Normalize(payload)

	if len(items) != 1 {
		t.Fatalf("item with malformed dates was dropped")
	}
	if !items[0].StartAt.IsZero() || !items[0].EndAt.IsZero() {
		t.Errorf("malformed dates should parse to the zero sentinel, got %+v", items[0])
	}
}
