// Package ingest converts the raw roadmap payload into the board's initial
// state. It never fails: malformed input degrades to a smaller but still
// valid board.
package ingest

import (
	"time"

	"github.com/anshpatel080/kanban/internal/board"
	"github.com/anshpatel080/kanban/internal/model"
	"github.com/anshpatel080/kanban/internal/source"
)

// UnassignedColumn is the pseudo-column synthesized when the payload
// carries features but no statuses at all. It keeps the snapshot invariant
// unconditional: every item references a column that exists on the board.
var UnassignedColumn = model.Column{
	ID:         "unassigned",
	Name:       "Unassigned",
	Color:      "#868E96",
	LightColor: "#E9ECEF",
	TextColor:  "#212529",
}

// dateFormats are tried in order when parsing payload date text.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// Normalize converts a raw payload into the initial column and item lists.
//
// Columns pass through in payload order, which defines the left-to-right
// board order. Each feature's status reference is resolved to a concrete
// column snapshot; a dangling reference falls back to the first column in
// the list. A nil payload yields an empty board rather than an error.
func Normalize(p *source.Payload) ([]model.Column, []model.Item) {
	if p == nil {
		return nil, nil
	}

	columns := make([]model.Column, 0, len(p.Statuses))
	for _, st := range p.Statuses {
		col := model.Column{
			ID:    st.ID,
			Name:  st.Name,
			Color: st.Color,
		}
		if accent, ok := board.AccentFor(st.Color); ok {
			col.LightColor = accent.LightColor
			col.TextColor = accent.TextColor
		}
		columns = append(columns, col)
	}

	if len(columns) == 0 {
		if len(p.Features) == 0 {
			return columns, nil
		}
		columns = append(columns, UnassignedColumn)
	}

	byID := make(map[string]model.Column, len(columns))
	for _, c := range columns {
		byID[c.ID] = c
	}
	fallback := columns[0]

	items := make([]model.Item, 0, len(p.Features))
	for _, f := range p.Features {
		col, ok := byID[f.StatusID]
		if !ok {
			col = fallback
		}

		items = append(items, model.Item{
			ID:       f.ID,
			Name:     f.Name,
			StartAt:  parseInstant(f.StartAt),
			EndAt:    parseInstant(f.EndAt),
			ColumnID: col.ID,
			Column:   col,
			Owner: model.Owner{
				ID:    f.Owner.ID,
				Name:  f.Owner.Name,
				Image: f.Owner.Image,
			},
			Initiative: model.Initiative{
				ID:   f.Initiative.ID,
				Name: f.Initiative.Name,
			},
			Release: model.Release{
				ID:   f.Release.ID,
				Name: f.Release.Name,
			},
		})
	}

	return columns, items
}

// parseInstant parses payload date text. Malformed text yields the zero
// time as an invalid-instant sentinel instead of aborting ingestion of
// the item.
func parseInstant(s string) time.Time {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
