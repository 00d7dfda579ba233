package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anshpatel080/kanban/internal/ingest"
	"github.com/anshpatel080/kanban/internal/model"
	"github.com/anshpatel080/kanban/internal/source"
)

// BoardLoadedMsg carries the ingested board state to the UI. It is always
// sent, even on total fetch failure: the board must render, if only empty.
type BoardLoadedMsg struct {
	Columns []model.Column
	Items   []model.Item

	// Stale is true when the remote fetch failed and the payload came
	// from the local cache instead.
	Stale bool

	// FetchedAt is the cache timestamp when Stale is true.
	FetchedAt time.Time

	// Err is the fetch error, if any. Informational only; the board
	// state in this message is already the degraded fallback.
	Err error
}

// loadBoard fetches the payload with a bounded timeout, falls back to the
// cached payload when the fetch fails, and normalizes whatever it ended up
// with. A nil payload normalizes to an empty board.
func (m Model) loadBoard() tea.Cmd {
	src := m.src
	cache := m.cache
	timeout := m.fetchTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var fetchedAt time.Time
		stale := false

		payload, err := src.FetchPayload(ctx)
		if err != nil {
			payload = nil
			if cache != nil {
				if cached, at, cacheErr := cache.LoadPayload(context.Background()); cacheErr == nil {
					payload = cached
					fetchedAt = at
					stale = true
				}
			}
		} else if cache != nil {
			// Best effort; a failed cache write must not block the board.
			_ = cache.SavePayload(context.Background(), payload)
		}

		columns, items := ingest.Normalize(payload)

		return BoardLoadedMsg{
			Columns:   columns,
			Items:     items,
			Stale:     stale,
			FetchedAt: fetchedAt,
			Err:       err,
		}
	}
}

// payloadCache is the slice of the cache store the loader needs.
type payloadCache interface {
	SavePayload(ctx context.Context, p *source.Payload) error
	LoadPayload(ctx context.Context) (*source.Payload, time.Time, error)
}
