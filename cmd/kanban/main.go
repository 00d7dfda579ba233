// Command kanban renders a remote roadmap as an interactive terminal board.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anshpatel080/kanban/internal/app"
	"github.com/anshpatel080/kanban/internal/credential"
	"github.com/anshpatel080/kanban/internal/model"
	"github.com/anshpatel080/kanban/internal/source/roadmap"
	"github.com/anshpatel080/kanban/internal/store"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "kanban: %v\n", err)
		os.Exit(1)
	}

	client := roadmap.NewClient(cfg.Source.BaseURL, cfg.Source.Path, loadToken())

	var cache *store.PayloadCache
	if cfg.Cache.Enabled {
		cache, err = store.NewPayloadCache(cfg.Cache.Path)
		if err != nil {
			// The cache is an optimization; run without it.
			fmt.Fprintf(os.Stderr, "kanban: payload cache disabled: %v\n", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	m := newApp(cfg, client, cache)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "kanban: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the root model, keeping the nil-cache case a true nil
// interface.
func newApp(cfg *model.AppConfig, client *roadmap.Client, cache *store.PayloadCache) app.Model {
	timeout := time.Duration(cfg.Source.TimeoutSec) * time.Second
	if cache == nil {
		return app.New(client, nil, timeout)
	}
	return app.New(client, cache, timeout)
}

// loadToken resolves the roadmap API token from the environment, falling
// back to the system keyring. An empty token is fine for public endpoints.
func loadToken() string {
	if token := os.Getenv("KANBAN_API_TOKEN"); token != "" {
		return token
	}
	token, err := credential.Get(credential.TokenKey)
	if err != nil {
		return ""
	}
	return token
}
