package cmd

import (
	"context"

	"github.com/nibzard/todotxt-go/internal/config"
	"github.com/nibzard/todotxt-go/internal/ui"
)

// tuiCommand launches the terminal viewer. The viewer re-reads its file
// on a tick, so it takes a path rather than pre-read input.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	path := cfg.File
	if len(args) > 0 {
		path = args[0]
	}
	return ui.RunTUI(ctx, path)
}
