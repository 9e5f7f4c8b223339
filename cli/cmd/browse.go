package cmd

import (
	"context"

	"github.com/ardnew/envlayer/cli/cmd/repl"
)

// Browse explores the resolved environment interactively.
type Browse struct {
	Source `embed:""`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) error {
	c, err := b.resolve(ctx)
	if err != nil {
		return err
	}

	return repl.Run(ctx, c)
}
