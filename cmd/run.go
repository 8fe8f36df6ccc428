package cmd

import (
	"context"
	"os"

	"github.com/nicholasrice/cmdline"
	"github.com/nicholasrice/cmdline/binders"
	"github.com/nicholasrice/cmdline/manifest"
)

// Run first parses the provided manifest file into a command, then
// runs a single parse pass of args over it using the named binder driver
// and returns the populated command.
func Run(ctx context.Context, name binders.BinderName, path string, args []string) (*cmdline.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cmd, err := manifest.Parse(f)
	if err != nil {
		return nil, err
	}
	if err := binders.Parse(ctx, name, cmd, args); err != nil {
		return nil, err
	}
	return cmd, nil
}
