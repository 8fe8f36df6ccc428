package cobra

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicholasrice/cmdline"
	"github.com/nicholasrice/cmdline/binders"
	"github.com/nicholasrice/cmdline/binders/internal"
)

func init() {
	binders.Register(binders.BinderNameCobra, new(binder))
}

type binder struct {
	internal.Base
}

func (b *binder) Parse(ctx context.Context, cmd *cmdline.Command, args []string) error {
	usage := b.Usage()
	sort.Strings(usage)
	digest := cmd.Name
	if cmd.Doc != "" {
		digest += ": " + strings.Split(cmd.Doc, "\n")[0]
	}
	cli := &cobra.Command{
		Use:           strings.TrimSpace(cmd.Name + " " + strings.Join(usage, " ")),
		Short:         digest,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return b.Apply()
		},
	}
	// AddFlagSet shares the underlying flag objects, so the staged
	// injectors observe the parse performed by the cobra command.
	cli.Flags().AddFlagSet(b.Flags())
	cli.SetArgs(args)
	return cli.ExecuteContext(ctx)
}
