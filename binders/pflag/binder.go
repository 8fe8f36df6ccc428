package pflag

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nicholasrice/cmdline"
	"github.com/nicholasrice/cmdline/binders"
	"github.com/nicholasrice/cmdline/binders/internal"
)

func init() {
	binders.Register(binders.BinderNamePFlag, new(binder))
}

type binder struct {
	internal.Base
}

func (b *binder) Parse(ctx context.Context, cmd *cmdline.Command, args []string) error {
	flags := b.Flags()
	usage := b.Usage()
	sort.Strings(usage)
	flags.Usage = func() {
		if cmd.Doc != "" {
			fmt.Fprintln(os.Stderr, cmd.Doc)
		}
		fmt.Fprintf(os.Stderr, "%s %s [--help -h]\n", cmd.Name, strings.Join(usage, " "))
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	return b.Apply()
}
