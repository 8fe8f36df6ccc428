package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nicholasrice/cmdline"
)

type injector struct {
	long  string
	apply func(changed bool) error
}

// Base carries the per kind registration shared by binder drivers that
// target a pflag flag set, which covers both the pflag driver itself and
// the cobra driver whose command flags are pflag sets under the hood.
// Each visit registers the toolkit flag and stages an injector keyed by
// the parameter correlation key, Apply runs the staged injectors after the
// toolkit has tokenized argv.
type Base struct {
	flags     *pflag.FlagSet
	injectors map[string]injector
	order     []string
	usageList []string
}

func (b *Base) Reset() error {
	b.flags = pflag.NewFlagSet("cmdline", pflag.ContinueOnError)
	b.injectors = make(map[string]injector)
	b.order = nil
	b.usageList = nil
	return nil
}

// Flags exposes the accumulated flag set for the driver to hand over to
// its toolkit.
func (b *Base) Flags() *pflag.FlagSet {
	return b.flags
}

// Usage returns the assembled per parameter usage tokens in visit order.
func (b *Base) Usage() []string {
	usage := make([]string, len(b.usageList))
	copy(usage, b.usageList)
	return usage
}

// Apply injects every parsed value into its parameter, exactly once each.
func (b *Base) Apply() error {
	for _, key := range b.order {
		i := b.injectors[key]
		if err := i.apply(b.flags.Changed(i.long)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Base) stage(p cmdline.Parameter, long string, apply func(changed bool) error) {
	b.usageList = append(b.usageList, cmdline.Synopsis(p))
	b.order = append(b.order, p.Key())
	b.injectors[p.Key()] = injector{long: long, apply: apply}
}

func names(p cmdline.Parameter) (long, short string) {
	return strings.TrimLeft(p.LongName(), "-"), strings.TrimPrefix(p.ShortName(), "-")
}

func (b *Base) VisitFlag(p *cmdline.Flag) error {
	long, short := names(p)
	target := b.flags.BoolP(long, short, false, p.Description())
	b.stage(p, long, func(bool) error {
		// Presence or absence is the value, so a flag is always injected.
		p.Inject(*target)
		return nil
	})
	return nil
}

func (b *Base) VisitInteger(p *cmdline.Integer) error {
	long, short := names(p)
	target := b.flags.Int64P(long, short, 0, p.Description())
	b.stage(p, long, func(changed bool) error {
		if changed {
			p.Inject(*target)
		}
		return nil
	})
	return nil
}

func (b *Base) VisitString(p *cmdline.String) error {
	long, short := names(p)
	target := b.flags.StringP(long, short, "", p.Description())
	b.stage(p, long, func(changed bool) error {
		if changed {
			p.Inject(*target)
		}
		return nil
	})
	return nil
}

func (b *Base) VisitStringList(p *cmdline.StringList) error {
	long, short := names(p)
	target := b.flags.StringArrayP(long, short, nil, p.Description())
	b.stage(p, long, func(changed bool) error {
		if changed {
			p.Inject(*target)
		}
		return nil
	})
	return nil
}

func (b *Base) VisitChoice(p *cmdline.Choice) error {
	long, short := names(p)
	fallback, _ := p.Default()
	target := b.flags.StringP(long, short, fallback, p.Description())
	b.stage(p, long, func(changed bool) error {
		if changed {
			for _, alt := range p.Alternatives() {
				if alt == *target {
					p.Inject(*target)
					return nil
				}
			}
			return fmt.Errorf("invalid value %q for %s, expected one of %v", *target, p.LongName(), p.Alternatives())
		}
		if fallback, ok := p.Default(); ok {
			p.Inject(fallback)
		}
		return nil
	})
	return nil
}
