package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/nicholasrice/cmdline"
	"github.com/nicholasrice/cmdline/binders"
	_ "github.com/nicholasrice/cmdline/binders/cobra"
	_ "github.com/nicholasrice/cmdline/binders/pflag"
	"github.com/nicholasrice/cmdline/cmd"
)

// Cmdline loads a YAML command manifest, runs a single parse pass of the
// arguments after the first "--" over it and reports every parameter value,
// acting as a dry-run linter for command definitions. The binary defines its
// own parameters through the library itself.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	args := os.Args[1:]
	var rest []string
	for i, a := range args {
		if a == "--" {
			rest = args[i+1:]
			args = args[:i]
			break
		}
	}

	own, manifestParam, binderParam, err := define()
	if err != nil {
		log.Fatal().Err(err).Msg("own parameters can't be defined")
	}
	if err := binders.Parse(ctx, binders.BinderNamePFlag, own, args); err != nil {
		log.Fatal().Err(err).Msg("arguments can't be parsed")
	}
	path, ok := manifestParam.Value()
	if !ok {
		log.Fatal().Msg("manifest path is required, see --help")
	}
	driver, _ := binderParam.Value()

	parsed, err := cmd.Run(ctx, binders.BinderName(driver), path, rest)
	if err != nil {
		log.Fatal().Err(err).Msg("manifest parse pass failed")
	}
	if err := parsed.Accept(reporter{log: log}); err != nil {
		log.Fatal().Err(err).Msg("report can't be rendered")
	}
}

func define() (*cmdline.Command, *cmdline.String, *cmdline.Choice, error) {
	file := "FILE"
	manifestParam, err := cmdline.NewString(cmdline.ArgumentDefinition{
		Definition: cmdline.Definition{
			LongName:    "--manifest",
			ShortName:   "-m",
			Description: "path of the command manifest to load",
		},
		ArgumentName: &file,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	name := "NAME"
	fallback := string(binders.BinderNamePFlag)
	binderParam, err := cmdline.NewChoice(cmdline.ChoiceDefinition{
		ArgumentDefinition: cmdline.ArgumentDefinition{
			Definition: cmdline.Definition{
				LongName:    "--binder",
				ShortName:   "-b",
				Description: "binder driver used for the parse pass",
			},
			ArgumentName: &name,
		},
		Alternatives: []string{string(binders.BinderNamePFlag), string(binders.BinderNameCobra)},
		Default:      &fallback,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	own := &cmdline.Command{Name: "cmdline", Doc: "Cmdline runs a dry parse pass of a command manifest."}
	for _, p := range []cmdline.Parameter{manifestParam, binderParam} {
		if err := own.Add(p); err != nil {
			return nil, nil, nil, err
		}
	}
	return own, manifestParam, binderParam, nil
}

// reporter logs every parameter of the parsed command with its kind and
// injected value.
type reporter struct {
	log zerolog.Logger
}

func (r reporter) event(p cmdline.Parameter, supplied bool) *zerolog.Event {
	return r.log.Info().
		Str("parameter", p.LongName()).
		Str("kind", p.Kind().String()).
		Bool("supplied", supplied)
}

func (r reporter) VisitFlag(p *cmdline.Flag) error {
	v, ok := p.Value()
	r.event(p, ok).Bool("value", v).Msg("parsed")
	return nil
}

func (r reporter) VisitInteger(p *cmdline.Integer) error {
	v, ok := p.Value()
	r.event(p, ok).Int64("value", v).Msg("parsed")
	return nil
}

func (r reporter) VisitString(p *cmdline.String) error {
	v, ok := p.Value()
	r.event(p, ok).Str("value", v).Msg("parsed")
	return nil
}

func (r reporter) VisitStringList(p *cmdline.StringList) error {
	v, ok := p.Value()
	r.event(p, ok).Strs("value", v).Msg("parsed")
	return nil
}

func (r reporter) VisitChoice(p *cmdline.Choice) error {
	v, ok := p.Value()
	r.event(p, ok).Str("value", v).Strs("alternatives", p.Alternatives()).Msg("parsed")
	return nil
}
