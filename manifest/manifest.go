package manifest

import (
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/nicholasrice/cmdline"
)

// document is the YAML shape of a command manifest.
type document struct {
	Command     string           `yaml:"command"`
	Description string           `yaml:"description"`
	Parameters  []map[string]any `yaml:"parameters"`
}

// Parse reads a YAML command manifest and constructs the command with all
// of its parameters. Every malformed definition surfaces the construction
// time error of the owning parameter kind.
func Parse(r io.Reader) (*cmdline.Command, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("manifest can't be decoded, %w", err)
	}
	cmd := &cmdline.Command{Name: doc.Command, Doc: doc.Description}
	for i, raw := range doc.Parameters {
		p, err := parameter(raw)
		if err != nil {
			return nil, fmt.Errorf("manifest parameter %d can't be built, %w", i, err)
		}
		if err := cmd.Add(p); err != nil {
			return nil, fmt.Errorf("manifest parameter %d can't be registered, %w", i, err)
		}
	}
	return cmd, nil
}

// parameter dispatches a raw manifest entry on its kind discriminant into
// the matching definition bundle and constructor.
func parameter(raw map[string]any) (cmdline.Parameter, error) {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[k] = v
	}
	kind, ok := fields["kind"].(string)
	if !ok {
		return nil, fmt.Errorf("parameter kind is missing")
	}
	delete(fields, "kind")
	switch kind {
	case cmdline.KindFlag.String():
		var def cmdline.Definition
		if err := decode(fields, &def); err != nil {
			return nil, err
		}
		return cmdline.NewFlag(def)
	case cmdline.KindInteger.String():
		var def cmdline.ArgumentDefinition
		if err := decode(fields, &def); err != nil {
			return nil, err
		}
		return cmdline.NewInteger(def)
	case cmdline.KindString.String():
		var def cmdline.ArgumentDefinition
		if err := decode(fields, &def); err != nil {
			return nil, err
		}
		return cmdline.NewString(def)
	case cmdline.KindStringList.String():
		var def cmdline.ArgumentDefinition
		if err := decode(fields, &def); err != nil {
			return nil, err
		}
		return cmdline.NewStringList(def)
	case cmdline.KindChoice.String():
		var def cmdline.ChoiceDefinition
		if err := decode(fields, &def); err != nil {
			return nil, err
		}
		return cmdline.NewChoice(def)
	default:
		return nil, fmt.Errorf("unsupported parameter kind %q", kind)
	}
}

func decode(fields map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnused: true,
		Squash:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("parameter definition can't be decoded, %w", err)
	}
	return nil
}
