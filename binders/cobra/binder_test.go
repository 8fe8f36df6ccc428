package cobra

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/nicholasrice/cmdline"
	"github.com/nicholasrice/cmdline/binders"
)

func strp(s string) *string {
	return &s
}

func TestBinderParse(t *testing.T) {
	t.Run("supplied parameters should be injected through the cobra command", func(t *testing.T) {
		verbose, err := cmdline.NewFlag(cmdline.Definition{LongName: "--verbose", ShortName: "-v"})
		if err != nil {
			t.Fatal(err)
		}
		tags, err := cmdline.NewStringList(cmdline.ArgumentDefinition{Definition: cmdline.Definition{LongName: "--tag"}})
		if err != nil {
			t.Fatal(err)
		}
		mode, err := cmdline.NewChoice(cmdline.ChoiceDefinition{
			ArgumentDefinition: cmdline.ArgumentDefinition{Definition: cmdline.Definition{LongName: "--mode"}},
			Alternatives:       []string{"fast", "slow"},
			Default:            strp("fast"),
		})
		if err != nil {
			t.Fatal(err)
		}
		cmd := &cmdline.Command{Name: "test", Doc: "test command"}
		for _, p := range []cmdline.Parameter{verbose, tags, mode} {
			if err := cmd.Add(p); err != nil {
				t.Fatal(err)
			}
		}
		args := []string{"-v", "--tag", "x", "--tag", "y"}
		if err := binders.Parse(context.TODO(), binders.BinderNameCobra, cmd, args); err != nil {
			t.Fatal(err)
		}
		if v, ok := verbose.Value(); !ok || !v {
			t.Fatalf("flag value should be true but got %t %t", v, ok)
		}
		if v, ok := tags.Value(); !ok || !reflect.DeepEqual(v, []string{"x", "y"}) {
			t.Fatalf("string list value should be [x y] but got %v %t", v, ok)
		}
		if v, ok := mode.Value(); !ok || v != "fast" {
			t.Fatalf("choice value should default to fast but got %q %t", v, ok)
		}
	})
	t.Run("choice outside alternatives should produce expected error", func(t *testing.T) {
		mode, err := cmdline.NewChoice(cmdline.ChoiceDefinition{
			ArgumentDefinition: cmdline.ArgumentDefinition{Definition: cmdline.Definition{LongName: "--mode"}},
			Alternatives:       []string{"fast", "slow"},
		})
		if err != nil {
			t.Fatal(err)
		}
		cmd := &cmdline.Command{Name: "test"}
		if err := cmd.Add(mode); err != nil {
			t.Fatal(err)
		}
		err = binders.Parse(context.TODO(), binders.BinderNameCobra, cmd, []string{"--mode", "medium"})
		if fmt.Sprintf("%v", err) != `invalid value "medium" for --mode, expected one of [fast slow]` {
			t.Fatalf("parse should fail on invalid choice value with message %q", err)
		}
	})
}
