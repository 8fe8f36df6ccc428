package cmdline

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type visitor struct {
	visited []string
	err     error
}

func (v *visitor) visit(p Parameter) error {
	v.visited = append(v.visited, p.LongName())
	return v.err
}

func (v *visitor) VisitChoice(p *Choice) error         { return v.visit(p) }
func (v *visitor) VisitFlag(p *Flag) error             { return v.visit(p) }
func (v *visitor) VisitInteger(p *Integer) error       { return v.visit(p) }
func (v *visitor) VisitString(p *String) error         { return v.visit(p) }
func (v *visitor) VisitStringList(p *StringList) error { return v.visit(p) }

func testCommand(t *testing.T) (*Command, []Parameter) {
	t.Helper()
	flag, err := NewFlag(Definition{LongName: "--verbose", ShortName: "-v"})
	if err != nil {
		t.Fatal(err)
	}
	integer, err := NewInteger(ArgumentDefinition{Definition: Definition{LongName: "--max-count"}})
	if err != nil {
		t.Fatal(err)
	}
	list, err := NewStringList(ArgumentDefinition{Definition: Definition{LongName: "--tag", ShortName: "-t"}})
	if err != nil {
		t.Fatal(err)
	}
	cmd := &Command{Name: "test"}
	params := []Parameter{flag, integer, list}
	for _, p := range params {
		if err := cmd.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	return cmd, params
}

func TestCommandAdd(t *testing.T) {
	cmd, params := testCommand(t)
	t.Run("parameters should be returned in registration order", func(t *testing.T) {
		if !reflect.DeepEqual(cmd.Parameters(), params) {
			t.Fatalf("parameters should be %v but got %v", params, cmd.Parameters())
		}
	})
	t.Run("lookup by long name should find the parameter", func(t *testing.T) {
		p, ok := cmd.Lookup("--max-count")
		if !ok || p.LongName() != "--max-count" {
			t.Fatalf("lookup should find --max-count but got %v %t", p, ok)
		}
		if _, ok := cmd.Lookup("--missing"); ok {
			t.Fatalf("lookup should not find unregistered parameter")
		}
	})
	t.Run("lookup by short name should find the parameter", func(t *testing.T) {
		p, ok := cmd.LookupShort("-t")
		if !ok || p.LongName() != "--tag" {
			t.Fatalf("short lookup should find --tag but got %v %t", p, ok)
		}
	})
	t.Run("duplicated long name should produce expected error", func(t *testing.T) {
		dup, err := NewFlag(Definition{LongName: "--verbose"})
		if err != nil {
			t.Fatal(err)
		}
		err = cmd.Add(dup)
		if fmt.Sprintf("%v", err) != "parameter --verbose has been already registered" {
			t.Fatalf("add should produce duplicated long name error but got %q", err)
		}
	})
	t.Run("duplicated short name should produce expected error", func(t *testing.T) {
		dup, err := NewFlag(Definition{LongName: "--value", ShortName: "-v"})
		if err != nil {
			t.Fatal(err)
		}
		err = cmd.Add(dup)
		if fmt.Sprintf("%v", err) != "short name -v of parameter --value has been already registered" {
			t.Fatalf("add should produce duplicated short name error but got %q", err)
		}
	})
}

func TestCommandAccept(t *testing.T) {
	t.Run("accept should visit parameters in registration order", func(t *testing.T) {
		cmd, _ := testCommand(t)
		v := &visitor{}
		if err := cmd.Accept(v); err != nil {
			t.Fatal(err)
		}
		expected := []string{"--verbose", "--max-count", "--tag"}
		if !reflect.DeepEqual(v.visited, expected) {
			t.Fatalf("accept should visit %v but got %v", expected, v.visited)
		}
	})
	t.Run("accept should stop on the first visitor error", func(t *testing.T) {
		cmd, _ := testCommand(t)
		v := &visitor{err: errors.New("test error")}
		if err := cmd.Accept(v); fmt.Sprintf("%v", err) != "test error" {
			t.Fatalf("accept should propagate visitor error but got %q", err)
		}
		if len(v.visited) != 1 {
			t.Fatalf("accept should stop after the first visit but visited %v", v.visited)
		}
	})
}
