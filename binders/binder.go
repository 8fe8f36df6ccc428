package binders

import (
	"context"
	"fmt"
	"sync"

	"github.com/nicholasrice/cmdline"
)

// BinderName holds names of binder driver implementations.
type BinderName string

const (
	BinderNamePFlag BinderName = "pflag"
	BinderNameCobra BinderName = "cobra"
)

// Binder is a driver that registers every parameter of a command with a
// flag toolkit, delegates argv tokenization to that toolkit and injects
// each parsed value back into the owning parameter once per parse pass.
type Binder interface {
	cmdline.Visitor
	Reset() error
	Parse(ctx context.Context, cmd *cmdline.Command, args []string) error
}

var (
	bindersMu sync.Mutex
	binders   = make(map[BinderName]Binder)
)

// Register makes a binder driver available by the provided name.
// If Register is called twice with the same name or if binder is nil, it panics.
func Register(name BinderName, binder Binder) {
	bindersMu.Lock()
	defer bindersMu.Unlock()
	if binder == nil {
		panic("register binder is nil")
	}
	if _, dup := binders[name]; dup {
		panic(fmt.Errorf("register called twice for binder %q", name))
	}
	binders[name] = binder
}

// Parse runs a single parse pass of args over cmd using the named binder.
func Parse(ctx context.Context, name BinderName, cmd *cmdline.Command, args []string) error {
	bindersMu.Lock()
	binder, ok := binders[name]
	defer bindersMu.Unlock()
	if !ok {
		return fmt.Errorf("unknown binder %q (forgotten import?)", name)
	}
	if err := binder.Reset(); err != nil {
		return err
	}
	if err := cmd.Accept(binder); err != nil {
		return err
	}
	return binder.Parse(ctx, cmd, args)
}
