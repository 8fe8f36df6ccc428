package cmdline

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Visitor dispatches over the concrete parameter kinds. Binder drivers
// implement it to register every parameter with their flag toolkit.
type Visitor interface {
	VisitChoice(*Choice) error
	VisitFlag(*Flag) error
	VisitInteger(*Integer) error
	VisitString(*String) error
	VisitStringList(*StringList) error
}

// Parameter is a single named command-line parameter with a typed value.
// Identity fields are validated and frozen at construction, the value slot
// is written by the external parser once per parse pass and read-only
// otherwise.
type Parameter interface {
	Kind() Kind
	LongName() string
	ShortName() string
	Description() string
	// Key returns the opaque correlation key the external parser uses to
	// locate this parameter's slot in its own raw value map. It is not
	// meant for display.
	Key() string
	Accept(Visitor) error
}

// Argumented is a Parameter that consumes a following argument token,
// which is every kind except Flag.
type Argumented interface {
	Parameter
	// ArgumentName returns the upper case placeholder shown in help output,
	// or the empty string when the definition left it to the renderer.
	ArgumentName() string
}

var keyseq uint64

type parameter struct {
	longName    string
	shortName   string
	description string
	key         string
}

func newParameter(def Definition) (parameter, error) {
	if err := validateLongName(def.LongName); err != nil {
		return parameter{}, err
	}
	if def.ShortName != "" {
		if err := validateShortName(def.ShortName); err != nil {
			return parameter{}, err
		}
	}
	return parameter{
		longName:    def.LongName,
		shortName:   def.ShortName,
		description: def.Description,
		key:         fmt.Sprintf("%s#%d", strings.TrimLeft(def.LongName, "-"), atomic.AddUint64(&keyseq, 1)),
	}, nil
}

func (p parameter) LongName() string {
	return p.longName
}

func (p parameter) ShortName() string {
	return p.shortName
}

func (p parameter) Description() string {
	return p.description
}

func (p parameter) Key() string {
	return p.key
}

type argumented struct {
	parameter
	argumentName string
}

func newArgumented(def ArgumentDefinition) (argumented, error) {
	p, err := newParameter(def.Definition)
	if err != nil {
		return argumented{}, err
	}
	var name string
	if def.ArgumentName != nil {
		if err := validateArgumentName(*def.ArgumentName); err != nil {
			return argumented{}, err
		}
		name = *def.ArgumentName
	}
	return argumented{parameter: p, argumentName: name}, nil
}

func (a argumented) ArgumentName() string {
	return a.argumentName
}

// Flag is a boolean parameter that takes no argument, its value is the
// presence or absence of the name on the command line.
type Flag struct {
	parameter
	value value[bool]
}

func NewFlag(def Definition) (*Flag, error) {
	p, err := newParameter(def)
	if err != nil {
		return nil, err
	}
	return &Flag{parameter: p}, nil
}

func (*Flag) Kind() Kind {
	return KindFlag
}

// Inject stores the parsed value verbatim. It is meant to be called by the
// binder driver only, exactly once per parse pass.
func (f *Flag) Inject(v bool) {
	f.value.inject(v)
}

// Value reports the injected value, ok is false until a parse pass
// supplied one.
func (f *Flag) Value() (v, ok bool) {
	return f.value.get()
}

func (f *Flag) Accept(v Visitor) error {
	return v.VisitFlag(f)
}

// Integer is a parameter whose argument is parsed as a signed integer.
type Integer struct {
	argumented
	value value[int64]
}

func NewInteger(def ArgumentDefinition) (*Integer, error) {
	a, err := newArgumented(def)
	if err != nil {
		return nil, err
	}
	return &Integer{argumented: a}, nil
}

func (*Integer) Kind() Kind {
	return KindInteger
}

func (p *Integer) Inject(v int64) {
	p.value.inject(v)
}

func (p *Integer) Value() (int64, bool) {
	return p.value.get()
}

func (p *Integer) Accept(v Visitor) error {
	return v.VisitInteger(p)
}

// String is a parameter whose argument is taken as it is.
type String struct {
	argumented
	value value[string]
}

func NewString(def ArgumentDefinition) (*String, error) {
	a, err := newArgumented(def)
	if err != nil {
		return nil, err
	}
	return &String{argumented: a}, nil
}

func (*String) Kind() Kind {
	return KindString
}

func (p *String) Inject(v string) {
	p.value.inject(v)
}

func (p *String) Value() (string, bool) {
	return p.value.get()
}

func (p *String) Accept(v Visitor) error {
	return v.VisitString(p)
}

// StringList is a parameter that can be supplied multiple times, its value
// is the ordered sequence of all supplied arguments.
type StringList struct {
	argumented
	value value[[]string]
}

func NewStringList(def ArgumentDefinition) (*StringList, error) {
	a, err := newArgumented(def)
	if err != nil {
		return nil, err
	}
	return &StringList{argumented: a}, nil
}

func (*StringList) Kind() Kind {
	return KindStringList
}

func (p *StringList) Inject(v []string) {
	p.value.inject(v)
}

func (p *StringList) Value() ([]string, bool) {
	return p.value.get()
}

func (p *StringList) Accept(v Visitor) error {
	return v.VisitStringList(p)
}

// Choice is a string parameter constrained to a closed set of accepted
// values, optionally with a default substituted by the parser when the
// parameter was not supplied.
type Choice struct {
	argumented
	alternatives []string
	fallback     *string
	value        value[string]
}

func NewChoice(def ChoiceDefinition) (*Choice, error) {
	a, err := newArgumented(def.ArgumentDefinition)
	if err != nil {
		return nil, err
	}
	if len(def.Alternatives) < 2 {
		return nil, fmt.Errorf("choice %s requires at least two alternatives, got %d", def.LongName, len(def.Alternatives))
	}
	var fallback *string
	if def.Default != nil {
		var found bool
		for _, alt := range def.Alternatives {
			if alt == *def.Default {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("choice %s default %q is not among the alternatives %v", def.LongName, *def.Default, def.Alternatives)
		}
		v := *def.Default
		fallback = &v
	}
	alternatives := make([]string, len(def.Alternatives))
	copy(alternatives, def.Alternatives)
	return &Choice{argumented: a, alternatives: alternatives, fallback: fallback}, nil
}

func (*Choice) Kind() Kind {
	return KindChoice
}

// Alternatives returns the accepted values in declaration order.
func (p *Choice) Alternatives() []string {
	alternatives := make([]string, len(p.alternatives))
	copy(alternatives, p.alternatives)
	return alternatives
}

// Default returns the value substituted when the parameter was not
// supplied, ok is false when the definition carried none.
func (p *Choice) Default() (string, bool) {
	if p.fallback == nil {
		return "", false
	}
	return *p.fallback, true
}

func (p *Choice) Inject(v string) {
	p.value.inject(v)
}

func (p *Choice) Value() (string, bool) {
	return p.value.get()
}

func (p *Choice) Accept(v Visitor) error {
	return v.VisitChoice(p)
}
