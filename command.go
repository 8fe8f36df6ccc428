package cmdline

import "fmt"

// Command is an ordered registry of the parameters of a single command.
// The zero value is ready to use.
type Command struct {
	Name string
	Doc  string

	parameters []Parameter
	byLong     map[string]Parameter
	byShort    map[string]Parameter
}

// Add registers the provided parameter rejecting duplicated long or short
// names across the command.
func (c *Command) Add(p Parameter) error {
	if c.byLong == nil {
		c.byLong = make(map[string]Parameter)
		c.byShort = make(map[string]Parameter)
	}
	if _, dup := c.byLong[p.LongName()]; dup {
		return fmt.Errorf("parameter %s has been already registered", p.LongName())
	}
	if short := p.ShortName(); short != "" {
		if _, dup := c.byShort[short]; dup {
			return fmt.Errorf("short name %s of parameter %s has been already registered", short, p.LongName())
		}
		c.byShort[short] = p
	}
	c.byLong[p.LongName()] = p
	c.parameters = append(c.parameters, p)
	return nil
}

// Parameters returns the registered parameters in registration order.
func (c *Command) Parameters() []Parameter {
	return c.parameters
}

// Lookup finds a registered parameter by its long name.
func (c *Command) Lookup(longName string) (Parameter, bool) {
	p, ok := c.byLong[longName]
	return p, ok
}

// LookupShort finds a registered parameter by its short name.
func (c *Command) LookupShort(shortName string) (Parameter, bool) {
	p, ok := c.byShort[shortName]
	return p, ok
}

// Accept visits every registered parameter in registration order.
func (c *Command) Accept(v Visitor) error {
	for _, p := range c.parameters {
		if err := p.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
