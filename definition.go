package cmdline

// Definition is the bundle every parameter kind is constructed from.
type Definition struct {
	LongName    string `mapstructure:"long" yaml:"long"`
	ShortName   string `mapstructure:"short" yaml:"short"`
	Description string `mapstructure:"description" yaml:"description"`
}

// ArgumentDefinition extends Definition for kinds that consume a following
// argument token. ArgumentName deliberately distinguishes absent from empty:
// nil leaves the display token to the help renderer while an explicit empty
// string is rejected at construction.
type ArgumentDefinition struct {
	Definition   `mapstructure:",squash" yaml:",inline"`
	ArgumentName *string `mapstructure:"argument" yaml:"argument"`
}

// ChoiceDefinition extends ArgumentDefinition with the closed set of
// accepted values and an optional default applied when the parameter was
// not supplied.
type ChoiceDefinition struct {
	ArgumentDefinition `mapstructure:",squash" yaml:",inline"`
	Alternatives       []string `mapstructure:"alternatives" yaml:"alternatives"`
	Default            *string  `mapstructure:"default" yaml:"default"`
}
