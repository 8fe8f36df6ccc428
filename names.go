package cmdline

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	longNameRe  = regexp.MustCompile(`^-(-[a-z0-9]+)+$`)
	shortNameRe = regexp.MustCompile(`^-[a-zA-Z0-9]$`)
)

func validateLongName(name string) error {
	if !longNameRe.MatchString(name) {
		return fmt.Errorf("invalid long name %q, expected dash-delimited lower case segments like %q", name, "--do-a-thing")
	}
	return nil
}

func validateShortName(name string) error {
	if !shortNameRe.MatchString(name) {
		return fmt.Errorf("invalid short name %q, expected a dash followed by a single letter or digit like %q", name, "-d")
	}
	return nil
}

// validateArgumentName checks the help placeholder token grammar, the
// case check runs before the character scan so mixed case is reported as
// a case error rather than a character error.
func validateArgumentName(name string) error {
	if name == "" {
		return fmt.Errorf("argument name can't be empty")
	}
	if name != strings.ToUpper(name) {
		return fmt.Errorf("invalid argument name %q, expected it to be upper case", name)
	}
	for _, r := range name {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return fmt.Errorf("invalid argument name %q, character %q is not allowed", name, r)
		}
	}
	return nil
}
