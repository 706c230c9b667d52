package env

import (
	"strings"
)

// ParseFlags parses (commandline) flags and returns them as key/value pairs.
// The following forms are permitted:
// -flag     => just a boolean flag
// --flag    => double dashes are also permitted
// -flag=x   => single dash
// -flag x   => single dash, no equal
// A bare "--" ends flag parsing. Negative numbers are values, not flags.
func ParseFlags(args []string) map[string]any {
	fs := map[string]any{}

	var pending string
	closePending := func() {
		if pending != "" {
			fs[pending] = true
			pending = ""
		}
	}

	for _, arg := range args {
		if arg == "--" {
			break
		}
		name, isFlag := flagName(arg)
		if !isFlag {
			if pending != "" {
				fs[pending] = arg
				pending = ""
			}
			continue
		}
		closePending()
		if k, v, ok := strings.Cut(name, "="); ok {
			fs[k] = v
			continue
		}
		pending = name
	}
	closePending()
	return fs
}

func flagName(s string) (string, bool) {
	if len(s) < 2 || s[0] != '-' {
		return "", false
	}
	if s[1] >= '0' && s[1] <= '9' {
		return "", false
	}
	return strings.TrimLeft(s, "-"), true
}
