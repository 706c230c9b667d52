package env

import (
	"reflect"
	"testing"
)

func TestFlags(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expFlags map[string]any
	}{
		"single_dash_eq": {
			args:     []string{"-foo=bar"},
			expFlags: map[string]any{"foo": "bar"},
		},
		"double_dash_eq": {
			args:     []string{"--foo=bar"},
			expFlags: map[string]any{"foo": "bar"},
		},
		"single_dash_value": {
			args:     []string{"-foo", "bar"},
			expFlags: map[string]any{"foo": "bar"},
		},
		"bool": {
			args:     []string{"--verbose"},
			expFlags: map[string]any{"verbose": true},
		},
		"mixed": {
			args: []string{"--verbose", "-file=a.toml", "--index", "2"},
			expFlags: map[string]any{
				"verbose": true,
				"file":    "a.toml",
				"index":   "2",
			},
		},
		"negative_value": {
			args:     []string{"-index", "-1", "-verbose"},
			expFlags: map[string]any{"index": "-1", "verbose": true},
		},
		"stray_arg": {
			args:     []string{"seqzip", "--index", "22", "vamos", "--verbose"},
			expFlags: map[string]any{"index": "22", "verbose": true},
		},
		"terminator": {
			args:     []string{"-file", "x.toml", "--", "-index", "3"},
			expFlags: map[string]any{"file": "x.toml"},
		},
		"empty": {
			args:     nil,
			expFlags: map[string]any{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res := ParseFlags(test.args)
			if !reflect.DeepEqual(test.expFlags, res) {
				t.Fatalf("want %v, have %v", test.expFlags, res)
			}
		})
	}
}
