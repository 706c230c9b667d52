// Package env merges the process environment, an optional .env.toml file and command line flags into one lookup.
// Later sources win: environment < .env.toml < flags.
package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mazzegi/seqzip/convert"
)

const DotenvFile = ".env.toml"

type Env map[string]any

func (env Env) add(k string, v any) {
	k = strings.TrimSpace(k)
	if k == "" {
		return
	}
	env[k] = v
}

// Load reads the environment, the dotenv file in the working directory and args.
func Load(args []string) Env {
	return LoadDir(".", args)
}

func LoadDir(dir string, args []string) Env {
	env := Env{}
	for _, osev := range os.Environ() {
		k, v, _ := strings.Cut(osev, "=")
		env.add(k, unquote(strings.TrimSpace(v)))
	}
	if vs, err := loadDotenv(filepath.Join(dir, DotenvFile)); err == nil {
		for k, v := range vs {
			env.add(k, v)
		}
	}
	for k, v := range ParseFlags(args) {
		env.add(k, v)
	}
	return env
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// String returns the string-value for the passed key if exists, otherwise, false
func (env Env) String(key string) (string, bool) {
	v, ok := env[key]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

func (env Env) StringOrDefault(key string, def string) string {
	if v, ok := env.String(key); ok {
		return v
	}
	return def
}

// Int returns the int-value for the passed key if it exists and parses
func (env Env) Int(key string) (int, bool) {
	s, ok := env.String(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Bool is false for missing keys
func (env Env) Bool(key string) bool {
	v, ok := env[key]
	if !ok {
		return false
	}
	return convert.ToBool(v)
}
