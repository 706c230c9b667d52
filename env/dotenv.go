package env

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

func loadDotenv(path string) (map[string]any, error) {
	vs := map[string]any{}
	_, err := toml.DecodeFile(path, &vs)
	if err != nil {
		return nil, fmt.Errorf("decode-toml %q: %w", path, err)
	}
	return vs, nil
}
