package lexicon

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// LoadFile reads a YAML override file on top of DefaultTables. Keys absent
// from the file keep their default values. An empty path returns Default().
func LoadFile(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}

	t := DefaultTables()
	if err := cleanenv.ReadConfig(path, &t); err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}

	return New(t)
}
