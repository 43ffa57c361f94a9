// Package fixture loads seed data from YAML.
package fixture

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BloggingApp/comment-service/internal/dto"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixtures []byte

// Default returns the fixture set compiled into the binary.
func Default() (*dto.FixtureSet, error) {
	return Parse(defaultFixtures)
}

func Load(path string) (*dto.FixtureSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	set, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}
	return set, nil
}

func Parse(content []byte) (*dto.FixtureSet, error) {
	var set dto.FixtureSet
	if err := yaml.Unmarshal(content, &set); err != nil {
		return nil, err
	}
	return &set, nil
}
