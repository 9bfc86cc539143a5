package vectors

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Suite is a conformance-vector file: a named list of checked operations
// with their expected outcomes.
type Suite struct {
	Name  string `toml:"name"`
	Cases []Case `toml:"case"`

	// Path is the file the suite was loaded from, empty for in-memory suites.
	Path string `toml:"-"`
}

// Case is a single vector: one operation, its inputs, and the expectation.
// Want is either "ok" (with Value carrying the expected result) or the name
// of a failure kind.
type Case struct {
	Name   string `toml:"name"`
	Op     string `toml:"op"`
	Result string `toml:"result"`
	T      string `toml:"t"`
	U      string `toml:"u"`
	Want   string `toml:"want"`
	Value  string `toml:"value"`
}

// LoadSuite reads and validates a TOML suite file.
func LoadSuite(path string) (*Suite, error) {
	var s Suite
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("name") {
		return nil, fmt.Errorf("%s: suite has no name", path)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("%s: suite has no cases", path)
	}
	for i, c := range s.Cases {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("%s: case %d: %w", path, i+1, err)
		}
	}
	s.Path = path
	return &s, nil
}

func (c Case) validate() error {
	if c.Op == "" {
		return fmt.Errorf("missing op")
	}
	if c.Result == "" {
		return fmt.Errorf("missing result type")
	}
	if c.Want == "" {
		return fmt.Errorf("missing want")
	}
	if c.Want == "ok" && c.Value == "" {
		return fmt.Errorf("want = \"ok\" requires a value")
	}
	return nil
}

// Fingerprint returns the raw suite file bytes for cache keying.
func (s *Suite) Fingerprint() ([]byte, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("suite %q was not loaded from a file", s.Name)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read suite %q: %w", s.Name, err)
	}
	return data, nil
}
