package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getmockd/shapemock/pkg/config"
	"github.com/getmockd/shapemock/pkg/schema"
)

var errFileRequired = errors.New("--file is required")

// loadSet loads a schema set from a path or glob pattern.
func loadSet(pattern string) (*config.Set, error) {
	if pattern == "" {
		return nil, errFileRequired
	}
	if strings.ContainsAny(pattern, "*?[") {
		return config.LoadSetGlob(pattern)
	}
	return config.LoadSet(pattern)
}

// lookupSchema returns the named schema or an error listing what exists.
func lookupSchema(set *config.Set, name string) (*schema.Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("--schema is required (available: %s)", strings.Join(set.Names(), ", "))
	}
	s, ok := set.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (available: %s)", name, strings.Join(set.Names(), ", "))
	}
	return s, nil
}
