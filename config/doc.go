// Package config provides configuration for automaton instances.
//
// Configuration follows a layered pattern: start from defaults, merge a loaded
// file over them, then apply environment overrides.
//
//	cfg := config.DefaultConfig("pattern")
//	loaded, err := config.LoadConfig("automaton.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg.Merge(loaded)
//	if err := config.FromEnv(&cfg); err != nil {
//	    return err
//	}
//
// # Merge semantics
//
//   - Strings: merge if source is non-empty
//   - Booleans: merge if source is true
//
// Config only exists during initialization. automaton.NewFromConfig resolves
// the observer name (or a comma-separated list of names) through the
// observability registry and the Config value is not retained afterwards.
//
// # Files
//
// LoadConfig picks the decoder from the file extension: ".json" uses
// encoding/json, ".yaml" and ".yml" use gopkg.in/yaml.v3.
//
//	name: pattern
//	observer: zap
//	fresh_graph: true
//
// # Environment
//
// FromEnv loads an optional .env file from the working directory and then
// applies AUTOMATON_NAME, AUTOMATON_OBSERVER and AUTOMATON_FRESH_GRAPH.
package config
