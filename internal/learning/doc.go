// Package learning holds the lesson catalog and the validator that judges
// a learner's command sequence against a task's expected solution.
//
// Lessons are described in TOML or YAML files. A task lists its buffer
// text, starting cursor, target cursor, and the expected keys (for example
// "wwe"); the loader parses the keys with the vim parser and replays them
// from the start position to confirm they reach the target, so a broken
// lesson file is rejected at load time instead of confusing a learner.
//
// The built-in curriculum is embedded and returned by DefaultCatalog.
package learning
