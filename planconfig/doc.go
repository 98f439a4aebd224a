// Package planconfig holds the CLI-overridable search tuning knobs: maximum
// explored states, a wall-clock deadline, and the generator/algorithm choice.
// A Config loads from an optional YAML file, then the cmd/strips flag parser
// layers its own values on top via the same Option functions the rest of
// this module uses for configuration overlays.
package planconfig
