// Package config loads and validates the sorter configuration.
//
// The configuration is a flat YAML mapping (source, destination, and archive
// directories, log settings, ranking criteria, and exclusion lists). Loading
// a path that does not exist writes the default configuration there and uses
// it, so a first run is self-configuring. Malformed files and invalid values
// fail validation before any filesystem traversal begins.
package config
