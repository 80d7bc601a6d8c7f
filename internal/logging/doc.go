// Package logging assembles the structured slog logger shared by every
// pipeline component.
//
// It owns the plain-text handler that renders "<timestamp> - <LEVEL> -
// <message>" lines to the console and the append-mode log file, centralizes
// level parsing, and exposes attr helpers plus a no-op logger for tests.
//
// Prefer these constructors over hand-rolled slog setup so all components
// emit lines with the same shape and routing.
package logging
