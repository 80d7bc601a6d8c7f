// Package report shapes run results for CLI presentation.
package report
