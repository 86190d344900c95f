// Package pttjs reads and writes PTTJS, a line-oriented text format for
// multi-page tables with an embedded script section.
package pttjs

import (
	"log/slog"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/parser"
)

// Mode represents the execution mode.
type Mode string

const (
	// ModeCooperative processes lines in batches, yields between batches
	// and handles pages concurrently.
	ModeCooperative Mode = "cooperative"
	// ModeDirect runs the same algorithm inline without yielding.
	ModeDirect Mode = "direct"
)

// Options configures parsing and serialization.
type Options struct {
	// Mode specifies the execution mode (cooperative, direct).
	Mode Mode
	// BatchSize is the number of lines per batch in cooperative mode.
	// Zero means parser.DefaultBatchSize.
	BatchSize int
	// Logger receives warnings about dropped script lines.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
	// ShowIndex specifies whether every cell is written with its explicit
	// [x|y] index. If nil, defaults to false.
	ShowIndex *bool
	// ShowPages specifies whether page headers are written for a single
	// page document. If nil, defaults to false.
	ShowPages *bool
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeCooperative,
	}
}

// ShouldShowIndex returns whether explicit cell indices are written.
func (o Options) ShouldShowIndex() bool {
	return o.ShowIndex != nil && *o.ShowIndex
}

// ShouldShowPages returns whether page headers are always written.
func (o Options) ShouldShowPages() bool {
	return o.ShowPages != nil && *o.ShowPages
}

// Scheduler returns the scheduler matching the mode.
func (o Options) Scheduler() parser.Scheduler {
	if o.Mode == ModeDirect {
		return parser.Direct()
	}
	return parser.Cooperative(o.BatchSize)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
