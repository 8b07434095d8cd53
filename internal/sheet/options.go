// ABOUTME: Import options: scan windows, name rules, clock, and logger.
// ABOUTME: Zero values are replaced by defaults so callers can set only what they need.
package sheet

import (
	"time"

	"go.uber.org/zap"
)

// Default scan windows and name bound.
const (
	DefaultDateScanRows   = 5
	DefaultHeaderScanRows = 10
	DefaultMaxNameLength  = 25
)

// Options tunes an import.
type Options struct {
	DateScanRows   int
	HeaderScanRows int
	MaxNameLength  int
	Vocabulary     *Vocabulary
	Now            func() time.Time
	Logger         *zap.Logger
}

// DefaultOptions returns options with every field set.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.DateScanRows <= 0 {
		o.DateScanRows = DefaultDateScanRows
	}
	if o.HeaderScanRows <= 0 {
		o.HeaderScanRows = DefaultHeaderScanRows
	}
	if o.MaxNameLength <= 0 {
		o.MaxNameLength = DefaultMaxNameLength
	}
	if o.Vocabulary == nil {
		o.Vocabulary = DefaultVocabulary()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

func (o Options) today() time.Time {
	now := o.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
