package domain

import (
	"errors"
	"fmt"
)

// Input shape errors. Rule violations are never errors, they are Findings.
var (
	ErrInvalidRecord  = errors.New("invalid translation record")
	ErrInvalidRuleSet = errors.New("invalid rule set")
	ErrInvalidConfig  = errors.New("invalid config")
)

// RecordError identifies a malformed record inside a batch.
type RecordError struct {
	Index  int
	Key    string
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("record %d: %s %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("record %d (key %q): %s %s", e.Index, e.Key, e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrInvalidRecord }
