package loader

import "fmt"

// MissingSourceError reports that a rule source could not be located.
type MissingSourceError struct {
	Path string
	Err  error
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("rule source %s not found", e.Path)
}

func (e *MissingSourceError) Unwrap() error { return e.Err }

// UnknownChoiceError reports a record naming a choice outside the five
// variants. Record is 1-based within Source.
type UnknownChoiceError struct {
	Source string
	Record int
	Name   string
}

func (e *UnknownChoiceError) Error() string {
	return fmt.Sprintf("%s: record %d names unknown choice %q", e.Source, e.Record, e.Name)
}

// ParseError reports malformed content in a rule source.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
