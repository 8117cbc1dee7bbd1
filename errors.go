package papyrus

import "fmt"

// UnsupportedFormatError is returned when no registered extractor's
// extension set matches a filename.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no suitable extractor found for: %s", e.Filename)
}

// ExtractionError wraps a failure raised by an extractor while processing
// a document, carrying the source filename for context. None of the
// built-in extractors can actually fail on a valid buffer; the type exists
// as the contract for future extractors with genuine failure modes.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// UnreadableSourceError is returned when a content buffer could not be
// read from storage for a given filename. It is surfaced by I/O
// collaborators such as the papyrus CLI; the extraction core itself never
// opens files.
type UnreadableSourceError struct {
	Filename string
	Err      error
}

func (e *UnreadableSourceError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Filename, e.Err)
}

func (e *UnreadableSourceError) Unwrap() error { return e.Err }
