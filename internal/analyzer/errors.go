package analyzer

import "fmt"

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	KindBackend  ErrorKind = "backend"
	KindParse    ErrorKind = "parse"
	KindInternal ErrorKind = "internal"
)

// Pipeline stages, in execution order.
const (
	StageProfile      = "profile"
	StageRequirements = "requirements"
	StageMatch        = "match"
	StageConsensus    = "consensus"
	StageReport       = "report"
)

// StageError ties a failure to the stage that produced it.
type StageError struct {
	Stage string
	Kind  ErrorKind
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
