package rangemap

import "errors"

var (
	// ErrEmptyResult is returned when no range survives the last stage.
	ErrEmptyResult = errors.New("rangemap: no ranges left after the last stage")

	// ErrStageCount is returned when a pipeline is built with the wrong number
	// of stages.
	ErrStageCount = errors.New("rangemap: malformed stage count")
)
