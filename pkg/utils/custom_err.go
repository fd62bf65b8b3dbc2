package utils

import "errors"

var (
	ErrConfigurationMissing       = errors.New("backend credential missing")
	ErrRequestBodyInvalid         = errors.New("request body invalid")
	ErrBackendCallFailed          = errors.New("backend call failed")
	ErrBackendResponseEmpty       = errors.New("backend returned no content")
	ErrBackendResponseUnparseable = errors.New("backend response unparseable")
	ErrGenerationFailed           = errors.New("plan generation failed")
)
