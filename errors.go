package qsearch

import "fmt"

// ConfigurationError reports an invalid run configuration. It is returned
// before any evolution goroutine starts, so a bad config never leaks
// concurrent state.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// OracleEvaluationError reports a snapshot the oracle could not decode.
// The controller recovers from it by scoring the candidate as worst-case;
// it never aborts a run.
type OracleEvaluationError struct {
	Reason string
	Err    error
}

func (e *OracleEvaluationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oracle evaluation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("oracle evaluation failed: %s", e.Reason)
}

func (e *OracleEvaluationError) Unwrap() error {
	return e.Err
}

func evaluationError(format string, args ...any) error {
	return &OracleEvaluationError{Reason: fmt.Sprintf(format, args...)}
}
