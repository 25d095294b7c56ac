package service

import "strings"

// ValidationErrors accumulates user-facing form errors. It is surfaced back
// to the submitting form rather than treated as a failure of the request.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
