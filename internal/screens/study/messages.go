package study

import "github.com/abhisek/learnsense/internal/analysis"

// analysisDoneMsg carries the outcome of one analysis call back to the
// update loop.
type analysisDoneMsg struct {
	Token    string
	Response *analysis.Response
	Err      error
}
