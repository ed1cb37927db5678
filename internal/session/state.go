package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/learnsense/internal/analysis"
)

// ViewState is which of the two views is showing.
type ViewState int

const (
	StateInput   ViewState = iota // Collecting topic and understanding
	StateResults                  // Showing a diagnostic
)

func (s ViewState) String() string {
	switch s {
	case StateInput:
		return "INPUT"
	case StateResults:
		return "RESULTS"
	}
	return "UNKNOWN"
}

var (
	// ErrBusy is returned by Submit while a call is outstanding.
	ErrBusy = errors.New("analysis already in progress")

	// ErrNotInput is returned by Submit outside the input view.
	ErrNotInput = errors.New("submit is only allowed from the input view")
)

// Ticket authorizes exactly one analysis call. Its Token must be handed
// back to Complete.
type Ticket struct {
	Token   string
	Request analysis.Request
}

// Coordinator owns the study view state. It is driven from a single
// goroutine (the UI update loop) and does no locking.
type Coordinator struct {
	state   ViewState
	loading bool

	topic         string
	understanding string
	style         analysis.LearningStyle

	response *analysis.Response
	errMsg   string

	token  string
	cancel context.CancelFunc
}

// NewCoordinator starts in the input view with the given style.
func NewCoordinator(style analysis.LearningStyle) *Coordinator {
	if !style.Valid() {
		style = analysis.DefaultLearningStyle
	}
	return &Coordinator{state: StateInput, style: style}
}

// SetTopic is ignored outside the input view.
func (c *Coordinator) SetTopic(s string) {
	if c.state == StateInput {
		c.topic = s
	}
}

// SetUnderstanding is ignored outside the input view.
func (c *Coordinator) SetUnderstanding(s string) {
	if c.state == StateInput {
		c.understanding = s
	}
}

// SetStyle is ignored outside the input view and for unknown styles.
func (c *Coordinator) SetStyle(s analysis.LearningStyle) {
	if c.state == StateInput && s.Valid() {
		c.style = s
	}
}

// CanSubmit reports whether Submit would start a call.
func (c *Coordinator) CanSubmit() bool {
	return c.state == StateInput && !c.loading
}

// Submit validates the current input and issues a ticket for one call.
// Invalid input sets the error message and issues nothing.
func (c *Coordinator) Submit() (Ticket, error) {
	if c.state != StateInput {
		return Ticket{}, ErrNotInput
	}
	if c.loading {
		return Ticket{}, ErrBusy
	}

	req := c.request()
	if err := req.Validate(); err != nil {
		c.errMsg = analysis.UserMessage(err)
		return Ticket{}, err
	}

	c.loading = true
	c.errMsg = ""
	c.token = uuid.NewString()
	c.cancel = nil
	return Ticket{Token: c.token, Request: req}, nil
}

// Bind attaches the cancel function of the in-flight call so Reset can
// abort it. Ignored for stale tokens.
func (c *Coordinator) Bind(token string, cancel context.CancelFunc) {
	if token == "" || token != c.token {
		if cancel != nil {
			cancel()
		}
		return
	}
	c.cancel = cancel
}

// Complete delivers the outcome of the call identified by token. Returns
// false, changing nothing, when the token is not the outstanding one.
func (c *Coordinator) Complete(token string, resp *analysis.Response, err error) bool {
	if token == "" || token != c.token {
		return false
	}
	c.token = ""
	c.loading = false
	c.releaseCancel()

	if err == nil && resp == nil {
		err = analysis.ErrAnalysisFailed
	}
	if err != nil {
		c.errMsg = analysis.UserMessage(err)
		return true
	}

	c.response = resp
	c.errMsg = ""
	c.state = StateResults
	return true
}

// Reset returns to an empty input view from any state. The style is kept
// and any outstanding call is cancelled and forgotten.
func (c *Coordinator) Reset() {
	c.releaseCancel()
	c.token = ""
	c.loading = false
	c.state = StateInput
	c.topic = ""
	c.understanding = ""
	c.response = nil
	c.errMsg = ""
}

func (c *Coordinator) releaseCancel() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Coordinator) request() analysis.Request {
	return analysis.Request{
		Topic:             c.topic,
		UserUnderstanding: c.understanding,
		LearningStyle:     c.style,
	}
}

func (c *Coordinator) State() ViewState              { return c.state }
func (c *Coordinator) Loading() bool                 { return c.loading }
func (c *Coordinator) Err() string                   { return c.errMsg }
func (c *Coordinator) Response() *analysis.Response  { return c.response }
func (c *Coordinator) Topic() string                 { return c.topic }
func (c *Coordinator) Understanding() string         { return c.understanding }
func (c *Coordinator) Style() analysis.LearningStyle { return c.style }
func (c *Coordinator) PendingToken() string          { return c.token }
