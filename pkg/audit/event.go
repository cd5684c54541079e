// Package audit provides audit logging for route deployments.
package audit

import (
	"fmt"
	"os/user"
	"time"
)

// Operations recorded in the audit log
const (
	OpDeployRoute = "deploy-route"
	OpRunSummary  = "run-summary"
)

// Event represents one auditable deployment action: a single route
// submission or a whole-run summary.
type Event struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	User      string        `json:"user"`
	Device    string        `json:"device"`
	Operation string        `json:"operation"`
	Network   string        `json:"network,omitempty"`
	Gateway   string        `json:"gateway,omitempty"`
	Interface string        `json:"interface,omitempty"`
	Metric    int           `json:"metric,omitempty"`
	Deployed  int           `json:"deployed,omitempty"`
	Attempted int           `json:"attempted,omitempty"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// Filter defines criteria for querying audit events
type Filter struct {
	Device      string
	Operation   string
	StartTime   time.Time
	EndTime     time.Time
	FailureOnly bool
	Limit       int
}

// NewEvent creates a new audit event for the current OS user
func NewEvent(device, operation string) *Event {
	return &Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		User:      currentUser(),
		Device:    device,
		Operation: operation,
	}
}

// WithRoute sets the route context
func (e *Event) WithRoute(network, gateway, iface string, metric int) *Event {
	e.Network = network
	e.Gateway = gateway
	e.Interface = iface
	e.Metric = metric
	return e
}

// WithCounts sets the run summary counts
func (e *Event) WithCounts(deployed, attempted int) *Event {
	e.Deployed = deployed
	e.Attempted = attempted
	return e
}

// WithSuccess marks the event as successful
func (e *Event) WithSuccess() *Event {
	e.Success = true
	return e
}

// WithError marks the event as failed
func (e *Event) WithError(err error) *Event {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithDuration sets the operation duration
func (e *Event) WithDuration(d time.Duration) *Event {
	e.Duration = d
	return e
}

func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}
