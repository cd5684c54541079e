// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the migration pipeline
var (
	ErrAuthFailed     = errors.New("FMC authentication failed")
	ErrDeviceNotFound = errors.New("device not found")
	ErrCatalogLoad    = errors.New("object catalog load failed")
	ErrMissingObjects = errors.New("referenced objects missing from FMC")
	ErrDeployFailed   = errors.New("route deployment failed")
	ErrNotFound       = errors.New("resource not found")
)

// MissingObjectsError reports every unresolved object reference found in a
// full scan of the input. Descriptors are deduplicated and sorted, in the
// form "Gateway: 10.1.1.1" or "Network: 10.1.1.0/255.255.255.0".
type MissingObjectsError struct {
	Descriptors []string
}

func (e *MissingObjectsError) Error() string {
	return fmt.Sprintf("%d referenced objects not found in FMC:\n  - %s",
		len(e.Descriptors), strings.Join(e.Descriptors, "\n  - "))
}

func (e *MissingObjectsError) Unwrap() error {
	return ErrMissingObjects
}

// NewMissingObjectsError creates a missing-objects error from descriptors
func NewMissingObjectsError(descriptors ...string) *MissingObjectsError {
	return &MissingObjectsError{Descriptors: descriptors}
}

// DeployError reports the first failed route submission. Index is the
// 1-based position of the route in deployment order; Payload is the full
// JSON of the failing route for operator diagnosis.
type DeployError struct {
	Index   int
	Total   int
	Network string
	Payload string
	Err     error
}

func (e *DeployError) Error() string {
	return fmt.Sprintf("deploying route %d/%d (to %s): %v", e.Index, e.Total, e.Network, e.Err)
}

func (e *DeployError) Unwrap() error {
	return ErrDeployFailed
}

// HTTPError carries the status and response body of a failed FMC API call
type HTTPError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}
