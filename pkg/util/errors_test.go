package util

import (
	"errors"
	"strings"
	"testing"
)

func TestMissingObjectsError(t *testing.T) {
	err := NewMissingObjectsError("Gateway: 10.1.1.1", "Network: 10.2.0.0/255.255.0.0")

	if !errors.Is(err, ErrMissingObjects) {
		t.Error("MissingObjectsError should unwrap to ErrMissingObjects")
	}

	msg := err.Error()
	if !strings.Contains(msg, "2 referenced objects") {
		t.Errorf("error message should contain count, got: %s", msg)
	}
	if !strings.Contains(msg, "Gateway: 10.1.1.1") {
		t.Errorf("error message should contain descriptor, got: %s", msg)
	}
}

func TestDeployError(t *testing.T) {
	inner := errors.New("HTTP 422: duplicate route")
	err := &DeployError{
		Index:   3,
		Total:   10,
		Network: "net-101",
		Payload: `{"type":"IPv4StaticRoute"}`,
		Err:     inner,
	}

	if !errors.Is(err, ErrDeployFailed) {
		t.Error("DeployError should unwrap to ErrDeployFailed")
	}

	msg := err.Error()
	if !strings.Contains(msg, "3/10") {
		t.Errorf("error message should contain index/total, got: %s", msg)
	}
	if !strings.Contains(msg, "net-101") {
		t.Errorf("error message should name the network, got: %s", msg)
	}
}

func TestHTTPError(t *testing.T) {
	err := &HTTPError{
		Method: "POST",
		URL:    "https://fmc/api/fmc_platform/v1/auth/generatetoken",
		Status: 401,
		Body:   "invalid credentials",
	}

	msg := err.Error()
	for _, want := range []string{"POST", "401", "invalid credentials"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}

	// Empty body should not leave a trailing separator
	err2 := &HTTPError{Method: "GET", URL: "https://fmc/x", Status: 500}
	if strings.HasSuffix(err2.Error(), ": ") {
		t.Errorf("unexpected trailing separator: %q", err2.Error())
	}
}
