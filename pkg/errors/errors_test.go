package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBadRequest(t *testing.T) {
	e := BadRequest("Invalid coordinate format. Expected x_y_z.")
	if e.Code != http.StatusBadRequest {
		t.Errorf("code = %d", e.Code)
	}
	if e.Error() != "Invalid coordinate format. Expected x_y_z." {
		t.Errorf("message = %q", e.Error())
	}
}

func TestQueryFailed(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	e := QueryFailed(cause)
	if e.Code != http.StatusInternalServerError {
		t.Errorf("code = %d", e.Code)
	}
	if !errors.Is(e, cause) {
		t.Error("wrapped cause lost")
	}
	if e.Message != "Database query failed: dial tcp: connection refused" {
		t.Errorf("message = %q", e.Message)
	}
}
