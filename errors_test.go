package geodecomp

import (
	"errors"
	"fmt"
	"testing"
)

func TestPartitionBackendErrorUnwraps(t *testing.T) {
	cause := errors.New("scotch gave up")
	wrapped := &PartitionBackendError{Err: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to see through PartitionBackendError")
	}
	if wrapped.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	wrapped := &TransportError{Err: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to see through TransportError")
	}
}

func TestNameInUseAndNotFoundErrors(t *testing.T) {
	inUse := &NameInUseError{Name: "cell-1"}
	notFound := &NameNotFoundError{Name: "cell-2"}

	if inUse.Error() == notFound.Error() {
		t.Error("expected distinct error messages")
	}
}
