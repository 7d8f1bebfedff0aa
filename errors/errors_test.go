package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "connection with message",
			err:  Connectionf("the validator returned an invalid response %v", 7),
			want: "error connecting to validator: the validator returned an invalid response 7",
		},
		{
			name: "parse with message",
			err:  Parsef("no block event found"),
			want: "error parsing event: no block event found",
		},
		{
			name: "storage wrapping a cause",
			err:  StorageWrap(fmt.Errorf("connection reset")),
			want: "the database returned an error: connection reset",
		},
		{
			name: "parse wrapping a cause",
			err:  ParseWrap(fmt.Errorf("bad varint")),
			want: "error parsing event: bad varint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	connErr := ConnectionWrap(fmt.Errorf("dial refused"))

	if !IsKind(connErr, Connection) {
		t.Error("IsKind(connErr, Connection) = false, want true")
	}
	if IsKind(connErr, Parse) {
		t.Error("IsKind(connErr, Parse) = true, want false")
	}
	if IsKind(fmt.Errorf("plain"), Storage) {
		t.Error("IsKind(plain, Storage) = true, want false")
	}

	wrapped := fmt.Errorf("outer: %w", StorageWrap(fmt.Errorf("inner")))
	if !IsKind(wrapped, Storage) {
		t.Error("IsKind should see through wrapping")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := StorageWrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if Connectionf("no cause").(*Error).Unwrap() != nil {
		t.Error("Unwrap() on a message-only error should be nil")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Error("the cause should appear in the message")
	}
}
