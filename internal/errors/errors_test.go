package errors

import (
	"errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("disk full"), ExitSystem),
			want: "disk full",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
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

func TestExitError_Unwrap(t *testing.T) {
	underlying := ErrInvalidConfig
	err := NewConfigError(underlying)

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is should find the underlying sentinel")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As should find *ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion == "" {
		t.Error("config error should carry a suggestion")
	}
}

func TestNewUserError(t *testing.T) {
	err := NewUserError(New("bad input"), "try --help")

	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion != "try --help" {
		t.Errorf("Suggestion = %q, want %q", err.Suggestion, "try --help")
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(New("io failure"), "check permissions")

	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWrap_PreservesChain(t *testing.T) {
	err := Wrapf(ErrNotFound, "loading task %s", "abc")
	if !Is(err, ErrNotFound) {
		t.Error("wrapped error should match the sentinel")
	}
}
