package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/potbin/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "segment_error",
			code:    errors.ErrSegmentUnparsable,
			message: "$nope",
			wantStr: "[SEGMENT_UNPARSABLE] $nope",
		},
		{
			name:    "invalid_line",
			code:    errors.ErrLineInvalid,
			message: "a > b > c",
			wantStr: "[LINE_INVALID] a > b > c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileCreate, "cannot create %s with mode %o", "file.txt", 0644)
	if err.Message != "cannot create file.txt with mode 644" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLinkConflict, "local directory exists").
		WithDetail("local", "/home/u/.vim").
		WithDetail("cloud", "/cloud/vim")

	if err.Details["local"] != "/home/u/.vim" {
		t.Errorf("WithDetail() local = %v", err.Details["local"])
	}
	if got := errors.GetErrorDetails(err)["cloud"]; got != "/cloud/vim" {
		t.Errorf("GetErrorDetails() cloud = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrIniRead, "bad"), errors.ErrIniRead, true},
		{"different_code", errors.New(errors.ErrIniRead, "bad"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(fs.ErrPermission, errors.ErrSymlinkPermission, "denied"), errors.ErrSymlinkPermission, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrCloudPathInvalid, "x")); got != errors.ErrCloudPathInvalid {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v", got)
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"symlink_permission", errors.New(errors.ErrSymlinkPermission, "/home/u/.bashrc"), true},
		{"lock_held", errors.New(errors.ErrLocked, "another run"), true},
		{"link_conflict", errors.New(errors.ErrLinkConflict, "dir"), false},
		{"segment", errors.New(errors.ErrSegmentUnparsable, "$x"), false},
		{"symlink_create", errors.New(errors.ErrSymlinkCreate, "no parent"), false},
		{"plain", stderrors.New("plain"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsFatal(tt.err); got != tt.fatal {
				t.Errorf("IsFatal() = %v, want %v", got, tt.fatal)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	iniErr := errors.Wrap(fileErr, errors.ErrIniRead, "cannot read profiles.ini")

	if !errors.IsErrorCode(iniErr, errors.ErrIniRead) {
		t.Error("top level should have ErrIniRead code")
	}

	var potbinErr *errors.PotbinError
	if stderrors.As(iniErr.Unwrap(), &potbinErr) {
		if potbinErr.Code != errors.ErrFileAccess {
			t.Error("middle error should have ErrFileAccess code")
		}
	} else {
		t.Error("middle error should be a PotbinError")
	}

	if !stderrors.Is(iniErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
