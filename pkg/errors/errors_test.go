package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrRuleNotFound, "rule missing")

	if err.Code != ErrRuleNotFound {
		t.Errorf("Code = %s, want %s", err.Code, ErrRuleNotFound)
	}
	if got := err.Error(); got != "[RULE_NOT_FOUND] rule missing" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrConfigParse, "bad value for %s", "max-line-length")

	if err.Message != "bad value for max-line-length" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := fmt.Errorf("permission denied")
		err := Wrap(inner, ErrSourceRead, "cannot read source")

		if !errors.Is(err, inner) {
			t.Error("wrapped error should match with errors.Is")
		}
		if errors.Unwrap(err) != inner {
			t.Error("Unwrap() should return the inner error")
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if Wrap(nil, ErrInternal, "nothing") != nil {
			t.Error("Wrap(nil, ...) should return nil")
		}
	})
}

func TestIs(t *testing.T) {
	err := New(ErrFormatterNotFound, "no such formatter")
	target := New(ErrFormatterNotFound, "different message")

	if !errors.Is(err, target) {
		t.Error("errors with the same code should match")
	}

	other := New(ErrReporterNotFound, "no such reporter")
	if errors.Is(err, other) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", New(ErrConfigLoad, "x"), ErrConfigLoad, true},
		{"different code", New(ErrConfigLoad, "x"), ErrConfigParse, false},
		{"wrapped LintError", fmt.Errorf("outer: %w", New(ErrNotFound, "x")), ErrNotFound, true},
		{"plain error", errors.New("plain"), ErrNotFound, false},
		{"nil error", nil, ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsErrorCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(New(ErrSourceNotFound, "x")); code != ErrSourceNotFound {
		t.Errorf("GetErrorCode() = %s, want %s", code, ErrSourceNotFound)
	}
	if code := GetErrorCode(errors.New("plain")); code != ErrUnknown {
		t.Errorf("GetErrorCode() for plain error = %s, want %s", code, ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrRuleNotFound, "missing").WithDetail("rule", "no-tabs")

	if err.Details["rule"] != "no-tabs" {
		t.Errorf("Details[rule] = %v, want no-tabs", err.Details["rule"])
	}
}
