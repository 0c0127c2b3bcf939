package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{value: 0, wantErr: true},
		{value: 1, wantErr: false},
		{value: 50, wantErr: false},
		{value: 100, wantErr: false},
		{value: 101, wantErr: true},
	}

	for _, tt := range tests {
		cv := NewConfigValidator("TestConfig")
		cv.RangeInt("Workers", tt.value, 1, 100)

		if cv.HasErrors() != tt.wantErr {
			t.Errorf("RangeInt(%d) HasErrors() = %v, want %v", tt.value, cv.HasErrors(), tt.wantErr)
		}
	}
}

func TestConfigValidator_Positive(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Positive("MaxIterations", 0).Positive("Workers", -1).Positive("Depth", 3)

	if len(cv.Errors()) != 2 {
		t.Errorf("Expected 2 errors, got %d", len(cv.Errors()))
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"debug", "info", "warn", "error"}

	cv := NewConfigValidator("TestConfig")
	cv.OneOf("LogLevel", "info", allowed)
	if cv.HasErrors() {
		t.Error("Expected no error for allowed value")
	}

	cv.OneOf("LogLevel", "verbose", allowed)
	if !cv.HasErrors() {
		t.Error("Expected error for disallowed value")
	}
	if !strings.Contains(cv.Errors()[0].Error(), `"verbose"`) {
		t.Errorf("Error should name the value, got %v", cv.Errors()[0])
	}
}

func TestConfigValidator_EachOneOf(t *testing.T) {
	allowed := []string{"components", "whole"}

	cv := NewConfigValidator("TestConfig")
	cv.EachOneOf("Algorithms", []string{"whole", "louvain", "components", "infomap"}, allowed)

	errs := cv.Errors()
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Error(), "Algorithms[1]") {
		t.Errorf("Expected indexed field name, got %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "Algorithms[3]") {
		t.Errorf("Expected indexed field name, got %v", errs[1])
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	sentinel := errors.New("custom failure")

	cv := NewConfigValidator("TestConfig")
	cv.Custom("Field", func() error { return sentinel })
	cv.Custom("Other", func() error { return nil })

	if len(cv.Errors()) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(cv.Errors()))
	}
	if !errors.Is(cv.Validate(), sentinel) {
		t.Error("Custom errors should be wrapped")
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.Positive("Skipped", 0)
	})
	if cv.HasErrors() {
		t.Error("When(false) should not apply validations")
	}

	cv.When(true, func(v *ConfigValidator) {
		v.Positive("Applied", 0)
	})
	if !cv.HasErrors() {
		t.Error("When(true) should apply validations")
	}
}

func TestConfigValidator_Validate(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	if err := cv.Validate(); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}

	cv.Positive("A", 0)
	err := cv.Validate()
	if err == nil || !strings.Contains(err.Error(), "TestConfig.A") {
		t.Errorf("Single error should be returned as-is, got %v", err)
	}

	cv.Positive("B", 0)
	err = cv.Validate()
	if err == nil || !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("Expected combined error, got %v", err)
	}
	if !strings.Contains(err.Error(), "TestConfig.B") {
		t.Errorf("Combined error should include every failure, got %v", err)
	}
}

type validatable struct{ err error }

func (v *validatable) Validate() error { return v.err }

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}

	sentinel := errors.New("bad")
	if err := ValidateConfig(&validatable{err: sentinel}); !errors.Is(err, sentinel) {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestDefaultOr(t *testing.T) {
	if got := DefaultOr("", "info"); got != "info" {
		t.Errorf("DefaultOr(\"\", info) = %q", got)
	}
	if got := DefaultOr("debug", "info"); got != "debug" {
		t.Errorf("DefaultOr(debug, info) = %q", got)
	}
	if got := DefaultOrInt(-1, 4); got != 4 {
		t.Errorf("DefaultOrInt(-1, 4) = %d", got)
	}
	if got := DefaultOrInt(8, 4); got != 8 {
		t.Errorf("DefaultOrInt(8, 4) = %d", got)
	}
}
