package main

import (
	"testing"
)

func TestPackageValidator(t *testing.T) {
	seen := map[string]bool{"acme-lib": true}
	validate := packageValidator(seen)

	if err := validate(""); err != nil {
		t.Errorf("empty input must be accepted: %v", err)
	}
	if err := validate("hub://ns/check:v1"); err != nil {
		t.Errorf("valid hub URI rejected: %v", err)
	}
	if err := validate("other-lib"); err != nil {
		t.Errorf("plain package rejected: %v", err)
	}
	if err := validate("hub://"); err == nil {
		t.Error("malformed hub URI accepted")
	}
	if err := validate("acme-lib"); err == nil {
		t.Error("duplicate accepted")
	}
}
