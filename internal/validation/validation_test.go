package validation

import (
	"testing"

	validatorv10 "github.com/go-playground/validator/v10"
)

func newTestValidator(t *testing.T) *validatorv10.Validate {
	t.Helper()
	v := validatorv10.New()
	if err := v.RegisterValidation("phone", validPhone); err != nil {
		t.Fatalf("register phone: %v", err)
	}
	if err := v.RegisterValidation("pincode", validPincode); err != nil {
		t.Fatalf("register pincode: %v", err)
	}
	return v
}

func TestPhoneRule(t *testing.T) {
	v := newTestValidator(t)

	for _, ok := range []string{"9876543210", "+919876543210", "1234567"} {
		if err := v.Var(ok, "phone"); err != nil {
			t.Errorf("phone %q should be valid: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "123", "abcdefghij", "98765 43210", "+12345678901234567"} {
		if err := v.Var(bad, "phone"); err == nil {
			t.Errorf("phone %q should be invalid", bad)
		}
	}
}

func TestPincodeRule(t *testing.T) {
	v := newTestValidator(t)

	for _, ok := range []string{"682001", "1234", "1234567890"} {
		if err := v.Var(ok, "pincode"); err != nil {
			t.Errorf("pincode %q should be valid: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "123", "68 2001", "ABC123", "12345678901"} {
		if err := v.Var(bad, "pincode"); err == nil {
			t.Errorf("pincode %q should be invalid", bad)
		}
	}
}
