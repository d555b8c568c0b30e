package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{4,10}$`)
)

// Register installs the custom checkout-form rules on gin's binding engine
// so `binding:"phone"` and `binding:"pincode"` tags work everywhere.
func Register() error {
	v, ok := binding.Validator.Engine().(*validatorv10.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("phone", validPhone); err != nil {
		return err
	}
	return v.RegisterValidation("pincode", validPincode)
}

func validPhone(fl validatorv10.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validPincode(fl validatorv10.FieldLevel) bool {
	return pincodePattern.MatchString(fl.Field().String())
}
