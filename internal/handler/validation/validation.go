// Package validation registers the request binding tags shared by the DTOs.
package validation

import (
	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagBookingDate = "booking_date"
	TagTimeSlot    = "time_slot"
	TagCurrency    = "currency"
)

// Register installs the custom tags on gin's default validator. It is safe to
// call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not a go-playground validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagBookingDate: stringRule(func(s string) error { _, err := booking.ParseDate(s); return err }),
		TagTimeSlot:    stringRule(func(s string) error { _, err := booking.ParseTimeSlot(s); return err }),
		TagCurrency:    stringRule(func(s string) error { _, err := center.ParseCurrency(s); return err }),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %s", tag)
		}
	}
	return nil
}

func stringRule(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return parse(s) == nil
	}
}
