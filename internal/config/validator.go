package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate   = validator.New()
	decimalOne = decimal.NewFromInt(1)
)

// Validate checks field rules and the decimal bounds the tags cannot express
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf(ErrMsgInvalidConfigFmt, err.Error())
		}
		for _, e := range verrs {
			problems = append(problems, formatFieldError(e))
		}
	}

	if c.StartingGold.IsNegative() {
		problems = append(problems, ErrMsgNegativeGold)
	}
	if !c.SellRatio.IsPositive() || c.SellRatio.GreaterThan(decimalOne) {
		problems = append(problems, ErrMsgSellRatioRange)
	}

	if len(problems) > 0 {
		return fmt.Errorf(ErrMsgInvalidConfigFmt, strings.Join(problems, "; "))
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "hostname_port":
		return field + " must be a host:port address"
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}
