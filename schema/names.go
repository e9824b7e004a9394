package schema

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	identRe     = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	longFlagRe  = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	shortFlagRe = regexp.MustCompile(`^[a-zA-Z0-9]$`)
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]validator.Func{
		"ident": func(fl validator.FieldLevel) bool {
			return identRe.MatchString(fl.Field().String())
		},
		"longflag": func(fl validator.FieldLevel) bool {
			return longFlagRe.MatchString(fl.Field().String())
		},
		"shortflag": func(fl validator.FieldLevel) bool {
			return shortFlagRe.MatchString(fl.Field().String())
		},
		"kind": func(fl validator.FieldLevel) bool {
			return Kind(fl.Field().Int()).valid()
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// checkNames applies the naming rules to o and translates the first failure
// into a DefinitionError.
func checkNames(o *Option) error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return optionErrorf(o, "%v", err)
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Section":
		return optionErrorf(o, "%q is not a valid section name. It must contain only lowercase letters, numbers and underscores", fe.Value())
	case "Name":
		return optionErrorf(o, "%q is not a valid name. It must contain only lowercase letters, numbers and underscores", fe.Value())
	case "CmdName":
		return optionErrorf(o, "%q is not a valid cmd name. It must contain only lowercase letters, numbers and dashes", fe.Value())
	case "CmdShortName":
		return optionErrorf(o, "%q is not a valid short cmd name. It must be a single letter or number", fe.Value())
	case "Kind":
		return optionErrorf(o, "unknown kind %v", fe.Value())
	}

	return optionErrorf(o, "%v", fe)
}
