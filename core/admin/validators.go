package admin

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"escolaadmin/core"
)

var (
	// password policy
	pwdMaxSim      = 0.7
	pwdNameSimTag  = "pwdnamesim"
	pwdNameSimText = "password is too similar to the name"
)

// InitValidators registers the admin password policy.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(newAdminStructValidation, NewAdmin{})
	core.RegisterCustomTranslation(validate, translator, pwdNameSimTag, pwdNameSimText)
}

func newAdminStructValidation(sl validator.StructLevel) {
	na := sl.Current().Interface().(NewAdmin)
	if similarity(na.Password, na.Name) >= pwdMaxSim {
		sl.ReportError(na.Password, "senha", "Password", pwdNameSimTag, "")
	}
}

func similarity(pwd, attr string) float64 {
	if attr == "" {
		return 0
	}
	pwd, attr = strings.ToLower(pwd), strings.ToLower(attr)
	return difflib.NewMatcher(strings.Split(pwd, ""), strings.Split(attr, "")).QuickRatio()
}
