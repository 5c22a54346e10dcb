package admin

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"escolaadmin/core"
)

func newTestValidator(t *testing.T) *validator.Validate {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func TestNewAdmin_passwordPolicy(t *testing.T) {
	validate := newTestValidator(t)

	tests := []struct {
		name    string
		admin   NewAdmin
		wantErr bool
	}{
		{name: "valid", admin: NewAdmin{Name: "maria", Password: "horse.battery.staple"}},
		{name: "too short", admin: NewAdmin{Name: "maria", Password: "abc"}, wantErr: true},
		{name: "same as name", admin: NewAdmin{Name: "mariana", Password: "mariana"}, wantErr: true},
		{name: "case only differs from name", admin: NewAdmin{Name: "mariana", Password: "MARIANA"}, wantErr: true},
		{name: "blank name", admin: NewAdmin{Name: "  ", Password: "horse.battery.staple"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&tt.admin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
