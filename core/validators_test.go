package core

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newTestValidator(t *testing.T) *validator.Validate {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	InitValidators(validate, translator)
	return validate
}

func TestInitValidators_customTags(t *testing.T) {
	validate := newTestValidator(t)

	type form struct {
		Name string `json:"nome" validate:"notblank"`
		Time string `json:"hora" validate:"hhmm"`
		Date string `json:"data" validate:"dateymd"`
	}

	tests := []struct {
		name    string
		form    form
		wantErr bool
	}{
		{name: "valid", form: form{Name: "x", Time: "07:30", Date: "2025-01-15"}},
		{name: "midnight boundary", form: form{Name: "x", Time: "23:59", Date: "2025-12-31"}},
		{name: "blank name", form: form{Name: "   ", Time: "07:30", Date: "2025-01-15"}, wantErr: true},
		{name: "hour out of range", form: form{Name: "x", Time: "24:00", Date: "2025-01-15"}, wantErr: true},
		{name: "minute out of range", form: form{Name: "x", Time: "07:60", Date: "2025-01-15"}, wantErr: true},
		{name: "display date on write side", form: form{Name: "x", Time: "07:30", Date: "15/01/2025"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&tt.form)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitValidators_jsonFieldNames(t *testing.T) {
	validate := newTestValidator(t)

	type form struct {
		Name string `json:"nome" validate:"required"`
	}
	err := validate.Struct(&form{})
	vErrs, ok := err.(validator.ValidationErrors)
	assert.True(t, ok)
	assert.Equal(t, "nome", vErrs[0].Field())
}
