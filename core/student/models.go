package student

import "escolaadmin/core"

// Student mirrors the school API's aluno record. Field tags follow the
// upstream wire names.
type Student struct {
	ID                int       `json:"id"`
	FullName          string    `json:"nome_completo"`
	BirthDate         core.Date `json:"data_nasc"`
	CPF               string    `json:"cpf,omitempty"`
	Phone             string    `json:"telefone"`
	PaymentPreference string    `json:"preferencia_pagamento,omitempty"`
	BillingDay        int       `json:"dia_cobranca,omitempty"`
	Photo             []byte    `json:"foto_perfil,omitempty"`
	Country           string    `json:"pais,omitempty"`
	Active            bool      `json:"situacao"`
}

// NewStudent is the write shape for both create and full-record update.
type NewStudent struct {
	FullName          string    `json:"nome_completo" validate:"required,notblank"`
	BirthDate         core.Date `json:"data_nasc" validate:"required"`
	CPF               string    `json:"cpf,omitempty"`
	Phone             string    `json:"telefone" validate:"required,notblank"`
	PaymentPreference string    `json:"preferencia_pagamento,omitempty"`
	BillingDay        int       `json:"dia_cobranca,omitempty" validate:"omitempty,min=1,max=31"`
	Photo             []byte    `json:"foto_perfil,omitempty"`
	Country           string    `json:"pais,omitempty"`
	Active            bool      `json:"situacao"`
}
