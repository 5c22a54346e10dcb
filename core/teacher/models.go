package teacher

import "escolaadmin/core"

// Teacher mirrors the school API's professor record.
type Teacher struct {
	ID          int       `json:"id"`
	LanguageID  int       `json:"id_idioma"`
	FullName    string    `json:"nome_completo"`
	BirthDate   core.Date `json:"data_nasc"`
	CPF         string    `json:"cpf,omitempty"`
	Phone       string    `json:"telefone,omitempty"`
	ContractPDF []byte    `json:"pdf_contrato,omitempty"`
	MEI         string    `json:"mei,omitempty"`
	Nationality string    `json:"nacionalidade"`
	Photo       []byte    `json:"foto_perfil,omitempty"`
	Active      bool      `json:"situacao"`
}

// NewTeacher is the write shape for both create and full-record update.
type NewTeacher struct {
	LanguageID  int       `json:"id_idioma" validate:"required"`
	FullName    string    `json:"nome_completo" validate:"required,notblank"`
	BirthDate   core.Date `json:"data_nasc" validate:"required"`
	CPF         string    `json:"cpf,omitempty"`
	Phone       string    `json:"telefone,omitempty"`
	ContractPDF []byte    `json:"pdf_contrato,omitempty"`
	MEI         string    `json:"mei,omitempty"`
	Nationality string    `json:"nacionalidade" validate:"required,notblank"`
	Photo       []byte    `json:"foto_perfil,omitempty"`
	Active      bool      `json:"situacao"`
}
