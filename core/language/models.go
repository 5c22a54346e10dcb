package language

// Language is a teaching language (idioma); teachers reference one.
type Language struct {
	ID   int    `json:"id"`
	Name string `json:"nome_idioma"`
}

type NewLanguage struct {
	Name string `json:"nome_idioma" validate:"required,notblank"`
}
