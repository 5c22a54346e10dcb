package admin

// Admin is an operator account on the school API.
type Admin struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// Credentials is the login form shape; the upstream authenticates by
// name, not email.
type Credentials struct {
	Name     string `json:"nome" validate:"required,notblank"`
	Password string `json:"senha" validate:"required,notblank"`
}

type NewAdmin struct {
	Name     string `json:"nome" validate:"required,notblank"`
	Password string `json:"senha" validate:"required,min=6"`
}

// Token is the upstream bearer token envelope.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
