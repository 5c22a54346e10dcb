package ledger

import "escolaadmin/core"

// Payable is an accounts-payable entry (conta a pagar).
type Payable struct {
	ID      int         `json:"id"`
	Name    string      `json:"nome"`
	Amount  core.Amount `json:"valor"`
	DueDate core.Date   `json:"data_pagamento"`
	Paid    bool        `json:"status"`
	AdminID int         `json:"id_adm"`
}

type NewPayable struct {
	Name    string      `json:"nome" validate:"required,notblank"`
	Amount  core.Amount `json:"valor" validate:"required,gt=0"`
	DueDate core.Date   `json:"data_pagamento" validate:"required"`
	Paid    bool        `json:"status"`
}

// Receivable is an accounts-receivable entry (conta a receber).
type Receivable struct {
	ID          int         `json:"id"`
	Name        string      `json:"nome"`
	Amount      core.Amount `json:"valor"`
	ReceiptDate core.Date   `json:"data_recebimento"`
	Paid        bool        `json:"status"`
	AdminID     int         `json:"id_adm"`
}

type NewReceivable struct {
	Name        string      `json:"nome" validate:"required,notblank"`
	Amount      core.Amount `json:"valor" validate:"required,gt=0"`
	ReceiptDate core.Date   `json:"data_recebimento" validate:"required"`
	Paid        bool        `json:"status"`
}

// Wallet is the administrator's cash position; the balance is computed
// upstream from the ledger.
type Wallet struct {
	ID      int         `json:"id"`
	AdminID int         `json:"id_adm"`
	Balance core.Amount `json:"saldo_atual"`
}
