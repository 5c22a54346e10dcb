package todo

import "escolaadmin/core"

// Entry is one item of the administrator's daily to-do list.
type Entry struct {
	ID        int           `json:"id"`
	Text      string        `json:"texto"`
	Done      bool          `json:"status"`
	CreatedAt core.DateTime `json:"data_criacao"`
	AdminID   int           `json:"administrador_id"`
}

// NewEntry is the write shape for both create and full-record update;
// toggling done re-submits the text.
type NewEntry struct {
	Text string `json:"texto" validate:"required,notblank"`
	Done bool   `json:"status"`
}
