package schoolapi

import (
	"context"
	"fmt"

	"escolaadmin/core/ledger"
)

var _ ledger.Repository = (*Client)(nil)

func (c *Client) QueryAllPayables(ctx context.Context) ([]ledger.Payable, error) {
	var payables []ledger.Payable
	err := c.getList(ctx, "/contas-pagar/", &payables)
	return payables, err
}

func (c *Client) CreatePayable(ctx context.Context, np ledger.NewPayable) (ledger.Payable, error) {
	var p ledger.Payable
	err := c.post(ctx, "/contas-pagar/", np, &p)
	return p, err
}

func (c *Client) UpdatePayable(ctx context.Context, id int, np ledger.NewPayable) (ledger.Payable, error) {
	var p ledger.Payable
	err := c.put(ctx, fmt.Sprintf("/contas-pagar/%d", id), np, &p)
	return p, err
}

func (c *Client) DeletePayable(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/contas-pagar/%d", id))
}

func (c *Client) MarkPayablePaid(ctx context.Context, id int) (ledger.Payable, error) {
	var p ledger.Payable
	err := c.patch(ctx, fmt.Sprintf("/contas-pagar/%d/pagar", id), &p)
	return p, err
}

func (c *Client) MarkPayablePending(ctx context.Context, id int) (ledger.Payable, error) {
	var p ledger.Payable
	err := c.patch(ctx, fmt.Sprintf("/contas-pagar/%d/deixar-pendente", id), &p)
	return p, err
}

func (c *Client) PayablesTotal(ctx context.Context) (float64, error) {
	var out struct {
		Total float64 `json:"total"`
	}
	err := c.get(ctx, "/contas-pagar/total", &out)
	return out.Total, err
}

func (c *Client) QueryAllReceivables(ctx context.Context) ([]ledger.Receivable, error) {
	var receivables []ledger.Receivable
	err := c.getList(ctx, "/contas-receber/", &receivables)
	return receivables, err
}

func (c *Client) CreateReceivable(ctx context.Context, nr ledger.NewReceivable) (ledger.Receivable, error) {
	var r ledger.Receivable
	err := c.post(ctx, "/contas-receber/", nr, &r)
	return r, err
}

func (c *Client) UpdateReceivable(ctx context.Context, id int, nr ledger.NewReceivable) (ledger.Receivable, error) {
	var r ledger.Receivable
	err := c.put(ctx, fmt.Sprintf("/contas-receber/%d", id), nr, &r)
	return r, err
}

func (c *Client) DeleteReceivable(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/contas-receber/%d", id))
}

func (c *Client) MarkReceivablePaid(ctx context.Context, id int) (ledger.Receivable, error) {
	var r ledger.Receivable
	err := c.patch(ctx, fmt.Sprintf("/contas-receber/%d/receber", id), &r)
	return r, err
}

func (c *Client) MarkReceivablePending(ctx context.Context, id int) (ledger.Receivable, error) {
	var r ledger.Receivable
	err := c.patch(ctx, fmt.Sprintf("/contas-receber/%d/deixar-pendente", id), &r)
	return r, err
}

func (c *Client) ReceivablesTotal(ctx context.Context) (float64, error) {
	var out struct {
		Total float64 `json:"total"`
	}
	err := c.get(ctx, "/contas-receber/total", &out)
	return out.Total, err
}

func (c *Client) GetMyWallet(ctx context.Context) (ledger.Wallet, error) {
	var w ledger.Wallet
	err := c.get(ctx, "/carteiras/minha", &w)
	return w, err
}

func (c *Client) CreateWallet(ctx context.Context) (ledger.Wallet, error) {
	var w ledger.Wallet
	err := c.post(ctx, "/carteiras/", nil, &w)
	return w, err
}
