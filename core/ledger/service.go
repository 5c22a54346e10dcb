package ledger

import "context"

type (
	Repository interface {
		QueryAllPayables(ctx context.Context) ([]Payable, error)
		CreatePayable(ctx context.Context, np NewPayable) (Payable, error)
		UpdatePayable(ctx context.Context, id int, np NewPayable) (Payable, error)
		DeletePayable(ctx context.Context, id int) error
		MarkPayablePaid(ctx context.Context, id int) (Payable, error)
		MarkPayablePending(ctx context.Context, id int) (Payable, error)
		PayablesTotal(ctx context.Context) (float64, error)

		QueryAllReceivables(ctx context.Context) ([]Receivable, error)
		CreateReceivable(ctx context.Context, nr NewReceivable) (Receivable, error)
		UpdateReceivable(ctx context.Context, id int, nr NewReceivable) (Receivable, error)
		DeleteReceivable(ctx context.Context, id int) error
		MarkReceivablePaid(ctx context.Context, id int) (Receivable, error)
		MarkReceivablePending(ctx context.Context, id int) (Receivable, error)
		ReceivablesTotal(ctx context.Context) (float64, error)

		GetMyWallet(ctx context.Context) (Wallet, error)
		CreateWallet(ctx context.Context) (Wallet, error)
	}

	Service struct {
		repo Repository
	}

	// Totals is the cash overview of the Caixa page.
	Totals struct {
		Payable    float64 `json:"payable"`
		Receivable float64 `json:"receivable"`
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Payables(ctx context.Context) ([]Payable, error) {
	return svc.repo.QueryAllPayables(ctx)
}

func (svc *Service) CreatePayable(ctx context.Context, np NewPayable) (Payable, error) {
	return svc.repo.CreatePayable(ctx, np)
}

func (svc *Service) UpdatePayable(ctx context.Context, id int, np NewPayable) (Payable, error) {
	return svc.repo.UpdatePayable(ctx, id, np)
}

func (svc *Service) DeletePayable(ctx context.Context, id int) error {
	return svc.repo.DeletePayable(ctx, id)
}

func (svc *Service) SetPayablePaid(ctx context.Context, id int, paid bool) (Payable, error) {
	if paid {
		return svc.repo.MarkPayablePaid(ctx, id)
	}
	return svc.repo.MarkPayablePending(ctx, id)
}

func (svc *Service) Receivables(ctx context.Context) ([]Receivable, error) {
	return svc.repo.QueryAllReceivables(ctx)
}

func (svc *Service) CreateReceivable(ctx context.Context, nr NewReceivable) (Receivable, error) {
	return svc.repo.CreateReceivable(ctx, nr)
}

func (svc *Service) UpdateReceivable(ctx context.Context, id int, nr NewReceivable) (Receivable, error) {
	return svc.repo.UpdateReceivable(ctx, id, nr)
}

func (svc *Service) DeleteReceivable(ctx context.Context, id int) error {
	return svc.repo.DeleteReceivable(ctx, id)
}

func (svc *Service) SetReceivablePaid(ctx context.Context, id int, paid bool) (Receivable, error) {
	if paid {
		return svc.repo.MarkReceivablePaid(ctx, id)
	}
	return svc.repo.MarkReceivablePending(ctx, id)
}

// OpenTotals returns the outstanding payable and receivable sums.
func (svc *Service) OpenTotals(ctx context.Context) (Totals, error) {
	payable, err := svc.repo.PayablesTotal(ctx)
	if err != nil {
		return Totals{}, err
	}
	receivable, err := svc.repo.ReceivablesTotal(ctx)
	if err != nil {
		return Totals{}, err
	}
	return Totals{Payable: payable, Receivable: receivable}, nil
}

func (svc *Service) MyWallet(ctx context.Context) (Wallet, error) {
	return svc.repo.GetMyWallet(ctx)
}

func (svc *Service) CreateWallet(ctx context.Context) (Wallet, error) {
	return svc.repo.CreateWallet(ctx)
}
