package payments

import "context"

type Repository interface {
	PaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	Transactions(ctx context.Context) ([]Transaction, error)
	EscrowAccounts(ctx context.Context) ([]EscrowAccount, error)
}

type FixtureRepository struct {
	methods      []PaymentMethod
	transactions []Transaction
	escrow       []EscrowAccount
}

func NewFixtureRepository(methods []PaymentMethod, transactions []Transaction, escrow []EscrowAccount) *FixtureRepository {
	return &FixtureRepository{methods: methods, transactions: transactions, escrow: escrow}
}

func (r *FixtureRepository) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	return append([]PaymentMethod(nil), r.methods...), nil
}

func (r *FixtureRepository) Transactions(ctx context.Context) ([]Transaction, error) {
	return append([]Transaction(nil), r.transactions...), nil
}

func (r *FixtureRepository) EscrowAccounts(ctx context.Context) ([]EscrowAccount, error) {
	return append([]EscrowAccount(nil), r.escrow...), nil
}
