package payments

import (
	"context"
	"strings"
	"time"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

type Service struct {
	repo     Repository
	location *time.Location
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{repo: repo, location: location, now: time.Now}
}

func (s *Service) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	items, err := s.repo.PaymentMethods(ctx)
	if err != nil {
		return nil, apperr.Internal("payment method query failed", err)
	}
	return items, nil
}

// AddMethod checks the fields its type needs and acknowledges the method.
// Card details are never stored.
func (s *Service) AddMethod(ctx context.Context, req AddMethodRequest) (AddMethodResult, error) {
	details := map[string]string{}
	switch req.Type {
	case MethodCard:
		if strings.TrimSpace(req.CardNumber) == "" {
			details["cardNumber"] = "required"
		}
		if req.ExpiryMonth == 0 {
			details["expiryMonth"] = "required"
		}
		if req.ExpiryYear == 0 {
			details["expiryYear"] = "required"
		}
		if req.ExpiryMonth != 0 && req.ExpiryYear != 0 && s.expired(req.ExpiryYear, req.ExpiryMonth) {
			details["expiryYear"] = "expired"
		}
	case MethodBankAccount:
		if strings.TrimSpace(req.BankAccount) == "" {
			details["bankAccount"] = "required"
		}
	}
	if len(details) > 0 {
		return AddMethodResult{}, apperr.Validation("validation error", details)
	}

	return AddMethodResult{
		Success:         true,
		PaymentMethodID: utils.NewID("pm"),
		Message:         "Payment method added successfully",
	}, nil
}

func (s *Service) expired(year, month int) bool {
	now := s.now().In(s.location)
	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}

// Process acknowledges a payment; no gateway is contacted and nothing is stored.
func (s *Service) Process(ctx context.Context, req ProcessRequest) (ProcessResult, error) {
	result := ProcessResult{
		Success:       true,
		TransactionID: utils.NewID("txn"),
		Amount:        req.Amount,
		Status:        "completed",
		Message:       "Payment processed successfully",
	}
	if req.Escrow {
		escrowID := utils.NewID("esc")
		result.EscrowID = &escrowID
		result.Message = "Payment processed and funds held in escrow"
	}
	return result, nil
}

func (s *Service) Transactions(ctx context.Context) ([]Transaction, error) {
	items, err := s.repo.Transactions(ctx)
	if err != nil {
		return nil, apperr.Internal("transaction query failed", err)
	}
	return items, nil
}

func (s *Service) EscrowAccounts(ctx context.Context) ([]EscrowAccount, error) {
	items, err := s.repo.EscrowAccounts(ctx)
	if err != nil {
		return nil, apperr.Internal("escrow query failed", err)
	}
	return items, nil
}

// Release reports a fixed amount; escrow balances are not touched.
func (s *Service) Release(ctx context.Context, req ReleaseRequest) (ReleaseResult, error) {
	result := ReleaseResult{
		Success:       true,
		TransactionID: utils.NewID("txn"),
		ReleaseAmount: FullReleaseAmount,
		Status:        "released",
		Message:       "Full escrow amount released successfully",
	}
	if strings.TrimSpace(req.MilestoneID) != "" {
		result.ReleaseAmount = MilestoneReleaseAmount
		result.Message = "Milestone payment released successfully"
	}
	return result, nil
}
