package cartera

import (
	"context"
	"fmt"
	"time"

	"cartera/internal/core/id"
	"cartera/internal/domain/catalogs/client"
	"cartera/internal/domain/catalogs/provider"
	"cartera/internal/domain/ledger"
)

// Service generates account-holder statements.
type Service struct {
	movements MovementRepository
	clients   client.Repository
	providers provider.Repository

	// policy is the deployment-wide adjustment sign convention, fixed at
	// construction so every statement in the process agrees.
	policy ledger.AdjustmentPolicy
}

// NewService creates a new statement service. An empty policy defaults to
// ledger.AdjustmentsSubtract.
func NewService(movements MovementRepository, clients client.Repository, providers provider.Repository, policy ledger.AdjustmentPolicy) *Service {
	return &Service{
		movements: movements,
		clients:   clients,
		providers: providers,
		policy:    policy,
	}
}

// GetClientStatement builds the receivable statement for one client.
func (s *Service) GetClientStatement(ctx context.Context, clientID id.ID, filter StatementFilter) (*Statement, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	movements, err := s.movements.ListClientMovements(ctx, clientID, filter)
	if err != nil {
		return nil, fmt.Errorf("list client movements: %w", err)
	}

	return s.build(ledger.SideReceivable, c.ID, c.Code, c.Name, movements)
}

// GetProviderStatement builds the payable statement for one provider.
func (s *Service) GetProviderStatement(ctx context.Context, providerID id.ID, filter StatementFilter) (*Statement, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	p, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}

	movements, err := s.movements.ListProviderMovements(ctx, providerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list provider movements: %w", err)
	}

	return s.build(ledger.SidePayable, p.ID, p.Code, p.Name, movements)
}

func (s *Service) build(side ledger.Side, accountID id.ID, code, name string, movements []ledger.Movement) (*Statement, error) {
	agg := ledger.NewAggregator(side, s.policy)
	groups, err := agg.GroupAndBalance(movements)
	if err != nil {
		return nil, err
	}

	rows := make([]StatementRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, StatementRow{
			Key:                 g.Key,
			Label:               ledger.FormatGroupLabel(g),
			Kind:                g.Kind,
			Reference:           g.Reference,
			FirstDate:           g.FirstDate,
			Items:               g.Items,
			Total:               g.Total,
			RunningBalanceAfter: g.RunningBalanceAfter,
		})
	}

	st := &Statement{
		Side:        side,
		AccountID:   accountID,
		AccountCode: code,
		AccountName: name,
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
	if len(groups) > 0 {
		st.Balance = groups[len(groups)-1].RunningBalanceAfter
	}

	return st, nil
}

func validateFilter(filter StatementFilter) error {
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return fmt.Errorf("fromDate must be before toDate")
	}
	return nil
}
