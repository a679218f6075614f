package cartera

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartera/internal/core/apperror"
	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/catalogs/client"
	"cartera/internal/domain/catalogs/provider"
	"cartera/internal/domain/ledger"
)

// Stubs embed the interface so only the methods the service exercises need
// real bodies.

type stubClientRepo struct {
	client.Repository
	clients map[id.ID]*client.Client
}

func (s *stubClientRepo) GetByID(_ context.Context, clientID id.ID) (*client.Client, error) {
	c, ok := s.clients[clientID]
	if !ok {
		return nil, apperror.NewNotFound("client", clientID)
	}
	return c, nil
}

type stubProviderRepo struct {
	provider.Repository
	providers map[id.ID]*provider.Provider
}

func (s *stubProviderRepo) GetByID(_ context.Context, providerID id.ID) (*provider.Provider, error) {
	p, ok := s.providers[providerID]
	if !ok {
		return nil, apperror.NewNotFound("provider", providerID)
	}
	return p, nil
}

type stubMovementRepo struct {
	receivable map[id.ID][]ledger.Movement
	payable    map[id.ID][]ledger.Movement
}

func (s *stubMovementRepo) ListClientMovements(_ context.Context, clientID id.ID, _ StatementFilter) ([]ledger.Movement, error) {
	return s.receivable[clientID], nil
}

func (s *stubMovementRepo) ListProviderMovements(_ context.Context, providerID id.ID, _ StatementFilter) ([]ledger.Movement, error) {
	return s.payable[providerID], nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(movements *stubMovementRepo, c *client.Client, p *provider.Provider) *Service {
	clients := &stubClientRepo{clients: map[id.ID]*client.Client{}}
	providers := &stubProviderRepo{providers: map[id.ID]*provider.Provider{}}
	if c != nil {
		clients.clients[c.ID] = c
	}
	if p != nil {
		providers.providers[p.ID] = p
	}
	return NewService(movements, clients, providers, "")
}

func TestGetClientStatement(t *testing.T) {
	c := client.NewClient("CLI-2025-00001", "Ferretería El Tornillo")

	movements := &stubMovementRepo{receivable: map[id.ID][]ledger.Movement{
		c.ID: {
			{Date: date(2025, 3, 10), Kind: ledger.KindReceipt, Reference: "PED-001", Amount: types.MustMoney("400")},
			{Date: date(2025, 3, 1), Kind: ledger.KindOrder, Reference: "PED-001", Amount: types.MustMoney("1000")},
		},
	}}

	svc := newTestService(movements, c, nil)

	st, err := svc.GetClientStatement(context.Background(), c.ID, StatementFilter{})
	require.NoError(t, err)

	assert.Equal(t, ledger.SideReceivable, st.Side)
	assert.Equal(t, c.ID, st.AccountID)
	assert.Equal(t, "CLI-2025-00001", st.AccountCode)
	assert.Equal(t, "Ferretería El Tornillo", st.AccountName)

	require.Len(t, st.Rows, 2)
	assert.Equal(t, "Cargo PED-001", st.Rows[0].Label)
	assert.True(t, st.Rows[0].RunningBalanceAfter.Equal(types.MustMoney("1000")))
	assert.Equal(t, "Abono PED-001", st.Rows[1].Label)
	assert.True(t, st.Rows[1].RunningBalanceAfter.Equal(types.MustMoney("600")))

	assert.True(t, st.Balance.Equal(types.MustMoney("600")))
	assert.False(t, st.GeneratedAt.IsZero())
}

func TestGetClientStatement_Empty(t *testing.T) {
	c := client.NewClient("CLI-2025-00002", "Cliente Sin Movimientos")
	movements := &stubMovementRepo{receivable: map[id.ID][]ledger.Movement{}}

	svc := newTestService(movements, c, nil)

	st, err := svc.GetClientStatement(context.Background(), c.ID, StatementFilter{})
	require.NoError(t, err)

	assert.NotNil(t, st.Rows)
	assert.Empty(t, st.Rows)
	assert.True(t, st.Balance.IsZero())
}

func TestGetClientStatement_NotFound(t *testing.T) {
	svc := newTestService(&stubMovementRepo{}, nil, nil)

	_, err := svc.GetClientStatement(context.Background(), id.New(), StatementFilter{})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetClientStatement_UnknownKindFailsWholeCall(t *testing.T) {
	c := client.NewClient("CLI-2025-00003", "Cliente Datos Malos")
	movements := &stubMovementRepo{receivable: map[id.ID][]ledger.Movement{
		c.ID: {
			{Date: date(2025, 3, 1), Kind: ledger.KindOrder, Reference: "PED-002", Amount: types.MustMoney("100")},
			// Payable kind leaking into a receivable stream.
			{Date: date(2025, 3, 2), Kind: ledger.KindInvoice, Reference: "F-1", Amount: types.MustMoney("50")},
		},
	}}

	svc := newTestService(movements, c, nil)

	st, err := svc.GetClientStatement(context.Background(), c.ID, StatementFilter{})
	require.Error(t, err)
	assert.Nil(t, st)
	assert.True(t, apperror.IsMalformedMovement(err))
}

func TestGetClientStatement_InvalidPeriod(t *testing.T) {
	c := client.NewClient("CLI-2025-00004", "Cliente")
	svc := newTestService(&stubMovementRepo{}, c, nil)

	from := date(2025, 5, 1)
	to := date(2025, 4, 1)
	_, err := svc.GetClientStatement(context.Background(), c.ID, StatementFilter{FromDate: &from, ToDate: &to})
	require.Error(t, err)
}

func TestGetProviderStatement(t *testing.T) {
	p := provider.NewProvider("PROV-2025-00001", "Aceros del Norte")

	movements := &stubMovementRepo{payable: map[id.ID][]ledger.Movement{
		p.ID: {
			{Date: date(2025, 2, 1), Kind: ledger.KindInvoice, Reference: "F-100", Amount: types.MustMoney("5000")},
			{Date: date(2025, 2, 15), Kind: ledger.KindPayment, Reference: "P-55", Amount: types.MustMoney("3000")},
			{Date: date(2025, 2, 20), Kind: ledger.KindCreditNote, Reference: "NC-7", Amount: types.MustMoney("500")},
		},
	}}

	svc := newTestService(movements, nil, p)

	st, err := svc.GetProviderStatement(context.Background(), p.ID, StatementFilter{})
	require.NoError(t, err)

	assert.Equal(t, ledger.SidePayable, st.Side)
	require.Len(t, st.Rows, 3)
	assert.Equal(t, "Factura F-100", st.Rows[0].Label)
	assert.Equal(t, "Pago P-55", st.Rows[1].Label)
	assert.Equal(t, "Nota de crédito NC-7", st.Rows[2].Label)
	assert.True(t, st.Balance.Equal(types.MustMoney("1500")))
}
