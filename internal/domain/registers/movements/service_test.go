package movements

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartera/internal/core/apperror"
	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
)

type memRepo struct {
	records []Record
}

func (m *memRepo) CreateRecords(_ context.Context, records []Record) error {
	m.records = append(m.records, records...)
	return nil
}

func (m *memRepo) DeleteByRecorder(_ context.Context, recorderID id.ID) error {
	kept := m.records[:0]
	for _, r := range m.records {
		if r.RecorderID != recorderID {
			kept = append(kept, r)
		}
	}
	m.records = kept
	return nil
}

func (m *memRepo) GetByRecorder(_ context.Context, recorderID id.ID) ([]Record, error) {
	var out []Record
	for _, r := range m.records {
		if r.RecorderID == recorderID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) ListByAccount(_ context.Context, side ledger.Side, accountID id.ID, _ ListFilter) ([]Record, error) {
	var out []Record
	for _, r := range m.records {
		if r.Side == side && r.AccountID == accountID {
			out = append(out, r)
		}
	}
	return out, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validRecord(recorderID id.ID) Record {
	return Record{
		RecorderID:   recorderID,
		RecorderType: "order",
		Side:         ledger.SideReceivable,
		AccountID:    id.New(),
		Date:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Kind:         ledger.KindOrder,
		Reference:    "PED-001",
		Amount:       types.MustMoney("100"),
	}
}

func TestRecordMovements(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, passthroughTx{})
	recorderID := id.New()

	err := svc.RecordMovements(context.Background(), []Record{validRecord(recorderID)})
	require.NoError(t, err)

	stored, err := svc.GetByRecorder(context.Background(), recorderID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, id.IsNil(stored[0].LineID))
	assert.False(t, stored[0].CreatedAt.IsZero())
}

func TestRecordMovements_RejectsWholeBatch(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, passthroughTx{})
	recorderID := id.New()

	good := validRecord(recorderID)
	bad := validRecord(recorderID)
	bad.Kind = ledger.KindInvoice // payable kind on a receivable row

	err := svc.RecordMovements(context.Background(), []Record{good, bad})
	require.Error(t, err)
	assert.True(t, apperror.IsMalformedMovement(err))
	assert.Empty(t, repo.records)
}

func TestRecordMovements_Validation(t *testing.T) {
	svc := NewService(&memRepo{}, passthroughTx{})
	recorderID := id.New()

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing date", func(r *Record) { r.Date = time.Time{} }},
		{"negative amount", func(r *Record) { r.Amount = types.MustMoney("-5") }},
		{"missing account", func(r *Record) { r.AccountID = id.Nil() }},
		{"missing recorder", func(r *Record) { r.RecorderID = id.Nil() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord(recorderID)
			tt.mutate(&r)
			err := svc.RecordMovements(context.Background(), []Record{r})
			require.Error(t, err)
			assert.True(t, apperror.IsMalformedMovement(err))
		})
	}
}

func TestReplaceMovements(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, passthroughTx{})
	recorderID := id.New()

	require.NoError(t, svc.RecordMovements(context.Background(), []Record{validRecord(recorderID)}))

	replacement := validRecord(recorderID)
	replacement.Amount = types.MustMoney("250")
	require.NoError(t, svc.ReplaceMovements(context.Background(), recorderID, []Record{replacement}))

	stored, err := svc.GetByRecorder(context.Background(), recorderID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Amount.Equal(types.MustMoney("250")))
}

func TestReplaceMovements_RejectsForeignRecorder(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, passthroughTx{})
	recorderID := id.New()
	otherID := id.New()

	require.NoError(t, svc.RecordMovements(context.Background(), []Record{validRecord(recorderID)}))
	require.NoError(t, svc.RecordMovements(context.Background(), []Record{validRecord(otherID)}))

	// Rows addressed at another document must not ride along on a replace.
	stray := validRecord(otherID)
	err := svc.ReplaceMovements(context.Background(), recorderID, []Record{stray})
	require.Error(t, err)
	assert.True(t, apperror.IsMalformedMovement(err))

	// Both registers are untouched.
	stored, err := svc.GetByRecorder(context.Background(), recorderID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
	stored, err = svc.GetByRecorder(context.Background(), otherID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestReverseMovements(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, passthroughTx{})
	recorderID := id.New()

	require.NoError(t, svc.RecordMovements(context.Background(), []Record{validRecord(recorderID)}))
	require.NoError(t, svc.ReverseMovements(context.Background(), recorderID))

	stored, err := svc.GetByRecorder(context.Background(), recorderID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestToLedger(t *testing.T) {
	r := validRecord(id.New())
	m := r.ToLedger()
	assert.Equal(t, r.Date, m.Date)
	assert.Equal(t, r.Kind, m.Kind)
	assert.Equal(t, r.Reference, m.Reference)
	assert.True(t, r.Amount.Equal(m.Amount))
}
