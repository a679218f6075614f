package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartera/internal/core/id"
	"cartera/internal/core/types"
	"cartera/internal/domain/ledger"
	"cartera/internal/domain/registers/movements"
	"cartera/internal/infrastructure/http/v1/middleware"
)

type memMovementsRepo struct {
	records []movements.Record
}

func (m *memMovementsRepo) CreateRecords(_ context.Context, records []movements.Record) error {
	m.records = append(m.records, records...)
	return nil
}

func (m *memMovementsRepo) DeleteByRecorder(_ context.Context, recorderID id.ID) error {
	kept := m.records[:0]
	for _, r := range m.records {
		if r.RecorderID != recorderID {
			kept = append(kept, r)
		}
	}
	m.records = kept
	return nil
}

func (m *memMovementsRepo) GetByRecorder(_ context.Context, recorderID id.ID) ([]movements.Record, error) {
	var out []movements.Record
	for _, r := range m.records {
		if r.RecorderID == recorderID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memMovementsRepo) ListByAccount(_ context.Context, side ledger.Side, accountID id.ID, _ movements.ListFilter) ([]movements.Record, error) {
	var out []movements.Record
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

func newMovementsRouter(repo *memMovementsRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := movements.NewService(repo, passthroughTx{})
	handler := NewMovementsHandler(NewBaseHandler(), svc)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	handler.RegisterRoutes(router.Group("/registers/movements"))
	return router
}

func movementsBody(t *testing.T, recorderID id.ID, amount string) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"recorderId":   recorderID.String(),
		"recorderType": "order",
		"side":         string(ledger.SideReceivable),
		"rows": []map[string]any{{
			"accountId": id.New().String(),
			"date":      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			"kind":      string(ledger.KindOrder),
			"reference": "PED-001",
			"amount":    amount,
		}},
	})
	require.NoError(t, err)
	return body
}

func TestMovementsHandler_Replace(t *testing.T) {
	repo := &memMovementsRepo{}
	router := newMovementsRouter(repo)
	recorderID := id.New()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/registers/movements",
		bytes.NewReader(movementsBody(t, recorderID, "100")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/registers/movements/"+recorderID.String(),
		bytes.NewReader(movementsBody(t, recorderID, "250")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, repo.records, 1)
	assert.True(t, repo.records[0].Amount.Equal(types.MustMoney("250")))
}

func TestMovementsHandler_Replace_RecorderMismatch(t *testing.T) {
	repo := &memMovementsRepo{}
	router := newMovementsRouter(repo)
	recorderID := id.New()
	otherID := id.New()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/registers/movements",
		bytes.NewReader(movementsBody(t, recorderID, "100")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// The body addresses another document: the replace must be rejected
	// and the path document's rows must survive.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/registers/movements/"+recorderID.String(),
		bytes.NewReader(movementsBody(t, otherID, "250")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Len(t, repo.records, 1)
	assert.Equal(t, recorderID, repo.records[0].RecorderID)
	assert.True(t, repo.records[0].Amount.Equal(types.MustMoney("100")))
}
