package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartera/internal/core/id"
	"cartera/internal/domain/reports"
	"cartera/internal/infrastructure/http/v1/middleware"
)

type memReportRepo struct {
	lastFilter reports.AgingReportFilter
	calls      int
}

func (m *memReportRepo) ListOpenDocuments(_ context.Context, filter reports.AgingReportFilter) ([]reports.OpenDocument, error) {
	m.lastFilter = filter
	m.calls++
	return nil, nil
}

func newReportsRouter(repo *memReportRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewReportsHandler(NewBaseHandler(), reports.NewService(repo))

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	handler.RegisterRoutes(router.Group("/reports"))
	return router
}

func TestGetAgingReport_AccountFilter(t *testing.T) {
	repo := &memReportRepo{}
	router := newReportsRouter(repo)
	accountID := id.New()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/aging?accountId="+accountID.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.lastFilter.AccountIDs, 1)
	assert.Equal(t, accountID, repo.lastFilter.AccountIDs[0])
}

func TestGetAgingReport_RejectsBadAccountID(t *testing.T) {
	repo := &memReportRepo{}
	router := newReportsRouter(repo)

	// A typo'd filter must return 400, never the unfiltered report.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/aging?accountId=not-a-uuid", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, repo.calls)
}
