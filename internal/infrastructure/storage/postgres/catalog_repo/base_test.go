package catalog_repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "cartera/internal/core/context"
	"cartera/internal/core/id"
)

func newTestRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "company_id", "code", "name"}, func() any { return nil })
}

func ctxWithCompany(companyID id.ID) context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:    id.New().String(),
		CompanyID: companyID.String(),
	})
}

func TestBaseSelect_CompanyScoped(t *testing.T) {
	repo := newTestRepo()
	companyID := id.New()

	q, err := repo.BaseSelect(ctxWithCompany(companyID))
	require.NoError(t, err)

	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, company_id, code, name FROM test_table WHERE company_id = $1", sql)
	require.Len(t, args, 1)
	assert.Equal(t, companyID, args[0])
}

func TestBaseSelect_MissingCompany(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.BaseSelect(context.Background())
	assert.Error(t, err)
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "name ASC"},
		{in: "name", want: "name ASC"},
		{in: "-name", want: "name DESC"},
		{in: "+code", want: "code ASC"},
		{in: "-created_at", want: "created_at DESC"},
		{in: "drop table", wantErr: true},
		{in: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeleteSQL(t *testing.T) {
	repo := newTestRepo()
	entityID := id.New()

	q := repo.Builder().
		Delete("test_table").
		Where("id = ?", entityID)

	sql, args, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM test_table WHERE id = $1", sql)
	require.Len(t, args, 1)
	assert.Equal(t, entityID, args[0])
}
