package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_ticker/internal/feature/symbollist/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Symbolテーブルを作成
	err = db.AutoMigrate(&entity.Symbol{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedSymbol はテスト用の銘柄データをデータベースに作成します。
func seedSymbol(t *testing.T, db *gorm.DB, code, title string, sortKey int) *entity.Symbol {
	t.Helper()

	symbol := &entity.Symbol{
		Code:     code,
		Title:    title,
		IsActive: true,
		SortKey:  sortKey,
	}
	err := db.Create(symbol).Error
	require.NoError(t, err, "failed to seed symbol")

	return symbol
}

// deactivate は銘柄のis_activeをfalseに更新します。
// gormはゼロ値のboolをINSERTで省略しデフォルト値が入るため、更新で設定します。
func deactivate(t *testing.T, db *gorm.DB, symbol *entity.Symbol) {
	t.Helper()
	err := db.Model(symbol).Update("is_active", false).Error
	require.NoError(t, err, "failed to update symbol active status")
}

// TestNewSymbolRepository はNewSymbolRepositoryコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewSymbolRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

// TestSymbolGorm_ListActive はListActiveメソッドの各種シナリオをテーブル駆動テストで検証します。
func TestSymbolGorm_ListActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setupFunc     func(t *testing.T, db *gorm.DB)
		expectedCodes []string
	}{
		{
			name: "success: returns active symbols sorted by sort_key",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "OTC:MURMF", "Murchison Minerals (OTC)", 2)
				seedSymbol(t, db, "TSXV:MUR", "Murchison Minerals (TSXV)", 1)
				seedSymbol(t, db, "AAPL", "Apple", 3)
			},
			expectedCodes: []string{"TSXV:MUR", "OTC:MURMF", "AAPL"},
		},
		{
			name: "success: excludes inactive symbols",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "TSXV:MUR", "Murchison Minerals (TSXV)", 1)
				deactivate(t, db, seedSymbol(t, db, "OTC:MURMF", "Murchison Minerals (OTC)", 2))
			},
			expectedCodes: []string{"TSXV:MUR"},
		},
		{
			name:          "success: returns empty list when no symbols",
			setupFunc:     func(t *testing.T, db *gorm.DB) {},
			expectedCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewSymbolRepository(db)
			tt.setupFunc(t, db)

			symbols, err := repo.ListActive(context.Background())
			require.NoError(t, err)
			require.Len(t, symbols, len(tt.expectedCodes))
			for i, code := range tt.expectedCodes {
				assert.Equal(t, code, symbols[i].Code)
			}

			codes, err := repo.ListActiveCodes(context.Background())
			require.NoError(t, err)
			if len(tt.expectedCodes) == 0 {
				assert.Empty(t, codes)
			} else {
				assert.Equal(t, tt.expectedCodes, codes)
			}
		})
	}
}

// TestSymbolGorm_CountAndCreateBatch は一括登録と件数取得を検証します。
func TestSymbolGorm_CountAndCreateBatch(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.CreateBatch(ctx, nil))
	require.NoError(t, repo.CreateBatch(ctx, append([]entity.Symbol(nil), entity.DefaultBanner...)))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	symbols, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, symbols, 2)
	assert.Equal(t, "TSXV:MUR", symbols[0].Code)
	assert.Equal(t, "Murchison Minerals (TSXV)", symbols[0].Title)
	assert.False(t, symbols[0].UpdatedAt.IsZero(), "UpdatedAt should be set")

	// Codes are unique.
	assert.Error(t, repo.CreateBatch(ctx, []entity.Symbol{{Code: "TSXV:MUR"}}))
}
