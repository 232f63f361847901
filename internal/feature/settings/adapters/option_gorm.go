// Package adapters はsettingsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_ticker/internal/feature/settings/domain/entity"
	"stock_ticker/internal/feature/settings/usecase"
)

// optionGorm はOptionRepositoryインターフェースのgorm実装です。
type optionGorm struct {
	db *gorm.DB
}

var _ usecase.OptionRepository = (*optionGorm)(nil)

// NewOptionRepository は指定されたDB接続でoptionGormリポジトリの新しいインスタンスを生成します。
func NewOptionRepository(db *gorm.DB) *optionGorm {
	return &optionGorm{db: db}
}

// List は名前順にすべての保存済みオプションを返します。
func (r *optionGorm) List(ctx context.Context) ([]entity.Option, error) {
	var opts []entity.Option
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&opts).Error; err != nil {
		return nil, err
	}
	return opts, nil
}

// Set はオプションを挿入または更新します。空の値はオプションを削除します。
func (r *optionGorm) Set(ctx context.Context, name, value string) error {
	if value == "" {
		return r.db.WithContext(ctx).Delete(&entity.Option{Name: name}).Error
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entity.Option{Name: name, Value: value}).Error
}
