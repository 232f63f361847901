// Package usecase implements the business logic for the banner symbol list.
package usecase

import (
	"context"
	"log/slog"

	"stock_ticker/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for banner symbols.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols in banner order.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveCodes returns the codes of all active symbols in banner order.
func (u *SymbolUsecase) ListActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}

// SeedDefaults stores entity.DefaultBanner when no symbol exists yet and
// reports how many symbols were added.
func (u *SymbolUsecase) SeedDefaults(ctx context.Context) (int, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	seed := make([]entity.Symbol, len(entity.DefaultBanner))
	copy(seed, entity.DefaultBanner)
	if err := u.repo.CreateBatch(ctx, seed); err != nil {
		return 0, err
	}
	slog.Info("seeded banner symbols", "count", len(seed))
	return len(seed), nil
}
