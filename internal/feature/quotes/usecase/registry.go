package usecase

import (
	"fmt"
	"sort"

	"stock_ticker/internal/feature/quotes/domain"
	"stock_ticker/internal/feature/quotes/domain/entity"
)

// Registry dispatches provider tags to their clients.
type Registry struct {
	providers map[entity.Provider]QuoteProvider
}

// NewRegistry registers providers by their tag. A later provider with the
// same tag replaces an earlier one.
func NewRegistry(providers ...QuoteProvider) *Registry {
	r := &Registry{providers: make(map[entity.Provider]QuoteProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.Tag()] = p
	}
	return r
}

// Lookup returns the provider registered for tag.
func (r *Registry) Lookup(tag entity.Provider) (QuoteProvider, error) {
	p, ok := r.providers[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, tag)
	}
	return p, nil
}

// Tags lists the registered provider tags in sorted order.
func (r *Registry) Tags() []entity.Provider {
	out := make([]entity.Provider, 0, len(r.providers))
	for tag := range r.providers {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
