package symbol

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"stock_ticker/internal/feature/quotes/domain/entity"
)

// CacheKey derives the cache key for a normalized symbol of a provider.
func CacheKey(p entity.Provider, normalized string) string {
	sum := blake2b.Sum256([]byte(string(p) + "|" + normalized))
	return string(p) + ":" + hex.EncodeToString(sum[:16])
}
