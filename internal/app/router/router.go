package router

import (
	"github.com/gin-gonic/gin"

	quotehandler "stock_ticker/internal/feature/quotes/transport/handler"
	symbollisthandler "stock_ticker/internal/feature/symbollist/transport/handler"
	"stock_ticker/internal/platform/http/handler"
)

// NewRouter registers every route. ready backs the /readyz probe.
func NewRouter(quotes *quotehandler.QuoteHandler, symbols *symbollisthandler.SymbolHandler, ready handler.Check) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(ready))

	// ポーリング用のリフレッシュ（nonce必須）
	r.GET("/quote/nonce", quotes.Nonce)
	r.GET("/quote/refresh", quotes.Refresh)
	r.POST("/quote/refresh", quotes.Refresh)

	// ページ表示用（キャッシュ優先）
	r.GET("/quotes", quotes.Lookup)
	r.GET("/quotes/:symbol", quotes.Lookup)

	// バナー銘柄
	r.GET("/symbols", symbols.List)

	return r
}
