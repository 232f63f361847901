// Package handler provides the HTTP handlers of the quotes feature.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock_ticker/internal/feature/quotes/transport/http/dto"
	"stock_ticker/internal/feature/quotes/usecase"
)

// QuoteService はクォート取得のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type QuoteService interface {
	Refresh(ctx context.Context, sym, nonce string) usecase.Result
	Lookup(ctx context.Context, sym, providerOverride string) usecase.Result
}

// NonceIssuer はリフレッシュ用トークンを発行します。
type NonceIssuer interface {
	Issue() (string, error)
}

// QuoteHandler はクォートに関するHTTPリクエストを処理します。
type QuoteHandler struct {
	svc      QuoteService
	nonces   NonceIssuer
	lifetime time.Duration
}

// NewQuoteHandler は新しい QuoteHandler を作成します。lifetime is reported to
// clients with each issued nonce.
func NewQuoteHandler(svc QuoteService, nonces NonceIssuer, lifetime time.Duration) *QuoteHandler {
	return &QuoteHandler{svc: svc, nonces: nonces, lifetime: lifetime}
}

// Refresh はクライアントのポーリングに応じて最新のクォートを返します。
// symbol と nonce はクエリまたはフォームから受け取ります。
// 失敗時も常に200でJSONを返し、エラー内容は err フィールドで伝えます。
func (h *QuoteHandler) Refresh(c *gin.Context) {
	res := h.svc.Refresh(c.Request.Context(), param(c, "symbol"), param(c, "nonce"))

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, toResponse(res))
}

// Nonce はページに埋め込むリフレッシュ用トークンを発行します。
func (h *QuoteHandler) Nonce(c *gin.Context) {
	token, err := h.nonces.Issue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue nonce"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.NonceResponse{Nonce: token, ExpiresIn: int64(h.lifetime / time.Second)})
}

// Lookup はページ表示用のクォートを返します。キャッシュが有効な間はキャッシュから返します。
// GET /quotes/:symbol?provider=fmp 、シンボル省略時は設定済みのデフォルト銘柄。
func (h *QuoteHandler) Lookup(c *gin.Context) {
	res := h.svc.Lookup(c.Request.Context(), c.Param("symbol"), c.Query("provider"))
	c.JSON(http.StatusOK, toResponse(res))
}

func param(c *gin.Context, name string) string {
	if v := c.PostForm(name); v != "" {
		return v
	}
	return c.Query(name)
}

func toResponse(res usecase.Result) dto.QuoteResponse {
	out := dto.QuoteResponse{OK: res.OK, Err: res.Err}
	if res.Data != nil {
		q := res.Data
		out.Data = &dto.QuoteData{
			Symbol:    q.Symbol,
			Name:      q.Name,
			Price:     q.Price,
			Change:    q.Change,
			ChangePct: q.ChangePct,
			Currency:  q.Currency,
		}
	}
	return out
}
