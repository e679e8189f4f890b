package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/market"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/dto"
)

// QuoteHandler handles stock quote lookups
type QuoteHandler struct {
	quotes market.QuoteProvider
	logger coreport.Logger
}

// NewQuoteHandler creates a new quote handler instance
func NewQuoteHandler(quotes market.QuoteProvider, logger coreport.Logger) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		logger: logger,
	}
}

// ShowQuote handles GET /quote
func (h *QuoteHandler) ShowQuote(c *gin.Context) {
	c.HTML(http.StatusOK, "quote.html", nil)
}

// Quote handles POST /quote and renders the looked-up price
func (h *QuoteHandler) Quote(c *gin.Context) {
	var form dto.QuoteForm
	if err := c.ShouldBind(&form); err != nil {
		apologyFor(c, errs.ErrInvalidSymbol)
		return
	}

	quote, err := h.quotes.Lookup(c.Request.Context(), form.Symbol)
	if err != nil {
		apologyFor(c, err)
		return
	}

	c.HTML(http.StatusOK, "quoted.html", gin.H{
		"Symbol": quote.Symbol,
		"Name":   quote.CompanyName,
		"Price":  quote.FormatPrice(),
	})
}
