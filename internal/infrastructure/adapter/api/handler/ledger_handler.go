package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/usecase"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/dto"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/middleware"
)

// LedgerHandler handles portfolio, trading, deposit and history requests
type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// Index handles GET / and renders the portfolio
func (h *LedgerHandler) Index(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apologyFor(c, errs.ErrUnauthenticated)
		return
	}

	summary, err := h.ledgerUseCase.Portfolio(c.Request.Context(), username)
	if err != nil {
		apologyFor(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Username":  summary.Username,
		"Positions": summary.Positions,
		"Cash":      summary.FormatCash(),
		"NetWorth":  summary.FormatNetWorth(),
	})
}

// History handles GET /history
func (h *LedgerHandler) History(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apologyFor(c, errs.ErrUnauthenticated)
		return
	}

	records, err := h.ledgerUseCase.History(c.Request.Context(), username)
	if err != nil {
		apologyFor(c, err)
		return
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"Username": username,
		"Records":  records,
	})
}

// ShowBuy handles GET /buy
func (h *LedgerHandler) ShowBuy(c *gin.Context) {
	c.HTML(http.StatusOK, "buy.html", nil)
}

// Buy handles POST /buy
func (h *LedgerHandler) Buy(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apologyFor(c, errs.ErrUnauthenticated)
		return
	}

	var form dto.TradeForm
	if err := c.ShouldBind(&form); err != nil {
		apologyFor(c, errs.ErrMissingInput)
		return
	}

	if _, err := h.ledgerUseCase.Buy(c.Request.Context(), username, form.Symbol, form.Shares); err != nil {
		apologyFor(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// ShowSell handles GET /sell and offers the symbols the user owns
func (h *LedgerHandler) ShowSell(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apologyFor(c, errs.ErrUnauthenticated)
		return
	}

	symbols, err := h.ledgerUseCase.OwnedSymbols(c.Request.Context(), username)
	if err != nil {
		apologyFor(c, err)
		return
	}

	c.HTML(http.StatusOK, "sell.html", gin.H{
		"Symbols": symbols,
	})
}

// Sell handles POST /sell
func (h *LedgerHandler) Sell(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apologyFor(c, errs.ErrUnauthenticated)
		return
	}

	var form dto.TradeForm
	if err := c.ShouldBind(&form); err != nil {
		apologyFor(c, errs.ErrMissingInput)
		return
	}

	if _, err := h.ledgerUseCase.Sell(c.Request.Context(), username, form.Symbol, form.Shares); err != nil {
		apologyFor(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// ShowDeposit handles GET /addcash
func (h *LedgerHandler) ShowDeposit(c *gin.Context) {
	c.HTML(http.StatusOK, "addcash.html", nil)
}

// Deposit handles POST /addcash
func (h *LedgerHandler) Deposit(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apologyFor(c, errs.ErrUnauthenticated)
		return
	}

	var form dto.DepositForm
	if err := c.ShouldBind(&form); err != nil {
		apologyFor(c, errs.ErrMissingInput)
		return
	}

	if _, err := h.ledgerUseCase.Deposit(c.Request.Context(), username, form.Cash); err != nil {
		apologyFor(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
