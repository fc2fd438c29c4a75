package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
}

func newCurrencyHandler(cs portssvc.CurrencyReaderSvc) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencyReaderSvc) {
	h := newCurrencyHandler(cs)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists every currency with a denomination table.
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrenciesResponse(h.currencyService.ListCurrencies(c.Request.Context())))
}

// getCurrency godoc
// @Summary Get a currency
// @Description Returns the denomination table of one currency, largest tier first.
// @Tags currencies
// @Produce json
// @Param code path string true "ISO 4217 code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Unknown currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	def, err := h.currencyService.GetCurrency(c.Request.Context(), c.Param("code"))
	if errors.Is(err, apperrors.ErrUnknownCurrency) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		respondServiceError(c, err, "Failed to load currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(def))
}
