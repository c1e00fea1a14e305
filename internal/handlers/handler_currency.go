package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	portssvc "github.com/ahmohbati/forex-backend/internal/core/ports/services"
	"github.com/ahmohbati/forex-backend/internal/dto"
	"github.com/ahmohbati/forex-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles the public currency and rate endpoints.
type currencyHandler struct {
	currencyService   portssvc.CurrencySvcFacade
	rateService       portssvc.RateSvcFacade
	conversionService portssvc.ConversionSvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, rs portssvc.RateSvcFacade, conv portssvc.ConversionSvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService:   cs,
		rateService:       rs,
		conversionService: conv,
	}
}

// RegisterCurrencyRoutes registers the public currency routes.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencySvcFacade, rs portssvc.RateSvcFacade, conv portssvc.ConversionSvcFacade) {
	h := newCurrencyHandler(cs, rs, conv)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/rates", h.listRates)
		currencies.POST("/convert", h.convert)
		currencies.GET("/popular-rates", h.listPopularRates)
	}
}

// listCurrencies godoc
// @Summary List active currencies
// @Description Returns all active currencies ordered by code, with the base currency (ETB) first
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListActiveCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listRates godoc
// @Summary List exchange rates for a base currency
// @Description Returns up to 15 rate observations for the base currency, newest first
// @Tags currencies
// @Produce json
// @Param base query string false "Base currency code (default ETB)"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string
// @Router /currencies/rates [get]
func (h *currencyHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := c.Query("base")

	rates, err := h.rateService.ListRates(c.Request.Context(), base)
	if err != nil {
		logger.Error("Failed to list rates", slog.String("base", base), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Anonymous conversion preview using the latest stored rate; nothing is persisted
// @Tags currencies
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 404 {object} map[string]string "No rate for the currency pair"
// @Failure 500 {object} map[string]string
// @Router /currencies/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount and toCurrency are required"})
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Conversion validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Info("No rate for requested pair",
				slog.String("from", req.FromCurrency), slog.String("to", req.ToCurrency))
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found for the selected currency pair"})
		default:
			logger.Error("Conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(result))
}

// listPopularRates godoc
// @Summary Latest rates for the popular currencies
// @Description Returns the most recent ETB rate for each popular target currency
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string
// @Router /currencies/popular-rates [get]
func (h *currencyHandler) listPopularRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListPopularRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list popular rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch popular rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
