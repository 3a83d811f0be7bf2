package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/jasonlam510/scount-currency-backend/internal/core/ports/services"
	"github.com/jasonlam510/scount-currency-backend/internal/core/services"
	"github.com/jasonlam510/scount-currency-backend/internal/dto"
	"github.com/jasonlam510/scount-currency-backend/internal/middleware"
	"github.com/jasonlam510/scount-currency-backend/internal/utils"
	"github.com/jasonlam510/scount-currency-backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// currencyHandler handles HTTP requests related to the currency catalog.
type currencyHandler struct {
	catalogService    portssvc.CatalogSvcFacade
	suggestionService portssvc.SuggestionSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CatalogSvcFacade, ss portssvc.SuggestionSvcFacade) *currencyHandler {
	return &currencyHandler{
		catalogService:    cs,
		suggestionService: ss,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, cfg *config.Config, cs portssvc.CatalogSvcFacade, ss portssvc.SuggestionSvcFacade) {
	h := newCurrencyHandler(cs, ss)

	// Refresh hits the upstream reference API, so it gets its own IP limit.
	rate, _ := limiter.NewRateFromFormatted(cfg.RefreshRateLimit)
	refreshLimiter := limiter.New(memory.NewStore(), rate)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/sections", h.listSections)
		currencies.GET("/suggested", h.listSuggested)
		currencies.GET("/local", h.getLocalCurrency)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.POST("/refresh", middleware.RateLimit(refreshLimiter), h.refreshCatalog)
	}
}

// bindLocale extracts the device locale from query params, falling back to the
// Accept-Language header for the language tag.
func bindLocale(c *gin.Context) (dto.DeviceLocaleQuery, bool) {
	var q dto.DeviceLocaleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Failed to bind locale query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locale parameters: " + err.Error()})
		return q, false
	}
	return q, true
}

// listCurrencies godoc
// @Summary List all supported currencies
// @Description Returns the full catalog from the current snapshot, sorted by name and optionally filtered
// @Tags currencies
// @Produce json
// @Param q query string false "Search query (substring, case-insensitive)"
// @Param currency query string false "Device-reported currency code"
// @Param region query string false "Device region (alpha-2)"
// @Param lang query string false "Device language tag (BCP-47)"
// @Success 200 {object} dto.CatalogResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	q, ok := bindLocale(c)
	if !ok {
		return
	}
	loc := q.ToDomain(c.GetHeader("Accept-Language"))

	all := h.catalogService.AllSupported(loc)
	filtered := services.FilterCurrencies(all, c.Query("q"))
	loading, errMsg := h.catalogService.Status()

	c.JSON(http.StatusOK, dto.CatalogResponse{
		IsLoading:  loading,
		Error:      errMsg,
		Currencies: dto.ToListCurrencyResponse(filtered),
	})
}

// listSections godoc
// @Summary Sectioned currency picker payload
// @Description Returns letter sections over the sorted catalog, preceded by a suggestions section when no query is active
// @Tags currencies
// @Produce json
// @Param q query string false "Search query"
// @Param currency query string false "Device-reported currency code"
// @Param region query string false "Device region (alpha-2)"
// @Param lang query string false "Device language tag (BCP-47)"
// @Success 200 {object} dto.SectionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currencies/sections [get]
func (h *currencyHandler) listSections(c *gin.Context) {
	q, ok := bindLocale(c)
	if !ok {
		return
	}
	loc := q.ToDomain(c.GetHeader("Accept-Language"))
	deviceID := middleware.GetDeviceIDFromContext(c)

	sections := h.suggestionService.Sections(c.Request.Context(), deviceID, loc, c.Query("q"))
	loading, errMsg := h.catalogService.Status()

	c.JSON(http.StatusOK, dto.SectionsResponse{
		IsLoading: loading,
		Error:     errMsg,
		Sections:  dto.ToSectionsResponse(sections),
	})
}

// listSuggested godoc
// @Summary Ranked currency suggestions
// @Description Local currency first, then recent picks, then fixed defaults, deduplicated
// @Tags currencies
// @Produce json
// @Param currency query string false "Device-reported currency code"
// @Param region query string false "Device region (alpha-2)"
// @Param lang query string false "Device language tag (BCP-47)"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currencies/suggested [get]
func (h *currencyHandler) listSuggested(c *gin.Context) {
	q, ok := bindLocale(c)
	if !ok {
		return
	}
	loc := q.ToDomain(c.GetHeader("Accept-Language"))
	deviceID := middleware.GetDeviceIDFromContext(c)

	suggested := h.suggestionService.Suggested(c.Request.Context(), deviceID, loc)
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(suggested))
}

// getLocalCurrency godoc
// @Summary Resolve the device's implied currency
// @Tags currencies
// @Produce json
// @Param currency query string false "Device-reported currency code"
// @Param region query string false "Device region (alpha-2)"
// @Param lang query string false "Device language tag (BCP-47)"
// @Success 200 {object} dto.LocalCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currencies/local [get]
func (h *currencyHandler) getLocalCurrency(c *gin.Context) {
	q, ok := bindLocale(c)
	if !ok {
		return
	}
	loc := q.ToDomain(c.GetHeader("Accept-Language"))

	c.JSON(http.StatusOK, dto.LocalCurrencyResponse{
		Code: h.suggestionService.LocalCurrencyCode(loc),
	})
}

// getCurrencyByCode godoc
// @Summary Get a single currency
// @Description Returns one currency from the current snapshot, optionally with an amount formatted at the currency's precision
// @Tags currencies
// @Produce json
// @Param code path string true "ISO 4217 code"
// @Param amount query string false "Amount to format"
// @Success 200 {object} dto.CurrencyDetailResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	q, ok := bindLocale(c)
	if !ok {
		return
	}
	loc := q.ToDomain(c.GetHeader("Accept-Language"))

	code := c.Param("code")
	cur, found := h.catalogService.CurrencyByCode(code, loc)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		return
	}

	resp := dto.CurrencyDetailResponse{CurrencyResponse: dto.ToCurrencyResponse(cur)}
	if amountStr := c.Query("amount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			logger.Warn("Invalid amount for currency formatting", slog.String("amount", amountStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + amountStr})
			return
		}
		resp.FormattedAmount = utils.FormatWithCurrencyPrecision(amount, cur.Code)
	}

	c.JSON(http.StatusOK, resp)
}

// refreshCatalog godoc
// @Summary Re-fetch the currency catalog from the reference source
// @Description On failure the previous snapshot stays published and the error is reported in the payload
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /currencies/refresh [post]
func (h *currencyHandler) refreshCatalog(c *gin.Context) {
	q, ok := bindLocale(c)
	if !ok {
		return
	}
	loc := q.ToDomain(c.GetHeader("Accept-Language"))

	h.catalogService.Refresh(c.Request.Context())

	loading, errMsg := h.catalogService.Status()
	c.JSON(http.StatusOK, dto.CatalogResponse{
		IsLoading:  loading,
		Error:      errMsg,
		Currencies: dto.ToListCurrencyResponse(h.catalogService.AllSupported(loc)),
	})
}
