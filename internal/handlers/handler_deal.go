package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fxdeals_warehouse/internal/apperrors"
	portssvc "github.com/SscSPs/fxdeals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fxdeals_warehouse/internal/dto"
	"github.com/SscSPs/fxdeals_warehouse/internal/middleware"
	"github.com/SscSPs/fxdeals_warehouse/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	errorCodeInternal   = "INTERNAL_ERROR"
	errorCodeBadRequest = "INVALID_REQUEST"
	errorCodeNotFound   = "NOT_FOUND"
)

// kindResponse is the transport rendering of an import error kind.
type kindResponse struct {
	status int
	code   string
}

// statusForKind is the single mapping from import error kinds to HTTP responses.
var statusForKind = map[apperrors.Kind]kindResponse{
	apperrors.KindValidation:  {status: http.StatusBadRequest, code: apperrors.KindValidation.String()},
	apperrors.KindDuplicate:   {status: http.StatusConflict, code: apperrors.KindDuplicate.String()},
	apperrors.KindPersistence: {status: http.StatusInternalServerError, code: errorCodeInternal},
}

// dealHandler handles HTTP requests related to FX deals.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
	posthog     *utils.PosthogClientWrapper
}

func newDealHandler(ds portssvc.DealSvcFacade, posthog *utils.PosthogClientWrapper) *dealHandler {
	return &dealHandler{
		dealService: ds,
		posthog:     posthog,
	}
}

// registerDealRoutes registers routes related to deals.
func registerDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := newDealHandler(dealService, posthog)

	deals := rg.Group("/deals")
	{
		deals.POST("", h.importDeal)
		deals.POST("/bulk", h.importDealsBulk)
		deals.POST("/validate", h.validateDeals)
		deals.GET("", h.listDeals)
		deals.GET("/:dealUniqueId", h.getDealByUniqueID)
	}
}

// importDeal godoc
// @Summary Import a single FX deal
// @Description Validates the deal, rejects an identifier that is already stored and persists it
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deal body dto.DealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Deal already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to save deal"
// @Security BearerAuth
// @Router /deals [post]
func (h *dealHandler) importDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportDeal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: errorCodeBadRequest, Message: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to import deal", slog.String("deal_unique_id", req.DealUniqueID))

	deal, err := h.dealService.ImportDeal(c.Request.Context(), &req)
	if err != nil {
		respondImportError(c, logger, err)
		return
	}

	logger.Info("Successfully imported deal", slog.String("deal_unique_id", deal.DealUniqueID))
	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// importDealsBulk godoc
// @Summary Import a batch of FX deals
// @Description Imports each deal independently. 201 when every deal was imported, 206 when only some were, 400 when none were.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deals body dto.BulkDealRequest true "Deals to import"
// @Success 201 {object} dto.BulkDealResponse
// @Success 206 {object} dto.BulkDealResponse
// @Failure 400 {object} dto.BulkDealResponse "No deal imported"
// @Security BearerAuth
// @Router /deals/bulk [post]
func (h *dealHandler) importDealsBulk(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportDealsBulk", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: errorCodeBadRequest, Message: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to import deals in bulk", slog.Int("count", len(req.Deals)))

	result, err := h.dealService.ImportDeals(c.Request.Context(), req.Deals)
	if err != nil {
		respondImportError(c, logger, err)
		return
	}

	status := bulkStatus(result.Imported, result.Duplicates, result.Failed)
	logger.Info("Bulk import completed",
		slog.Int("status", status),
		slog.Int("imported", result.Imported),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("failed", result.Failed))

	middleware.PosthogEvent(c, h.posthog, "deals_bulk_imported", map[string]any{
		"total":      result.TotalReceived,
		"imported":   result.Imported,
		"duplicates": result.Duplicates,
		"failed":     result.Failed,
	})

	c.JSON(status, dto.ToBulkDealResponse(result))
}

// validateDeals godoc
// @Summary Validate a batch of FX deals without importing it
// @Description Runs every validation rule over the batch and lists identifiers that are already stored. Nothing is written.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deals body dto.BulkDealRequest true "Deals to check"
// @Success 200 {object} dto.ValidateDealsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to check deals"
// @Security BearerAuth
// @Router /deals/validate [post]
func (h *dealHandler) validateDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateDeals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: errorCodeBadRequest, Message: "Invalid request format: " + err.Error()})
		return
	}

	violations, alreadyStored, err := h.dealService.CheckDeals(c.Request.Context(), req.Deals)
	if err != nil {
		logger.Error("Failed to check deals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{ErrorCode: errorCodeInternal, Message: "Failed to check deals"})
		return
	}

	c.JSON(http.StatusOK, dto.ValidateDealsResponse{
		Valid:         len(violations) == 0,
		Errors:        violations,
		AlreadyStored: alreadyStored,
	})
}

// listDeals godoc
// @Summary List FX deals
// @Description Returns every stored deal in insertion order
// @Tags deals
// @Produce  json
// @Success 200 {array} dto.DealResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list deals"
// @Security BearerAuth
// @Router /deals [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Debug("Received request to list deals")

	deals, err := h.dealService.ListDeals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list deals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{ErrorCode: errorCodeInternal, Message: "Failed to list deals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDealResponse(deals))
}

// getDealByUniqueID godoc
// @Summary Get an FX deal
// @Description Returns the deal stored under the given unique id
// @Tags deals
// @Produce  json
// @Param   dealUniqueId path string true "Deal unique id"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} dto.ErrorResponse "Deal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get deal"
// @Security BearerAuth
// @Router /deals/{dealUniqueId} [get]
func (h *dealHandler) getDealByUniqueID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.DealLookupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		logger.Warn("Invalid deal id in path", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: errorCodeBadRequest, Message: "Invalid deal id: " + err.Error()})
		return
	}

	deal, found, err := h.dealService.GetDealByUniqueID(c.Request.Context(), uri.DealUniqueID)
	if err != nil {
		logger.Error("Failed to get deal", slog.String("error", err.Error()), slog.String("deal_unique_id", uri.DealUniqueID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{ErrorCode: errorCodeInternal, Message: "Failed to get deal"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{ErrorCode: errorCodeNotFound, Message: "Deal not found: " + uri.DealUniqueID})
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// bulkStatus is 201 when every deal was imported, 206 when some were and 400 when none were.
func bulkStatus(imported, duplicates, failed int) int {
	switch {
	case failed == 0 && duplicates == 0:
		return http.StatusCreated
	case imported > 0:
		return http.StatusPartialContent
	default:
		return http.StatusBadRequest
	}
}

func respondImportError(c *gin.Context, logger *slog.Logger, err error) {
	resp := kindResponse{status: http.StatusInternalServerError, code: errorCodeInternal}
	if kind, ok := apperrors.KindOf(err); ok {
		if mapped, known := statusForKind[kind]; known {
			resp = mapped
		}
	}

	if resp.status >= http.StatusInternalServerError {
		logger.Error("Failed to import deal", slog.String("error", err.Error()))
	} else {
		logger.Warn("Deal import rejected", slog.String("error", err.Error()), slog.String("error_code", resp.code))
	}
	c.JSON(resp.status, dto.ErrorResponse{ErrorCode: resp.code, Message: err.Error()})
}
