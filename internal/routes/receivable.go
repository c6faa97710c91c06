package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/contracts"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/receivable"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

func (h *Handler) GenerateReceivables(c *gin.Context) {
	var body contracts.ReceivableGenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	saleID, err := pkg.ParseULID(body.SaleId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("sale_id", "formato invalido"))
		return
	}

	operatorID, err := pkg.ParseULID(body.OperatorId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("operator_id", "formato invalido"))
		return
	}

	req := &receivable.GenerateRequest{
		SaleId:       saleID,
		OperatorId:   operatorID,
		Method:       operator.PaymentMethod(body.Method),
		GrossAmount:  body.GrossAmount,
		Installments: body.Installments,
		SaleDate:     body.SaleDate,
	}

	ctx := c.Request.Context()
	receivables, err := h.ReceivableService.GenerateForSale(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ReceivableGenerateResponse{
		Message:     "Recebíveis gerados com sucesso",
		Receivables: receivables,
	})
}

func (h *Handler) ListReceivables(c *gin.Context) {
	pagination := h.parsePagination(c)
	filter := &receivable.Filter{}

	if status := c.Query("status"); status != "" {
		s := receivable.Status(status)
		if !s.IsValid() {
			h.respondError(c, appErrors.NewValidationError("status", "deve ser PENDING ou RECEIVED"))
			return
		}
		filter.Status = &s
	}

	if operatorParam := c.Query("operator_id"); operatorParam != "" {
		operatorID, err := pkg.ParseULID(operatorParam)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("operator_id", "formato invalido"))
			return
		}
		filter.OperatorId = &operatorID
	}

	if from, ok := parseDateQuery(c, "from"); ok {
		filter.From = from
	} else {
		h.respondError(c, appErrors.NewValidationError("from", "formato invalido"))
		return
	}

	if to, ok := parseDateQuery(c, "to"); ok {
		filter.To = to
	} else {
		h.respondError(c, appErrors.NewValidationError("to", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	receivables, total, err := h.ReceivableService.ListReceivables(ctx, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(receivables, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetReceivable(c *gin.Context) {
	receivableID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	rec, err := h.ReceivableService.GetReceivableByID(ctx, receivableID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReceivableSingleResponse{Receivable: rec})
}

func (h *Handler) GetReceivablesBySale(c *gin.Context) {
	saleID, err := pkg.ParseULID(c.Param("saleId"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("saleId", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	receivables, err := h.ReceivableService.GetBySale(ctx, saleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReceivableListBySaleResponse{
		Receivables: receivables,
		Total:       len(receivables),
	})
}

func (h *Handler) ConfirmReceivable(c *gin.Context) {
	receivableID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.ReceivableConfirmRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	rec, err := h.ReceivableService.Confirm(ctx, receivableID, body.ConfirmedBy)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReceivableSingleResponse{Receivable: rec})
}

func (h *Handler) ReverseReceivable(c *gin.Context) {
	receivableID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	rec, err := h.ReceivableService.Reverse(ctx, receivableID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReceivableSingleResponse{Receivable: rec})
}

// parseDateQuery lê um parâmetro de data no formato 2006-01-02; ausente
// devolve nil com ok true.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
