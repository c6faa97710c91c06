package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/contracts"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

func (h *Handler) CreateLedgerEntry(c *gin.Context) {
	var body contracts.LedgerEntryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &cashledger.CreateEntryRequest{
		Description: body.Description,
		Amount:      body.Amount,
		Direction:   cashledger.Direction(body.Direction),
		Category:    body.Category,
		Reference:   body.Reference,
	}

	if body.AccountId != "" {
		accountID, err := pkg.ParseULID(body.AccountId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
			return
		}
		req.AccountId = &accountID
	}

	ctx := c.Request.Context()
	entry, err := h.CashLedgerService.CreateManualEntry(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.LedgerEntryCreateResponse{
		Message: "Lançamento registrado com sucesso",
		Entry:   entry,
	})
}

func (h *Handler) ListLedgerEntries(c *gin.Context) {
	pagination := h.parsePagination(c)
	filter := &cashledger.Filter{}

	if direction := c.Query("direction"); direction != "" {
		d := cashledger.Direction(direction)
		if !d.IsValid() {
			h.respondError(c, appErrors.NewValidationError("direction", "deve ser IN ou OUT"))
			return
		}
		filter.Direction = &d
	}

	if origin := c.Query("origin"); origin != "" {
		o := cashledger.Origin(origin)
		if o != cashledger.OriginManual && o != cashledger.OriginAutomatic {
			h.respondError(c, appErrors.NewValidationError("origin", "deve ser MANUAL ou AUTOMATIC"))
			return
		}
		filter.Origin = &o
	}

	if accountParam := c.Query("account_id"); accountParam != "" {
		accountID, err := pkg.ParseULID(accountParam)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
			return
		}
		filter.AccountId = &accountID
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
	entries, total, err := h.CashLedgerService.ListEntries(ctx, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(entries, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetLedgerEntry(c *gin.Context) {
	entryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	entry, err := h.CashLedgerService.GetEntryByID(ctx, entryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LedgerEntrySingleResponse{Entry: entry})
}

func (h *Handler) DeleteLedgerEntry(c *gin.Context) {
	entryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.CashLedgerService.DeleteEntry(ctx, entryID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Lançamento removido com sucesso"})
}
