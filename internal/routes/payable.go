package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/contracts"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/payable"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

func (h *Handler) CreateBill(c *gin.Context) {
	var body contracts.BillCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &payable.CreateBillRequest{
		Description: body.Description,
		Notes:       body.Notes,
		Amount:      body.Amount,
		DueDate:     body.DueDate,
		Status:      payable.Status(body.Status),
		PaymentDate: body.PaymentDate,
		Category:    body.Category,
		Creditor:    body.Creditor,
		Repeat:      body.Repeat,
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
	bills, err := h.PayableService.CreateBill(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BillCreateResponse{
		Message: "Conta a pagar criada com sucesso",
		Bills:   bills,
	})
}

func (h *Handler) ListBills(c *gin.Context) {
	pagination := h.parsePagination(c)
	filter := &payable.Filter{}

	if status := c.Query("status"); status != "" {
		s := payable.Status(status)
		if !s.IsValid() {
			h.respondError(c, appErrors.NewValidationError("status", "deve ser PENDING ou PAID"))
			return
		}
		filter.Status = &s
	}

	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}

	if creditor := c.Query("creditor"); creditor != "" {
		filter.Creditor = &creditor
	}

	if groupParam := c.Query("group_id"); groupParam != "" {
		groupID, err := pkg.ParseULID(groupParam)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("group_id", "formato invalido"))
			return
		}
		filter.GroupId = &groupID
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
	bills, total, err := h.PayableService.ListBills(ctx, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(bills, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetBill(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	bill, err := h.PayableService.GetBillByID(ctx, billID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillSingleResponse{Bill: bill})
}

func (h *Handler) UpdateBill(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.BillUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &payable.UpdateBillRequest{
		Description: body.Description,
		Notes:       body.Notes,
		Amount:      body.Amount,
		DueDate:     body.DueDate,
		PaymentDate: body.PaymentDate,
		Category:    body.Category,
		Creditor:    body.Creditor,
	}

	if body.Status != nil {
		status := payable.Status(*body.Status)
		req.Status = &status
	}

	if body.AccountId != nil {
		accountID, err := pkg.ParseULID(*body.AccountId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
			return
		}
		req.AccountId = &accountID
	}

	propagate := c.Query("propagate") == "true"

	ctx := c.Request.Context()
	if err := h.PayableService.UpdateBill(ctx, billID, propagate, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta a pagar atualizada com sucesso"})
}

func (h *Handler) DeleteBill(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	propagate := c.Query("propagate") == "true"

	ctx := c.Request.Context()
	if err := h.PayableService.DeleteBill(ctx, billID, propagate); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta a pagar removida com sucesso"})
}

func (h *Handler) PayBill(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.BillPayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &payable.PayBillRequest{
		PaymentDate: body.PaymentDate,
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
	bill, err := h.PayableService.PayBill(ctx, billID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillSingleResponse{Bill: bill})
}

func (h *Handler) ReverseBillPayment(c *gin.Context) {
	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	bill, err := h.PayableService.ReversePayment(ctx, billID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillSingleResponse{Bill: bill})
}
