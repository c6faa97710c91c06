package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/contracts"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

func (h *Handler) CreateAccount(c *gin.Context) {
	var body contracts.AccountCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &account.CreateAccountRequest{
		Name: body.Name,
		Bank: body.Bank,
	}

	ctx := c.Request.Context()
	acc, err := h.AccountService.CreateAccount(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AccountCreateResponse{
		Message: "Conta bancária criada com sucesso",
		Account: acc,
	})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	accounts, total, err := h.AccountService.ListAccounts(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(accounts, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	acc, err := h.AccountService.GetAccountByID(ctx, accountID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountSingleResponse{Account: acc})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.AccountUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &account.UpdateAccountRequest{
		Name:     body.Name,
		Bank:     body.Bank,
		IsActive: body.IsActive,
	}

	ctx := c.Request.Context()
	if err := h.AccountService.UpdateAccount(ctx, accountID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta bancária atualizada com sucesso"})
}

// ReconcileAccount compara o saldo armazenado com a soma dos lançamentos não
// excluídos da conta no livro caixa.
func (h *Handler) ReconcileAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	result, err := h.AccountService.Reconcile(ctx, accountID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountReconciliationResponse{
		AccountId:     result.AccountId.String(),
		StoredBalance: result.StoredBalance,
		LedgerBalance: result.LedgerBalance,
		Difference:    result.Difference,
		Consistent:    result.Consistent,
	})
}
