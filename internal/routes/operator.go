package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/contracts"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

func (h *Handler) CreateOperator(c *gin.Context) {
	var body contracts.OperatorCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	accountID, err := pkg.ParseULID(body.AccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
		return
	}

	req := &operator.CreateProfileRequest{
		Name:                        body.Name,
		AccountId:                   accountID,
		DebitFeePercent:             body.DebitFeePercent,
		DebitTermDays:               body.DebitTermDays,
		CreditCashFeePercent:        body.CreditCashFeePercent,
		CreditCashTermDays:          body.CreditCashTermDays,
		CreditInstallmentFeePercent: body.CreditInstallmentFeePercent,
		CreditInstallmentTermDays:   body.CreditInstallmentTermDays,
		AutoAnticipation:            body.AutoAnticipation,
		AnticipationFeePercent:      body.AnticipationFeePercent,
	}

	ctx := c.Request.Context()
	profile, err := h.OperatorService.CreateProfile(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.OperatorCreateResponse{
		Message:  "Operadora cadastrada com sucesso",
		Operator: profile,
	})
}

func (h *Handler) ListOperators(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	profiles, total, err := h.OperatorService.ListProfiles(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(profiles, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetOperator(c *gin.Context) {
	operatorID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	profile, err := h.OperatorService.GetProfileByID(ctx, operatorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.OperatorSingleResponse{Operator: profile})
}

func (h *Handler) UpdateOperator(c *gin.Context) {
	operatorID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.OperatorUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &operator.UpdateProfileRequest{
		Name:                        body.Name,
		DebitFeePercent:             body.DebitFeePercent,
		DebitTermDays:               body.DebitTermDays,
		CreditCashFeePercent:        body.CreditCashFeePercent,
		CreditCashTermDays:          body.CreditCashTermDays,
		CreditInstallmentFeePercent: body.CreditInstallmentFeePercent,
		CreditInstallmentTermDays:   body.CreditInstallmentTermDays,
		AutoAnticipation:            body.AutoAnticipation,
		AnticipationFeePercent:      body.AnticipationFeePercent,
		IsActive:                    body.IsActive,
	}

	if body.AccountId != nil {
		accountID, err := pkg.ParseULID(*body.AccountId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato invalido"))
			return
		}
		req.AccountId = &accountID
	}

	ctx := c.Request.Context()
	if err := h.OperatorService.UpdateProfile(ctx, operatorID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Operadora atualizada com sucesso"})
}

func (h *Handler) DeleteOperator(c *gin.Context) {
	operatorID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.OperatorService.DeleteProfile(ctx, operatorID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Operadora removida com sucesso"})
}
