package operator

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Service struct {
	Repository     Repository
	AccountService *account.Service
}

func NewService(repo Repository, accountSvc *account.Service) *Service {
	return &Service{
		Repository:     repo,
		AccountService: accountSvc,
	}
}

func (s *Service) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*Profile, error) {
	if err := s.validateRates(req.DebitFeePercent, req.CreditCashFeePercent, req.CreditInstallmentFeePercent, req.AnticipationFeePercent); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	if req.AutoAnticipation && req.AnticipationFeePercent == nil {
		return nil, appErrors.NewValidationError("anticipation_fee_percent", "é obrigatório quando a antecipação automática está ligada")
	}

	if _, err := s.AccountService.GetAccountByID(ctx, req.AccountId); err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &Profile{
		Id:                          pkg.GenerateULIDObject(),
		Name:                        name,
		AccountId:                   req.AccountId,
		DebitFeePercent:             req.DebitFeePercent,
		DebitTermDays:               req.DebitTermDays,
		CreditCashFeePercent:        req.CreditCashFeePercent,
		CreditCashTermDays:          req.CreditCashTermDays,
		CreditInstallmentFeePercent: req.CreditInstallmentFeePercent,
		CreditInstallmentTermDays:   req.CreditInstallmentTermDays,
		AutoAnticipation:            req.AutoAnticipation,
		AnticipationFeePercent:      req.AnticipationFeePercent,
		IsActive:                    true,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}

	if err := s.Repository.Create(ctx, profile); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, profileID ulid.ULID, req *UpdateProfileRequest) error {
	profile, err := s.GetProfileByID(ctx, profileID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "não pode ser vazio")
		}
		profile.Name = name
	}

	if req.AccountId != nil {
		if _, err := s.AccountService.GetAccountByID(ctx, *req.AccountId); err != nil {
			return err
		}
		profile.AccountId = *req.AccountId
	}

	if err := s.validateRates(req.DebitFeePercent, req.CreditCashFeePercent, req.CreditInstallmentFeePercent, req.AnticipationFeePercent); err != nil {
		return err
	}

	if req.DebitFeePercent != nil {
		profile.DebitFeePercent = req.DebitFeePercent
	}
	if req.DebitTermDays != nil {
		if *req.DebitTermDays < 0 {
			return appErrors.NewValidationError("debit_term_days", "deve ser maior ou igual a zero")
		}
		profile.DebitTermDays = *req.DebitTermDays
	}
	if req.CreditCashFeePercent != nil {
		profile.CreditCashFeePercent = req.CreditCashFeePercent
	}
	if req.CreditCashTermDays != nil {
		if *req.CreditCashTermDays < 0 {
			return appErrors.NewValidationError("credit_cash_term_days", "deve ser maior ou igual a zero")
		}
		profile.CreditCashTermDays = *req.CreditCashTermDays
	}
	if req.CreditInstallmentFeePercent != nil {
		profile.CreditInstallmentFeePercent = req.CreditInstallmentFeePercent
	}
	if req.CreditInstallmentTermDays != nil {
		if *req.CreditInstallmentTermDays < 0 {
			return appErrors.NewValidationError("credit_installment_term_days", "deve ser maior ou igual a zero")
		}
		profile.CreditInstallmentTermDays = *req.CreditInstallmentTermDays
	}
	if req.AutoAnticipation != nil {
		profile.AutoAnticipation = *req.AutoAnticipation
	}
	if req.AnticipationFeePercent != nil {
		profile.AnticipationFeePercent = req.AnticipationFeePercent
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if profile.AutoAnticipation && profile.AnticipationFeePercent == nil {
		return appErrors.NewValidationError("anticipation_fee_percent", "é obrigatório quando a antecipação automática está ligada")
	}

	profile.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, profile); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteProfile(ctx context.Context, profileID ulid.ULID) error {
	if _, err := s.GetProfileByID(ctx, profileID); err != nil {
		return err
	}

	return s.Repository.Delete(ctx, profileID)
}

func (s *Service) GetProfileByID(ctx context.Context, profileID ulid.ULID) (*Profile, error) {
	profile, err := s.Repository.GetById(ctx, profileID)
	if err != nil {
		return nil, appErrors.ErrOperatorNotFound.WithError(err)
	}

	return profile, nil
}

func (s *Service) ListProfiles(ctx context.Context, pagination *pkg.PaginationParams) ([]*Profile, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) validateRates(rates ...*decimal.Decimal) error {
	hundred := decimal.NewFromInt(100)
	for _, rate := range rates {
		if rate == nil {
			continue
		}
		if rate.IsNegative() || rate.GreaterThan(hundred) {
			return appErrors.NewValidationError("fee_percent", "deve estar entre 0 e 100")
		}
	}
	return nil
}

type CreateProfileRequest struct {
	Name                        string
	AccountId                   ulid.ULID
	DebitFeePercent             *decimal.Decimal
	DebitTermDays               int
	CreditCashFeePercent        *decimal.Decimal
	CreditCashTermDays          int
	CreditInstallmentFeePercent *decimal.Decimal
	CreditInstallmentTermDays   int
	AutoAnticipation            bool
	AnticipationFeePercent      *decimal.Decimal
}

type UpdateProfileRequest struct {
	Name                        *string
	AccountId                   *ulid.ULID
	DebitFeePercent             *decimal.Decimal
	DebitTermDays               *int
	CreditCashFeePercent        *decimal.Decimal
	CreditCashTermDays          *int
	CreditInstallmentFeePercent *decimal.Decimal
	CreditInstallmentTermDays   *int
	AutoAnticipation            *bool
	AnticipationFeePercent      *decimal.Decimal
	IsActive                    *bool
}
