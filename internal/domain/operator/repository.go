package operator

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, profileID ulid.ULID) error
	GetById(ctx context.Context, profileID ulid.ULID) (*Profile, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Profile, int64, error)
}
