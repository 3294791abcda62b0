package repository

import (
	"context"

	"taskdesk/internal/domain/entity"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	GetByID(ctx context.Context, id string) (*entity.Owner, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Owner, error)
	Update(ctx context.Context, owner *entity.Owner) error
	List(ctx context.Context) ([]*entity.Owner, error)
}
