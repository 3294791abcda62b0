package repository

import (
	"context"

	"taskdesk/internal/domain/entity"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	GetByUsername(ctx context.Context, username string) (*entity.Employee, error)
	GetBySetupToken(ctx context.Context, token string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, department string, limit, offset int) ([]*entity.Employee, int64, error)
}
