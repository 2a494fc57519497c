package users

import (
	"context"
	"errors"

	"github.com/carebridge/eldercare-backend/pkg/db"
	pkgerrors "github.com/carebridge/eldercare-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the signed-in user views.
type Service interface {
	Profile(ctx context.Context, userID int64) (*ProfileDTO, error)
	EldersOf(ctx context.Context, guardianID int64) ([]ElderDTO, error)
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	DB *db.Client
}

type service struct {
	db *db.Client
}

// NewService constructs a users service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{db: params.DB}, nil
}

// Profile loads the caller's own record, minus credential fields.
func (s *service) Profile(ctx context.Context, userID int64) (*ProfileDTO, error) {
	repo := NewRepository(s.db.DB())

	user, err := repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account no longer exists")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return ProfileFromModel(user), nil
}

// EldersOf lists the elders registered under the guardian. An empty care
// list is a normal result, not an error.
func (s *service) EldersOf(ctx context.Context, guardianID int64) ([]ElderDTO, error) {
	repo := NewRepository(s.db.DB())

	elders, err := repo.ListEldersByGuardian(ctx, guardianID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list elders")
	}
	return EldersFromModels(elders), nil
}
