package accounts

import (
	"context"
	"errors"
	"strings"

	"github.com/carebridge/eldercare-backend/internal/users"
	"github.com/carebridge/eldercare-backend/pkg/config"
	"github.com/carebridge/eldercare-backend/pkg/db"
	"github.com/carebridge/eldercare-backend/pkg/db/models"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	pkgerrors "github.com/carebridge/eldercare-backend/pkg/errors"
	"github.com/carebridge/eldercare-backend/pkg/security"
	"gorm.io/gorm"
)

// Inline messages rendered back on the forms. The exact wording is part of
// the observable contract.
const (
	msgUsernameTaken      = "Username already exists"
	msgGuardianNotFound   = "Guardian username not found"
	msgInvalidCredentials = "Invalid Credentials"
	msgUsernameNotFound   = "Username not found!"
)

// SignupRequest carries the account fields captured on the signup form.
type SignupRequest struct {
	FullName         string
	Age              *int
	Username         string
	Phone            *string
	Password         string
	Role             enums.Role
	GuardianUsername string
}

// LoginRequest is the login form triple; role is part of the match key.
type LoginRequest struct {
	Username string
	Password string
	Role     enums.Role
}

// ResetPasswordRequest overwrites the password for an existing username.
type ResetPasswordRequest struct {
	Username    string
	NewPassword string
}

// Service defines the account lifecycle behavior needed by the controllers.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) error
	Login(ctx context.Context, req LoginRequest) (*models.User, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type service struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewService constructs an accounts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Signup creates a new account. For elders the guardian username must
// resolve to an existing guardian; its id is captured once at creation and
// never mutated afterward.
func (s *service) Signup(ctx context.Context, req SignupRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if !req.Role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := users.NewRepository(tx)

		if _, err := repo.FindByUsername(ctx, username); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, msgUsernameTaken)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check username")
		}

		var guardianID *int64
		if req.Role == enums.RoleElder {
			guardian, err := repo.FindByUsernameAndRole(ctx, strings.TrimSpace(req.GuardianUsername), enums.RoleGuardian)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation, msgGuardianNotFound)
			}
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve guardian")
			}
			guardianID = &guardian.ID
		}

		if _, err := repo.Create(ctx, users.CreateUserDTO{
			FullName:     req.FullName,
			Age:          req.Age,
			Username:     username,
			Phone:        req.Phone,
			PasswordHash: passwordHash,
			Role:         req.Role,
			GuardianID:   guardianID,
		}); err != nil {
			// Concurrent signups can pass the pre-check; the unique index
			// is the backstop and reports the same message.
			if db.IsUniqueViolation(err, "idx_users_username") {
				return pkgerrors.New(pkgerrors.CodeConflict, msgUsernameTaken)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
}

// Login authenticates the username/password/role triple. Wrong username,
// wrong password and wrong role are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	repo := users.NewRepository(s.db.DB())

	user, err := repo.FindByUsernameAndRole(ctx, strings.TrimSpace(req.Username), req.Role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, msgInvalidCredentials)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, msgInvalidCredentials)
	}

	return user, nil
}

// ResetPassword overwrites the stored credential for an existing username.
// The flow is deliberately unauthenticated, matching the observed recovery
// behavior.
func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	repo := users.NewRepository(s.db.DB())

	username := strings.TrimSpace(req.Username)
	if _, err := repo.FindByUsername(ctx, username); errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, msgUsernameNotFound)
	} else if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	passwordHash, err := security.HashPassword(req.NewPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	if err := repo.UpdatePassword(ctx, username, passwordHash); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update password")
	}
	return nil
}
