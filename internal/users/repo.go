package users

import (
	"context"

	"github.com/carebridge/eldercare-backend/pkg/db/models"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByUsername retrieves the user matching the provided username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameAndRole retrieves the user matching both username and role.
// Role is part of the login match key.
func (r *Repository) FindByUsernameAndRole(ctx context.Context, username string, role enums.Role) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ? AND role = ?", username, role).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by its identifier.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListEldersByGuardian returns every elder whose guardian_id points at the
// given guardian, in storage order.
func (r *Repository) ListEldersByGuardian(ctx context.Context, guardianID int64) ([]models.User, error) {
	var elders []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND guardian_id = ?", enums.RoleElder, guardianID).
		Find(&elders).Error; err != nil {
		return nil, err
	}
	return elders, nil
}

// UpdatePassword overwrites the stored password hash for the username.
func (r *Repository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		UpdateColumn("password_hash", passwordHash).Error
}
