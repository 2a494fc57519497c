package users

import (
	"github.com/carebridge/eldercare-backend/pkg/db/models"
	"github.com/carebridge/eldercare-backend/pkg/enums"
)

// CreateUserDTO carries the fields captured at signup.
type CreateUserDTO struct {
	FullName     string
	Age          *int
	Username     string
	Phone        *string
	PasswordHash string
	Role         enums.Role
	GuardianID   *int64
}

// ToModel maps the DTO onto the persistence model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		FullName:     d.FullName,
		Age:          d.Age,
		Username:     d.Username,
		Phone:        d.Phone,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		GuardianID:   d.GuardianID,
	}
}

// ProfileDTO is the view projection of a user's own record. The password
// hash is deliberately absent.
type ProfileDTO struct {
	ID       int64
	FullName string
	Age      *int
	Username string
	Phone    *string
	Role     enums.Role
}

// ElderDTO is the projection a guardian sees in the elder listing.
type ElderDTO struct {
	FullName string
	Age      *int
	Phone    *string
}

// ProfileFromModel strips persistence-only fields from the model.
func ProfileFromModel(user *models.User) *ProfileDTO {
	if user == nil {
		return nil
	}
	return &ProfileDTO{
		ID:       user.ID,
		FullName: user.FullName,
		Age:      user.Age,
		Username: user.Username,
		Phone:    user.Phone,
		Role:     user.Role,
	}
}

// EldersFromModels projects elder rows for the guardian listing.
func EldersFromModels(elders []models.User) []ElderDTO {
	out := make([]ElderDTO, 0, len(elders))
	for _, elder := range elders {
		out = append(out, ElderDTO{
			FullName: elder.FullName,
			Age:      elder.Age,
			Phone:    elder.Phone,
		})
	}
	return out
}
