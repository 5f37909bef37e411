package dto

import (
	userModel "taskdesk/internal/domains/user/model"
	gModel "taskdesk/shared/model"
	"taskdesk/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		Email:    r.Email,
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Username,
			ModifiedBy: r.Username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login; registration starts
// a session too, the boundary only has to set the cookie.
type AuthResponse struct {
	Token    string `json:"-"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
