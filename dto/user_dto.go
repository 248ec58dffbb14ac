package dto

import (
	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type User struct {
	UserId         string      `json:"user_id"`
	Email          string      `json:"email"`
	Role           string      `json:"role"`
	OrganizationId string      `json:"organization_id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	AvatarUrl      null.String `json:"avatar_url"`
}

func AdaptUserDto(user models.User) User {
	return User{
		UserId:         string(user.UserId),
		Email:          user.Email,
		Role:           user.Role.String(),
		OrganizationId: user.OrganizationId,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		AvatarUrl:      null.StringFromPtr(user.AvatarUrl),
	}
}
