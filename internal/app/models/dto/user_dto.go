package dto

import "github.com/learnsetu/lms-backend/internal/app/models"

// UserListResponse is the admin dashboard user listing
type UserListResponse struct {
	Success bool          `json:"success" example:"true"`
	Total   int           `json:"total" example:"3"`
	Users   []models.User `json:"users"`
}
