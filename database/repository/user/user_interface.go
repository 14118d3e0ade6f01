package userRepo

import "mindhaven/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(id string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
}
