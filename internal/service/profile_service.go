package service

import (
	"accounts-be/internal/entities"
	"accounts-be/internal/models"
	"accounts-be/internal/repository"
)

// ProfileService defines the interface for profile business logic
type ProfileService interface {
	UpdateProfile(user *entities.User, req *models.UpdateProfileRequest) (*entities.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// UpdateProfile applies a partial update to the authenticated user.
// Only name and bio are updatable; fields missing from the request are left
// untouched. An empty request succeeds and returns the current profile.
func (s *profileService) UpdateProfile(user *entities.User, req *models.UpdateProfileRequest) (*entities.User, error) {
	// Nothing to change: skip the write entirely so updated_at stays put
	if req.Name == nil && req.Bio == nil {
		return s.userRepo.FindByID(user.ID)
	}
	return s.userRepo.UpdateProfile(user.ID, req.Name, req.Bio)
}
