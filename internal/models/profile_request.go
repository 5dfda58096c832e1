package models

// UpdateProfileRequest represents the request body for PATCH /me.
// Both fields are optional; nil means "leave unchanged".
// Email, id, password and timestamps are deliberately not present here,
// so they cannot be reached from the profile-update path at all.
type UpdateProfileRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=120"`
	Bio  *string `json:"bio" binding:"omitempty,max=500"`
}
