package dto

// RegisterDTO creates an account. Name and county feed the profile only;
// neither grants real-name display by itself.
type RegisterDTO struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Name     *string `json:"name,omitempty"`
	County   *string `json:"county,omitempty"`
}

// CredentialDTO is the login payload.
type CredentialDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordDTO rotates the password of the authenticated user.
type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// AuthResultDTO is returned by register and login.
type AuthResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
