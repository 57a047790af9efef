package dto

// LoginRequest is the email/password login body for teachers and admins.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AnonymousLoginRequest resumes an existing anonymous student identity.
type AnonymousLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

type AuthUser struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	Name string `json:"name,omitempty"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type AnonymousAuthResponse struct {
	Token         string `json:"token"`
	AnonymousCode string `json:"anonymousCode"`
	Role          string `json:"role"`
}
