package account

/* account */

type LoginRequest struct {
	TenantID int    `json:"tenant_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required" minLength:"8"`
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Message string `json:"message"`
}

type ModifyUserRequest struct {
	Nickname *string `json:"nickname" validate:"omitempty,min=1,max=128"`
}
