// FILE: internal/dto/admin_dto.go
package dto

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
