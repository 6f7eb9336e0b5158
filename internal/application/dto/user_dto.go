package dto

import "github.com/jhoicas/subguard-api/internal/domain/entity"

// SignUpRequest registro en el modo de autenticación simulado.
type SignUpRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	BusinessName string `json:"business_name" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y usuario de la sesión.
type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// ForgotPasswordRequest solicitud del código de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse respuesta simulada: el código se "envía" al correo.
type ForgotPasswordResponse struct {
	Sent  bool   `json:"sent"`
	Email string `json:"email"`
}

// ResetPasswordRequest verificación del código de 4 dígitos y nueva contraseña.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=4"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ProfileUpdateRequest actualización del perfil de la sesión.
type ProfileUpdateRequest struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
}
