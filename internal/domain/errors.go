package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnsupported        = errors.New("operación no soportada para este recurso")
)

// Errores del colaborador de IA.
var (
	ErrAIUnavailable = errors.New("servicio de IA no configurado")
	ErrAIFailed      = errors.New("fallo en la llamada al servicio de IA")
)
