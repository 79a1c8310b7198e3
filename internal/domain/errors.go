package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son locales y
// recuperables: ninguno debe terminar el proceso.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrItemNotFound = errors.New("artículo no encontrado")
	ErrDuplicateSKU = errors.New("el SKU ya está registrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrDeviceAccess = errors.New("sin acceso a cámaras")
)
