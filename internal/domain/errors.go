package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrProductoAgotado       = errors.New("producto agotado")
	ErrLimiteCantidad        = errors.New("límite máximo de cantidad alcanzado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrConfirmacionRequerida = errors.New("se requiere confirmación del usuario")
)
