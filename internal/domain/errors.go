package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El cliente del API remoto traduce códigos HTTP a estos valores; los
// handlers los convierten en mensajes para el usuario.
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrConflicto             = errors.New("conflicto con el estado actual")
	ErrNoAutorizado          = errors.New("no autorizado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrServidorNoDisponible  = errors.New("servidor no disponible")
	ErrSesionAusente         = errors.New("no hay sesión iniciada")
	ErrRespuestaInvalida     = errors.New("respuesta del servidor inválida")
)
