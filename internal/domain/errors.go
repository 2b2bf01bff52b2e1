package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrQuotationNotFound = errors.New("cotización no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")

	// Rechazos advisory del ciclo de vida: no son fallos duros, solo indican
	// por qué la transición no procede. El handler los mapea a 409.
	ErrQuotationCanceled = errors.New("la cotización ya fue cancelada")
	ErrQuotationExpired  = errors.New("la cotización está vencida")
	ErrQuotationNotValid = errors.New("la cotización no está en estado válido")

	// ErrMalformedResponse: el backend respondió con un sobre irreconocible.
	// Se recupera localmente con lista/índice vacío; se registra para diagnóstico.
	ErrMalformedResponse = errors.New("respuesta del backend con forma inesperada")

	// ErrBackendUnavailable: fallo de transporte o 5xx del dealer-hub.
	// Se propaga sin reintentos; la política de retry pertenece al transporte.
	ErrBackendUnavailable = errors.New("backend dealer-hub no disponible")
)
