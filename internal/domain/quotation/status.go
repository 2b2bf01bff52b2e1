package quotation

import (
	"time"

	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
)

// EligibilityReason clasificación advisory de por qué una transición no
// procede. Sirve para elegir el mensaje al usuario; no es un fallo duro.
type EligibilityReason string

const (
	ReasonEligible        EligibilityReason = ""
	ReasonAlreadyCanceled EligibilityReason = "ALREADY_CANCELED"
	ReasonExpired         EligibilityReason = "EXPIRED"
	ReasonNotValid        EligibilityReason = "NOT_VALID"
)

// IsCanceled reconoce ambas grafías históricas del backend.
func IsCanceled(status string) bool {
	return status == entity.StatusCanceled || status == entity.StatusCancelled
}

// CanCancel decide si la cotización admite cancelación en este momento.
// Bloquean: status canceled/cancelled, o fecha de vigencia estrictamente
// anterior a now. Todo lo demás es cancelable, incluido status ausente
// (se trata como valid). El gate se evalúa sobre estado recién consultado,
// nunca sobre una decisión cacheada.
func CanCancel(q entity.Quotation, now time.Time) bool {
	ok, _ := CancelEligibility(q, now)
	return ok
}

// CancelEligibility como CanCancel pero reportando la razón del rechazo.
func CancelEligibility(q entity.Quotation, now time.Time) (bool, EligibilityReason) {
	if IsCanceled(q.Status) {
		return false, ReasonAlreadyCanceled
	}
	if q.ValidUntil != nil && q.ValidUntil.Before(now) {
		return false, ReasonExpired
	}
	return true, ReasonEligible
}

// CanConvert decide si la cotización admite conversión a orden de venta.
// Solo el status literal "valid" convierte: un status ausente NO cuenta.
// La asimetría con CanCancel es deliberada; convertir es una transición de
// mayor riesgo y exige un estado válido confirmado por el backend.
func CanConvert(q entity.Quotation) bool {
	return q.Status == entity.StatusValid
}

// ConvertEligibility como CanConvert pero reportando la razón del rechazo.
func ConvertEligibility(q entity.Quotation) (bool, EligibilityReason) {
	if CanConvert(q) {
		return true, ReasonEligible
	}
	if IsCanceled(q.Status) {
		return false, ReasonAlreadyCanceled
	}
	if q.Status == entity.StatusExpired {
		return false, ReasonExpired
	}
	return false, ReasonNotValid
}
