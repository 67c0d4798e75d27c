package fault

// Kind tags a fault with its place in the taxonomy. Transport adapters map
// kinds to status codes; the taxonomy itself stays transport-agnostic.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindBadRequest
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindDomain
	KindRateLimit
	KindUnavailable
	KindCanceled
)

// Default codes stamped by the per-kind factories, overridable per fault.
const (
	CodeUnexpected   = "unexpected.error"
	CodeValidation   = "validation.error"
	CodeBadRequest   = "bad.request.error"
	CodeConflict     = "conflict.error"
	CodeNotFound     = "not.found.error"
	CodeUnauthorized = "unauthorized.error"
	CodeForbidden    = "forbidden.error"
	CodeDomain       = "domain.error"
	CodeRateLimit    = "rate.limit.error"
	CodeUnavailable  = "service.unavailable.error"
	CodeCanceled     = "operation.canceled.error"
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindDomain:
		return "domain"
	case KindRateLimit:
		return "rate_limit"
	case KindUnavailable:
		return "unavailable"
	case KindCanceled:
		return "canceled"
	default:
		return "unexpected"
	}
}

// DefaultCode returns the code a factory stamps for this kind.
func (k Kind) DefaultCode() string {
	switch k {
	case KindValidation:
		return CodeValidation
	case KindBadRequest:
		return CodeBadRequest
	case KindConflict:
		return CodeConflict
	case KindNotFound:
		return CodeNotFound
	case KindUnauthorized:
		return CodeUnauthorized
	case KindForbidden:
		return CodeForbidden
	case KindDomain:
		return CodeDomain
	case KindRateLimit:
		return CodeRateLimit
	case KindUnavailable:
		return CodeUnavailable
	case KindCanceled:
		return CodeCanceled
	default:
		return CodeUnexpected
	}
}
