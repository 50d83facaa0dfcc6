package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"

	FieldExpenseName = "name"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentBot      = "bot"
	ComponentStorage  = "storage"
	ComponentClassify = "classify"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
)
