package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers    = "app_user"
	TableTickets  = "tickets"
	TableComments = "comments"

	// Database drivers
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
