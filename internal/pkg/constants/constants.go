package constants

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyUserID    = "user_id"
	CtxKeyUserRole  = "user_role"
	CtxKeyRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"
)

// Viper keys.
const (
	ViperHTTPAddr     = "http.addr"
	ViperPostgresDSN  = "postgres.dsn"
	ViperSecretKey    = "auth.secret"
	ViperEnv          = "app.env"
	ViperCORSOrigins  = "http.cors_origins"
	ViperShutdownWait = "http.shutdown_wait"
)
