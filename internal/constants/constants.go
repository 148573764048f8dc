package constants

const (
	SessionCookieName = "collab_session"

	// Session keys
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyUserType = "user_type"

	// Gin context keys
	ContextKeyUserID    = "user_id"
	ContextKeyIdentity  = "identity"
	ContextKeyRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"
)
