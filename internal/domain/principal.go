package domain

// Principal is the caller identity resolved from a bearer token by the
// identity provider. It is never persisted by the gateway.
type Principal struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"user_metadata,omitempty"`
}
