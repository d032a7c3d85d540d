package domain

// Claims is the minimal identity fact set attached to an authenticated
// session: the subject (user id) and display name. Claims are derived by
// projection from a User record and are otherwise immutable for the
// session's lifetime; an explicit refresh re-reads the record and
// re-projects.
type Claims struct {
	Subject string `json:"subject"` // User.ID as a string
	Name    string `json:"name"`
}

// ExternalIdentity is the assertion produced after a successful external
// provider handshake. It is the input to the external-identity variant of
// authentication.
type ExternalIdentity struct {
	Provider   Provider
	ExternalID string
	Email      string
	Name       string
	Image      string
}
