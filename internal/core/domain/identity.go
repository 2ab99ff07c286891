package domain

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	// Subject is the stable user identifier from the token's "sub" claim.
	Subject string
	// Username is the human-readable name from "preferred_username",
	// empty when the token does not carry one.
	Username string
}
