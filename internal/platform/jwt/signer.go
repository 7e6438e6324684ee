package jwt

// Claims carries the verified identity of an API caller.
type Claims struct {
	Subject string
}

// Signer signs and verifies API access tokens.
type Signer interface {
	Sign(subject string) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
