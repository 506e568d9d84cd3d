package interfaces

// ITokenIssuer mints access tokens for authenticated staff. Verification
// lives in the HTTP middleware; the usecase layer only issues.
type ITokenIssuer interface {
	Issue(userID string, role string) (string, error)
}
