package domain

// TokenScope discriminates the purpose a JWT was issued for. Every token
// type carries a scope claim and every decode path checks it, so a token
// issued for one purpose can never be redeemed for another.
type TokenScope string

const (
	ScopeAccess            TokenScope = "access_token"
	ScopeRefresh           TokenScope = "refresh_token"
	ScopeEmailConfirmation TokenScope = "email_confirmation"
	ScopePasswordReset     TokenScope = "password_reset"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
