package entity

// AuthTokens is the pair handed out by login and refresh.
// Only RefreshToken is persisted, on the owning User.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}
