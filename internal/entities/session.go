package entities

// Session is the bearer credential pair returned by the token endpoint.
// Both fields are set together on login and cleared together on logout.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.TokenType == ""
}
