package entity

import "time"

type BearerToken struct {
	Access           string    `json:"access_token"`
	Refresh          string    `json:"refresh_token"`
	TokenType        string    `json:"token_type"`
	IssuedAt         time.Time `json:"issued_at"`
	ExpiresIn        int       `json:"expires_in"`
	RefreshExpiresIn int       `json:"refresh_expires_in"`
	MembershipID     int64     `json:"membership_id"`
}

func (t BearerToken) ExpiresAt() time.Time {
	return t.IssuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

func (t BearerToken) RefreshExpiresAt() time.Time {
	return t.IssuedAt.Add(time.Duration(t.RefreshExpiresIn) * time.Second)
}

// Expired reports whether the access token is expired at now, with a minute
// of slack.
func (t BearerToken) Expired(now time.Time) bool {
	return !t.ExpiresAt().Add(-time.Minute).After(now)
}

// String never includes the tokens themselves.
func (t BearerToken) String() string {
	return "BearerToken{type=" + t.TokenType + ", expires=" + t.ExpiresAt().Format(time.RFC3339) + "}"
}
