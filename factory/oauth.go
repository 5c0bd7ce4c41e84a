package factory

import (
	"encoding/json"
	"time"

	"github.com/kofuk/bungie/entity"
)

// DeserializeBearerToken reads a token endpoint response. The token endpoint
// does not use the envelope, so raw is the whole body.
func DeserializeBearerToken(raw json.RawMessage, issuedAt time.Time) (entity.BearerToken, error) {
	return decodeWith(raw, func(r *reader, o object) entity.BearerToken {
		return entity.BearerToken{
			Access:           o.str("access_token"),
			Refresh:          o.str("refresh_token"),
			TokenType:        o.str("token_type"),
			IssuedAt:         issuedAt.UTC(),
			ExpiresIn:        o.int("expires_in"),
			RefreshExpiresIn: o.int("refresh_expires_in"),
			MembershipID:     r.id(o, "membership_id"),
		}
	})
}
