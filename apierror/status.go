package apierror

import "net/http"

// Envelope error codes the client cares about. Everything else is classified
// by ErrorStatus, which is stable across API revisions.
const (
	CodeSuccess        = 1
	CodeSystemDisabled = 5
)

var statusKinds = map[string]Kind{
	"DestinyInvalidMembershipType":         KindMembershipTypeError,
	"InvalidMembershipType":                KindMembershipTypeError,
	"DestinyMembershipTypeMismatch":        KindMembershipTypeError,
	"UserCannotResolveCentralAccount":      KindUserNotFound,
	"UserCannotFindRequestedUser":          KindUserNotFound,
	"UserNotFound":                         KindUserNotFound,
	"ClanNotFound":                         KindClanNotFound,
	"GroupNotFound":                        KindClanNotFound,
	"DestinyCharacterNotFound":             KindCharacterNotFound,
	"DestinyPGCRNotFound":                  KindActivityNotFound,
	"DestinyActivityNotFound":              KindActivityNotFound,
	"DestinyItemNotFound":                  KindItemNotFound,
	"DestinyDefinitionNotFound":            KindItemNotFound,
	"DestinyAccountNotFound":               KindMembershipNotFound,
	"DestinyMembershipNotFound":            KindMembershipNotFound,
	"WebAuthRequired":                      KindUnauthorized,
	"WebAuthModuleAsyncFailed":             KindUnauthorized,
	"AccessTokenHasExpired":                KindUnauthorized,
	"AuthorizationCodeInvalid":             KindUnauthorized,
	"AuthorizationRecordExpired":           KindUnauthorized,
	"AuthorizationRecordRevoked":           KindUnauthorized,
	"InvalidRefreshToken":                  KindUnauthorized,
	"RefreshTokenNotYetValid":              KindUnauthorized,
	"AccessNotPermittedByApplicationScope": KindForbidden,
	"DestinyPrivacyRestriction":            KindForbidden,
	"ApiKeyMissingFromRequest":             KindForbidden,
	"ApiInvalidOrExpiredKey":               KindForbidden,
	"InvalidParameters":                    KindBadRequest,
	"ParameterParseFailure":                KindBadRequest,
	"ParameterInvalidRange":                KindBadRequest,
	"BadRequest":                           KindBadRequest,
}

var throttleStatuses = map[string]bool{
	"ThrottleLimitExceeded":              true,
	"ThrottleLimitExceededMinutes":       true,
	"ThrottleLimitExceededMomentarily":   true,
	"ThrottleLimitExceededSeconds":       true,
	"PerEndpointRequestThrottleExceeded": true,
	"PerApplicationThrottleExceeded":     true,
	"PerUserThrottleExceeded":            true,
	"DestinyThrottledByGameServer":       true,
}

var unavailableStatuses = map[string]bool{
	"SystemDisabled":                  true,
	"DestinyDirectBabelClientTimeout": true,
}

// Verdict is the outcome of classifying one HTTP response.
type Verdict int

const (
	VerdictSuccess Verdict = iota
	VerdictRetry
	VerdictFail
)

// Classify decides what to do with a response carrying the given HTTP status
// and envelope. The returned kind is meaningful for VerdictRetry (the kind to
// report once retries run out) and VerdictFail.
func Classify(httpStatus, code int, status string) (Verdict, Kind) {
	// Membership type mismatches come back with arbitrary codes, so the
	// status string is checked before anything else.
	if kind, ok := statusKinds[status]; ok && kind == KindMembershipTypeError {
		return VerdictFail, kind
	}

	if code == CodeSuccess && httpStatus >= 200 && httpStatus < 300 {
		return VerdictSuccess, KindUnknown
	}

	if throttleStatuses[status] || httpStatus == http.StatusTooManyRequests {
		return VerdictRetry, KindRateLimited
	}
	if unavailableStatuses[status] || (status == "" && code == CodeSystemDisabled) {
		return VerdictRetry, KindUpstreamUnavailable
	}

	if kind, ok := statusKinds[status]; ok {
		return VerdictFail, kind
	}

	switch {
	case httpStatus == http.StatusUnauthorized:
		return VerdictFail, KindUnauthorized
	case httpStatus == http.StatusForbidden:
		return VerdictFail, KindForbidden
	case httpStatus == http.StatusNotFound:
		return VerdictFail, KindNotFound
	case httpStatus >= 500:
		return VerdictRetry, KindUpstreamUnavailable
	case httpStatus == http.StatusBadRequest:
		return VerdictFail, KindBadRequest
	}

	return VerdictFail, KindInternalServerError
}
