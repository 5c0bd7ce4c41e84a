package rest

import (
	"bytes"
	"encoding/json"
)

// Envelope wraps every Bungie.net platform response.
type Envelope struct {
	Response           json.RawMessage   `json:"Response"`
	ErrorCode          int               `json:"ErrorCode"`
	ThrottleSeconds    int               `json:"ThrottleSeconds"`
	ErrorStatus        string            `json:"ErrorStatus"`
	Message            string            `json:"Message"`
	MessageData        map[string]string `json:"MessageData"`
	DetailedErrorTrace string            `json:"DetailedErrorTrace"`
}

// parseEnvelope reports false when body is not an envelope at all, such as
// the HTML pages served by the edge during outages.
func parseEnvelope(body []byte) (Envelope, bool) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, false
	}
	if env.ErrorCode == 0 && env.ErrorStatus == "" {
		return Envelope{}, false
	}
	if len(env.Response) == 0 || bytes.Equal(env.Response, []byte("null")) {
		env.Response = json.RawMessage("{}")
	}
	return env, true
}
