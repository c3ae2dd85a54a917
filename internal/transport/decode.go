package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/draftkit/draftboard/pkg/errors"
)

// DecodeResponse decodes a JSON response body into target, translating
// non-200 statuses into APIErrors. The body is always closed.
func DecodeResponse(resp *http.Response, feed string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Feed:       feed,
			StatusCode: resp.StatusCode,
			Endpoint:   resp.Request.URL.String(),
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", feed+" response", err)
	}
	return nil
}
