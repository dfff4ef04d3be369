package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusSentinels maps the HTTP status codes the vault server is known to
// return onto the package sentinel errors, so callers can branch with
// errors.Is instead of inspecting status codes.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error
// carrying the response body. Returns nil for successful responses.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if sentinel, ok := statusSentinels[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	return fmt.Errorf("http %d: %s", code, body)
}
