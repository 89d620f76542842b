package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/imroc/req/v3"
	"github.com/tidwall/gjson"
	"google.golang.org/api/googleapi"

	"todoremote/internal/service"
)

// checkResponse turns a transport error or a non-2xx response into a
// *service.NetworkError.
func checkResponse(op string, resp *req.Response, err error) error {
	if err != nil {
		return &service.NetworkError{Op: op, Err: wrapError(err)}
	}
	if resp.IsSuccessState() {
		return nil
	}

	body := resp.Bytes()
	apiErr := &googleapi.Error{
		Code:    resp.StatusCode,
		Message: errorMessage(body),
		Body:    string(body),
		Header:  resp.Header,
	}
	return &service.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: wrapError(apiErr)}
}

// checkTaskResponse is checkResponse for requests addressing one task: a
// 404 there means the task does not exist. Elsewhere a 404 is a
// misconfigured server URL and stays a plain status failure.
func checkTaskResponse(op string, resp *req.Response, err error) error {
	err = checkResponse(op, resp, err)
	var netErr *service.NetworkError
	if errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound {
		netErr.Err = fmt.Errorf("%w: %w", service.ErrTaskNotFound, netErr.Err)
	}
	return err
}

// errorMessage extracts a human readable message from an error body.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}
	for _, path := range []string{"error.message", "message", "error"} {
		if r := gjson.GetBytes(body, path); r.Type == gjson.String {
			return r.String()
		}
	}
	return ""
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("token expired or revoked (run: todoremote login): %w", err)
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("request timed out: %w", err)
	}

	return err
}
