package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"salesdesk/internal/core/apperror"
)

// envelopeKeys are the wrapper keys the backend uses around records and lists.
var envelopeKeys = []string{"data", "result"}

// decodeRecord decodes a record that may come bare or wrapped, e.g.
// {"message":"...","nota":{...}}. An empty body leaves out untouched.
func decodeRecord(body []byte, out any, keys ...string) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil
	}

	if body[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return apperror.NewUnavailable(fmt.Errorf("decode backend response: %w", err))
		}
		if _, bare := fields["id"]; !bare {
			for _, k := range append(keys, envelopeKeys...) {
				if raw, ok := fields[k]; ok && len(raw) > 0 && raw[0] == '{' {
					body = raw
					break
				}
			}
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.NewUnavailable(fmt.Errorf("decode backend response: %w", err))
	}
	return nil
}

// decodeList decodes a JSON array that may come bare or wrapped in an envelope.
func decodeList(body []byte, out any, keys ...string) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil
	}

	if body[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return apperror.NewUnavailable(fmt.Errorf("decode backend list: %w", err))
		}
		found := false
		for _, k := range append(keys, envelopeKeys...) {
			if raw, ok := fields[k]; ok && len(raw) > 0 && raw[0] == '[' {
				body = raw
				found = true
				break
			}
		}
		if !found {
			return apperror.NewUnavailable(fmt.Errorf("decode backend list: no array in response"))
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.NewUnavailable(fmt.Errorf("decode backend list: %w", err))
	}
	return nil
}

// errorBody is the backend's error shape; either field may carry the text.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// mapStatus turns a backend error answer into an AppError.
// 404 becomes NOT_FOUND so lookups can treat it as a miss.
func mapStatus(op, path string, status int, body []byte) *apperror.AppError {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	message := strings.TrimSpace(eb.Message)
	if message == "" {
		message = strings.TrimSpace(eb.Error)
	}

	if status == http.StatusNotFound {
		err := apperror.NewNotFound(op, path)
		if message != "" {
			err.Message = message
		}
		return err
	}
	return apperror.NewBackendRejected(status, message).WithDetail("operation", op)
}
