// Package httputil centralizes JSON encoding and error translation for the
// HTTP transport so handlers stay thin.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "curio/pkg/domain-errors"
)

// statusByCode maps domain error codes to HTTP statuses. Codes absent from
// the map surface as 500 with the description withheld.
var statusByCode = map[dErrors.Code]int{
	dErrors.CodeAlreadyExists:     http.StatusConflict,
	dErrors.CodeNotFound:          http.StatusNotFound,
	dErrors.CodeNotOwner:          http.StatusForbidden,
	dErrors.CodeTransferFailed:    http.StatusPaymentRequired,
	dErrors.CodeBelowMinimum:      http.StatusUnprocessableEntity,
	dErrors.CodeLocked:            http.StatusConflict,
	dErrors.CodeAlreadyChallenged: http.StatusConflict,
	dErrors.CodeNoChallenge:       http.StatusNotFound,
	dErrors.CodeChallengeActive:   http.StatusConflict,
	dErrors.CodeInsufficientFunds: http.StatusUnprocessableEntity,
	dErrors.CodePollNotEnded:      http.StatusConflict,
	dErrors.CodeNotClosed:         http.StatusConflict,
	dErrors.CodeAlreadyClosed:     http.StatusConflict,
	dErrors.CodeAlreadyClaimed:    http.StatusConflict,
	dErrors.CodeUnresolvable:      http.StatusUnprocessableEntity,
	dErrors.CodeInvalidParameter:  http.StatusBadRequest,
	dErrors.CodeInvalidToken:      http.StatusBadRequest,
	dErrors.CodeInvalidInput:      http.StatusBadRequest,
	dErrors.CodeBadRequest:        http.StatusBadRequest,
	dErrors.CodeUnauthorized:      http.StatusUnauthorized,
	dErrors.CodeInternal:          http.StatusInternalServerError,
}

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into a JSON error response. Internal
// errors omit the description so infrastructure detail never leaks.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
		code = dErrors.CodeInternal
	}

	body := errorBody{Error: string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) {
			body.ErrorDescription = de.Message
		}
	}
	WriteJSON(w, status, body)
}

// Decode decodes a JSON request body into T, rejecting unknown fields.
func Decode[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body")
	}
	return v, nil
}
