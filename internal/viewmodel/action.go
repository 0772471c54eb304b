package viewmodel

import (
	"errors"

	"storefront/internal/client"
	"storefront/internal/model"
)

// refusal extracts the message of an upstream refusal. Temporary failures are
// not refusals.
func refusal(err error, fallback string) (string, bool) {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || client.Temporary(err) {
		return "", false
	}
	if apiErr.Message == "" {
		return fallback, true
	}
	return apiErr.Message, true
}

// rejected turns an upstream refusal of a signed-in action into a failed result
// carrying the upstream message and a nil error. A 401 means the session is gone
// and, like temporary failures, keeps the error.
func rejected[T any](err error, fallback string) (model.ActionResult, T, error) {
	var zero T
	if msg, ok := refusal(err, fallback); ok && !errors.Is(err, client.ErrUnauthorized) {
		return model.ActionResult{Message: msg}, zero, nil
	}
	return model.ActionResult{Message: fallback}, zero, err
}

// failed is rejected for actions without a payload.
func failed(err error, fallback string) (model.ActionResult, error) {
	res, _, err := rejected[struct{}](err, fallback)
	return res, err
}

// signInRejected is rejected for login and register, where a 401 is a refused
// credential and not an expired session.
func signInRejected(err error, fallback string) (model.ActionResult, *model.AuthResponse, error) {
	if msg, ok := refusal(err, fallback); ok {
		return model.ActionResult{Message: msg}, nil, nil
	}
	return model.ActionResult{Message: fallback}, nil, err
}

// unauthorized keeps err only when it reports an expired session.
func unauthorized(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	return nil
}
