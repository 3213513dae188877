package adapter

import (
	"net/http"
	"strings"
)

func mapHTTPError(statusCode int, rawBody []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	err := &HTTPError{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(rawBody)),
	}

	switch statusCode {
	case http.StatusBadRequest:
		err.kind = ErrBadRequest
	case http.StatusUnauthorized:
		err.kind = ErrUnauthorized
	case http.StatusForbidden:
		err.kind = ErrForbidden
	case http.StatusNotFound:
		err.kind = ErrNotFound
	case http.StatusConflict:
		err.kind = ErrConflict
	case http.StatusBadGateway:
		err.kind = ErrBadGateway
	case http.StatusInternalServerError:
		err.kind = ErrInternalServerError
	}

	return err
}
