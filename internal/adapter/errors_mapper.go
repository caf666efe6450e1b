package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-read-later/internal/app"
	"github.com/MKhiriev/go-read-later/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusGone:                ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// messageErrors refines a status error by the body the service wrote.
var messageErrors = map[string]error{
	app.MsgDuplicateFolder: ErrDuplicateFolder,
	app.MsgWrongToken:      ErrWrongToken,
	app.MsgInvalidProgress: models.ErrInvalidReadProgress,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		if specific, ok := messageErrors[body]; ok {
			return fmt.Errorf("%w: %w", sentinel, specific)
		}
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// IsNotFound reports whether err means the remote entity is already gone.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
