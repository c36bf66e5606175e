package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"drp/pkg/e"
	"drp/pkg/validator"
)

const maxBodyBytes = 1 << 20

var ErrInvalidJSON = errors.New("invalid JSON")

// DecodeJSON reads exactly one JSON object from the request body into target
// and validates it. Unknown fields and trailing data are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidJSON, err.Error())
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrInvalidJSON
	}

	if err := validator.ValidateStruct(target); err != nil {
		return err
	}
	return nil
}

// IsBadRequest reports whether err came from DecodeJSON rejecting the body.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidJSON) || errors.Is(err, e.ErrInvalidInput)
}
