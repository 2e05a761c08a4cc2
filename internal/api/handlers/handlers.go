// Package handlers implements the HTTP surface of the API. Public reads are
// open; mutations sit behind the admin auth middleware and are wired up in
// the router.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

var errMalformedBody = errors.New("malformed request body")

// decodeJSON reads a JSON request body into dst. An empty body is treated
// as malformed: every mutating endpoint requires at least one field.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errMalformedBody
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst); err != nil {
		return errMalformedBody
	}
	return nil
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
