package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oldenfyre/inventory-console/internal/remote"
)

// Response is the console's own uniform envelope, mirroring the one the
// backend speaks so the UI handles both the same way.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(data any) Response {
	return Response{Success: true, Data: data}
}

func okMsg(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func fail(message string) Response {
	return Response{Success: false, Message: message}
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeRemoteError normalizes any error from the remote client into the
// envelope. Application failures keep the server's message; connectivity
// problems map to 502 so the UI can offer a retry.
func writeRemoteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var apiErr *remote.APIError
	switch {
	case errors.As(err, &apiErr):
		status = http.StatusBadRequest
	case remote.Connectivity(err):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, fail(remote.Humanize(err)))
}
