package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/blackroad/facilities/internal/facility"
	"github.com/spf13/cobra"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// configError marks failures while resolving configuration.
type configError struct {
	err error
}

func (e configError) Error() string { return "loading config: " + e.err.Error() }
func (e configError) Unwrap() error { return e.err }

// exitCodeFor classifies an error into a process exit code.
func exitCodeFor(err error) int {
	var ce configError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ce):
		return ExitConfigError
	case errors.Is(err, facility.ErrNotFound),
		errors.Is(err, facility.ErrDuplicateBuilding),
		errors.Is(err, facility.ErrInvalid):
		return ExitDataError
	default:
		return ExitError
	}
}

// reportError outputs an error in the appropriate format (human or JSON)
// and returns the exit code.
func reportError(cmd *cobra.Command, err error) int {
	if humanOutput {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err)
	} else {
		outputJSON(cmd.OutOrStdout(), ErrorResponse{Error: err.Error()})
	}
	return exitCodeFor(err)
}
