package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used to classify failures across the compression pipeline.
// Callers match them with errors.Is.
var (
	// ErrProbe marks a failed duration lookup; a size-targeted job aborts
	// before any encode starts.
	ErrProbe = errors.New("probe failure")
	// ErrEncode marks an engine-reported failure; the output file state is
	// undefined and must be treated as unusable.
	ErrEncode = errors.New("encode failure")
	// ErrStore marks a persistence layer failure.
	ErrStore = errors.New("store failure")
	// ErrThumbnail marks a failed thumbnail extraction for a single file.
	ErrThumbnail = errors.New("thumbnail failure")
	// ErrValidation marks a malformed request rejected before any work.
	ErrValidation = errors.New("validation error")
	// ErrTimeout marks an external invocation that exceeded its deadline.
	ErrTimeout = errors.New("timeout")
	// ErrBusy marks a compression request rejected because another job is
	// already in flight.
	ErrBusy = errors.New("another compression is already running")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrEncode
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
