package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
)

var (
	// ErrInvalidCredential reports a missing or rejected Gemini API key.
	ErrInvalidCredential = errors.New("invalid or missing API_KEY")
	// ErrBlocked reports a prompt or answer stopped by safety filtering.
	ErrBlocked = errors.New("generation blocked by safety filters")
	// ErrEmptyResponse reports a response without any usable text.
	ErrEmptyResponse = errors.New("no response from Gemini")
	// ErrEmptyPrompt reports a blank story idea.
	ErrEmptyPrompt = errors.New("prompt is empty")
)

// wrapAPIError marks credential failures so callers can match them with errors.Is.
func wrapAPIError(err error) error {
	var ae *apierror.APIError
	if errors.As(err, &ae) && strings.HasPrefix(ae.Reason(), "API_KEY") {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if strings.Contains(err.Error(), "API key not valid") {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	return fmt.Errorf("generate content: %w", err)
}
