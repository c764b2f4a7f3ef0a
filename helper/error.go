package helper

import "fmt"

// NewError wraps an error with the action that failed.
func NewError(action string, err error) error {
	return fmt.Errorf("error in %s: %w", action, err)
}
