package utils

import (
	"errors"
	"strings"
)

func ValidateCommentInput(author, text string) error {
	if len(author) == 0 || len(author) > 64 {
		return errors.New("author must be between 1 and 64 characters")
	}
	if len(text) == 0 || len(text) > 1000 {
		return errors.New("text must be between 1 and 1000 characters")
	}
	if strings.ContainsAny(author, "<>\"'") {
		return errors.New("author contains invalid characters")
	}
	return nil
}

// ValidatePhotoName rejects names that would escape the bucket prefix.
func ValidatePhotoName(name string) error {
	if len(name) == 0 || len(name) > 255 {
		return errors.New("name must be between 1 and 255 characters")
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return errors.New("name contains invalid characters")
	}
	return nil
}
