// Package validate contains the client-side field checks performed before
// any network call. Failed checks are shown next to the offending input and
// never propagate further.
package validate

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
)

// MaxPhotoSize is the upload limit enforced client-side.
const MaxPhotoSize = 1024 * 1024

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Name checks the registration display name.
func Name(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("Name is required")
	}
	if len(name) < 3 {
		return errors.New("Name must be at least 3 characters")
	}
	return nil
}

// Email checks the address format.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("Email is required")
	}
	if !emailRx.MatchString(email) {
		return errors.New("Invalid email format")
	}
	return nil
}

// Password checks the minimum length rule.
func Password(password string) error {
	if password == "" {
		return errors.New("Password is required")
	}
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}

// Description checks the story text.
func Description(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errors.New("Description is required")
	}
	if len(description) < 10 {
		return errors.New("Description must be at least 10 characters")
	}
	return nil
}

// Photo checks presence, size and that the payload sniffs as an image.
func Photo(photo []byte) error {
	if len(photo) == 0 {
		return errors.New("Photo is required")
	}
	if len(photo) > MaxPhotoSize {
		return errors.New("Photo size must be less than 1MB")
	}
	if !strings.HasPrefix(http.DetectContentType(photo), "image/") {
		return errors.New("Please select a valid image file")
	}
	return nil
}

// Location checks that a complete coordinate pair was selected.
func Location(lat, lon *float64) error {
	if lat == nil || lon == nil {
		return errors.New("Please select a location on the map")
	}
	return nil
}
