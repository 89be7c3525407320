package common

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MaxPostLength    = 280
	MaxAboutMeLength = 140
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 64 {
		return errors.New("username must be between 3 and 64 characters")
	}

	if !usernameRegex.MatchString(username) {
		return errors.New("username can only contain letters, numbers, and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return errors.New("password is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}

	return nil
}

func ValidatePostBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return errors.New("post body must not be empty")
	}

	if len(body) > MaxPostLength {
		return errors.New("post body is too long")
	}

	return nil
}

func ValidateAboutMe(aboutMe string) error {
	if len(aboutMe) > MaxAboutMeLength {
		return errors.New("about me is too long")
	}

	return nil
}

func ValidateMessageBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return errors.New("message body must not be empty")
	}

	if len(body) > MaxPostLength {
		return errors.New("message body is too long")
	}

	return nil
}
