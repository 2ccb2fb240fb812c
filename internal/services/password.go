package services

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordTooCommon = errors.New("password is too common")
	ErrPasswordNumeric   = errors.New("password cannot be entirely numeric")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)

// commonPasswords is a short denylist of the passwords seen most often in
// breach dumps. Checked case-insensitively.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"letmein123":  {},
	"iloveyou1":   {},
	"admin123":    {},
	"welcome1":    {},
	"sunshine1":   {},
	"1q2w3e4r":    {},
	"abc12345":    {},
}

// ValidatePassword enforces the registration password policy: minimum 8
// characters, not a common password, not entirely numeric.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return ErrPasswordTooCommon
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrPasswordNumeric
	}
	return nil
}
