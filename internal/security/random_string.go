package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// UnambiguousAlphabet leaves out characters that are easy to misread: 0 O 1 l I.
const UnambiguousAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const (
	TemporaryPasswordLength    = 12
	minTemporaryPasswordLength = 8
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// TemporaryPassword draws from UnambiguousAlphabet until the result holds an
// upper case letter, a lower case letter and a digit, so it always passes
// the account password policy.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLength {
		length = minTemporaryPasswordLength
	}
	for {
		candidate, err := RandomString(length, UnambiguousAlphabet)
		if err != nil {
			return "", err
		}
		if hasMixedClasses(candidate) {
			return candidate, nil
		}
	}
}

func hasMixedClasses(value string) bool {
	hasUpper, hasLower, hasDigit := false, false, false
	for index := 0; index < len(value); index++ {
		switch char := value[index]; {
		case char >= 'A' && char <= 'Z':
			hasUpper = true
		case char >= 'a' && char <= 'z':
			hasLower = true
		case char >= '0' && char <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
