package marketplace

import (
	"catconnect/pkg/serrors"
	"net/mail"
	"strings"
	"unicode"
)

// NormalizeEmail trims and lower-cases an email address and rejects
// anything that is not a bare address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", serrors.With(serrors.ErrBadRequest, "invalid email address")
	}

	return email, nil
}

// NormalizePhone converts a Philippine mobile number written as 09XXXXXXXXX,
// 9XXXXXXXXX, 639XXXXXXXXX or +639XXXXXXXXX, with any spaces, dashes or
// parentheses, to +639XXXXXXXXX.
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case r == '+' && i == 0, r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return "", serrors.With(serrors.ErrBadRequest, "invalid phone number")
		}
	}

	d := digits.String()
	switch {
	case len(d) == 12 && strings.HasPrefix(d, "639"):
		d = d[2:]
	case len(d) == 11 && strings.HasPrefix(d, "09"):
		d = d[1:]
	case len(d) == 10 && strings.HasPrefix(d, "9"):
	default:
		return "", serrors.With(serrors.ErrBadRequest, "invalid phone number")
	}

	return "+63" + d, nil
}
