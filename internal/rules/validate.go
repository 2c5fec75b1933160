package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

// ErrValidation marks operator-input problems. Callers match it with
// errors.Is and keep the operator on the form for another attempt.
var ErrValidation = errors.New("validation failed")

// ValidateUpdate checks the editable fields of an update. Empty optional
// fields pass; a field is only checked once the operator has entered
// something.
func ValidateUpdate(upd types.PlayerUpdate) error {
	if strings.TrimSpace(upd.Barcode) == "" {
		return fmt.Errorf("%w: barcode is required", ErrValidation)
	}
	if strings.TrimSpace(upd.FirstName) == "" && strings.TrimSpace(StripSuffixes(upd.LastName)) == "" {
		return fmt.Errorf("%w: first or last name is required", ErrValidation)
	}
	if err := validateCoachFlag(upd.Coach); err != nil {
		return err
	}
	if err := ValidatePhone(upd.CellPhone); err != nil {
		return err
	}
	if err := ValidateEmail(upd.Email); err != nil {
		return err
	}
	return nil
}

func validateCoachFlag(flag string) error {
	switch strings.ToUpper(strings.TrimSpace(flag)) {
	case "", "Y", "N":
		return nil
	default:
		return fmt.Errorf("%w: coach flag must be Y or N, got %q", ErrValidation, flag)
	}
}

// ValidatePhone accepts digits plus common punctuation, with at least seven
// digits. Empty is allowed.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '+':
		default:
			return fmt.Errorf("%w: phone contains invalid character %q", ErrValidation, r)
		}
	}
	if digits < 7 {
		return fmt.Errorf("%w: phone number too short", ErrValidation)
	}
	return nil
}

// ValidateEmail is a light sanity check: one @ with nonempty local and
// domain parts, domain containing a dot. Empty is allowed.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	at := strings.Count(email, "@")
	if at != 1 {
		return fmt.Errorf("%w: email %q must contain exactly one @", ErrValidation, email)
	}
	parts := strings.SplitN(email, "@", 2)
	if parts[0] == "" || parts[1] == "" || !strings.Contains(parts[1], ".") {
		return fmt.Errorf("%w: email %q is malformed", ErrValidation, email)
	}
	return nil
}
