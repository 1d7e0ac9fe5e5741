// Package dates converts between the DD-MM-YYYY form users type and the
// YYYY-MM-DD form the store persists, and derives expiry countdowns.
// Display input is parsed strictly since it gates user data; storage values
// degrade gracefully on the way back out.
package dates

import (
	"errors"
	"fmt"
	"time"
)

const (
	DisplayLayout = "02-01-2006"
	StorageLayout = "2006-01-02"
)

var ErrInvalidFormat = errors.New("invalid date format, expected DD-MM-YYYY")

// ToStorage converts a display date to storage form. Empty input stays empty
// so optional dates persist as blank rather than failing.
func ToStorage(display string) (string, error) {
	if display == "" {
		return "", nil
	}
	parsed, err := time.Parse(DisplayLayout, display)
	if err != nil {
		return "", ErrInvalidFormat
	}
	return parsed.Format(StorageLayout), nil
}

// ToDisplay converts a storage date to display form. Malformed or empty
// storage values come back as an empty string, never an error.
func ToDisplay(storage string) string {
	if storage == "" {
		return ""
	}
	parsed, err := time.Parse(StorageLayout, storage)
	if err != nil {
		return ""
	}
	return parsed.Format(DisplayLayout)
}

type ValidityKind int

const (
	ValidityNotSet ValidityKind = iota
	ValidityInvalid
	ValidityRemaining
	ValidityExpiresToday
	ValidityOverdue
)

// Validity classifies how far an expiry date is from today. Days carries the
// magnitude for the remaining and overdue kinds.
type Validity struct {
	Kind ValidityKind
	Days int
}

func (v Validity) String() string {
	switch v.Kind {
	case ValidityNotSet:
		return "not set"
	case ValidityInvalid:
		return "invalid date"
	case ValidityExpiresToday:
		return "expires today"
	case ValidityOverdue:
		return fmt.Sprintf("%d days overdue", v.Days)
	default:
		return fmt.Sprintf("%d days remaining", v.Days)
	}
}

func RemainingValidity(storageExpiry string) Validity {
	return RemainingValidityAt(storageExpiry, time.Now())
}

func RemainingValidityAt(storageExpiry string, now time.Time) Validity {
	if storageExpiry == "" {
		return Validity{Kind: ValidityNotSet}
	}
	expiry, err := time.Parse(StorageLayout, storageExpiry)
	if err != nil {
		return Validity{Kind: ValidityInvalid}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(expiry.Sub(today).Hours() / 24)
	switch {
	case days > 0:
		return Validity{Kind: ValidityRemaining, Days: days}
	case days == 0:
		return Validity{Kind: ValidityExpiresToday}
	default:
		return Validity{Kind: ValidityOverdue, Days: -days}
	}
}
