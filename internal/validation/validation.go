// Package validation converts raw field input into normalized transaction
// values. Nothing here touches storage.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

// MaxDescriptionLength is the longest description accepted, in characters.
const MaxDescriptionLength = 75

// Bounds on the decimal exponent of an amount. Rounding rescales by a power
// of ten, so an unbounded exponent costs unbounded time and memory.
const (
	minAmountExponent = -20
	maxAmountExponent = 15
)

// Field names used in validation errors.
const (
	FieldTimestamp   = "timestamp"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldType        = "type"
	FieldDescription = "description"
)

// Accepted input shapes, tried in order. Date-only input lands on midnight.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeDatetime parses raw into a wall-clock instant carried in UTC.
// Fractional seconds are outside the grammar; time.Parse would otherwise
// accept them after a seconds field.
func NormalizeDatetime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if !strings.ContainsAny(s, ".,") {
		for _, layout := range datetimeLayouts {
			if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil && ts.Nanosecond() == 0 {
				return ts, nil
			}
		}
	}
	return time.Time{}, ledgererr.NewValidation(FieldTimestamp,
		"unrecognized datetime '%s', expected e.g. 2025-09-02T14:30:00", raw)
}

// CheckNotFuture fails when ts is strictly later than the wall-clock reading
// of now.
func CheckNotFuture(ts time.Time, now time.Time) error {
	wall := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
	if ts.After(wall) {
		return ledgererr.NewValidation(FieldTimestamp, "datetime %s cannot be in the future", FormatTimestamp(ts))
	}
	return nil
}

// FormatTimestamp renders ts in the canonical stored form.
func FormatTimestamp(ts time.Time) string {
	return ts.Format(ledgerfile.TimestampLayout)
}

// NormalizeAmount parses raw as an exact decimal and rounds it half-up
// (half away from zero) to two fractional digits.
func NormalizeAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ledgererr.NewValidation(FieldAmount, "'%s' is not a valid number", raw)
	}
	if exp := d.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return decimal.Decimal{}, ledgererr.NewValidation(FieldAmount, "'%s' is out of range", raw)
	}
	return d.Round(2), nil
}

// FormatAmount renders an amount with exactly two fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// NormalizeType accepts only the canonical words, ignoring case.
func NormalizeType(raw string) (ledgerfile.TransactionType, error) {
	t, err := ledgerfile.ParseTransactionType(raw)
	if err != nil {
		return 0, ledgererr.NewValidation(FieldType, "'%s' must be income or expense", raw)
	}
	return t, nil
}

// ApplySign makes the sign of amount agree with t.
func ApplySign(amount decimal.Decimal, t ledgerfile.TransactionType) decimal.Decimal {
	if t == ledgerfile.TransactionTypeExpense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// ValidateCategory trims name and checks it against allowed. An empty
// allowed set accepts any non-empty name.
func ValidateCategory(name string, allowed []string) (string, error) {
	c := strings.TrimSpace(name)
	if c == "" {
		return "", ledgererr.NewValidation(FieldCategory, "category is required")
	}
	if len(allowed) == 0 {
		return c, nil
	}
	for _, a := range allowed {
		if strings.TrimSpace(a) == c {
			return c, nil
		}
	}
	return "", ledgererr.NewValidation(FieldCategory, "'%s' is not in the allowed set %v", c, allowed)
}

// ValidateDescription trims text and enforces the length bound.
func ValidateDescription(text string) (string, error) {
	d := strings.TrimSpace(text)
	if d == "" {
		return "", ledgererr.NewValidation(FieldDescription, "description is required")
	}
	if n := utf8.RuneCountInString(d); n > MaxDescriptionLength {
		return "", ledgererr.NewValidation(FieldDescription,
			"description is %d characters, at most %d allowed", n, MaxDescriptionLength)
	}
	return d, nil
}

// RawTransaction holds unvalidated field input.
type RawTransaction struct {
	Timestamp   string
	Category    string
	Amount      string
	Type        string
	Description string
}

// Normalized is a fully validated transaction without identity.
type Normalized struct {
	Timestamp   time.Time
	Category    string
	Amount      decimal.Decimal
	Type        ledgerfile.TransactionType
	Description string
}

// Validator runs every field check for a transaction. It carries the
// policy that would otherwise be global state.
type Validator struct {
	// DisallowFuture rejects timestamps later than Now.
	DisallowFuture bool
	Now            func() time.Time
}

// NewValidator creates a Validator using the wall clock.
func NewValidator(disallowFuture bool) *Validator {
	return &Validator{DisallowFuture: disallowFuture, Now: time.Now}
}

// Transaction validates raw against allowed categories. Every failing field
// is reported; the returned error is a *multierror.Error of
// *ledgererr.ValidationError values.
func (v *Validator) Transaction(raw RawTransaction, allowed []string) (*Normalized, error) {
	var result *multierror.Error
	out := &Normalized{}

	ts, err := NormalizeDatetime(raw.Timestamp)
	if err != nil {
		result = multierror.Append(result, err)
	} else if v.DisallowFuture {
		if err := CheckNotFuture(ts, v.now()); err != nil {
			result = multierror.Append(result, err)
		}
	}
	out.Timestamp = ts

	if out.Category, err = ValidateCategory(raw.Category, allowed); err != nil {
		result = multierror.Append(result, err)
	}

	amount, amountErr := NormalizeAmount(raw.Amount)
	if amountErr != nil {
		result = multierror.Append(result, amountErr)
	}

	txType, typeErr := NormalizeType(raw.Type)
	if typeErr != nil {
		result = multierror.Append(result, typeErr)
	}
	if amountErr == nil && typeErr == nil {
		out.Amount = ApplySign(amount, txType)
		out.Type = txType
	}

	if out.Description, err = ValidateDescription(raw.Description); err != nil {
		result = multierror.Append(result, err)
	}

	if result != nil {
		result.ErrorFormat = formatErrors
		return nil, result
	}
	return out, nil
}

func (v *Validator) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

func formatErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
