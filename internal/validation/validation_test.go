package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

func TestNormalizeDatetime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"seconds with T", "2025-09-02T14:30:15", time.Date(2025, 9, 2, 14, 30, 15, 0, time.UTC)},
		{"seconds with space", "2025-09-02 14:30:15", time.Date(2025, 9, 2, 14, 30, 15, 0, time.UTC)},
		{"minutes with T", "2025-09-02T14:30", time.Date(2025, 9, 2, 14, 30, 0, 0, time.UTC)},
		{"minutes with space", "2025-09-02 14:30", time.Date(2025, 9, 2, 14, 30, 0, 0, time.UTC)},
		{"date only is midnight", "2025-09-02", time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2025-09-02  ", time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDatetime(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNormalizeDatetime_Rejects(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "02/09/2025", "2025-13-01", "2025-09-02T14", "2025-09-02T14:30:00Z",
		"2024-02-10 18:45:00.5", "2024-02-10T18:45:00,5", "2024-02-10 18:45:00.999999", "2024-02-10 18:45:00.0"} {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeDatetime(raw)
			require.Error(t, err)

			var verr *ledgererr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, FieldTimestamp, verr.Field)
		})
	}
}

func TestCheckNotFuture(t *testing.T) {
	now := time.Date(2025, 9, 2, 14, 30, 0, 500, time.UTC)

	assert.NoError(t, CheckNotFuture(time.Date(2025, 9, 2, 14, 30, 0, 0, time.UTC), now), "equal to now is allowed")
	assert.NoError(t, CheckNotFuture(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), now))

	err := CheckNotFuture(time.Date(2025, 9, 2, 14, 30, 1, 0, time.UTC), now)
	require.Error(t, err)
	assert.True(t, ledgererr.IsValidation(err))
	assert.Contains(t, err.Error(), "future")
}

func TestCheckNotFuture_UsesWallClockOfNow(t *testing.T) {
	east := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2025, 9, 2, 18, 0, 0, 0, east)

	// 17:00 local wall clock is in the past even though 17:00 UTC is after now.
	assert.NoError(t, CheckNotFuture(time.Date(2025, 9, 2, 17, 0, 0, 0, time.UTC), now))
	assert.Error(t, CheckNotFuture(time.Date(2025, 9, 2, 19, 0, 0, 0, time.UTC), now))
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"100", "100.00"},
		{"100.00", "100.00"},
		{" 12.5 ", "12.50"},
		{"12.345", "12.35"},
		{"12.344", "12.34"},
		{"2.675", "2.68"},
		{"0.005", "0.01"},
		{"-12.345", "-12.35"},
		{"-50", "-50.00"},
		{"1e2", "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeAmount(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatAmount(got))
		})
	}
}

func TestNormalizeAmount_Rejects(t *testing.T) {
	for _, raw := range []string{"", "abc", "12,50", "$5", "1.2.3", "1e-400000000", "1e400000000", "1e-21", "1e16"} {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeAmount(raw)
			require.Error(t, err)

			var verr *ledgererr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, FieldAmount, verr.Field)
		})
	}
}

func TestNormalizeAmount_ExponentBounds(t *testing.T) {
	got, err := NormalizeAmount("1e-20")
	require.NoError(t, err)
	assert.Equal(t, "0.00", FormatAmount(got))

	got, err = NormalizeAmount("1e15")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000.00", FormatAmount(got))

	got, err = NormalizeAmount("0.12345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "0.12", FormatAmount(got))
}

func TestNormalizeAmount_RepeatedQuantizeIsStable(t *testing.T) {
	d, err := NormalizeAmount("0.10")
	require.NoError(t, err)

	sum := decimal.Zero
	for i := 0; i < 1000; i++ {
		sum = sum.Add(d).Round(2)
	}
	assert.Equal(t, "100.00", FormatAmount(sum))
}

func TestNormalizeType(t *testing.T) {
	got, err := NormalizeType("Income")
	require.NoError(t, err)
	assert.Equal(t, ledgerfile.TransactionTypeIncome, got)

	got, err = NormalizeType(" EXPENSE ")
	require.NoError(t, err)
	assert.Equal(t, ledgerfile.TransactionTypeExpense, got)

	for _, raw := range []string{"", "i", "e", "inc", "transfer"} {
		_, err := NormalizeType(raw)
		assert.True(t, ledgererr.IsValidation(err), raw)
	}
}

func TestApplySign(t *testing.T) {
	pos := decimal.RequireFromString("50.00")
	neg := decimal.RequireFromString("-50.00")

	assert.Equal(t, "50.00", FormatAmount(ApplySign(pos, ledgerfile.TransactionTypeIncome)))
	assert.Equal(t, "50.00", FormatAmount(ApplySign(neg, ledgerfile.TransactionTypeIncome)))
	assert.Equal(t, "-50.00", FormatAmount(ApplySign(pos, ledgerfile.TransactionTypeExpense)))
	assert.Equal(t, "-50.00", FormatAmount(ApplySign(neg, ledgerfile.TransactionTypeExpense)))
	assert.Equal(t, "0.00", FormatAmount(ApplySign(decimal.Zero, ledgerfile.TransactionTypeExpense)))
}

func TestValidateCategory(t *testing.T) {
	allowed := []string{"Food and Dining", "Other"}

	got, err := ValidateCategory(" Food and Dining ", allowed)
	require.NoError(t, err)
	assert.Equal(t, "Food and Dining", got)

	_, err = ValidateCategory("Travel", allowed)
	assert.True(t, ledgererr.IsValidation(err))

	_, err = ValidateCategory("food and dining", allowed)
	assert.True(t, ledgererr.IsValidation(err), "membership is exact")

	got, err = ValidateCategory("Anything", nil)
	require.NoError(t, err)
	assert.Equal(t, "Anything", got)

	_, err = ValidateCategory("   ", nil)
	assert.True(t, ledgererr.IsValidation(err))
}

func TestValidateDescription(t *testing.T) {
	got, err := ValidateDescription("  Weekly groceries ")
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", got)

	_, err = ValidateDescription(strings.Repeat("x", MaxDescriptionLength))
	assert.NoError(t, err)

	// Length counts characters, not bytes.
	_, err = ValidateDescription(strings.Repeat("é", MaxDescriptionLength))
	assert.NoError(t, err)

	_, err = ValidateDescription(strings.Repeat("x", MaxDescriptionLength+1))
	assert.True(t, ledgererr.IsValidation(err))

	_, err = ValidateDescription(" \t ")
	assert.True(t, ledgererr.IsValidation(err))
}

func fixedNow() time.Time {
	return time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC)
}

func TestValidator_Transaction(t *testing.T) {
	v := &Validator{DisallowFuture: true, Now: fixedNow}

	got, err := v.Transaction(RawTransaction{
		Timestamp:   "2025-09-01 08:15",
		Category:    "Food and Dining",
		Amount:      "50",
		Type:        "expense",
		Description: "Lunch",
	}, []string{"Food and Dining"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 9, 1, 8, 15, 0, 0, time.UTC), got.Timestamp)
	assert.Equal(t, "Food and Dining", got.Category)
	assert.Equal(t, "-50.00", FormatAmount(got.Amount))
	assert.Equal(t, ledgerfile.TransactionTypeExpense, got.Type)
	assert.Equal(t, "Lunch", got.Description)
}

func TestValidator_Transaction_Future(t *testing.T) {
	raw := RawTransaction{
		Timestamp:   "2099-01-01 00:00:00",
		Category:    "Salary",
		Amount:      "1",
		Type:        "income",
		Description: "Bonus",
	}

	_, err := (&Validator{DisallowFuture: true, Now: fixedNow}).Transaction(raw, nil)
	require.Error(t, err)
	assert.True(t, ledgererr.IsValidation(err))
	assert.Contains(t, err.Error(), "future")

	_, err = (&Validator{DisallowFuture: false, Now: fixedNow}).Transaction(raw, nil)
	assert.NoError(t, err)
}

func TestValidator_Transaction_ReportsEveryField(t *testing.T) {
	v := &Validator{DisallowFuture: true, Now: fixedNow}

	_, err := v.Transaction(RawTransaction{
		Timestamp:   "soon",
		Category:    "Nope",
		Amount:      "ten",
		Type:        "gift",
		Description: "",
	}, []string{"Other"})
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)

	fields := make([]string, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var verr *ledgererr.ValidationError
		require.ErrorAs(t, e, &verr)
		fields = append(fields, verr.Field)
	}
	assert.Equal(t, []string{FieldTimestamp, FieldCategory, FieldAmount, FieldType, FieldDescription}, fields)
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed: "))
}
