package billing_test

import (
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceNumber(t *testing.T) {
	n, err := billing.ParseInvoiceNumber("GEH-2024-00007")
	require.NoError(t, err)
	assert.Equal(t, "GEH", n.Prefix)
	assert.Equal(t, 2024, n.Year)
	assert.Equal(t, 7, n.Sequence)
}

func TestParseInvoiceNumber_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"GEH",
		"GEH-2024",
		"GEH-2024-00001-extra",
		"GEH-twenty-00001",
		"GEH-2024-seven",
		"-2024-00001",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := billing.ParseInvoiceNumber(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
		})
	}
}

func TestNextInvoiceNumber(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	// The year in the new number reflects the current year; the sequence
	// strictly increments from the prior value regardless of year gap.
	next := billing.NextInvoiceNumber("PFX", 7, now)
	assert.Equal(t, "PFX-2025-00008", next.String())

	first := billing.NextInvoiceNumber("GEH", 0, now)
	assert.Equal(t, "GEH-2025-00001", first.String())
}

func TestInvoiceNumber_RoundTrip(t *testing.T) {
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	n := billing.NextInvoiceNumber(billing.DefaultInvoicePrefix, 41, now)

	parsed, err := billing.ParseInvoiceNumber(n.String())
	require.NoError(t, err)
	assert.Equal(t, n, parsed)
	assert.Equal(t, "GEH-2026-00042", parsed.String())
}
