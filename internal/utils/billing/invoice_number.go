package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
)

// DefaultInvoicePrefix is the business prefix used in invoice numbers.
const DefaultInvoicePrefix = "GEH"

// InvoiceNumber is a parsed invoice number of the form PREFIX-year-sequence,
// e.g. "GEH-2025-00042".
type InvoiceNumber struct {
	Prefix   string
	Year     int
	Sequence int
}

func (n InvoiceNumber) String() string {
	return fmt.Sprintf("%s-%d-%05d", n.Prefix, n.Year, n.Sequence)
}

// ParseInvoiceNumber parses a stored invoice number. A stored number that does
// not parse is a data-integrity error: numbering must fail loudly rather than
// silently restart at 1, which would hand out duplicate invoice numbers.
func ParseInvoiceNumber(s string) (InvoiceNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return InvoiceNumber{}, fmt.Errorf("invoice number %q does not match PREFIX-year-sequence: %w", s, apperrors.ErrDataIntegrity)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return InvoiceNumber{}, fmt.Errorf("invoice number %q has non-numeric year: %w", s, apperrors.ErrDataIntegrity)
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return InvoiceNumber{}, fmt.Errorf("invoice number %q has non-numeric sequence: %w", s, apperrors.ErrDataIntegrity)
	}
	if parts[0] == "" || seq < 0 {
		return InvoiceNumber{}, fmt.Errorf("invoice number %q is malformed: %w", s, apperrors.ErrDataIntegrity)
	}
	return InvoiceNumber{Prefix: parts[0], Year: year, Sequence: seq}, nil
}

// NextInvoiceNumber produces the number following lastSequence for the current
// year. The sequence increments monotonically across all invoices and is
// deliberately NOT reset when the year rolls over; the year component only
// reflects when the invoice was issued. Pass lastSequence 0 when no invoice
// exists yet.
func NextInvoiceNumber(prefix string, lastSequence int, now time.Time) InvoiceNumber {
	return InvoiceNumber{
		Prefix:   prefix,
		Year:     now.Year(),
		Sequence: lastSequence + 1,
	}
}
