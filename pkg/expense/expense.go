package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo/kakeibo/pkg/category"
)

// DateLayout is the wire and storage format for expense dates. Expenses carry
// a calendar day only, no time-of-day or timezone.
const DateLayout = "2006-01-02"

// MaxAmount is the upper bound for a single expense (10 million yen).
const MaxAmount = 10_000_000

// MaxNoteLength is the maximum note length in runes.
const MaxNoteLength = 500

type Expense struct {
	ID     uuid.UUID
	Amount float64
	// Date is the expense's calendar day, normalized to midnight UTC.
	Date time.Time
	// Category is nil when the stored category no longer resolves against the
	// registry. Such expenses still count towards raw totals.
	Category  *category.Category
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParseDate parses a YYYY-MM-DD string into the normalized midnight-UTC form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
