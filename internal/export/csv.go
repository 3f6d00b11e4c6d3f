// Package export renders ledger state for download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
)

// dateLayout mirrors the timestamp format shown in the admin listing.
const dateLayout = "2006-01-02 15:04:05"

// Header is the fixed CSV header row of the contribution export.
var Header = []string{"ID", "Guest", "Gift", "Shares", "Amount", "Date"}

// Contributions writes the contribution list as CSV, one row per
// contribution in the order given (callers pass newest first). Amounts use
// a comma as decimal separator, per Brazilian convention.
func Contributions(w io.Writer, contributions []*contribution.Contribution) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, c := range contributions {
		guest := c.GuestName
		if guest == "" {
			guest = contribution.AnonymousGuest
		}

		row := []string{
			c.ID.String(),
			guest,
			c.Gift.Name,
			strconv.Itoa(c.Shares),
			strings.Replace(c.Amount.StringFixed(2), ".", ",", 1),
			c.CreatedAt.Format(dateLayout),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
