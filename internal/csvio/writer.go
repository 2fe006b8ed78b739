// internal/csvio/writer.go
//
// Encoding of the final account snapshot back to delimited text. Rows
// are sorted by client id so output is deterministic even though the
// engine's snapshot carries no order guarantee.
package csvio

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"payments/internal/engine"
)

// amountPlaces is the exchange's smallest unit: four decimal places.
const amountPlaces = 4

// WriteAccounts renders the snapshot as CSV with the header
// client,available,held,total,locked.
func WriteAccounts(w io.Writer, accounts []engine.Account) error {
	sorted := make([]engine.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Client < sorted[j].Client })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, a := range sorted {
		row := []string{
			strconv.FormatUint(uint64(a.Client), 10),
			a.Available.StringFixed(amountPlaces),
			a.Held.StringFixed(amountPlaces),
			a.Total.StringFixed(amountPlaces),
			strconv.FormatBool(a.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
