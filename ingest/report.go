package ingest

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"

	"github.com/9876691/accounts/ledger"
)

// WriteReport renders one row per client as client,available,held,total
// with four fractional digits, sorted by client id. The core returns
// balances unordered; stable output ordering is this layer's job.
func WriteReport(w io.Writer, balances []ledger.ClosingBalance) error {
	sorted := slices.Clone(balances)
	slices.SortFunc(sorted, func(a, b ledger.ClosingBalance) int {
		return int(a.Client) - int(b.Client)
	})

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total"}); err != nil {
		return err
	}

	for _, balance := range sorted {
		row := []string{
			strconv.FormatUint(uint64(balance.Client), 10),
			balance.Available.String(),
			balance.Held.String(),
			balance.Total.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
