package b64p

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the derivation of each partial as a table.
func WriteTable(w io.Writer, details [3]Detail) error {
	table := tablewriter.NewWriter(w)
	table.Header("Alignment", "Padded", "Encoded", "L", "R", "Partial", "Entropy")

	for _, d := range details {
		row := []string{
			strconv.Itoa(int(d.Alignment)),
			strconv.Quote(string(d.Padded)),
			d.Encoded,
			strconv.Itoa(d.Left),
			strconv.Itoa(d.Right),
			d.Partial,
			fmt.Sprintf("%.2f", ShannonEntropy(d.Partial)),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row for alignment %d: %w", d.Alignment, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
