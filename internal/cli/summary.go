package cli

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/adamluzsi/fleet"
)

// Summary counts the serviced vehicles by kind.
type Summary struct {
	rows map[fleet.Kind]*summaryRow
}

type summaryRow struct {
	speed    fleet.Speed
	total    int
	electric int
}

func (s *Summary) Add(v fleet.Vehicle) {
	if s.rows == nil {
		s.rows = make(map[fleet.Kind]*summaryRow)
	}
	kind, _, ok := fleet.Decompose(v)
	if !ok {
		kind = "other"
	}
	row, ok := s.rows[kind]
	if !ok {
		row = &summaryRow{speed: v.Speed()}
		s.rows[kind] = row
	}
	row.total++
	if v.IsElectric() {
		row.electric++
	}
}

// Total is the number of vehicles added.
func (s Summary) Total() int {
	var n int
	for _, row := range s.rows {
		n += row.total
	}
	return n
}

// Render prints the summary as a table.
// The first failed write to w is returned.
func (s Summary) Render(w io.Writer) error {
	kinds := make([]string, 0, len(s.rows))
	for kind := range s.rows {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	out := &errWriter{w: w}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Kind", "Speed", "Electric", "Total"})
	for _, kind := range kinds {
		row := s.rows[fleet.Kind(kind)]
		table.Append([]string{
			kind,
			row.speed.String(),
			strconv.Itoa(row.electric),
			strconv.Itoa(row.total),
		})
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(s.Total())})
	table.Render()
	return out.err
}

// errWriter keeps the first write error, since tablewriter discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = errors.Wrap(err, "rendering summary")
	}
	return n, err
}
