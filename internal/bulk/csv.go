package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/coregx/tabload/internal/frame"
)

// writeCSV encodes the frame as RFC 4180 CSV, the staging format shared by
// every adapter. Absent cells are written as empty fields; the load
// mechanisms are configured to read empty as NULL, which means a
// present-but-empty text cell also arrives as NULL on staged paths.
func writeCSV(w io.Writer, f *frame.Frame) error {
	cw := csv.NewWriter(w)
	cols := f.Columns()
	record := make([]string, len(cols))
	for i := 0; i < f.Len(); i++ {
		for j, c := range cols {
			record[j] = formatCell(c.Kind, c.Values[i])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(k frame.Kind, v any) string {
	if v == nil {
		return ""
	}
	switch k {
	case frame.Int32:
		if n, ok := v.(int32); ok {
			return strconv.FormatInt(int64(n), 10)
		}
	case frame.Int64:
		if n, ok := v.(int64); ok {
			return strconv.FormatInt(n, 10)
		}
	case frame.Float:
		if x, ok := v.(float64); ok {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
	case frame.Date:
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02")
		}
	case frame.DateTime:
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return fmt.Sprintf("%v", v)
}
