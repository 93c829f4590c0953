package matrix

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// String returns a short description such as "Dense[int16](3x3)".
func (d *Dense[T]) String() string {
	if !d.IsBound() {
		return fmt.Sprintf("Dense[%s](unbound)", DataTypeOf[T]())
	}
	return fmt.Sprintf("Dense[%s](%v)", DataTypeOf[T](), d.Shape())
}

// Fprint writes the elements of d to w, one row per line, with
// aligned columns.
func (d *Dense[T]) Fprint(w io.Writer) error {
	if !d.IsBound() {
		_, err := io.WriteString(w, "<unbound>\n")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for r := 0; r < d.rows; r++ {
		for c, v := range d.data[r*d.cols : (r+1)*d.cols] {
			sep := "\t"
			if c == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(tw, "%s%v", sep, v); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(tw, "\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Pretty returns the output of Fprint as a string.
func (d *Dense[T]) Pretty() string {
	var sb strings.Builder
	_ = d.Fprint(&sb) // strings.Builder never fails
	return sb.String()
}
