package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/client/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// OutputFormatter prints results as a table or as JSON.
type OutputFormatter struct {
	JSON   bool
	Writer io.Writer
}

// formatter picks JSON when --json is set or stdout is not a terminal.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	w := cmd.OutOrStdout()
	return &OutputFormatter{JSON: o.JSON || !isTerminal(w), Writer: w}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (f *OutputFormatter) writeJSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *OutputFormatter) Beers(list []models.Beer) error {
	if f.JSON {
		return f.writeJSON(list)
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATED AT")
	for _, b := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", b.ID, b.Name, b.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func (f *OutputFormatter) Count(n int64) error {
	if f.JSON {
		return f.writeJSON(struct {
			Count int64 `json:"count"`
		}{n})
	}
	_, err := fmt.Fprintln(f.Writer, n)
	return err
}

func (f *OutputFormatter) Health(h models.Health) error {
	if f.JSON {
		return f.writeJSON(h)
	}
	_, err := fmt.Fprintf(f.Writer, "ping: %s\nservice: %s\n", h.Ping, h.Service)
	return err
}
