package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"xestetik/internal/common"

	"github.com/spf13/cobra"
)

var (
	leadsLimit  int
	leadsOffset int
	exportPath  string
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect contact form submissions",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads, newest first",
	RunE:  runLeadsList,
}

var leadsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all leads as CSV",
	RunE:  runLeadsExport,
}

func init() {
	leadsListCmd.Flags().IntVar(&leadsLimit, "limit", 50, "maximum number of leads")
	leadsListCmd.Flags().IntVar(&leadsOffset, "offset", 0, "number of leads to skip")
	leadsExportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "output file (default stdout)")
}

func runLeadsList(cmd *cobra.Command, args []string) error {
	limit, offset, err := common.ValidatePaginationParams(leadsLimit, leadsOffset)
	if err != nil {
		return err
	}

	app, err := newApplication(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	total, err := app.leads.Count(cmd.Context())
	if err != nil {
		return err
	}
	leads, err := app.leads.List(cmd.Context(), limit, offset)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED (UTC)\tNAME\tEMAIL\tPHONE\tSOURCE\tMESSAGE")
	for _, l := range leads {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.CreatedAt.Format(time.DateTime), l.Name, l.Email, l.Phone, l.SourcePath, oneLine(l.Message, 60))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d leads\n", len(leads), total)
	return nil
}

func runLeadsExport(cmd *cobra.Command, args []string) error {
	app, err := newApplication(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	var out io.Writer = cmd.OutOrStdout()
	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	n, err := app.leads.ExportCSV(cmd.Context(), out)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d leads exported\n", n)
	return nil
}

// oneLine collapses whitespace and cuts s to limit runes
func oneLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > limit {
		return string(r[:limit-3]) + "..."
	}
	return s
}
