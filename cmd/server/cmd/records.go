package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"questiondesk/internal/domain/question"
)

const (
	defaultQuestionWidth = 60
	minQuestionWidth     = 20
	// id, assignee and timestamp columns with padding
	fixedColumnsWidth = 80
)

var assignedTo string

var RecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect questions from the shell",
	Long:  `Read questions straight from the configured Airtable table.`,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions, most recently updated first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := app.Services.Question.List(cmd.Context(), assignedTo)
		if err != nil {
			return err
		}
		return printRecords(os.Stdout, records, jsonOutput, questionWidth())
	},
}

var recordsSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Fuzzy search questions and answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := app.Services.Question.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printRecords(os.Stdout, records, jsonOutput, questionWidth())
	},
}

// questionWidth fits the question column into the terminal.
func questionWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultQuestionWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return defaultQuestionWidth
	}
	return max(width-fixedColumnsWidth, minQuestionWidth)
}

func printRecords(w io.Writer, records []question.Record, asJSON bool, width int) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	if len(records) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No records found")
		return nil
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgCyan)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	bold.Fprintf(tw, "ID\tASSIGNED TO\tUPDATED AT\tQUESTION\n")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			id.Sprint(rec.ID()),
			orDash(rec.Text(question.FieldAssignedTo)),
			orDash(rec.Text(question.FieldUpdatedAt)),
			truncate(rec.Text(question.FieldQuestion), width),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	bold.Fprintf(w, "\nTotal: %d\n", len(records))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}

func init() {
	RecordsCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
	recordsListCmd.Flags().StringVar(&assignedTo, "assigned-to", "", "only records assigned to this user")

	RecordsCmd.AddCommand(recordsListCmd)
	RecordsCmd.AddCommand(recordsSearchCmd)
}
