package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/temboplus/refdata/currency"
	"github.com/temboplus/refdata/internal/cli/ui"
)

var currencyCmd = &cobra.Command{
	Use:   "currency <code>",
	Short: "Look up a currency by ISO 4217 code",
	Long: `Look up a currency by alphabetic or numeric ISO 4217 code. With
--amount, also render the amount in that currency.

  refdata currency TZS
  refdata currency 834
  refdata currency TZS --amount 25000`,
	Args: cobra.ExactArgs(1),
	RunE: runCurrency,
}

var currencyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered currencies",
	RunE:  runCurrencyList,
}

func init() {
	currencyCmd.Flags().Float64("amount", 0, "Amount to render in the currency")
	currencyCmd.AddCommand(currencyListCmd)
}

func runCurrency(cmd *cobra.Command, args []string) error {
	query := args[0]

	var c currency.Currency
	var ok bool
	if numeric, err := strconv.Atoi(query); err == nil {
		c, ok = currency.FromNumeric(numeric)
	} else {
		c, ok = currency.FromCode(query)
	}
	if !ok {
		return hint(fmt.Errorf("no currency matches %q", query),
			"refdata currency list",
		)
	}

	if outputFormat(cmd) == "json" {
		out := map[string]any{
			"code":       c.Code,
			"numeric":    c.Numeric,
			"name":       c.Name,
			"symbol":     c.Symbol,
			"minorUnits": c.MinorUnits,
		}
		if cmd.Flags().Changed("amount") {
			amount, _ := cmd.Flags().GetFloat64("amount")
			out["formatted"] = c.Format(amount)
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Println(ui.StyleBoldCyan.Render(fmt.Sprintf("%s  %s", c.Code, c.Name)))
	fmt.Printf("  Numeric:      %03d\n", c.Numeric)
	fmt.Printf("  Symbol:       %s\n", c.Symbol)
	fmt.Printf("  Minor units:  %d\n", c.MinorUnits)
	if cmd.Flags().Changed("amount") {
		amount, _ := cmd.Flags().GetFloat64("amount")
		fmt.Printf("  Formatted:    %s\n", c.Format(amount))
	}
	return nil
}

func runCurrencyList(cmd *cobra.Command, args []string) error {
	currencies := currency.All()

	if outputFormat(cmd) == "json" {
		return json.NewEncoder(os.Stdout).Encode(currencies)
	}

	cols := []string{"Code", "Numeric", "Name", "Symbol", "Minor units"}
	rows := make([][]string, len(currencies))
	for i, c := range currencies {
		rows[i] = []string{c.Code, fmt.Sprintf("%03d", c.Numeric), c.Name, c.Symbol, strconv.Itoa(c.MinorUnits)}
	}

	if outputFormat(cmd) == "csv" {
		return writeCSVStdout(cols, rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(cols, "\t"))
	fmt.Fprintln(w, strings.Repeat("---\t", len(cols)))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	fmt.Printf("\n%d currency(ies)\n", len(currencies))
	return nil
}
