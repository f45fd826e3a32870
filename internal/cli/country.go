package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/temboplus/refdata/country"
	"github.com/temboplus/refdata/internal/cli/ui"
)

var countryCmd = &cobra.Command{
	Use:   "country <code-or-dial>",
	Short: "Look up a country by code, name or dial code",
	Long: `Look up a country by ISO 3166-1 alpha-2 or alpha-3 code, by English
name, or by country calling code. Calling codes shared by several
countries (+1, +7) list every owner.

  refdata country TZ
  refdata country Kenya
  refdata country 255`,
	Args: cobra.ExactArgs(1),
	RunE: runCountry,
}

var countryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered countries",
	RunE:  runCountryList,
}

func init() {
	countryCmd.AddCommand(countryListCmd)
}

func runCountry(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])

	if dial, err := strconv.Atoi(strings.TrimPrefix(query, "+")); err == nil {
		owners := country.FromDialCode(dial)
		if len(owners) == 0 {
			return fmt.Errorf("no country uses dial code +%d", dial)
		}
		if outputFormat(cmd) == "json" {
			return json.NewEncoder(os.Stdout).Encode(owners)
		}
		for _, c := range owners {
			printCountry(c)
		}
		return nil
	}

	var c country.Country
	var ok bool
	switch len(query) {
	case 2:
		c, ok = country.FromAlpha2(query)
	case 3:
		c, ok = country.FromAlpha3(query)
	}
	if !ok {
		c, ok = country.FromName(query)
	}
	if !ok {
		return hint(fmt.Errorf("no country matches %q", query),
			"refdata country list",
		)
	}

	if outputFormat(cmd) == "json" {
		return json.NewEncoder(os.Stdout).Encode(c)
	}
	printCountry(c)
	return nil
}

func printCountry(c country.Country) {
	fmt.Println(ui.StyleBoldCyan.Render(fmt.Sprintf("%s  %s", c.Flag(), c.Name)))
	fmt.Printf("  Alpha-2:    %s\n", c.Alpha2)
	fmt.Printf("  Alpha-3:    %s\n", c.Alpha3)
	fmt.Printf("  Dial code:  +%d\n", c.DialCode)
	fmt.Printf("  Currency:   %s\n", c.Currency)
}

func runCountryList(cmd *cobra.Command, args []string) error {
	countries := country.All()

	if outputFormat(cmd) == "json" {
		return json.NewEncoder(os.Stdout).Encode(countries)
	}

	cols := []string{"Alpha-2", "Alpha-3", "Name", "Dial", "Currency"}
	rows := make([][]string, len(countries))
	for i, c := range countries {
		rows[i] = []string{c.Alpha2, c.Alpha3, c.Name, "+" + strconv.Itoa(c.DialCode), c.Currency}
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
	fmt.Printf("\n%d country(ies)\n", len(countries))
	return nil
}
