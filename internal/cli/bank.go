package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/temboplus/refdata/bank"
	"github.com/temboplus/refdata/country"
	"github.com/temboplus/refdata/internal/cli/ui"
)

var bankCmd = &cobra.Command{
	Use:   "bank <swift-or-name>",
	Short: "Look up a bank by SWIFT code or name",
	Long: `Look up a bank in the registry by SWIFT/BIC code or by name, and
check the SWIFT code structure against ISO 9362.

  refdata bank CORUTZTZ
  refdata bank "CRDB Bank"
  refdata bank list --country TZ`,
	Args: cobra.ExactArgs(1),
	RunE: runBank,
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered banks",
	RunE:  runBankList,
}

func init() {
	bankListCmd.Flags().String("country", "", "Only banks of this ISO 3166-1 alpha-2 country")
	bankCmd.AddCommand(bankListCmd)
}

func runBank(cmd *cobra.Command, args []string) error {
	query := args[0]

	b, ok := bank.FromSWIFT(query)
	if !ok {
		b, ok = bank.FromName(query)
	}
	if !ok {
		if err := bank.ValidateSWIFT(query); err == nil {
			return fmt.Errorf("%q is a well-formed SWIFT code but not in the registry", query)
		}
		return hint(fmt.Errorf("no bank matches %q", query),
			"refdata bank list               # see every registered bank",
			"refdata bank list --country TZ  # narrow to one country",
		)
	}

	if outputFormat(cmd) == "json" {
		return json.NewEncoder(os.Stdout).Encode(b)
	}

	heading := b.Name
	if c, ok := country.FromAlpha2(b.Country); ok {
		heading = fmt.Sprintf("%s  %s", b.Name, c.Flag())
	}
	fmt.Println(ui.StyleBoldCyan.Render(heading))
	fmt.Printf("  Short name:  %s\n", b.ShortName)
	fmt.Printf("  SWIFT:       %s\n", b.SWIFT)
	fmt.Printf("  Country:     %s\n", b.Country)
	return nil
}

func runBankList(cmd *cobra.Command, args []string) error {
	cc, _ := cmd.Flags().GetString("country")

	banks := bank.All()
	if cc != "" {
		banks = bank.ByCountry(cc)
	}
	if len(banks) == 0 {
		return fmt.Errorf("no banks registered for %q", cc)
	}

	if outputFormat(cmd) == "json" {
		return json.NewEncoder(os.Stdout).Encode(banks)
	}

	cols := []string{"SWIFT", "Name", "Short", "Country"}
	rows := make([][]string, len(banks))
	for i, b := range banks {
		rows[i] = []string{b.SWIFT, b.Name, b.ShortName, b.Country}
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
	fmt.Printf("\n%d bank(s)\n", len(banks))
	return nil
}
