package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temboplus/refdata/country"
	"github.com/temboplus/refdata/internal/cli/ui"
	"github.com/temboplus/refdata/phone"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <number>",
	Short: "Parse and validate a phone number",
	Long: `Parse a phone number, validate it and print every standard rendering
plus the owning country, the number type and, for Tanzanian and Kenyan
mobile numbers, the operator and its mobile-money service.

International input ("+255...") needs no flags. National input
("0712345678") needs --country.`,
	Args: cobra.ExactArgs(1),
	RunE: runPhone,
}

func init() {
	phoneCmd.Flags().String("country", "", "ISO 3166-1 alpha-2 hint for national input and shared dial codes")
	phoneCmd.Flags().Bool("fail-on-ambiguity", false, "Fail when a dial code is shared and --country does not settle it")
}

// phoneOperator and phoneReport shape the JSON output.
type phoneOperator struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MobileMoney string `json:"mobileMoney"`
}

type phoneReport struct {
	E164          string         `json:"e164"`
	International string         `json:"international"`
	National      string         `json:"national"`
	Compact       string         `json:"compact"`
	RFC3966       string         `json:"rfc3966"`
	Country       string         `json:"country"`
	DialCode      int            `json:"dialCode"`
	Type          string         `json:"type"`
	Operator      *phoneOperator `json:"operator,omitempty"`
}

func runPhone(cmd *cobra.Command, args []string) error {
	countryHint, _ := cmd.Flags().GetString("country")
	strict, _ := cmd.Flags().GetBool("fail-on-ambiguity")

	n, err := phone.ParseWithOptions(args[0], phone.ParseOptions{
		DefaultCountry:  countryHint,
		FailOnAmbiguity: strict,
	})
	var ambErr *phone.AmbiguousDialCodeError
	if errors.As(err, &ambErr) {
		suggestions := make([]string, 0, len(ambErr.Candidates))
		for _, cc := range ambErr.Candidates {
			suggestions = append(suggestions, fmt.Sprintf("refdata phone %s --country %s", args[0], cc))
		}
		return hint(err, suggestions...)
	}
	if err != nil {
		if countryHint == "" && !hasPlusPrefix(args[0]) {
			return hint(err, fmt.Sprintf("refdata phone %s --country TZ   # national input needs a country", args[0]))
		}
		return err
	}

	report := phoneReport{
		E164:          n.E164(),
		International: n.Format(phone.International),
		National:      n.Format(phone.National),
		Compact:       n.Format(phone.Compact),
		RFC3966:       n.Format(phone.RFC3966),
		Country:       n.Country(),
		DialCode:      n.DialCode(),
		Type:          n.Type().String(),
	}
	if op, ok := n.Operator(); ok {
		report.Operator = &phoneOperator{ID: op.ID, Name: op.Name, MobileMoney: op.MobileMoney}
	}

	if outputFormat(cmd) == "json" {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	heading := report.E164
	if c, ok := country.FromAlpha2(report.Country); ok {
		heading = fmt.Sprintf("%s  %s %s", report.E164, c.Flag(), c.Name)
	}
	fmt.Println(ui.StyleBoldCyan.Render(heading))
	fmt.Printf("  International:  %s\n", report.International)
	fmt.Printf("  National:       %s\n", report.National)
	fmt.Printf("  Compact:        %s\n", report.Compact)
	fmt.Printf("  RFC 3966:       %s\n", report.RFC3966)
	fmt.Printf("  Dial code:      +%d\n", report.DialCode)
	fmt.Printf("  Type:           %s\n", report.Type)
	if report.Operator != nil {
		fmt.Printf("  Operator:       %s\n", report.Operator.Name)
		fmt.Printf("  Mobile money:   %s\n", report.Operator.MobileMoney)
	}
	return nil
}

func hasPlusPrefix(raw string) bool {
	for _, r := range raw {
		if r == ' ' || r == '\t' {
			continue
		}
		return r == '+'
	}
	return false
}
