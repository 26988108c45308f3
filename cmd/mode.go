package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/ctvaccess/captvty-bridge/internal/output"
)

var modeCmd = &cobra.Command{
	Use:   "mode [direct|rattrapage|telechargement]",
	Short: "Show or switch Captvty's operating mode",
	Long: `Without an argument, report which mode Captvty is currently in. With one,
click the matching mode button in the left-hand column.

The mode is always derived from on-screen state; the user may have switched
modes with the mouse since the last invocation.

Examples:
  captvty-bridge mode
  captvty-bridge mode rattrapage`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMode,
}

func init() {
	rootCmd.AddCommand(modeCmd)
}

func runMode(cmd *cobra.Command, args []string) error {
	b, err := newBridge()
	if err != nil {
		return err
	}
	defer b.Close()

	if len(args) == 1 {
		target, err := parseAppMode(args[0])
		if err != nil {
			return err
		}
		if err := b.session.SelectMode(target); err != nil {
			return err
		}
		return output.Print(output.ModeResult{Mode: target.String()})
	}

	mode, err := b.session.AppMode()
	if err != nil {
		return err
	}
	buttons, err := b.resolver.ModeButtons()
	if err != nil {
		return output.Print(output.ModeResult{Mode: mode.String()})
	}
	names := make([]string, 0, len(buttons))
	for name := range buttons {
		names = append(names, name)
	}
	sort.Strings(names)
	return output.Print(output.ModeResult{Mode: mode.String(), Buttons: names})
}
