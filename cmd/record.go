package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/output"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Schedule a recording on a direct-mode channel",
	Long: `Fill Captvty's recording dialog for the named channel and the given time
window. Captvty must be in direct mode. Times use "` + dialog.TimeLayout + `".

Examples:
  captvty-bridge record --channel "TF1" --from "24/12/2026 20:50" --to "24/12/2026 22:30"`,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().String("channel", "", "Channel name, matched exactly")
	recordCmd.Flags().String("from", "", "Recording start (dd/mm/yyyy hh:mm)")
	recordCmd.Flags().String("to", "", "Recording end (dd/mm/yyyy hh:mm)")
	recordCmd.MarkFlagRequired("channel")
	recordCmd.MarkFlagRequired("from")
	recordCmd.MarkFlagRequired("to")
}

func runRecord(cmd *cobra.Command, args []string) error {
	channel, _ := cmd.Flags().GetString("channel")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	win, err := parseWindow(from, to)
	if err != nil {
		return err
	}
	if channel == "" {
		return fmt.Errorf("--channel must not be empty")
	}

	b, err := newBridge()
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.session.ScheduleRecording(cmd.Context(), channel, win); err != nil {
		return err
	}

	return output.Print(output.RecordResult{
		Channel: channel,
		Start:   win.Start.Format(dialog.TimeLayout),
		End:     win.End.Format(dialog.TimeLayout),
	})
}
