package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ctvaccess/captvty-bridge/internal/output"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Pick a channel and act on it",
	Long: `Read the channel column for the current mode and open an accessible picker.
In direct mode, picking a channel offers live viewing (internal or external
player) or scheduling a recording. In rattrapage mode it engages the channel
and opens the program list.

With --list, just print the channel names and exit without touching Captvty.

Examples:
  captvty-bridge channels
  captvty-bridge channels --list --format json`,
	RunE: runChannels,
}

func init() {
	rootCmd.AddCommand(channelsCmd)
	channelsCmd.Flags().Bool("list", false, "Print the channel list without interacting")
}

func runChannels(cmd *cobra.Command, args []string) error {
	b, err := newBridge()
	if err != nil {
		return err
	}
	defer b.Close()

	listOnly, _ := cmd.Flags().GetBool("list")
	if !listOnly {
		return b.session.ListChannels(cmd.Context())
	}

	mode, err := b.session.AppMode()
	if err != nil {
		return err
	}
	channels, err := b.resolver.ChannelList()
	if err != nil {
		return err
	}

	result := output.ChannelsResult{
		Mode:     mode.String(),
		TS:       time.Now().Unix(),
		Channels: make([]output.Channel, 0, len(channels)),
	}
	for _, ch := range channels {
		entry := output.Channel{Name: ch.Name()}
		if rect, err := ch.Location(); err == nil {
			entry.Bounds = [4]int{rect.Left, rect.Top, rect.Width, rect.Height}
		}
		result.Channels = append(result.Channels, entry)
	}
	return output.Print(result)
}
