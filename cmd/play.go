package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [share-code]",
	Short: "Start a practice session",
	Long:  "Start a practice session. With a share code, the session opens on that exact problem.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := ""
		if len(args) == 1 {
			code = args[0]
		}
		return runApp(cmd, code)
	},
}
