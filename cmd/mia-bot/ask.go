package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mercellinas/mia-bot/internal/app/conversation"
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Answer one prompt from the terminal, as the bot would",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		streamer, err := newStreamer(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		reply, err := conversation.NewService(streamer).GenerateReply(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}
