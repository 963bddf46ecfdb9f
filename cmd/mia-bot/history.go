package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	firestorestore "github.com/mercellinas/mia-bot/internal/adapters/storage/firestore"
	memstore "github.com/mercellinas/mia-bot/internal/adapters/storage/memory"
	"github.com/mercellinas/mia-bot/internal/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [user-id]",
	Short: "Print chat history exported to Firestore",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.GCPProjectID == "" {
			return fmt.Errorf("MIA_GCP_PROJECT must be set to read exported history")
		}

		store, err := firestorestore.NewStore(cmd.Context(), cfg.GCPProjectID)
		if err != nil {
			return err
		}
		defer store.Close()

		var logs []domain.UserLog
		if len(args) == 1 {
			ul, err := store.GetHistory(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return err
			}
			logs = append(logs, ul)
		} else {
			logs, err = store.ListHistories(cmd.Context(), historyLimit)
			if err != nil {
				return err
			}
		}

		writeHistory(cmd.OutOrStdout(), logs)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of users to print (0 = all)")
}

// writeHistory prints logs in the same layout as the shutdown history file.
func writeHistory(w io.Writer, logs []domain.UserLog) {
	for _, ul := range logs {
		fmt.Fprintf(w, "User ID: %s\n", ul.UserID)
		for _, e := range ul.Entries {
			fmt.Fprintf(w, "%s: %s\n", e.Timestamp.Format(memstore.TimestampLayout), e.Text)
		}
		fmt.Fprintln(w)
	}
}
