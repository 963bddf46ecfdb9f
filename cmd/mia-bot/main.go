package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mercellinas/mia-bot/internal/adapters/llm"
	"github.com/mercellinas/mia-bot/internal/config"
	"github.com/mercellinas/mia-bot/internal/domain"
	"github.com/mercellinas/mia-bot/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "mia-bot",
	Short: "MIA, the Mercellinas Hair stylist bot",
	Long: `MIA answers hair, wig and nail questions on Telegram, shows the wig
catalog and always hands out the salon's real contact details.

Run "mia-bot serve" to start the bot.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, askCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the environment and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	observability.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// newStreamer picks the inference backend from the config.
func newStreamer(ctx context.Context, cfg *config.Config) (domain.CompletionStreamer, error) {
	log := observability.Logger()

	switch cfg.Provider {
	case config.ProviderMock:
		log.Info("using mock LLM client")
		return llm.NewMockLLM(), nil
	case config.ProviderGemini:
		log.Info("using Gemini LLM client", "project", cfg.GCPProjectID)
		return llm.NewGeminiClient(ctx, llm.GeminiConfig{
			Project:   cfg.GCPProjectID,
			Location:  cfg.GCPLocation,
			APIKey:    cfg.GeminiAPIKey,
			ModelName: cfg.ModelName,
		})
	default:
		log.Info("using OpenAI-compatible LLM client", "base_url", cfg.LLMBaseURL)
		return llm.NewOpenAIClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.ModelName)
	}
}
