package llm_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"nomadtrip/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideTravelSearchClient)

// CompletionConfig holds configuration for completion clients
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a completion client based on environment variables
func ProvideCompletionClient(lc fx.Lifecycle) (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	client, err := utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() error {
		return client.Close()
	}))
	return client, nil
}

// ProvideTravelSearchClient creates the aggregator lookup client. Missing
// keys are fine, the client degrades to empty results.
func ProvideTravelSearchClient() utils.TravelSearchInterface {
	return utils.NewTravelSearchClient(os.Getenv("SERPAPI_KEY"), os.Getenv("RAPIDAPI_KEY"))
}

// getCompletionConfig reads configuration from environment variables
func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("COMPLETION_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
