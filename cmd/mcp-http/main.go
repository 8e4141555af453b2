package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/voxtools/deepgram-mcp-server/internal/app"
	"github.com/voxtools/deepgram-mcp-server/internal/deepgram"
	"github.com/voxtools/deepgram-mcp-server/internal/logging"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", envOr("MCP_HTTP_ADDR", ":3333"), "MCP HTTP listen address (e.g., :3333)")
	model := flag.String("model", envOr("DEEPGRAM_TTS_MODEL", deepgram.DefaultModel), "Deepgram TTS voice model")
	baseURL := flag.String("base-url", envOr("DEEPGRAM_BASE_URL", deepgram.DefaultBaseURL), "Deepgram API base URL")
	outputDir := flag.String("output-dir", envOr("DEEPGRAM_OUTPUT_DIR", ""), "Directory for generated audio files (default: working directory)")
	flag.Parse()

	apiKey := os.Getenv("DEEPGRAM_API_KEY")
	if apiKey == "" {
		log.Fatal("DEEPGRAM_API_KEY environment variable not set")
	}

	client, err := deepgram.NewClient(deepgram.Config{
		APIKey:  apiKey,
		BaseURL: *baseURL,
		Model:   *model,
	})
	if err != nil {
		log.Fatalf("Deepgram client error: %v", err)
	}

	logger := logging.New("mcp-http")
	if err := app.RunMCPHTTP(*httpAddr, client, *outputDir, logger); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
