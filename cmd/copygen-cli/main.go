package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"copygen/internal/adapters/assemblyai"
	"copygen/internal/adapters/downloader"
	"copygen/internal/adapters/llm"
	"copygen/internal/adapters/localstore"
	"copygen/internal/adapters/youtube"
	"copygen/internal/adapters/ytdlp"
	"copygen/internal/config"
	"copygen/internal/copytext"
	"copygen/internal/core/domain"
	"copygen/internal/core/ports"
	"copygen/internal/service"
	"copygen/internal/summary"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	url := flag.String("url", "", "YouTube video URL to process")
	template := flag.String("template", copytext.TemplateFacebookAd, "Copy template: "+strings.Join(copytext.TemplateIDs(), ", "))
	tone := flag.String("tone", "", "Optional tone hint for copy generation")
	audience := flag.String("audience", "", "Optional audience hint for copy generation")
	quick := flag.Bool("quick", false, "Skip audio/transcription and generate copy from the title alone")
	dataDir := flag.String("data-dir", "", "Directory for temporary audio artifacts (overrides COPYGEN_DATA_DIR)")
	flag.Parse()

	if *url == "" {
		fmt.Println("Usage: copygen-cli -url <video-url> [-template <id>] [-tone <tone>] [-audience <audience>] [-quick]")
		fmt.Println("\nExample:")
		fmt.Println("  copygen-cli -url https://www.youtube.com/watch?v=dQw4w9WgXcQ -template facebook-ad")
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg := config.FromEnv()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger.Println("=== copygen ===")
	logger.Printf("URL: %s", *url)
	logger.Printf("Template: %s", *template)
	if !cfg.HasTranscription() {
		logger.Println("ASSEMBLYAI_API_KEY not set: transcription disabled, title-only flow")
	}
	if !cfg.HasGeneration() {
		logger.Println("OPENAI_API_KEY not set: using local fallback copy and summaries")
	}

	pipeline := service.New(buildDeps(cfg, logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Println("received interrupt signal, cancelling...")
		cancel()
	}()

	hints := domain.CopyHints{Tone: *tone, Audience: *audience}

	var result *domain.PipelineResult
	var err error
	if *quick {
		result, err = pipeline.RunQuick(ctx, *url, *template, hints)
	} else {
		result, err = pipeline.Run(ctx, *url, *template, hints)
	}
	if err != nil {
		var perr *domain.PipelineError
		if errors.As(err, &perr) {
			logger.Printf("run failed in %s phase: %v", perr.Phase, perr.Err)
			fmt.Fprintln(os.Stderr, perr.Message)
		} else {
			logger.Printf("run failed: %v", err)
		}
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}

// buildDeps wires the pipeline from configuration. Components backed by
// unconfigured external services are left nil or built with their
// fallback-only behavior.
func buildDeps(cfg config.Config, logger *log.Logger) service.Deps {
	var transcriber ports.Transcriber
	if cfg.HasTranscription() {
		transcriber = assemblyai.NewClient(cfg.AssemblyAIKey, "", cfg.PollInterval, cfg.PollMaxAttempts, logger)
	}

	var completer ports.ChatCompleter
	if cfg.HasGeneration() {
		completer = llm.NewClient(cfg.OpenAIKey, cfg.OpenAIModel)
	}

	return service.Deps{
		Metadata:            youtube.NewOEmbedFetcher("", logger),
		Prober:              ytdlp.NewProber(cfg.YtDlpPath),
		Downloader:          downloader.NewHTTPDownloader(),
		Store:               localstore.NewArtifactStore(cfg.DataDir),
		Transcriber:         transcriber,
		Summarizer:          summary.NewSummarizer(completer, logger),
		Generator:           copytext.NewGenerator(completer, logger),
		MaxVideoDurationSec: cfg.MaxVideoDurationSec,
		Logger:              logger,
	}
}
