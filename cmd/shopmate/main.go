// Package main provides the terminal shopping assistant. It wires the
// product catalog tool, the Gemini provider, and the chat UI together.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"google.golang.org/genai"

	"github.com/Cyclone1070/shopmate/internal/catalog"
	"github.com/Cyclone1070/shopmate/internal/config"
	"github.com/Cyclone1070/shopmate/internal/orchestrator"
	orchadapter "github.com/Cyclone1070/shopmate/internal/orchestrator/adapter"
	"github.com/Cyclone1070/shopmate/internal/provider/gemini"
	provider "github.com/Cyclone1070/shopmate/internal/provider/models"
	"github.com/Cyclone1070/shopmate/internal/ui"
	uiservices "github.com/Cyclone1070/shopmate/internal/ui/services"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config          *config.Config
	UI              ui.UserInterface
	ProviderFactory func(context.Context) (provider.Provider, error)
	Tools           []orchadapter.Tool
}

func createRealUI() ui.UserInterface {
	channels := ui.NewUIChannels()
	renderer := uiservices.NewGlamourRenderer()
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(channels, renderer, spinnerFactory)
}

func createRealProviderFactory(cfg *config.Config) func(context.Context) (provider.Provider, error) {
	return func(ctx context.Context) (provider.Provider, error) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}

		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		geminiClient := gemini.NewRealGeminiClient(genaiClient)
		return gemini.New(geminiClient, cfg.Model.Name), nil
	}
}

func createTools(cfg *config.Config) []orchadapter.Tool {
	catalogClient := catalog.NewClient(cfg.Catalog.Endpoint, http.DefaultClient)
	return []orchadapter.Tool{
		orchadapter.NewGetProductsAdapter(catalogClient),
	}
}

func main() {
	// Fail fast before the TUI grabs the terminal
	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "Error: GEMINI_API_KEY environment variable is required.")
		fmt.Fprintln(os.Stderr, "Get a key at https://aistudio.google.com/ and export it before running.")
		os.Exit(1)
	}

	// Load configuration (from defaults + ~/.config/shopmate/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	deps := Dependencies{
		Config:          cfg,
		UI:              createRealUI(),
		ProviderFactory: createRealProviderFactory(cfg),
		Tools:           createTools(cfg),
	}

	// The UI manages its own lifecycle via Ctrl+C / Quit messages, so
	// context.Background() is enough for interactive mode.
	runInteractive(context.Background(), deps)
}

func runInteractive(ctx context.Context, deps Dependencies) {
	userInterface := deps.UI

	orchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	// Provider shared between goroutines (GeminiProvider is thread-safe)
	var providerClient provider.Provider
	providerReady := make(chan struct{})

	// Goroutine #1: initialize and run the conversation
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready() // Wait for UI to be ready

		userInterface.WriteStatus("thinking", "Initializing AI...")

		p, err := deps.ProviderFactory(orchCtx)
		if err != nil {
			userInterface.WriteStatus("error", "AI initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error initializing provider: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return // DEGRADED MODE: UI runs but app doesn't start
		}

		providerClient = p
		close(providerReady)

		userInterface.SetModel(p.GetModel())
		userInterface.WriteStatus("ready", "Ready")

		orch := orchestrator.New(deps.Config, providerClient, userInterface, deps.Tools)
		if err := orch.Run(orchCtx); err != nil && orchCtx.Err() == nil {
			userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
			return
		}

		// Session ended normally (exit/quit), shut the UI down
		userInterface.Quit()
	}()

	// Goroutine #2: command handler for /models and model switching
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			select {
			case <-orchCtx.Done():
				return
			case cmd := <-userInterface.Commands():
				switch cmd.Type {
				case "list_models":
					select {
					case <-providerReady:
						models, err := providerClient.ListModels(orchCtx)
						if err != nil {
							userInterface.WriteMessage(fmt.Sprintf("Error listing models: %v", err))
						} else {
							userInterface.WriteModelList(models)
						}
					case <-orchCtx.Done():
						return
					}
				case "switch_model":
					select {
					case <-providerReady:
						model := cmd.Args["model"]
						if err := providerClient.SetModel(model); err != nil {
							userInterface.WriteMessage(fmt.Sprintf("Error switching model: %v", err))
						} else {
							userInterface.SetModel(model)
							userInterface.WriteMessage(fmt.Sprintf("Switched to model: %s", model))
						}
					case <-orchCtx.Done():
						return
					}
				}
			}
		}
	}()

	// Run UI in main thread (blocks until exit)
	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	// UI exited, trigger shutdown
	cancel()
	wg.Wait()
}
