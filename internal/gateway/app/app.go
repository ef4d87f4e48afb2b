package app

import (
	"context"
	"fmt"
	"log"

	"tripmate/internal/conversation"
	"tripmate/internal/gateway/config"
	"tripmate/internal/gateway/handler"
	"tripmate/internal/gateway/server"
	"tripmate/internal/llm"
	"tripmate/internal/planner"
)

type App struct {
	server    *server.Server
	llmClient llm.Client
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	client, err := newCompletionClient(cfg)
	if err != nil {
		return nil, err
	}
	client = llm.Wrap(client, llm.WithLogging(nil))

	plannerSvc := planner.New(client, store, cfg.LLM.MaxTokens, cfg.LLM.Temperature)

	chatHandler := handler.NewChatHandler(plannerSvc)
	conversationHandler := handler.NewConversationHandler(store)
	catalogHandler := handler.NewCatalogHandler()

	router := server.NewRouter(chatHandler, conversationHandler, catalogHandler)
	srv := server.New(cfg.Port, cfg.Env, router)

	return &App{server: srv, llmClient: client}, nil
}

func newStore(cfg *config.Config) (conversation.Store, error) {
	if cfg.DatabaseURL == "" {
		log.Printf("conversation store: in-memory")
		return conversation.NewMemoryStore(), nil
	}
	pg, err := conversation.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres store: %w", err)
	}
	if err := pg.EnsureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	log.Printf("conversation store: postgres")
	return pg, nil
}

func newCompletionClient(cfg *config.Config) (llm.Client, error) {
	switch cfg.LLM.Provider {
	case "openai":
		return llm.NewOpenAIClient(cfg.LLM.OpenAIKey, cfg.LLM.OpenAIModel), nil
	case "gemini":
		return llm.NewGeminiClient(context.Background(), cfg.LLM.GeminiKey, cfg.LLM.GeminiModel)
	case "fake":
		log.Printf("LLM provider: fake (no API key configured)")
		return llm.NewFakeClient(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.llmClient.Close(); err != nil {
		log.Printf("closing LLM client: %v", err)
	}
	return a.server.Shutdown(ctx)
}
