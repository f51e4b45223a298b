package agent

import (
	"context"
	"fmt"
	"time"

	chromemgo "github.com/philippgille/chromem-go"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/scibound/researchagent/components/embedder"
	"github.com/scibound/researchagent/components/llm"
	"github.com/scibound/researchagent/components/vectordb"
	"github.com/scibound/researchagent/components/vectordb/engines/chromem"
	"github.com/scibound/researchagent/config"
	"github.com/scibound/researchagent/tools"
	"github.com/scibound/researchagent/tools/arxiv"
	"github.com/scibound/researchagent/tools/brave"
	"github.com/scibound/researchagent/tools/calculator"
	"github.com/scibound/researchagent/tools/vectorstore"
	"github.com/scibound/researchagent/tools/webscraper"
)

// Setup carries optional infrastructure overrides for FromConfig.
type Setup struct {
	logger   *zap.Logger
	engine   vectordb.Engine
	embedder embedder.Embedder
}

type SetupOption func(*Setup)

func SetupWithLogger(logger *zap.Logger) SetupOption {
	return func(s *Setup) {
		s.logger = logger
	}
}

func SetupWithVectorEngine(engine vectordb.Engine) SetupOption {
	return func(s *Setup) {
		s.engine = engine
	}
}

func SetupWithEmbedder(e embedder.Embedder) SetupOption {
	return func(s *Setup) {
		s.embedder = e
	}
}

// FromConfig assembles a ready to use agent: model client, the full
// tool set, and the registry. Tools whose credentials or dependencies
// are missing register as unavailable instead of failing setup.
func FromConfig(ctx context.Context, cfg *config.Config, opts ...SetupOption) (*Agent, error) {
	setup := new(Setup)
	for _, opt := range opts {
		opt(setup)
	}
	if setup.logger == nil {
		setup.logger = zap.NewNop()
	}

	provider, err := llm.NewProvider(ctx, cfg.Provider, cfg.APIKey(), cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("model provider: %w", err)
	}
	client := llm.NewClient(provider,
		llm.ClientWithLogger(setup.logger),
		llm.ClientWithTimeout(time.Duration(cfg.Timeout)*time.Second),
		llm.ClientWithMaxRetries(cfg.MaxRetries),
	)

	if setup.embedder == nil && cfg.OpenAIAPIKey != "" {
		setup.embedder = embedder.NewOpenAI(openai.NewClient(cfg.OpenAIAPIKey), "")
	}
	if setup.engine == nil && setup.embedder != nil {
		setup.engine = chromem.New(chromemgo.NewDB())
	}

	registry := tools.NewRegistry([]tools.Tool{
		arxiv.New(),
		brave.New(brave.WithAPIKey(cfg.BraveAPIKey)),
		calculator.New(),
		vectorstore.New(
			vectorstore.WithEmbedder(setup.embedder),
			vectorstore.WithEngine(setup.engine),
			vectorstore.WithCollection(cfg.VectorCollection),
			vectorstore.WithThreshold(cfg.ConfidenceThreshold),
		),
		webscraper.New(),
	}, tools.RegistryWithLogger(setup.logger))

	return New(client, registry, WithLogger(setup.logger))
}
