package research

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/resilience"
)

// NoResponseText is returned when the model produced no text.
const NoResponseText = "No response text available."

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrEmptyContent     = errors.New("content is required")
)

// Request is the body of POST /api/research/process.
type Request struct {
	Content    string `json:"content"`
	Operations string `json:"operations"`
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service turns research requests into model prompts and returns the
// model's text, sanitized so the panel can render it as markup.
type Service struct {
	generator Generator
	prompts   Prompts
	breaker   *resilience.Breaker
	policy    *bluemonday.Policy
	logger    *logging.Logger
	metrics   *monitoring.Metrics
}

// Options configures a Service. Zero values select defaults.
type Options struct {
	Prompts Prompts
	Breaker *resilience.Breaker
	Logger  *logging.Logger
	Metrics *monitoring.Metrics
}

// NewService creates a research service backed by generator.
func NewService(generator Generator, opts Options) *Service {
	if opts.Prompts == nil {
		opts.Prompts = DefaultPrompts()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Breaker == nil {
		opts.Breaker = resilience.New("generator", resilience.Settings{})
	}
	return &Service{
		generator: generator,
		prompts:   opts.Prompts,
		breaker:   opts.Breaker,
		policy:    bluemonday.UGCPolicy(),
		logger:    opts.Logger.Named("research"),
		metrics:   opts.Metrics,
	}
}

// Operations lists the operations the service accepts.
func (s *Service) Operations() []string {
	return s.prompts.Operations()
}

// BuildPrompt prefixes the content with the operation's prompt.
func (s *Service) BuildPrompt(req Request) (string, error) {
	if strings.TrimSpace(req.Content) == "" {
		return "", ErrEmptyContent
	}
	prefix, ok := s.prompts[req.Operations]
	if !ok {
		return "", fmt.Errorf("%w: Unknown argument: %s", ErrUnknownOperation, req.Operations)
	}
	return prefix + " " + req.Content, nil
}

// Process runs one request through the model.
func (s *Service) Process(ctx context.Context, req Request) (string, error) {
	prompt, err := s.BuildPrompt(req)
	if err != nil {
		return "", err
	}

	op := req.Operations
	timer := monitoring.NewTimer(s.metrics, op)

	text, err := resilience.Call(s.breaker, func() (string, error) {
		return s.generator.Generate(ctx, prompt)
	})
	if err != nil {
		timer.Stop(monitoring.OutcomeError)
		s.logger.Error("Generation failed",
			zap.String("operation", op),
			zap.String("breaker", s.breaker.State().String()),
			zap.Error(err),
		)
		return "", fmt.Errorf("generate %s: %w", op, err)
	}

	timer.Stop(monitoring.OutcomeSuccess)
	if strings.TrimSpace(text) == "" {
		return NoResponseText, nil
	}
	return s.policy.Sanitize(text), nil
}
