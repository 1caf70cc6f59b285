package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
	"github.com/crystaldolphin/toolbridge/internal/shared/llmutils"
	"github.com/crystaldolphin/toolbridge/internal/tools"
)

const (
	DefaultMaxRounds    = 10
	DefaultModelTimeout = 120 * time.Second
)

// Result is the outcome of a finished run.
type Result struct {
	Answer     string
	Rounds     int
	ToolsUsed  []string
	Transcript schema.Transcript
}

// Orchestrator drives the model ↔ tool loop for one request at a time. It is
// safe for concurrent use: runs share only the read-only registry.
type Orchestrator struct {
	gateway    schema.Gateway
	registry   *tools.Registry
	dispatcher *tools.Dispatcher
	settings   schema.AgentSettings
	prompt     *ContextBuilder
}

// NewOrchestrator wires the loop. Zero settings fall back to the defaults.
func NewOrchestrator(gateway schema.Gateway, registry *tools.Registry, dispatcher *tools.Dispatcher, settings schema.AgentSettings, prompt *ContextBuilder) *Orchestrator {
	if settings.MaxRounds <= 0 {
		settings.MaxRounds = DefaultMaxRounds
	}
	if settings.ModelTimeout <= 0 {
		settings.ModelTimeout = DefaultModelTimeout
	}
	return &Orchestrator{
		gateway:    gateway,
		registry:   registry,
		dispatcher: dispatcher,
		settings:   settings,
		prompt:     prompt,
	}
}

// Settings returns the effective settings.
func (o *Orchestrator) Settings() schema.AgentSettings { return o.settings }

// Run validates input, then alternates model calls and tool dispatch until
// the model answers without tool calls. The caller's transcript is never
// modified.
func (o *Orchestrator) Run(ctx context.Context, input schema.Transcript) (Result, error) {
	return o.RunWithProgress(ctx, input, nil)
}

// RunWithProgress is Run with a callback receiving interim assistant text
// and a hint for each round of tool calls.
func (o *Orchestrator) RunWithProgress(ctx context.Context, input schema.Transcript, onProgress func(string)) (Result, error) {
	if err := Validate(input); err != nil {
		return Result{}, err
	}

	res := Result{Transcript: input.Clone()}
	if o.prompt != nil {
		o.prompt.Apply(&res.Transcript)
	}
	functions := tools.FunctionSchemas(o.registry)

	for round := 1; ; round++ {
		if round > o.settings.MaxRounds {
			slog.Warn("Round limit reached", "limit", o.settings.MaxRounds, "tools", len(res.ToolsUsed))
			return res, &schema.RoundLimitExceededError{Limit: o.settings.MaxRounds}
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Rounds = round

		slog.Info("Model round", "round", round, "messages", res.Transcript.Len(), "model", o.gateway.Model())
		msg, err := o.converse(ctx, res.Transcript, functions)
		if err != nil {
			slog.Error("Model gateway error", "round", round, "err", err)
			return res, err
		}
		res.Transcript.AddAssistant(msg)

		if !msg.HasToolCalls() {
			res.Answer = Finalize(msg.Content)
			return res, nil
		}

		if onProgress != nil {
			if clean := Finalize(msg.Content); clean != "" {
				onProgress(clean)
			}
			onProgress(llmutils.ToolHint(msg.ToolCalls))
		}

		outcomes := o.dispatcher.ExecuteAll(ctx, msg.ToolCalls)
		for _, out := range outcomes {
			res.Transcript.AddToolResult(out.CallID, out.Name, out.Content)
			res.ToolsUsed = append(res.ToolsUsed, out.Name)
		}
	}
}

// converse bounds one gateway call by the model timeout. A deadline hit
// while the gateway did not classify the failure still counts as the
// endpoint being unavailable.
func (o *Orchestrator) converse(ctx context.Context, t schema.Transcript, functions []schema.FunctionSchema) (schema.Message, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.settings.ModelTimeout)
	defer cancel()

	msg, err := o.gateway.Converse(callCtx, t, functions)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) &&
			!errors.Is(err, schema.ErrGatewayUnavailable) &&
			!errors.Is(err, schema.ErrGatewayProtocol) {
			return schema.Message{}, &schema.GatewayUnavailableError{Endpoint: o.gateway.Model(), Err: err}
		}
		return schema.Message{}, err
	}
	return msg, nil
}
