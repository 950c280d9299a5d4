package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/great123-artV/GradeX/internal/logging"
	"github.com/great123-artV/GradeX/internal/store"
)

// LoggingProvider records every call as an LLM request event and a log line.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
	logger log.Logger
}

// WithLogging wraps p. events may be nil, in which case only the log line
// is written.
func WithLogging(p Provider, events store.EventRepo, logger log.Logger) Provider {
	return &LoggingProvider{inner: p, events: events, logger: logging.Component(logger, "llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = resp.Text
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		level.Warn(l.logger).Log("msg", "model call failed", "provider", data.Provider,
			"model", data.Model, "purpose", data.Purpose, "latency_ms", data.LatencyMs, "err", err)
	} else {
		level.Debug(l.logger).Log("msg", "model call", "provider", data.Provider,
			"model", data.Model, "purpose", data.Purpose, "latency_ms", data.LatencyMs,
			"input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	// A failed write never fails the call.
	if l.events != nil {
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
			level.Warn(l.logger).Log("msg", "record model call", "err", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Name() string { return l.inner.Name() }

// serializeRequest renders the request for `gradex llm view`.
func serializeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
