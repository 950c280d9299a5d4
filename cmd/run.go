package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/great123-artV/GradeX/internal/app"
	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/config"
	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/llm"
	"github.com/great123-artV/GradeX/internal/server"
	"github.com/great123-artV/GradeX/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := newCourseService(st)
	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Courses:    svc,
		Assistant:  newAssistant(cmd.Context(), st, svc),
		SkipSplash: noSplash,
	})
}

func newEngine() grading.Engine {
	return grading.NewEngine(grading.NewClassifier(cfg.BandTable()))
}

func newCourseService(st *store.Store) *courses.Service {
	return courses.NewService(st.CourseRepo(), st.ProfileRepo(), newEngine(), componentLogger("courses"))
}

// newAssistant builds the chat assistant. A model is used when one is
// configured or discoverable; otherwise replies are templated.
func newAssistant(ctx context.Context, st *store.Store, svc *courses.Service) *assistant.Assistant {
	responder := assistant.NewResponder(cfg.BandTable(), rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))

	provider, err := llm.NewProvider(ctx, llmConfig(cfg.LLM), st.EventRepo(), componentLogger("llm"))
	switch {
	case errors.Is(err, llm.ErrDisabled):
		level.Info(logger).Log("msg", "no LLM provider configured, using templated replies")
		provider = nil
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The assistant will answer from templates.")
		provider = nil
	}
	return assistant.New(svc, provider, st.EventRepo(), responder, assistant.DefaultConfig(), logger)
}

// llmConfig overlays the configured LLM settings onto the defaults and
// fills missing keys from the conventional API key variables.
func llmConfig(c config.LLMConfig) llm.Config {
	merged := llm.DefaultConfig().Merge(llm.Config{
		Provider: c.Provider,
		Timeout:  c.Timeout,
		Anthropic: llm.AnthropicConfig{
			APIKey: c.Anthropic.APIKey, Model: c.Anthropic.Model, BaseURL: c.Anthropic.BaseURL,
		},
		OpenAI: llm.OpenAIConfig{
			APIKey: c.OpenAI.APIKey, Model: c.OpenAI.Model, BaseURL: c.OpenAI.BaseURL,
		},
		Gemini: llm.GeminiConfig{
			APIKey: c.Gemini.APIKey, Model: c.Gemini.Model,
		},
		OpenRouter: llm.OpenRouterConfig{
			APIKey: c.OpenRouter.APIKey, Model: c.OpenRouter.Model, BaseURL: c.OpenRouter.BaseURL,
		},
	})
	discovered, _ := merged.Discover(os.Getenv)
	return discovered
}

func serverConfig(c config.ServerConfig) server.Config {
	return server.Config{
		Addr:            c.Addr,
		ChatRateLimit:   c.ChatRateLimit,
		ChatRateWindow:  c.ChatRateWindow,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}
