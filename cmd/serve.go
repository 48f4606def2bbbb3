package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/vivadesk/internal/config"
	"github.com/abhisek/vivadesk/internal/evaluate"
	"github.com/abhisek/vivadesk/internal/interview"
	"github.com/abhisek/vivadesk/internal/llm"
	"github.com/abhisek/vivadesk/internal/server"
	"github.com/abhisek/vivadesk/internal/speech"
	"github.com/abhisek/vivadesk/internal/store"
	"github.com/abhisek/vivadesk/internal/vision"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interview API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "Listen host (overrides VIVA_HOST)")
	serveCmd.Flags().Int("port", 0, "Listen port (overrides VIVA_PORT)")
}

func runServe(cmd *cobra.Command) error {
	cfg := config.FromEnv()
	if h, _ := cmd.Flags().GetString("host"); h != "" {
		cfg.Host = h
	}
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		cfg.Port = p
	}

	if err := cfg.LLM.Validate(); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo())
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var eyes vision.Engine = vision.Disabled{}
	if key := cfg.LLM.Gemini.APIKey; key != "" {
		eyes, err = vision.NewGeminiEngine(ctx, key, cfg.VisionModel, cfg.LLM.Timeout)
		if err != nil {
			return fmt.Errorf("initialize vision engine: %w", err)
		}
	} else {
		log.Warn("screen analysis disabled: VIVA_GEMINI_API_KEY not set")
	}

	var ears speech.Transcriber = speech.Disabled{}
	if key := cfg.LLM.OpenAI.APIKey; key != "" {
		ears, err = speech.NewWhisperTranscriber(key, cfg.LLM.Timeout)
		if err != nil {
			return fmt.Errorf("initialize transcriber: %w", err)
		}
	} else {
		log.Warn("audio transcription disabled: VIVA_OPENAI_API_KEY not set")
	}

	srv := server.New(server.Options{
		Registry:       interview.NewRegistry(),
		Generator:      interview.NewGenerator(provider, cfg.LLM.Timeout),
		Evaluator:      evaluate.NewEvaluator(provider, cfg.LLM.Timeout),
		Vision:         eyes,
		Transcriber:    ears,
		MaxQuestions:   cfg.MaxQuestions,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr(), "provider", cfg.LLM.Provider, "model", provider.ModelID())
		errCh <- httpSrv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
