// Copyright 2025 Talentsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/talentsift/talentsift"
	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/eval"
	"github.com/talentsift/talentsift/httpapi"
	"github.com/talentsift/talentsift/ingestion"
	"github.com/talentsift/talentsift/recommend"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "talentsift",
		Usage: "Assessment recommendation engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Build the catalog store from cleaned assessment JSON",
				Action: ingestCommand,
				Flags: append(storeFlags(), append(aiFlags(),
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the cleaned catalog JSON file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of assessments to embed per model call",
						Value: 16,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 500 * time.Millisecond,
					})...),
			},
			{
				Name:   "serve",
				Usage:  "Serve recommendations over HTTP",
				Action: serveCommand,
				Flags: append(storeFlags(), append(aiFlags(), engineFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "HTTP listen address",
						Value:   ":8080",
					})...),
			},
			{
				Name:      "recommend",
				Usage:     "Print recommendations for a single query",
				ArgsUsage: "<query text>",
				Action:    recommendCommand,
				Flags:     append(storeFlags(), append(aiFlags(), engineFlags())...),
			},
			{
				Name:   "evaluate",
				Usage:  "Measure Recall@K against a labeled dataset",
				Action: evaluateCommand,
				Flags: append(storeFlags(), append(aiFlags(), engineFlags(),
					&cli.StringFlag{
						Name:     "dataset",
						Usage:    "Path to the labeled dataset JSON file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "k",
						Usage: "K value for recall calculation",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Write the full evaluation report to this file",
					})...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to the catalog store directory",
			Required: true,
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
		&cli.StringFlag{
			Name:  "rerank-model",
			Usage: "Chat model name used for reranking",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token for the AI services",
			EnvVars: []string{"TALENTSIFT_AI_TOKEN"},
		},
	}
}

func engineFlags() cli.Flag {
	return &cli.BoolFlag{
		Name:  "rerank",
		Usage: "Enable LLM reranking of retrieved candidates",
	}
}

func aiConfigFromFlags(c *cli.Context) (*ai.Config, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithRerankModel(c.String("rerank-model")),
		ai.WithToken(c.String("token")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return cfg, nil
}

func openSystem(c *cli.Context) (*talentsift.System, error) {
	cfg, err := aiConfigFromFlags(c)
	if err != nil {
		return nil, err
	}
	return talentsift.NewSystem(c.String("db"), talentsift.WithAIConfig(cfg))
}

func engineOptions(c *cli.Context) []recommend.Option {
	var opts []recommend.Option
	if c.Bool("rerank") {
		opts = append(opts, recommend.WithReranking(recommend.DefaultRerankTimeout))
	}
	return opts
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	assessments, err := ingestion.LoadCatalog(c.String("catalog"))
	if err != nil {
		return err
	}

	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	pipeline, err := system.NewIngestionPipeline(
		ingestion.WithBatchSize(c.Int("batch-size")),
		ingestion.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	written, err := pipeline.Run(ctx, assessments)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %d assessments to %s\n", written, c.String("db"))
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	server := httpapi.NewServer(c.String("addr"), slog.Default())

	// Build the engine while the server can already answer health
	// probes with a loading status.
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe(ctx)
	}()

	engine, err := system.NewEngine(ctx, engineOptions(c)...)
	if err != nil {
		stop()
		<-errCh
		return fmt.Errorf("failed to build engine: %w", err)
	}
	server.SetEngine(engine)

	return <-errCh
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	engine, err := system.NewEngine(ctx, engineOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	recommendations, err := engine.Recommend(ctx, query)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(recommendations)
}

func evaluateCommand(c *cli.Context) error {
	ctx := context.Background()

	dataset, err := eval.LoadDataset(c.String("dataset"))
	if err != nil {
		return err
	}

	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	engine, err := system.NewEngine(ctx, engineOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	evaluator, err := eval.NewEvaluator(engine, c.Int("k"), slog.Default())
	if err != nil {
		return err
	}

	report, err := evaluator.Run(ctx, dataset)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Queries: %d\n", report.Queries)
	fmt.Fprintf(os.Stderr, "Mean Recall@%d (final):     %.4f\n", report.K, report.MeanRecall)
	fmt.Fprintf(os.Stderr, "Mean Recall@%d (retrieval): %.4f\n", report.K, report.MeanRetrievalRecall)

	if output := c.String("output"); output != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", output)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
