package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/validkit/validkit/pkg/batch"
	"github.com/validkit/validkit/pkg/config"
	"github.com/validkit/validkit/pkg/logger"
	"github.com/validkit/validkit/pkg/validate"
)

type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Validation validate.Config
}

func main() {
	csvIn := flag.String("csv", "", "convert this CSV file to JSON instead of running the validation demo")
	jsonOut := flag.String("out", "products.json", "output path for the converted JSON")
	flag.Parse()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "validkit"))
	logger.SetAsDefault(log)

	ctx := context.Background()

	if *csvIn != "" {
		runConversion(ctx, log, *csvIn, *jsonOut)
		return
	}

	runDemo(ctx, log, cfg.Validation)
}

func runConversion(ctx context.Context, log *slog.Logger, in, out string) {
	processor := batch.NewProcessor(batch.WithLogger(log))
	if err := processor.ConvertFile(ctx, in, out); err != nil {
		log.ErrorContext(ctx, "conversion failed", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Printf("converted %s -> %s\n", in, out)
}

func runDemo(ctx context.Context, log *slog.Logger, cfg validate.Config) {
	registry := validate.NewRegistry().Register("user", validate.NewRuleSet().
		AddRule("email", validate.NewEmailRule()).
		AddRule("password", validate.NewComplexityRule(8, true)).
		AddRule("age", validate.NewRangeRule(0, 120)))

	repo := validate.NewMemoryErrorRepository()

	engine, err := validate.NewEngine(registry,
		validate.WithConfig(cfg),
		validate.WithErrorRepository(repo),
		validate.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "failed to create engine", slog.Any("error", err))
		os.Exit(1)
	}

	record := map[string]any{
		"email":    "test@example.com",
		"password": "weak",
		"age":      150,
	}

	result, err := engine.Validate(ctx, "user", record)
	if err != nil {
		log.ErrorContext(ctx, "validation run failed", slog.Any("error", err))
	}

	if result.IsValid() {
		fmt.Println("record is valid")
		return
	}

	fmt.Println("validation errors found:")
	for _, e := range result.Errors() {
		fmt.Printf("[%s] %s: %s (code: %s)\n", e.Severity, e.Field, e.Message, e.Code)
	}
	if result.HasCriticalError() {
		fmt.Println("record contains critical errors")
	}
}
