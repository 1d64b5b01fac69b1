package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"sortstat/internal/cli"
	"sortstat/internal/encoding"
	"sortstat/internal/log"
	"sortstat/internal/processor"
)

func main() {
	// Optional .env file, ignored when absent
	_ = godotenv.Load()

	verbose := os.Getenv("SORTSTAT_DEBUG") != ""
	slog.SetDefault(log.New(verbose))

	cfg, warnings, err := cli.Parse(os.Args[1:])

	// Skipped parameters are reported in argument order before anything else
	for _, warning := range warnings {
		fmt.Println(warning)
	}

	if err != nil {
		// Failures end with a single message on standard output and a
		// zero exit status, matching the legacy interface
		fmt.Println(err)
		return
	}

	cfg.Verbose = verbose
	cfg.Encoding = os.Getenv("SORTSTAT_ENCODING")
	if cfg.Encoding == "" {
		cfg.Encoding = encoding.Default
	}

	slog.Debug("sortstat run",
		"dataType", cfg.Kind.String(),
		"sortingType", cfg.Mode.String(),
		"inputFile", cfg.InputFile,
		"outputFile", cfg.OutputFile,
		"encoding", cfg.Encoding)

	if err := processor.Run(cfg); err != nil {
		fmt.Println(err)
	}
}
