package processor

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"sortstat/internal/encoding"
	"sortstat/internal/exporter"
	"sortstat/internal/types"
)

// Process reads everything from r and writes the rendered report to w,
// honoring the configured data type, sorting type and encoding.
func Process(cfg types.Config, r io.Reader, w io.Writer) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	out, _, err := render(cfg, raw)
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}

// Run executes one configured run end to end. The whole input is read
// before the output file is created, so the same path can serve as both
// input and output.
func Run(cfg types.Config) error {
	raw, err := readInput(cfg.InputFile)
	if err != nil {
		return err
	}
	slog.Debug("input read", "source", sourceName(cfg.InputFile), "bytes", len(raw))

	out, report, err := render(cfg, raw)
	if err != nil {
		return err
	}
	slog.Debug("report built",
		"dataType", cfg.Kind.String(),
		"sortingType", cfg.Mode.String(),
		"total", report.Total,
		"skipped", report.Stats.SkippedTokens)

	return writeOutput(cfg.OutputFile, out)
}

// render decodes raw input from the configured encoding, builds the report
// and returns the rendered text re-encoded for output.
func render(cfg types.Config, raw []byte) ([]byte, types.Report, error) {
	data, err := encoding.ToUTF8(raw, cfg.Encoding)
	if err != nil {
		return nil, types.Report{}, err
	}

	report := Build(cfg.Kind, cfg.Mode, data)

	var buf bytes.Buffer
	if err := exporter.WriteText(&buf, report); err != nil {
		return nil, report, err
	}

	out, err := encoding.FromUTF8(buf.Bytes(), cfg.Encoding)
	if err != nil {
		return nil, report, err
	}

	return out, report, nil
}

// readInput returns the whole input, read from path or from stdin when
// path is empty. Open failures are reported with the tool's historical
// wording, whatever the underlying cause.
func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Input file not found: %s", path)
	}

	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("error writing stdout: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Output file not found: %s", path)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("error writing output file: %w", err)
	}

	return f.Close()
}

// sourceName labels the input origin in logs.
func sourceName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
