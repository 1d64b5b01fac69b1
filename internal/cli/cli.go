// Package cli parses the tool's historical command line.
//
// The grammar is deliberately frozen: four dash parameters, each taking
// the literally next argument as its value. Unknown dash parameters are
// skipped with a warning, anything else aborts the run with a message on
// standard output.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"sortstat/internal/types"
)

// Parse resolves args into a run configuration. Warnings are returned in
// argument order and are meant to be printed before any error. The error
// text, when non-nil, is exactly the message the tool prints.
func Parse(args []string) (types.Config, []string, error) {
	cfg := types.Config{
		Kind: types.KindLong,
		Mode: types.SortNatural,
	}

	var warnings []string

	for i := 0; i < len(args); i++ {
		token := args[i]

		if !strings.HasPrefix(token, "-") {
			return cfg, warnings, fmt.Errorf("Unexpected token as parameter: %s", token)
		}

		switch token {
		case "-dataType":
			if i+1 >= len(args) {
				return cfg, warnings, errors.New("No data type defined!")
			}
			i++

			kind, err := types.ParseDataKind(args[i])
			if err != nil {
				return cfg, warnings, err
			}
			cfg.Kind = kind

		case "-sortingType":
			if i+1 >= len(args) {
				return cfg, warnings, errors.New("No sorting type defined!")
			}
			i++

			mode, err := types.ParseSortMode(args[i])
			if err != nil {
				return cfg, warnings, err
			}
			cfg.Mode = mode

		case "-inputFile":
			if i+1 >= len(args) {
				return cfg, warnings, errors.New("No input file defined!")
			}
			i++
			cfg.InputFile = args[i]

		case "-outputFile":
			if i+1 >= len(args) {
				return cfg, warnings, errors.New("No output file defined!")
			}
			i++
			cfg.OutputFile = args[i]

		default:
			warnings = append(warnings, fmt.Sprintf("\"%s\" isn't a valid parameter. It's skipped.", token))
		}
	}

	return cfg, warnings, nil
}
