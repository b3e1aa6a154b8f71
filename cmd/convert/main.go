package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/traderx-tools/traderx-convert/internal/convert"
	"github.com/traderx-tools/traderx-convert/internal/utils"
	"github.com/traderx-tools/traderx-convert/internal/validation"
)

// convert reads one or more legacy trader config files and writes the
// generated TraderX config tree to an output directory.
//
// A single file with the line-DSL dialect converts on its own. The
// TraderPlus dialect needs its three JSON documents passed together;
// they are classified by shape, so argument order does not matter.

func main() {
	var (
		outDir    = flag.String("out", ".", "directory to write the generated config tree into")
		root      = flag.String("root", "TraderXConfig", "root directory name of the generated tree")
		currency  = flag.String("currency", "EUR", "currency type used when the source does not name one")
		dialect   = flag.String("dialect", "trader", "source dialect: trader or traderplus")
		schemaDir = flag.String("schemas", "", "validate output against JSON schemas in this directory")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: convert [flags] <config file> [config file ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	svc, err := convert.NewService(convert.Config{
		OutputRoot:      *root,
		DefaultCurrency: *currency,
		CacheSize:       1,
	})
	if err != nil {
		fatal(err)
	}

	result, err := run(svc, *dialect, flag.Args())
	if err != nil {
		fatal(err)
	}

	for _, diag := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "warning: line %d: %s\n", diag.Line, diag.Message)
	}

	if *schemaDir != "" {
		v := validation.NewSchemaValidator(*schemaDir)
		if err := v.ValidateFileMap(result.Files); err != nil {
			fatal(err)
		}
	}

	if err := utils.WriteFileMap(*outDir, result.Files); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %d files under %s\n", len(result.Files), *outDir)
}

func run(svc convert.Service, dialect string, paths []string) (*convert.Result, error) {
	ctx := context.Background()

	switch dialect {
	case convert.DialectTrader:
		if len(paths) != 1 {
			return nil, fmt.Errorf("trader dialect takes exactly one file, got %d", len(paths))
		}
		data, err := os.ReadFile(paths[0])
		if err != nil {
			return nil, err
		}
		return svc.ConvertTraderConfig(ctx, string(data))

	case convert.DialectTraderPlus:
		session := svc.NewSession()
		var result *convert.Result
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			result, err = session.Submit(ctx, data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		if !session.Complete() {
			return nil, fmt.Errorf("incomplete config set: the general, ID and price documents are all required")
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unknown dialect %q (want trader or traderplus)", dialect)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
