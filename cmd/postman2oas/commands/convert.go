package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/internal/cliutil"
	"github.com/erraggy/postman2oas/internal/fetch"
	"github.com/erraggy/postman2oas/internal/verify"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/joho/godotenv"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output         string
	Format         string
	VarsFile       string
	Target         string
	MaxDepth       int
	NoFolderPaths  bool
	NoOperationIDs bool
	Verify         bool
	Strict         bool
	NoWarnings     bool
	Quiet          bool
	Verbose        bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", "", "output format: json or yaml (default: from output extension, else yaml)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: from output extension, else yaml)")
	fs.StringVar(&flags.VarsFile, "vars", "", "dotenv file of variables overriding collection variables")
	fs.StringVar(&flags.Target, "target", openapi.DefaultVersion, "OpenAPI version to write (3.0.x)")
	fs.IntVar(&flags.MaxDepth, "max-depth", converter.DefaultMaxDepth, "maximum folder nesting depth")
	fs.BoolVar(&flags.NoFolderPaths, "no-folder-paths", false, "do not prefix paths with folder names")
	fs.BoolVar(&flags.NoOperationIDs, "no-operation-ids", false, "do not generate operationIds")
	fs.BoolVar(&flags.Verify, "verify", false, "re-read the produced document with libopenapi before writing it")
	fs.BoolVar(&flags.Strict, "strict", false, "fail when any warning is reported")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log conversion progress to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log conversion progress to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2oas convert [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Convert a Postman v2.1 collection to an OpenAPI 3.0 document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  postman2oas convert collection.json -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  postman2oas convert -f json https://example.com/collection.json\n")
		cliutil.Writef(fs.Output(), "  postman2oas convert --vars prod.env --no-folder-paths collection.json\n")
		cliutil.Writef(fs.Output(), "  cat collection.json | postman2oas convert -q - > openapi.yaml\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Conversion failed, or warnings were reported in --strict mode\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path, URL, or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	isURL := fetch.IsURL(specPath)

	opts := []converter.Option{
		converter.WithTargetVersion(flags.Target),
		converter.WithMaxDepth(flags.MaxDepth),
		converter.WithFolderSegments(!flags.NoFolderPaths),
		converter.WithOperationIDs(!flags.NoOperationIDs),
		converter.WithIncludeInfo(!flags.NoWarnings),
		converter.WithStrictMode(flags.Strict),
	}

	if flags.VarsFile != "" {
		vars, err := godotenv.Read(flags.VarsFile)
		if err != nil {
			return fmt.Errorf("reading variables file: %w", err)
		}
		opts = append(opts, converter.WithVariables(vars))
	}

	if flags.Verbose {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, converter.WithLogger(converter.NewSlogAdapter(slog.New(handler))))
	}

	switch {
	case specPath == StdinFilePath:
		opts = append(opts, converter.WithReader(stdin))
	case isURL:
		f := &fetch.Fetcher{UserAgent: postman2oas.UserAgent()}
		data, err := f.Get(ctx, specPath)
		if err != nil {
			return fmt.Errorf("fetching collection: %w", err)
		}
		opts = append(opts, converter.WithBytes(data))
	default:
		opts = append(opts, converter.WithFilePath(specPath))
	}

	var outputPath string
	if flags.Output != "" {
		outputPath = filepath.Clean(flags.Output)
		if err := RejectSymlinkOutput(outputPath); err != nil {
			return err
		}
		var inputs []string
		if specPath != StdinFilePath && !isURL {
			inputs = []string{specPath}
		}
		if err := ValidateOutputPath(outputPath, inputs, stderr); err != nil {
			return err
		}
	}

	startTime := time.Now()
	result, convErr := converter.ConvertWithOptions(opts...)
	totalTime := time.Since(startTime)
	if result == nil {
		return fmt.Errorf("converting collection: %w", convErr)
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "Postman Collection Converter\n")
		cliutil.Writef(stderr, "============================\n\n")
		OutputHeader(stderr, specPath)
		cliutil.Writef(stderr, "Collection Name: %s\n", result.CollectionName)
		cliutil.Writef(stderr, "Target Version: %s\n", result.TargetVersion)
		cliutil.Writef(stderr, "Folders: %d\n", result.Stats.Folders)
		cliutil.Writef(stderr, "Requests: %d\n", result.Stats.Requests)
		cliutil.Writef(stderr, "Paths: %d\n", result.Stats.Paths)
		cliutil.Writef(stderr, "Operations: %d\n", result.Stats.Operations)
		cliutil.Writef(stderr, "Security Schemes: %d\n", result.Stats.SecuritySchemes)
		cliutil.Writef(stderr, "Total Time: %v\n\n", totalTime)

		if len(result.Issues) > 0 {
			cliutil.Writef(stderr, "Conversion Issues (%d):\n", len(result.Issues))
			for _, issue := range result.Issues {
				cliutil.Writef(stderr, "  %s\n", issue.String())
			}
			cliutil.Writef(stderr, "\n")
		}

		if result.Success {
			cliutil.Writef(stderr, "✓ Conversion successful")
			if result.InfoCount > 0 || result.WarningCount > 0 {
				cliutil.Writef(stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
			}
			cliutil.Writef(stderr, "\n")
		} else {
			cliutil.Writef(stderr, "✗ Conversion failed with %d warning(s) in strict mode\n", result.WarningCount)
		}
	}

	if convErr != nil {
		return convErr
	}

	format := ResolveFormat(flags.Format, outputPath)
	data, err := MarshalDocument(result.Document, format)
	if err != nil {
		return fmt.Errorf("marshaling converted document: %w", err)
	}

	if flags.Verify {
		summary, err := verify.Document(data)
		if err != nil {
			return err
		}
		if !flags.Quiet {
			cliutil.Writef(stderr, "✓ Verified: OpenAPI %s, %d paths, %d operations\n",
				summary.OpenAPI, len(summary.Paths), summary.Operations)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(stderr, "\nOutput written to: %s\n", outputPath)
		}
		return nil
	}

	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("writing converted document to stdout: %w", err)
	}
	return nil
}
