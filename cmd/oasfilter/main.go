package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/config"
	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/files"
	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/filter"
	"github.com/joho/godotenv"
)

// Custom type for a string slice flag
type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, " ")
}

func (s *stringSlice) Set(value string) error {
	value = strings.Trim(value, " ")
	if value == "" {
		return nil
	}
	*s = append(*s, strings.Split(value, " ")...)
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load(".env")

	var src string
	var dst string
	var cfgFile string
	var keeps stringSlice

	flag.StringVar(&src, "src", "", "path to source OAS JSON file")
	flag.StringVar(&dst, "dst", "", "path to destination file")
	flag.StringVar(&cfgFile, "config", "", "path to optional YAML config file")
	flag.Var(&keeps, "keep", "sObject names to keep, or paths to files with newline-separated names. Space separated values or multiple --keep flags")

	flag.Parse()

	// flags may follow the positional input/output pair
	args := flag.Args()
	for len(args) > 0 {
		switch {
		case src == "":
			src = args[0]
		case dst == "":
			dst = args[0]
		default:
			fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", args[0])
			os.Exit(2)
		}
		_ = flag.CommandLine.Parse(args[1:])
		args = flag.CommandLine.Args()
	}

	if src == "" || dst == "" {
		fmt.Fprintln(os.Stderr, "usage: oasfilter <input_file> <output_file> --keep <name|file> ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(src, dst, keeps, cfgFile); err != nil {
		slog.Error("filtering failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully filtered specification. Output written to %s\n", dst)
}

func run(src, dst string, keepTokens []string, cfgFile string) error {
	cfg := config.MustConfig(cfgFile)

	keep, err := filter.ResolveKeepSet(keepTokens)
	if err != nil {
		return err
	}
	if len(keep) == 0 {
		slog.Warn("no sObject names requested, all sObject schemas will be removed")
	}

	doc, err := filter.NewDocumentFromFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	res := filter.New(cfg.Filter).Apply(doc, keep)

	data, err := res.Doc.MarshalIndent(cfg.Filter.Indent)
	if err != nil {
		return err
	}

	if cfg.Filter.Validate {
		for _, vErr := range filter.CheckDocument(data) {
			slog.Warn("filtered document failed OpenAPI validation", "error", vErr)
		}
	}

	if err := files.SaveFile(dst, data); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	slog.Info("filtered specification",
		"kept", len(res.Kept),
		"removed", len(res.Removed),
		"enumValuesRemoved", len(res.EnumRemoved))

	return nil
}
