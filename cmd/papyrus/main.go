// Command papyrus extracts text and metadata from documents on disk.
//
// The command is the I/O collaborator of the papyrus library: it reads
// files, normalizes their encoding, hands buffers to the extraction core
// and prints the resulting documents. The library itself never touches
// the filesystem.
//
// Usage:
//
//	papyrus [flags] file...
//	papyrus -list-formats
//	papyrus -check file...
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tsawler/papyrus"
	"github.com/tsawler/papyrus/format"
	"github.com/tsawler/papyrus/model"
	"github.com/tsawler/papyrus/textdoc"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath  string
		formatTag   string
		outputPath  string
		asJSON      bool
		sniff       bool
		listFormats bool
		checkOnly   bool
		verbose     bool
	)

	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file")
	flag.StringVar(&formatTag, "format", "", "Force a format tag (e.g. csv, html, markdown) instead of extension detection")
	flag.StringVar(&outputPath, "o", "", "Write output to file instead of stdout")
	flag.BoolVar(&asJSON, "json", false, "Emit the full document (content, format, metadata) as JSON")
	flag.BoolVar(&sniff, "sniff", false, "Fall back to content sniffing when the extension is unrecognized")
	flag.BoolVar(&listFormats, "list-formats", false, "List supported formats and exit")
	flag.BoolVar(&checkOnly, "check", false, "Report whether each file can be handled, without extracting")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := defaultConfig()
	if configPath != "" {
		if err := cfg.load(configPath); err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("loading config")
		}
	}
	// Flags override file values.
	cfg.apply(flag.CommandLine, formatTag, outputPath, asJSON, sniff, verbose)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if listFormats {
		for _, name := range papyrus.SupportedFormats() {
			fmt.Println(name)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: papyrus [flags] file...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if checkOnly {
		code := 0
		for _, name := range files {
			if papyrus.CanHandle(name) {
				fmt.Printf("%s: ok\n", name)
			} else {
				fmt.Printf("%s: unsupported\n", name)
				code = 1
			}
		}
		os.Exit(code)
	}

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Output).Msg("creating output file")
		}
		out = f
	}

	registry := papyrus.NewRegistry()
	exitCode := 0

	for _, name := range files {
		doc, err := extractFile(registry, cfg, name)
		if err != nil {
			var unsupported *papyrus.UnsupportedFormatError
			if errors.As(err, &unsupported) {
				log.Error().Str("file", name).Msg("unsupported format")
			} else {
				log.Error().Err(err).Str("file", name).Msg("extraction failed")
			}
			exitCode = 1
			continue
		}

		log.Debug().
			Str("file", name).
			Str("parser", doc.Metadata["parser"]).
			Int("bytes", len(doc.Content)).
			Msg("extracted")

		if err := writeDocument(out, doc, cfg.JSON); err != nil {
			log.Fatal().Err(err).Msg("writing output")
		}
	}

	if out != os.Stdout {
		if err := out.Close(); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Output).Msg("closing output file")
		}
	}

	os.Exit(exitCode)
}

// extractFile reads one file and runs it through the registry. Detection
// order: explicit -format override, extension, then content sniffing when
// enabled.
func extractFile(registry *papyrus.Registry, cfg config, name string) (*model.Document, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, &papyrus.UnreadableSourceError{Filename: name, Err: err}
	}

	content, err := textdoc.NormalizeUTF8(raw)
	if err != nil {
		return nil, &papyrus.UnreadableSourceError{Filename: name, Err: err}
	}

	if cfg.Format != "" {
		return registry.ExtractAs(cfg.Format, name, content)
	}

	if cfg.Sniff && !registry.CanHandle(name) {
		if f := format.DetectFromMagic(content); f != format.Unknown {
			log.Debug().Str("file", name).Stringer("format", f).Msg("sniffed format")
			return registry.ExtractAs(sniffTag(f), name, content)
		}
	}

	return registry.Extract(name, content)
}

// sniffTag maps a sniffed format to an extension tag ExtractAs resolves.
func sniffTag(f format.Format) string {
	if f == format.JSON {
		return "json"
	}
	return "xml"
}

// jsonDocument mirrors the Document shape for machine-readable output.
type jsonDocument struct {
	Content  string            `json:"content"`
	Format   string            `json:"format"`
	Metadata map[string]string `json:"metadata"`
	Pages    []string          `json:"pages"`
}

func writeDocument(out *os.File, doc *model.Document, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(out, doc.Content)
		return err
	}

	enc := json.NewEncoder(out)
	return enc.Encode(jsonDocument{
		Content:  doc.Content,
		Format:   doc.Format,
		Metadata: doc.Metadata,
		Pages:    doc.Pages,
	})
}
