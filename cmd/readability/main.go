package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	readability "github.com/BumpyClock/readability-go"
)

var (
	outputFormat   string
	outputFile     string
	baseURL        string
	keepUnlikely   bool
	noClassWeights bool
	noConditional  bool
	sanitize       bool
	timeout        time.Duration
	verbose        bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "readability",
})

func main() {
	rootCmd := &cobra.Command{
		Use:   "readability [url-or-file...]",
		Short: "Extract the readable core of HTML pages",
		Long: "readability strips navigation, advertisements and other chrome from\n" +
			"HTML documents, leaving the article body and its title.",
		Args: cobra.MinimumNArgs(1),
		RunE: runExtract,
	}

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "html", "Output format (html|markdown|text|json)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVar(&baseURL, "url", "", "Document URL for link resolution when reading files or stdin")
	rootCmd.Flags().BoolVar(&keepUnlikely, "keep-unlikely", false, "Keep unlikely candidates instead of stripping them")
	rootCmd.Flags().BoolVar(&noClassWeights, "no-class-weights", false, "Disable class/id weighting")
	rootCmd.Flags().BoolVar(&noConditional, "no-conditional-clean", false, "Disable the conditional cleanup pass")
	rootCmd.Flags().BoolVar(&sanitize, "sanitize", false, "Sanitize the output HTML")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout per document")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("readability v1.7.1")
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	for _, arg := range args {
		if err := extractOne(cmd.Context(), arg, out); err != nil {
			return err
		}
	}
	return nil
}

func extractOne(parent context.Context, source string, out io.Writer) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	raw, docURL, err := readSource(ctx, source)
	if err != nil {
		return err
	}
	logger.Debug("loaded source", "source", source, "bytes", len(raw))

	opts := []readability.Option{
		readability.WithStripUnlikely(!keepUnlikely),
		readability.WithWeightClasses(!noClassWeights),
		readability.WithCleanConditionally(!noConditional),
		readability.WithSanitize(sanitize),
	}
	if docURL != "" {
		opts = append(opts, readability.WithURL(docURL))
	}
	switch outputFormat {
	case "markdown", "text":
		opts = append(opts, readability.WithContentType(outputFormat))
	}

	client := readability.New(opts...)

	start := time.Now()
	result, err := client.ExtractBytes(ctx, raw)
	if err != nil {
		return err
	}
	logger.Debug("extracted", "source", source, "ok", result.OK,
		"length", result.Length, "elapsed", time.Since(start))

	if !result.OK {
		logger.Warn("no content found", "source", source)
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		_, err := fmt.Fprintln(out, result.Content)
		return err
	}
}

// readSource loads a URL, a file, or stdin ("-"). Returns the bytes and
// the document URL when one is known.
func readSource(ctx context.Context, source string) ([]byte, string, error) {
	switch {
	case source == "-":
		data, err := io.ReadAll(os.Stdin)
		return data, baseURL, err
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		data, err := fetch(ctx, source)
		return data, source, err
	default:
		data, err := os.ReadFile(source)
		return data, baseURL, err
	}
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "readability/1.7")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
