package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drmixer/seogenix-schema/internal/fetch"
	"github.com/drmixer/seogenix-schema/internal/llm"
	"github.com/drmixer/seogenix-schema/internal/pipeline"
	"github.com/drmixer/seogenix-schema/internal/types"
	"github.com/drmixer/seogenix-schema/internal/validate"
)

var (
	genProjectID  string
	genURL        string
	genType       string
	genContent    string
	genInputFile  string
	genMode       string
	genEntities   []string
	genAPIKey     string
	genUseBrowser bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate JSON-LD markup for page content",
	Long:  "Run one synthesis invocation from the command line and print the packaged result as JSON.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genProjectID, "project", "cli", "Project identifier for run records")
	generateCmd.Flags().StringVar(&genURL, "url", "", "Page URL to fetch content from")
	generateCmd.Flags().StringVarP(&genType, "type", "t", "article", "Content type (article, faq, product, howto)")
	generateCmd.Flags().StringVar(&genContent, "content", "", "Inline page content")
	generateCmd.Flags().StringVarP(&genInputFile, "in", "i", "", "Path to a file with page content")
	generateCmd.Flags().StringVarP(&genMode, "mode", "m", "auto", "Generation mode (auto, lean, rich, auto_no_llm)")
	generateCmd.Flags().StringSliceVar(&genEntities, "entities", nil, "Accepted entity names")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().BoolVar(&genUseBrowser, "use-browser", false, "Render fetched pages in a headless browser")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if genContent != "" && genInputFile != "" {
		return fmt.Errorf("cannot use --content with --in")
	}

	content := genContent
	if genInputFile != "" {
		data, err := os.ReadFile(genInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		content = string(data)
	}

	ctx := context.Background()

	var client llm.Client
	apiKey := genAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		var err error
		client, err = llm.NewGeminiClient(ctx, apiKey, "")
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = genUseBrowser

	runner := pipeline.NewRunner(
		validate.NewResolver(nil, validate.NewLocal()),
		client,
		fetch.NewClient(fetchOpts),
		nil,
	)

	result, err := runner.Run(ctx, types.GenerationRequest{
		ProjectID:        genProjectID,
		URL:              genURL,
		ContentType:      genType,
		Content:          content,
		AcceptedEntities: genEntities,
		Mode:             genMode,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
