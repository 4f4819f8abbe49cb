package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/llm"
	"github.com/jobhunter/backend/models"
	"github.com/jobhunter/backend/utils"
)

var errNoLanguageModel = errors.New("language model not configured: set PROJECT_ID for gemini or ANTHROPIC_API_KEY for claude")

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume (PDF, DOCX or TXT) and print the profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		client, err := llm.NewFromConfig(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		if client == nil {
			return errNoLanguageModel
		}
		defer client.Close()

		profile, err := parseResumeFile(cmd.Context(), client, args[0], log)
		if err != nil {
			return err
		}

		pretty, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// parseResumeFile extracts text from a local resume and structures it
func parseResumeFile(ctx context.Context, client *llm.Client, path string, log *zap.Logger) (models.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ResumeProfile{}, fmt.Errorf("reading resume: %w", err)
	}

	mimeType := utils.ResolveMIME(data, "", filepath.Base(path))
	text, err := utils.NewDocumentExtractor().Extract(data, mimeType)
	if err != nil {
		return models.ResumeProfile{}, err
	}

	log.Debug("resume text extracted",
		zap.String("file", path),
		zap.String("mime", mimeType),
		zap.Int("chars", len(text)))

	return client.ParseResume(ctx, text)
}
