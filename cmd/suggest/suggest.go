// Package suggest handles the merchant category suggestion command
package suggest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/smart-benefit/cmd/root"
	"fjacquet/smart-benefit/internal/container"
	"fjacquet/smart-benefit/internal/extractor"
	"fjacquet/smart-benefit/internal/logging"
	"fjacquet/smart-benefit/internal/report"

	"github.com/spf13/cobra"
)

var merchant string

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest the merchant category of a merchant name using Gemini",
	Long: `Ask Gemini which merchant category a merchant name belongs to.
Without an API key, or when the model cannot answer, the category is ALL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.Container()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, cmd.OutOrStdout(), merchant)
	},
}

func init() {
	Cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "Merchant name to categorize")
	_ = Cmd.MarkFlagRequired("merchant")
}

// Run suggests a category for name and renders it.
func Run(ctx context.Context, c *container.Container, w io.Writer, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("merchant name is required")
	}

	reqCtx, cancel := c.RequestContext(ctx)
	defer cancel()

	result := c.GetExtractor().TrySuggestCategory(reqCtx, name)
	log := c.GetLogger().WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: name},
		logging.Field{Key: logging.FieldOutcome, Value: result.Outcome.String()},
	)
	if result.Outcome == extractor.OutcomeFailed {
		log.WithError(result.Err).Warn("Using ALL after failed category suggestion")
	} else {
		log.Info("Suggested merchant category", logging.Field{Key: logging.FieldCategory, Value: result.Category})
	}

	return c.GetReportGenerator().RenderSuggestion(w, report.Suggestion{
		Merchant: name,
		Category: result.Category,
		Outcome:  result.Outcome.String(),
	}, c.GetConfig().Output.Format)
}
