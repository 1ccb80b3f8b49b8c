// Package compare handles the card comparison command
package compare

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/smart-benefit/cmd/root"
	"fjacquet/smart-benefit/internal/container"
	"fjacquet/smart-benefit/internal/evaluator"
	"fjacquet/smart-benefit/internal/logging"
	"fjacquet/smart-benefit/internal/models"

	"github.com/spf13/cobra"
)

// Options are the inputs of one comparison.
type Options struct {
	Category string
	Merchant string
}

var opts Options

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare <amount>",
	Short: "Rank cards by the benefit they yield for a payment",
	Long: `Rank all configured cards by the benefit they yield for a payment amount.
The merchant category selects which rule of each card applies; it can be given
directly or suggested from a merchant name when an API key is configured.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.Container()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, cmd.OutOrStdout(), args[0], opts)
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Merchant category ("+strings.Join(models.CategoryNames(), ", ")+")")
	Cmd.Flags().StringVarP(&opts.Merchant, "merchant", "m", "", "Merchant name used to suggest a category")
	Cmd.MarkFlagsMutuallyExclusive("category", "merchant")
}

// Run evaluates input against the configured cards and renders the ranking.
// Input that is not a non-negative number renders an empty ranking.
func Run(ctx context.Context, c *container.Container, w io.Writer, input string, o Options) error {
	log := c.GetLogger()

	category, err := resolveCategory(ctx, c, o)
	if err != nil {
		return err
	}

	cards, err := c.GetStore().LoadCards()
	if err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}

	amount, ok := evaluator.ParseAmount(input)
	if !ok {
		log.Debug("Payment amount is not a valid number", logging.Field{Key: logging.FieldAmount, Value: input})
		return c.GetReportGenerator().RenderMissingAmount(w, c.GetConfig().Output.Format)
	}

	results, err := c.GetEvaluator().EvaluateAmount(amount, category, cards)
	if err != nil {
		return err
	}

	log.Info("Compared cards",
		logging.Field{Key: logging.FieldAmount, Value: amount.String()},
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldCount, Value: len(results)})

	return c.GetReportGenerator().RenderResults(w, amount, results, c.GetConfig().Output.Format)
}

func resolveCategory(ctx context.Context, c *container.Container, o Options) (models.MerchantCategory, error) {
	if o.Category != "" {
		category, ok := models.ParseCategory(o.Category)
		if !ok {
			return "", fmt.Errorf("unknown merchant category: %s (valid: %s)", o.Category, strings.Join(models.CategoryNames(), ", "))
		}
		return category, nil
	}

	if o.Merchant == "" {
		return models.CategoryAll, nil
	}

	reqCtx, cancel := c.RequestContext(ctx)
	defer cancel()
	return c.GetExtractor().SuggestCategory(reqCtx, o.Merchant), nil
}
