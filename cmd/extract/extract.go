// Package extract handles the benefit rule extraction command
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/smart-benefit/cmd/root"
	"fjacquet/smart-benefit/internal/benefiterror"
	"fjacquet/smart-benefit/internal/container"
	"fjacquet/smart-benefit/internal/logging"

	"github.com/spf13/cobra"
)

// Options are the inputs of one extraction.
type Options struct {
	Text   string
	File   string
	CardID string
	Save   bool
}

var opts Options

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract benefit rules from card terms using Gemini",
	Long: `Extract structured benefit rules from free-text card terms using Gemini.
With --card and --save the extracted rules are appended to that card in the card file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.Container()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Text, "text", "t", "", "Card benefit description")
	Cmd.Flags().StringVarP(&opts.File, "file", "i", "", "Read the description from a file (- for stdin)")
	Cmd.Flags().StringVar(&opts.CardID, "card", "", "Card id the extracted rules belong to")
	Cmd.Flags().BoolVar(&opts.Save, "save", false, "Append the extracted rules to the card and save the card file")
	Cmd.MarkFlagsMutuallyExclusive("text", "file")
	Cmd.MarkFlagsOneRequired("text", "file")
	Cmd.MarkFlagsRequiredTogether("card", "save")
}

// Run extracts rules from the configured input and renders them.
func Run(ctx context.Context, c *container.Container, stdin io.Reader, w io.Writer, o Options) error {
	text, err := readText(stdin, o)
	if err != nil {
		return err
	}

	reqCtx, cancel := c.RequestContext(ctx)
	defer cancel()

	result := c.GetExtractor().TryExtractRules(reqCtx, text)
	if result.Err != nil {
		if errors.Is(result.Err, benefiterror.ErrNotConfigured) {
			return fmt.Errorf("rule extraction requires an API key (set GEMINI_API_KEY): %w", result.Err)
		}
		return result.Err
	}

	if err := c.GetReportGenerator().RenderRules(w, result.Rules, c.GetConfig().Output.Format); err != nil {
		return err
	}

	if !o.Save {
		return nil
	}

	card, err := c.GetStore().AppendRules(o.CardID, result.Rules)
	if err != nil {
		return fmt.Errorf("failed to save extracted rules: %w", err)
	}
	c.GetLogger().Info("Appended extracted rules to card",
		logging.Field{Key: logging.FieldCardID, Value: card.ID},
		logging.Field{Key: logging.FieldCount, Value: len(result.Rules)})
	return nil
}

func readText(stdin io.Reader, o Options) (string, error) {
	var text string
	switch {
	case o.File == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read description from stdin: %w", err)
		}
		text = string(data)
	case o.File != "":
		data, err := os.ReadFile(o.File)
		if err != nil {
			return "", fmt.Errorf("failed to read description file: %w", err)
		}
		text = string(data)
	default:
		text = o.Text
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("card benefit description is empty")
	}
	return text, nil
}
