// Package cards handles the card listing command
package cards

import (
	"fmt"
	"io"

	"fjacquet/smart-benefit/cmd/root"
	"fjacquet/smart-benefit/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the cards command
var Cmd = &cobra.Command{
	Use:   "cards",
	Short: "List configured cards and their benefit rules",
	Long:  `List the configured cards with their benefit rules and merchant category labels.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.Container()
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout())
	},
}

// Run renders every configured card.
func Run(c *container.Container, w io.Writer) error {
	cards, err := c.GetStore().LoadCards()
	if err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}
	return c.GetReportGenerator().RenderCards(w, cards, c.GetConfig().Output.Format)
}
