// Package root contains the root command for the application
package root

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/smart-benefit/internal/config"
	"fjacquet/smart-benefit/internal/container"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	CardsFile  string
	Format     string
	LogLevel   string
}

var (
	// Flags are the parsed persistent flags.
	Flags = GlobalFlags{}

	// AppContainer is built before any subcommand runs.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "smart-benefit",
		Short: "Find the credit card that yields the largest benefit for a payment.",
		Long: `smart-benefit compares the benefit each configured credit card yields for a
payment amount and ranks the cards best first. It can also extract benefit
rules from free-text card terms and suggest a merchant category using Gemini.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer != nil {
				return nil
			}
			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			AppContainer = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer == nil {
				return nil
			}
			err := AppContainer.Close()
			AppContainer = nil
			return err
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default: search $HOME/.smart-benefit, .smart-benefit, .)")
	Cmd.PersistentFlags().StringVar(&Flags.CardsFile, "cards", "", "Card configuration file (default: search for cards.yaml)")
	Cmd.PersistentFlags().StringVarP(&Flags.Format, "format", "f", "", "Output format: text, csv or json")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

func buildContainer(cmd *cobra.Command) (*container.Container, error) {
	// Environment from .env must be visible before viper reads BENEFIT_* variables.
	if _, err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.InitializeConfigFromFile(Flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}

	return container.NewContainer(cfg)
}

// applyFlagOverrides copies explicitly set persistent flags over the loaded configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("cards") {
		cfg.Cards.File = Flags.CardsFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(Flags.LogLevel)
	}
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(Flags.Format)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid command-line flags: %w", err)
	}
	return nil
}

// Container returns the application container built by the root command.
func Container() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer, nil
}

var negativeNumber = regexp.MustCompile(`^-[0-9.]`)

// NormalizeArgs moves negative-number positional arguments behind "--" so the
// flag parser does not read "-500" as the shorthand "-5". Tokens that are the
// value of a preceding flag stay in place.
func NormalizeArgs(args []string) []string {
	target, _, err := Cmd.Find(args)
	if err != nil || target == nil {
		target = Cmd
	}

	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if negativeNumber.MatchString(arg) && !isFlagValue(target, args, i) {
			positional = append(positional, arg)
			continue
		}
		flags = append(flags, arg)
	}

	if len(positional) == 0 {
		return args
	}
	out := make([]string, 0, len(flags)+len(positional)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// isFlagValue reports whether args[i] is the value of a flag given as the previous token.
func isFlagValue(cmd *cobra.Command, args []string, i int) bool {
	if i == 0 {
		return false
	}
	prev := args[i-1]
	if !strings.HasPrefix(prev, "-") || strings.Contains(prev, "=") || negativeNumber.MatchString(prev) {
		return false
	}

	var flag *pflag.Flag
	if strings.HasPrefix(prev, "--") {
		name := strings.TrimPrefix(prev, "--")
		flag = cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.InheritedFlags().Lookup(name)
		}
	} else if len(prev) == 2 {
		short := prev[1:]
		flag = cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			flag = cmd.InheritedFlags().ShorthandLookup(short)
		}
	}
	return flag != nil && flag.NoOptDefVal == ""
}
