package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordhub/internal/config"
	"github.com/robalobadob/wordhub/internal/daily"
	"github.com/robalobadob/wordhub/internal/game"
	"github.com/robalobadob/wordhub/internal/logging"
	"github.com/robalobadob/wordhub/internal/tui"
	"github.com/robalobadob/wordhub/internal/words"
)

// flags holds command-line overrides. Only flags the user set are applied.
type flags struct {
	configPath  string
	wordsFile   string
	length      int
	maxAttempts int
	daily       bool
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:          "wordhub",
		Short:        "Terminal word games: Wordle and Unscramble",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHub(cmd, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultConfigPath(), "path to config.toml")
	pf.StringVar(&f.wordsFile, "words", "", "word list file (default: embedded list)")
	pf.IntVar(&f.length, "length", game.DefaultWordLength, "word length")
	rootCmd.Flags().IntVar(&f.maxAttempts, "max-attempts", game.DefaultMaxAttempts, "guesses per Wordle game")
	rootCmd.Flags().BoolVar(&f.daily, "daily", false, "pick the Wordle target from the date")

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newWordsCmd(f))
	return rootCmd
}

// resolveConfig layers flags the user set on top of file and env config.
func resolveConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	set := cmd.Flags().Changed
	if set("words") {
		cfg.WordsFile = f.wordsFile
	}
	if set("length") {
		cfg.WordLength = f.length
	}
	if set("max-attempts") {
		cfg.MaxAttempts = f.maxAttempts
	}
	if set("daily") {
		cfg.Daily = f.daily
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runHub(cmd *cobra.Command, f *flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", cerr)
		}
	}()

	list, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word list")
		return err
	}
	log.Info().
		Str("source", list.Source()).
		Int("words", list.Len()).
		Int("skipped", list.Skipped()).
		Bool("daily", cfg.Daily).
		Msg("starting wordhub")

	opts := tui.Options{Words: list.Words(), MaxAttempts: cfg.MaxAttempts}
	if cfg.Daily {
		opts.Picker = daily.Picker{Salt: cfg.DailySalt}
	}

	m := tui.New(opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("tui exited")
		return err
	}
	st := m.Tally()
	log.Info().Int("played", st.Played).Int("wins", st.Wins).Msg("wordhub exited")
	return nil
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score GUESS TARGET",
		Short: "Score a guess against a target word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess := strings.ToUpper(args[0])
			target := strings.ToUpper(args[1])
			res, err := game.Score(guess, target)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range []rune(guess) {
				fmt.Fprintf(out, "%c %s\n", r, res[i])
			}
			return nil
		},
	}
}

func newWordsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show the word list in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			list, err := words.Load(cfg.WordsFile, cfg.WordLength)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source:  %s\n", list.Source())
			fmt.Fprintf(out, "length:  %d\n", list.Length())
			fmt.Fprintf(out, "words:   %d\n", list.Len())
			fmt.Fprintf(out, "skipped: %d\n", list.Skipped())
			return nil
		},
	}
}
