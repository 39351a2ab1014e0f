// Command wordfreq prints the word frequencies of its input files, or of
// the standard input when no file is given.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/g-m-twostay/go-dicts/Trees"
	"github.com/g-m-twostay/go-dicts/WordCount"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("wordfreq: ")
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var configPath string
	flags := defaultConfig

	rootCmd := &cobra.Command{
		Use:           "wordfreq [file...]",
		Short:         "Count word frequencies",
		Long:          "wordfreq counts the words of the given files in an ordered dictionary and prints them ranked or sorted.",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			override(cmd, &config, flags)
			if err = config.validate(); err != nil {
				return err
			}
			d, err := count(stdin, args, config)
			if err != nil {
				return err
			}
			return report(stdout, d, config)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().IntVarP(&flags.Top, "top", "n", defaultConfig.Top, "number of words to print, 0 for all")
	rootCmd.Flags().BoolVar(&flags.Lowercase, "lowercase", defaultConfig.Lowercase, "fold words to lower case")
	rootCmd.Flags().BoolVar(&flags.Balanced, "balanced", defaultConfig.Balanced, "count in an AVL tree")
	rootCmd.Flags().StringVarP(&flags.Order, "order", "o", defaultConfig.Order, "rank, alpha or reverse")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print wordfreq version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(stdout, version)
		},
	})
	return rootCmd
}

// override the fields of config whose flags were set explicitly.
func override(cmd *cobra.Command, config *Config, flags Config) {
	if cmd.Flags().Changed("top") {
		config.Top = flags.Top
	}
	if cmd.Flags().Changed("lowercase") {
		config.Lowercase = flags.Lowercase
	}
	if cmd.Flags().Changed("balanced") {
		config.Balanced = flags.Balanced
	}
	if cmd.Flags().Changed("order") {
		config.Order = flags.Order
	}
}

func count(stdin io.Reader, files []string, config Config) (*Trees.Dict[string, uint], error) {
	if len(files) == 0 {
		d, err := WordCount.Count(stdin, WordCount.Options{Lowercase: config.Lowercase, Balanced: config.Balanced})
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return d, nil
	}
	d := Trees.New[string, uint]()
	if config.Balanced {
		d = Trees.NewAVL[string, uint]()
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		err = WordCount.Add(d, f, config.Lowercase)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}
	return d, nil
}

func report(w io.Writer, d *Trees.Dict[string, uint], config Config) error {
	var pairs []Trees.Pair[string, uint]
	switch config.Order {
	case OrderRank:
		pairs = WordCount.Rank(d, config.Top)
	case OrderAlpha, OrderReverse:
		it := d.InOrder()
		if config.Order == OrderReverse {
			it = d.ReverseInOrder()
		}
		for it.HasNext() && (config.Top <= 0 || len(pairs) < config.Top) {
			p, err := it.Next()
			if err != nil {
				return err
			}
			pairs = append(pairs, p)
		}
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%7d %s\n", p.Value, p.Key); err != nil {
			return err
		}
	}
	return nil
}
