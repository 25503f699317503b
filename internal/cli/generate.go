package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MassiveBattlebotsFan/TaliForth2/internal/wordlist"
)

// validate checks generate configurations before a run.
var validate = validator.New()

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the native words list as markdown",
		RunE: func(_ *cobra.Command, _ []string) error {
			return GenerateWordlist(&config)
		},
	}

	cmd.Flags().StringVar(&config.SourcePath, "source", wordlist.DefaultSource, "Assembly file containing the word header comments")
	cmd.Flags().StringVar(&config.LabelsPath, "labels", wordlist.DefaultLabels, "py65mon label map used to calculate word sizes")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .wordlist.yml config file")

	return cmd
}

// GenerateConfig holds configuration for wordlist generation.
type GenerateConfig struct {
	SourcePath string `validate:"required"`
	LabelsPath string `validate:"required"`
	OutputPath string `validate:"required"`
	ConfigPath string
}

// GenerateWordlist generates the native words report based on the provided
// configuration.
func GenerateWordlist(config *GenerateConfig) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}

	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The report is buffered in full before anything is written, so a
	// failed run never leaves a truncated table behind.
	var buf bytes.Buffer
	opts := wordlist.Options{
		Source: config.SourcePath,
		Labels: config.LabelsPath,
	}
	if err := wordlist.Generate(opts, &buf); err != nil {
		return err
	}

	return writeOutput(buf.Bytes(), config)
}

func loadConfigFile(config *GenerateConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Wordlist struct {
			Source string `yaml:"source"`
			Labels string `yaml:"labels"`
			Output string `yaml:"output"`
		} `yaml:"wordlist"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if config.SourcePath == wordlist.DefaultSource && cfg.Wordlist.Source != "" {
		config.SourcePath = cfg.Wordlist.Source
	}
	if config.LabelsPath == wordlist.DefaultLabels && cfg.Wordlist.Labels != "" {
		config.LabelsPath = cfg.Wordlist.Labels
	}
	if config.OutputPath == "-" && cfg.Wordlist.Output != "" {
		config.OutputPath = cfg.Wordlist.Output
	}

	return nil
}

func writeOutput(report []byte, config *GenerateConfig) error {
	if config.OutputPath == "-" {
		_, err := os.Stdout.Write(report)
		return err
	}

	if err := os.WriteFile(config.OutputPath, report, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
