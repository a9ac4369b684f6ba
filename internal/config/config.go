package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"ResearchDigest/internal/parser"
)

// CronParser accepts the six-field (with seconds) expressions used by the scheduler.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Config holds all application configuration.
type Config struct {
	StocksDir   string `yaml:"stocks_dir"`
	ResearchDir string `yaml:"research_dir"`
	OutputFile  string `yaml:"output_file"`
	Log         struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Schedule struct {
		Cron   string   `yaml:"cron"`
		Stocks []string `yaml:"stocks"`
	} `yaml:"schedule"`
	Parser struct {
		Sections struct {
			Pricing string `yaml:"pricing"`
			Summary string `yaml:"summary"`
			Risk    string `yaml:"risk"`
		} `yaml:"sections"`
		Labels struct {
			TargetPrice  string `yaml:"target_price"`
			CurrentPrice string `yaml:"current_price"`
			Direction    string `yaml:"direction"`
			TimeRange    string `yaml:"time_range"`
			RiskLevel    string `yaml:"risk_level"`
		} `yaml:"labels"`
	} `yaml:"parser"`
}

// Load reads config from a YAML file and fills defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StocksDir == "" {
		c.StocksDir = "stocks"
	}
	if c.ResearchDir == "" {
		c.ResearchDir = "research"
	}
	if c.OutputFile == "" {
		c.OutputFile = "summary.md"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Schedule.Cron == "" {
		c.Schedule.Cron = "0 0 18 * * *"
	}
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StocksDir) == "" {
		return fmt.Errorf("stocks_dir is required")
	}
	if c.OutputFile == "" || strings.ContainsAny(c.OutputFile, `/\`) {
		return fmt.Errorf("output_file must be a plain file name, got %q", c.OutputFile)
	}
	if strings.ContainsAny(c.ResearchDir, `/\`) || c.ResearchDir == ".." {
		return fmt.Errorf("research_dir must be a plain directory name, got %q", c.ResearchDir)
	}
	if _, err := CronParser.Parse(c.Schedule.Cron); err != nil {
		return fmt.Errorf("schedule.cron %q: %w", c.Schedule.Cron, err)
	}
	return nil
}

// Rules returns the parser rules; empty entries fall back to parser defaults.
func (c *Config) Rules() parser.Rules {
	return parser.Rules{
		PricingSection:    c.Parser.Sections.Pricing,
		SummarySection:    c.Parser.Sections.Summary,
		RiskSection:       c.Parser.Sections.Risk,
		TargetPriceLabel:  c.Parser.Labels.TargetPrice,
		CurrentPriceLabel: c.Parser.Labels.CurrentPrice,
		DirectionLabel:    c.Parser.Labels.Direction,
		TimeRangeLabel:    c.Parser.Labels.TimeRange,
		RiskLevelLabel:    c.Parser.Labels.RiskLevel,
	}
}
