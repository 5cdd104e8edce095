package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app       = "cv-scorer"
	envPrefix = "CV_SCORER"
)

type Config struct {
	Engine  *EngineConfig  `mapstructure:"engine"`
	Cache   *CacheConfig   `mapstructure:"cache"`
	AI      *AIConfig      `mapstructure:"ai"`
	History *HistoryConfig `mapstructure:"history"`
	Server  *ServerConfig  `mapstructure:"server"`
}

type EngineConfig struct {
	ReferenceFile     string  `mapstructure:"reference-file"`
	FieldThreshold    float64 `mapstructure:"field-threshold"`
	IndustryThreshold float64 `mapstructure:"industry-threshold"`
	MaxSkills         int     `mapstructure:"max-skills"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type AIConfig struct {
	Enabled      bool            `mapstructure:"enabled"`
	Timeout      time.Duration   `mapstructure:"timeout"`
	BlendRatio   float64         `mapstructure:"blend-ratio"`
	MaxLogLength int             `mapstructure:"max-log-length"`
	Gemini       *GeminiConfig   `mapstructure:"gemini"`
	OpenAI       *ProviderConfig `mapstructure:"openai"`
	Anthropic    *ProviderConfig `mapstructure:"anthropic"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key" json:"-"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type ProviderConfig struct {
	APIKey     string `mapstructure:"api-key" json:"-"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	BaseURL    string `mapstructure:"base-url"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
}

type ServerConfig struct {
	Listen    string `mapstructure:"listen"`
	BodyLimit int    `mapstructure:"body-limit"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-scorer scores CVs against jobs in any industry and explains the result",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.reference-file", "")
	v.SetDefault("engine.field-threshold", 0.2)
	v.SetDefault("engine.industry-threshold", 0.1)
	v.SetDefault("engine.max-skills", 25)

	v.SetDefault("cache.ttl", 24*time.Hour)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.timeout", 20*time.Second)
	v.SetDefault("ai.blend-ratio", 0.7)
	v.SetDefault("ai.max-log-length", 200)
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	v.SetDefault("ai.gemini.max-retries", 3)
	v.SetDefault("ai.openai.api-key", "")
	v.SetDefault("ai.openai.api-key-file", "")
	v.SetDefault("ai.openai.model", "gpt-4o-mini")
	v.SetDefault("ai.openai.base-url", "")
	v.SetDefault("ai.openai.max-retries", 3)
	v.SetDefault("ai.anthropic.api-key", "")
	v.SetDefault("ai.anthropic.api-key-file", "")
	v.SetDefault("ai.anthropic.model", "claude-3-5-haiku-latest")
	v.SetDefault("ai.anthropic.base-url", "")
	v.SetDefault("ai.anthropic.max-retries", 3)

	v.SetDefault("history.enabled", false)
	v.SetDefault("history.driver", "sqlite")
	v.SetDefault("history.dsn", "cv-scorer.db")

	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.body-limit", 10<<20)
}

func initConfig() {
	// Version needs no config.
	if versionCmd.CalledAs() != "" {
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
