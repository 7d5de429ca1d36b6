package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "screener"

// Config is the optional YAML configuration for the CLI. Every field
// has a working default, so the file is not required.
type Config struct {
	Workers   int         `mapstructure:"workers"`
	VocabFile string      `mapstructure:"vocab-file"`
	Weights   *WeightsCfg `mapstructure:"weights"`
}

type WeightsCfg struct {
	Technical  int `mapstructure:"technical"`
	Experience int `mapstructure:"experience"`
	Education  int `mapstructure:"education"`
	SoftSkills int `mapstructure:"soft-skills"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "screener scores a directory of resumes against a job description",
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// The config file is optional; a parse error is not.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			cobra.CheckErr(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	return config, nil
}
