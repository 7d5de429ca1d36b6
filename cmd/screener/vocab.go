package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"screening-backend/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the skill vocabulary the screener matches against",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := getConfig()
		if err != nil {
			return err
		}

		v := vocab.Default()
		if config.VocabFile != "" {
			if v, err = vocab.LoadFile(config.VocabFile); err != nil {
				return err
			}
		}

		out := struct {
			TechnicalSkills []string `json:"technical_skills"`
			SoftSkills      []string `json:"soft_skills"`
			Languages       []string `json:"languages"`
		}{
			TechnicalSkills: v.TechnicalSkills(),
			SoftSkills:      v.SoftSkills(),
			Languages:       v.Languages(),
		}

		pretty, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}
