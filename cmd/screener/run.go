package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"screening-backend/internal/extract"
	"screening-backend/internal/logger"
	"screening-backend/internal/match"
	"screening-backend/internal/pipeline"
	"screening-backend/internal/requirement"
	"screening-backend/internal/screenings"
	"screening-backend/internal/vocab"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score every resume in a directory against one set of job requirements",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("dir", "D", "", "directory with resume files (pdf, doc, docx, txt)")
	runCmd.Flags().StringP("title", "t", "", "job title")
	runCmd.Flags().StringP("requirements-file", "r", "", "file with the job requirements text")
	runCmd.Flags().IntP("workers", "w", 0, "concurrent documents (default is one per CPU)")

	runCmd.MarkFlagRequired("dir")
	runCmd.MarkFlagRequired("requirements-file")

	viper.BindPFlag("workers", runCmd.Flags().Lookup("workers"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zl.Fatal("getting a config", zap.Error(err))
	}

	dir := cmd.Flag("dir").Value.String()
	reqFile := cmd.Flag("requirements-file").Value.String()
	title := cmd.Flag("title").Value.String()

	reqText, err := os.ReadFile(reqFile)
	if err != nil {
		zl.Fatal("reading requirements file", zap.Error(err))
	}

	v := vocab.Default()
	if config.VocabFile != "" {
		v, err = vocab.LoadFile(config.VocabFile)
		if err != nil {
			zl.Fatal("loading vocabulary file", zap.Error(err))
		}
	}

	req, err := requirement.Parse(title, string(reqText), v)
	if err != nil {
		zl.Fatal("parsing job requirements", zap.Error(err))
	}

	docs, err := loadDocuments(dir)
	if err != nil {
		zl.Fatal("reading resume directory", zap.Error(err))
	}
	if len(docs) == 0 {
		zl.Info("exiting", zap.String("reason", "no resume files found"), zap.String("dir", dir))
		return
	}

	zl.Info("starting the screening",
		zap.String("job_title", req.JobTitle),
		zap.Int("documents", len(docs)),
	)

	p, err := pipeline.New(pipeline.Options{
		Workers:    viper.GetInt("workers"),
		Match:      matchConfig(config),
		Vocabulary: v,
		Logger:     zl,
	})
	if err != nil {
		zl.Fatal("building the pipeline", zap.Error(err))
	}

	batch := p.Run(ctx, docs, req)

	pretty, err := json.MarshalIndent(screenings.ToBatchResponse(batch), "", "  ")
	if err != nil {
		zl.Fatal("encoding results", zap.Error(err))
	}
	fmt.Println(string(pretty))
}

func matchConfig(config *Config) match.Config {
	cfg := match.DefaultConfig()
	if config.Weights != nil {
		cfg.Weights = match.Weights{
			Technical:  config.Weights.Technical,
			Experience: config.Weights.Experience,
			Education:  config.Weights.Education,
			SoftSkills: config.Weights.SoftSkills,
		}
	}
	return cfg
}

// loadDocuments reads every regular file in dir, in name order. Media
// types are left blank so extraction can sniff the real format.
func loadDocuments(dir string) ([]extract.RawDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	docs := make([]extract.RawDocument, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		docs = append(docs, extract.RawDocument{
			Content:  content,
			FileName: name,
		})
	}
	return docs, nil
}
