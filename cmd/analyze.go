package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/analyzer"
	"github.com/spigell/cv-scorer/internal/document"
	"github.com/spigell/cv-scorer/internal/logger"
	"github.com/spigell/cv-scorer/internal/reference"
)

const promptSkip = "skip"

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a CV, optionally against a job description or an industry and role",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("cv", "", "CV file (pdf, html or text)")
	analyzeCmd.Flags().String("job", "", "job description file (pdf, html or text)")
	analyzeCmd.Flags().String("industry", "", "target industry")
	analyzeCmd.Flags().String("role", "", "target role within the industry")
	analyzeCmd.Flags().Bool("generic", false, "score the CV on its own instead of against a job")
	analyzeCmd.Flags().BoolP("interactive", "i", false, "pick industry and role from the built-in tables")

	analyzeCmd.MarkFlagRequired("cv")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	flags := cmd.Flags()
	cvPath, _ := flags.GetString("cv")
	jobPath, _ := flags.GetString("job")
	industry, _ := flags.GetString("industry")
	role, _ := flags.GetString("role")
	generic, _ := flags.GetBool("generic")
	interactive, _ := flags.GetBool("interactive")

	cvText, err := document.ExtractFile(cvPath)
	if err != nil {
		logger.Fatal("reading cv", zap.Error(err), zap.String("file", cvPath))
	}

	var jobDescription string
	if jobPath != "" {
		jobDescription, err = document.ExtractFile(jobPath)
		if err != nil {
			logger.Fatal("reading job description", zap.Error(err), zap.String("file", jobPath))
		}
	}

	e, err := newEngine(ctx, config, viper.GetBool("debug"), logger)
	if err != nil {
		logger.Fatal("building the engine", zap.Error(err))
	}
	defer e.Close()

	if interactive {
		industry, role, err = pickTarget(e.ref)
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}

	report := e.analyzer.Analyze(ctx, analyzer.Request{
		CVText:         cvText,
		Industry:       industry,
		Role:           role,
		Generic:        generic,
		JobDescription: jobDescription,
	})

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("encoding the report", zap.Error(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
}

// pickTarget asks for an industry and then one of its roles. Skipping the
// industry skips the role too.
func pickTarget(ref *reference.Data) (string, string, error) {
	industryPrompt := promptui.Select{
		Label: "Target industry",
		Items: append([]string{promptSkip}, ref.IndustryNames()...),
	}
	_, industry, err := industryPrompt.Run()
	if err != nil {
		return "", "", err
	}
	if industry == promptSkip {
		return "", "", nil
	}

	roles := ref.RoleNames(industry)
	if len(roles) == 0 {
		return industry, "", nil
	}

	rolePrompt := promptui.Select{
		Label: "Target role",
		Items: append([]string{promptSkip}, roles...),
	}
	_, role, err := rolePrompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) {
		return "", "", err
	}
	if err != nil || role == promptSkip {
		return industry, "", nil
	}
	return industry, role, nil
}
