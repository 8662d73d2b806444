package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/codekaro/formwizard/components/onboarding"
	"github.com/codekaro/formwizard/pkg/backend"
	"github.com/codekaro/formwizard/pkg/catalog"
	"github.com/codekaro/formwizard/pkg/wizard"
)

var (
	baseURL     string
	formType    string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "formwizard",
	Short: "Interactive runner for Codekaro onboarding forms",
	Long: `formwizard fills and submits a multi-step onboarding form from the
terminal, adapting the questions to earlier answers the same way the web
form does.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fill and submit a form interactively",
	RunE:  runForm,
}

func init() {
	runCmd.Flags().StringVar(&baseURL, "base-url", "", "form service base URL (defaults to FORMWIZARD_BASE_URL)")
	runCmd.Flags().StringVar(&formType, "form", onboarding.FormType, "form-type identifier sent to the service")
	runCmd.Flags().StringVar(&catalogPath, "catalog", "", "optional YAML catalog file overriding the built-in questions")
	rootCmd.AddCommand(runCmd)
}

func runForm(cmd *cobra.Command, _ []string) error {
	if baseURL == "" {
		baseURL = os.Getenv("FORMWIZARD_BASE_URL")
	}
	if baseURL == "" {
		return errors.New("base URL is required: pass --base-url or set FORMWIZARD_BASE_URL")
	}

	client, err := backend.NewHTTPClient(baseURL)
	if err != nil {
		return err
	}

	resolver := onboarding.NewResolver()
	title := onboarding.FormTitle
	if catalogPath != "" {
		file, err := os.Open(catalogPath)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer file.Close()
		resolver, err = catalog.Load(file)
		if err != nil {
			return err
		}
		title = formType
	}

	w, err := wizard.New(resolver, client,
		wizard.WithFormType(formType),
		wizard.WithLogger(log.New(cmd.ErrOrStderr(), "formwizard: ", 0)),
	)
	if err != nil {
		return err
	}

	err = runWizard(cmd.Context(), w, newSurveyDriver(), cmd.OutOrStdout(), title)
	if errors.Is(err, ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}
	return err
}

func main() {
	// A local .env is optional; flags and real environment win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
