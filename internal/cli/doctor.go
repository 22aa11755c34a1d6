package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gcssh/internal/config"
	"gcssh/internal/doctor"
	"gcssh/internal/exec"
	"gcssh/internal/gcloud"
	"gcssh/internal/logger"
	"gcssh/internal/provision"
	"gcssh/internal/ui"
)

var (
	doctorJSON bool
	doctorFix  bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose your local environment",
	Long: `Run diagnostic checks against everything the provisioning workflow
depends on: the gcloud CLI, its authentication state, a local ssh client,
the SSH key pair, and the config file.

Examples:
  gcssh doctor
  gcssh doctor --json
  gcssh doctor --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
}

// DoctorOutput is the JSON shape of the doctor report.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput groups check results by category.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput totals the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

func doctorCommand() error {
	configPath := resolveConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		// The config check reports the details; diagnostics still run
		// against defaults.
		cfg = config.Default()
	}

	gc := gcloud.NewClient(exec.NewLocal(),
		gcloud.WithBinary(cfg.Gcloud.Binary),
		gcloud.WithLogger(logger.NewEnvLogger("gcssh")))

	keys, err := provision.NewKeyStore(gc)
	if err != nil {
		return err
	}

	checks := doctor.NewChecks(gc, keys, configPath)
	results := doctor.RunAll(checks)

	if doctorFix {
		results = attemptFixes(checks, results)
	}

	if doctorJSON {
		return outputDoctorJSON(checks, results)
	}
	return outputDoctorText(checks, results)
}

// attemptFixes retries fixable failures and re-runs their checks.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if result.Fixable && result.Status != doctor.StatusPass {
			if err := checks[i].Fix(); err == nil {
				results[i] = checks[i].Run()
			}
		}
	}
	return results
}

func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	var categoryOrder []string

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: counts[doctor.StatusWarn] == 0 && counts[doctor.StatusFail] == 0,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("gcssh Diagnostic Report"))
	fmt.Println()

	grouped := make(map[string][]int)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], i)
	}

	for _, category := range []string{"GCLOUD", "SSH", "CONFIG"} {
		indices, ok := grouped[category]
		if !ok {
			continue
		}

		fmt.Println(headerStyle.Render(category))
		for _, idx := range indices {
			result := results[idx]

			var line string
			switch result.Status {
			case doctor.StatusPass:
				line = successStyle.Render(ui.SymbolSuccess) + " " + result.Message
			case doctor.StatusWarn:
				line = warnStyle.Render("!") + " " + result.Message
			default:
				line = errorStyle.Render(ui.SymbolFail) + " " + result.Message
			}
			fmt.Println("  " + line)

			if result.Suggestion != "" && result.Status != doctor.StatusPass {
				fmt.Println("    " + mutedStyle.Render(result.Suggestion))
			}
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("━", 50))
	fmt.Println(doctor.Summary(results))

	if n := doctor.FixableCount(results); n > 0 && !doctorFix {
		fmt.Println(mutedStyle.Render("Run with --fix to attempt automatic repairs."))
	}

	if doctor.HasFailures(results) {
		os.Exit(1)
	}
	return nil
}
