package cli

import (
	"fmt"
	"os"

	"gcssh/internal/config"
	"gcssh/internal/exec"
	"gcssh/internal/gcloud"
	"gcssh/internal/logger"
	"gcssh/internal/provision"
	"gcssh/internal/ui"
)

const tagline = "Secure • Fast • Simple"

const tutorialText = "gcssh walks you through five steps: it checks your " +
	"local SSH key, lists the VMs in your active project, asks you to pick " +
	"one, installs your public key on it, and hands you the ssh command."

// workflowCommand runs the full provisioning workflow with the interactive
// presentation layer on top.
func workflowCommand() error {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interactive := ui.IsTerminal(os.Stdout)
	animated := cfg.Animations.Enabled && interactive && !plainFlag

	log := logger.NewEnvLogger("gcssh")
	gc := gcloud.NewClient(exec.NewLocal(),
		gcloud.WithBinary(cfg.Gcloud.Binary),
		gcloud.WithLogger(log))

	keys, err := provision.NewKeyStore(gc)
	if err != nil {
		return err
	}

	svc := provision.NewService(keys, gc, pickPrompter(interactive))

	width := ui.FrameWidth(cfg.Layout.FrameWidth)
	fx := ui.NewEffects(os.Stdout, animated, cfg.Animations.TypingSpeed)

	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: tagline,
	})
	if cfg.Help.Tutorial {
		fmt.Println(ui.FramedMessage(tutorialText, width))
		fmt.Println()
	}
	if animated {
		ui.SpinFor("Warming up", cfg.Animations.SpinnerDuration)
	}

	obs := &workflowRenderer{fx: fx, animated: animated, cfg: cfg}
	info, err := svc.Run(obs)
	if err != nil {
		obs.failCurrent()
		return err
	}

	printConnectionReport(info, fx, cfg)
	return nil
}

// resolveConfigPath honors --config, falling back to the default location.
func resolveConfigPath() string {
	if configPathFlag != "" {
		return configPathFlag
	}
	return config.DefaultPath()
}

// pickPrompter chooses the selection UI. The full-screen picker needs a
// real terminal; everywhere else the plain form keeps output linear.
func pickPrompter(interactive bool) provision.Prompter {
	if interactive && !plainFlag {
		return &ui.InstancePicker{Title: "Select a VM"}
	}
	return &ui.SelectPrompter{Title: "Select a VM"}
}

// workflowRenderer adapts workflow progress callbacks to spinners and the
// catalog listing.
type workflowRenderer struct {
	fx       *ui.Effects
	animated bool
	cfg      *config.Config
	spinner  *ui.Spinner
}

func (r *workflowRenderer) StageStarted(stage provision.Stage) {
	// The selection stage owns the terminal; a spinner would fight the
	// picker for the same lines.
	if stage == provision.StageSelectInstance {
		return
	}
	r.spinner = ui.NewSpinner(stageLabel(stage))
	if r.animated {
		r.spinner.Start()
	}
}

func (r *workflowRenderer) StageCompleted(stage provision.Stage, note string) {
	if r.spinner == nil {
		return
	}
	label := stageLabel(stage)
	if note != "" {
		label += ": " + note
	}
	if r.animated {
		r.spinner.SetLabel(label)
		r.spinner.Success()
	} else {
		fmt.Println(ui.SymbolSuccess + " " + label)
	}
	r.spinner = nil
}

func (r *workflowRenderer) CatalogListed(instances []provision.Instance) {
	fmt.Print(ui.SectionHeader("Available VMs", 50))
	for i := range instances {
		ip, _ := instances[i].ExternalIP()
		fmt.Println(ui.InstanceLine(i, instances[i].Name, instances[i].Zone(), ip))
	}
	fmt.Println()
}

func (r *workflowRenderer) KeyDeployed(inst *provision.Instance) {
	if r.animated {
		r.fx.ProgressBar("Installing key on "+inst.Name,
			r.cfg.Animations.ProgressSteps, r.cfg.Animations.ProgressDuration)
	}
}

// failCurrent marks the in-flight spinner as failed so the error message
// below it lands on a clean line.
func (r *workflowRenderer) failCurrent() {
	if r.spinner != nil && r.animated {
		r.spinner.Fail()
		r.spinner = nil
	}
}

func stageLabel(stage provision.Stage) string {
	switch stage {
	case provision.StageEnsureKey:
		return "Checking SSH key"
	case provision.StageListInstances:
		return "Listing VM instances"
	case provision.StageDeployKey:
		return "Deploying SSH key"
	case provision.StageReportConnection:
		return "Preparing connection details"
	default:
		return stage.String()
	}
}

// printConnectionReport renders the final connection details.
func printConnectionReport(info *provision.ConnectionInfo, fx *ui.Effects, cfg *config.Config) {
	fmt.Print(ui.SectionHeader("Connection ready", 50))
	fx.TypeText(fmt.Sprintf("%s (%s) is ready for %s.",
		info.Instance, info.Zone, info.User))
	fmt.Println()
	fmt.Println(ui.CommandBox(info.Command))
	fmt.Println()

	if info.Alias != "" {
		fmt.Printf("Your ssh config already knows this VM: ssh %s\n", info.Alias)
	}
	if cfg.Help.Tips {
		fx.FadeIn("Tip: add a Host entry to ~/.ssh/config to give this VM a short alias.")
	}
}
