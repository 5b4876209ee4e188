package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-enumerator/pkg/manifest"
)

// errAborted is returned when the interactive picker is interrupted.
var errAborted = errors.New("enumgen: aborted")

// picker chooses declarations interactively.
type picker func(names []string) ([]string, error)

func newRenderCommand(opts *globalOptions) *cobra.Command {
	var (
		eo          expandOptions
		output      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render declarations and print the generated code",
		Long: `Render every declaration of the manifest through its template and print
the results. Declarations whose template read a comment key outside their
allowedComments list are not printed unless --keep-output is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				names, err := pickDeclarations(args[0], surveyPicker)
				if err != nil {
					return err
				}
				eo.only = names
			}
			return opts.runRender(cmd, args[0], eo, output)
		},
	}

	cmd.Flags().StringVarP(&eo.templatesDir, "templates", "t", "", "directory holding template files (defaults to the manifest directory)")
	cmd.Flags().StringSliceVar(&eo.only, "only", nil, "render only the named declarations")
	cmd.Flags().IntVar(&eo.concurrency, "concurrency", 4, "number of declarations rendered in parallel")
	cmd.Flags().BoolVar(&eo.keepOutput, "keep-output", false, "print output even when the allowedComments restriction was violated")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write generated code to file instead of stdout")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick declarations interactively")

	return cmd
}

func (o *globalOptions) runRender(cmd *cobra.Command, manifestPath string, eo expandOptions, output string) error {
	results, bag, err := o.expand(cmd.Context(), manifestPath, eo)
	if err != nil {
		return err
	}

	var generated []byte
	for _, result := range results {
		if result.Suppressed {
			o.logger.Warn().Str("declaration", result.Name).Msg("output suppressed after restricted comment access")
			continue
		}
		generated = append(generated, result.Output...)
	}

	if output != "" {
		if err := os.WriteFile(output, generated, 0o644); err != nil {
			return fmt.Errorf("enumgen: write output: %w", err)
		}
		o.logger.Info().Str("path", output).Msg("output written")
	} else if _, err := o.stdout.Write(generated); err != nil {
		return err
	}

	return o.writeDiagnostics(bag)
}

func pickDeclarations(manifestPath string, pick picker) ([]string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	names, err := pick(m.Names())
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.New("enumgen: no declarations selected")
	}
	return names, nil
}

func surveyPicker(names []string) ([]string, error) {
	var out []string
	prompt := &survey.MultiSelect{
		Message: "Declarations to render:",
		Options: names,
		Default: names,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil, errAborted
		}
		return nil, err
	}
	return out, nil
}
