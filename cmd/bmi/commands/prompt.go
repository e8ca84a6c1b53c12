package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-bmi/bmi"
	"github.com/danielhkuo/quickly-bmi/form"
)

var errNotTerminal = errors.New("prompt needs an interactive terminal; use 'bmi calc' instead")

// Prompter asks the questions of one form round. The survey implementation
// talks to the terminal; tests supply canned answers.
type Prompter interface {
	SelectUnits(current bmi.UnitMode) (bmi.UnitMode, error)
	Input(message string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the BMI form interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return errNotTerminal
			}
			err := runPrompt(surveyPrompter{}, cmd.OutOrStdout())
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		},
	}
}

// runPrompt drives a form.State until the user stops
func runPrompt(p Prompter, out io.Writer) error {
	s := form.New()
	for {
		mode, err := p.SelectUnits(s.Units)
		if err != nil {
			return err
		}
		s.SelectUnits(mode)

		if s.Height, err = p.Input(s.HeightLabel()); err != nil {
			return err
		}
		if s.Weight, err = p.Input(s.WeightLabel()); err != nil {
			return err
		}

		s.Calculate()
		if s.AlertOpen() {
			fmt.Fprintln(out, s.Error)
			s.ClearError()
		} else {
			fmt.Fprintf(out, "Your Body-Mass-Index: %s\n", s.DisplayResult())
		}

		again, err := p.Confirm("Calculate again?", true)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		s.Reset()
	}
}

type surveyPrompter struct{}

func (surveyPrompter) SelectUnits(current bmi.UnitMode) (bmi.UnitMode, error) {
	modes := bmi.UnitModes()
	options := make([]string, len(modes))
	def := 0
	for i, m := range modes {
		options[i] = fmt.Sprintf("%s/%s", m.HeightUnit(), m.WeightUnit())
		if m == current {
			def = i
		}
	}

	var idx int
	q := &survey.Select{Message: "Units", Options: options, Default: options[def]}
	if err := survey.AskOne(q, &idx); err != nil {
		return current, err
	}
	return modes[idx], nil
}

func (surveyPrompter) Input(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer)
	return answer, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	answer := def
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer)
	return answer, err
}
