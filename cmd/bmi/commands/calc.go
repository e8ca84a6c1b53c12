package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-bmi/bmi"
	"github.com/danielhkuo/quickly-bmi/form"
	"github.com/danielhkuo/quickly-bmi/models"
)

// ErrValidation is returned after the validation message has been printed
var ErrValidation = errors.New("calculation rejected")

func calcCmd() *cobra.Command {
	var (
		height string
		weight string
		units  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate BMI from height and weight",
		Example: `  bmi calc --height 1.8 --weight 70
  bmi calc --height 6 --weight 180 --units ftlbs --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := bmi.ParseUnitMode(units)
			if err != nil {
				return err
			}

			result, err := bmi.Calculate(height, weight, mode)
			if err != nil {
				slog.Debug("calculation rejected", "reason", err)
				fmt.Fprintln(cmd.ErrOrStderr(), bmi.Message(err))
				return ErrValidation
			}

			out := cmd.OutOrStdout()
			if !asJSON {
				fmt.Fprintf(out, "Your Body-Mass-Index: %s\n", form.FormatValue(result))
				return nil
			}

			resp := models.NewCalculateResponse(result, time.Now())
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&height, "height", "", "height in meters (mkg) or feet (ftlbs)")
	cmd.Flags().StringVar(&weight, "weight", "", "weight in kilograms (mkg) or pounds (ftlbs)")
	cmd.Flags().StringVarP(&units, "units", "u", bmi.ModeMetric, "unit mode: mkg or ftlbs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
