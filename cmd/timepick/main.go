// Command timepick checks and rounds times against a picker constraint file.
//
//	timepick slots -c constraints.yaml
//	timepick check -c constraints.yaml 09:15 12:00
//	timepick round -c constraints.yaml --axis hour 12:00
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/golang-cz/devslog"
	"github.com/spf13/cobra"

	timepick "github.com/Xevion/go-timepick"
	"github.com/Xevion/go-timepick/internal"
	"github.com/Xevion/go-timepick/types"
)

var (
	constraintsPath string
	axisName        string
	verbose         bool
	watch           bool
)

var rootCmd = &cobra.Command{
	Use:           "timepick",
	Short:         "Check and round times against picker constraints",
	Version:       internal.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(devslog.NewHandler(os.Stderr, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{Level: level},
		})))
	},
}

var checkCmd = &cobra.Command{
	Use:   "check TIME...",
	Short: "Report whether each time can be picked",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		constraints, err := loadConstraints()
		if err != nil {
			return err
		}
		axis, err := parseAxis()
		if err != nil {
			return err
		}

		times, err := parseTimes(args)
		if err != nil {
			return err
		}

		for _, t := range times {
			status := "ok"
			if constraints.IsOutOfRange(t, axis, types.Minute) {
				status = "out of range"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, status)
		}
		return nil
	},
}

var roundCmd = &cobra.Command{
	Use:   "round TIME...",
	Short: "Round each time to the nearest legal time",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		constraints, err := loadConstraints()
		if err != nil {
			return err
		}
		axis, err := parseAxis()
		if err != nil {
			return err
		}

		times, err := parseTimes(args)
		if err != nil {
			return err
		}

		for _, t := range times {
			rounded := constraints.RoundToNearest(t, axis, types.Minute)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, rounded)
		}
		return nil
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List the ranges of times that can be picked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		constraints, err := loadConstraints()
		if err != nil {
			return err
		}
		printSlots(cmd, constraints)

		if !watch {
			return nil
		}
		if constraintsPath == "" {
			return fmt.Errorf("--watch needs a constraints file")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		w, err := timepick.WatchConstraints(ctx, constraintsPath, func(c *timepick.Constraints, err error) {
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout())
			printSlots(cmd, c)
		})
		if err != nil {
			return err
		}
		defer w.Close()

		<-ctx.Done()
		return nil
	},
}

func loadConstraints() (*timepick.Constraints, error) {
	if constraintsPath == "" {
		return timepick.NewConstraints(), nil
	}
	return timepick.LoadConstraints(constraintsPath)
}

func parseAxis() (types.Axis, error) {
	var axis types.Axis
	err := axis.UnmarshalText([]byte(axisName))
	return axis, err
}

func parseTimes(args []string) ([]types.Timepoint, error) {
	times := make([]types.Timepoint, 0, len(args))
	for _, arg := range args {
		t, err := internal.ParseTime(types.TimeString(arg))
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}

func printSlots(cmd *cobra.Command, constraints *timepick.Constraints) {
	slots := legalSlots(constraints)
	if len(slots) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no time can be picked")
		return
	}
	for _, s := range slots {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&constraintsPath, "constraints", "c", "", "YAML constraint file (default: no constraints)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	checkCmd.Flags().StringVar(&axisName, "axis", "absolute", "wheel to check on: hour, minute or absolute")
	roundCmd.Flags().StringVar(&axisName, "axis", "absolute", "wheel to round on: hour, minute or absolute")
	slotsCmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the slots again whenever the constraint file changes")

	rootCmd.AddCommand(checkCmd, roundCmd, slotsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
