package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"

	timepick "github.com/Xevion/go-timepick"
	"github.com/Xevion/go-timepick/types"
)

func main() {
	slog.SetDefault(slog.New(devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: slog.LevelDebug},
	})))

	constraintsPath := flag.String("constraints", "constraints.yaml", "YAML file restricting which times can be picked")
	typed := flag.String("type", "1745", "digits to type on the keyboard")
	flag.Parse()

	constraints, err := timepick.LoadConstraints(*constraintsPath)
	if err != nil {
		slog.Error("Error loading constraints", "error", err)
		os.Exit(1)
	}

	picker, err := timepick.NewPicker(types.NewPickerRequest{
		InitialTime: "07:00",
		Title:       "Book a delivery slot",
		AutoAdvance: true,
	})
	if err != nil {
		slog.Error("Error creating picker", "error", err)
		os.Exit(1)
	}

	if err := picker.SetConstraints(constraints); err != nil {
		slog.Error("Error applying constraints", "error", err)
		os.Exit(1)
	}

	picker.
		OnTimeSet(deliverySlot).
		OnCancel(func(p *timepick.Picker) {
			slog.Warn("No delivery slot picked", "title", p.Title())
		})

	picker.Show()

	// tap the 14 o'clock slot on the hour wheel, then 14:20 on the minute wheel
	picker.Select(types.New(14, 0), types.Hour)
	picker.Select(types.New(14, 20), types.Minute)
	slog.Info("Wheel selection", "selection", picker.Selection(), "showing", picker.Showing())

	state, err := picker.SaveState()
	if err != nil {
		slog.Error("Error saving picker", "error", err)
		os.Exit(1)
	}

	// simulate the host UI being recreated
	picker, err = timepick.RestorePicker(state)
	if err != nil {
		slog.Error("Error restoring picker", "error", err)
		os.Exit(1)
	}
	picker.OnTimeSet(deliverySlot)

	for _, r := range *typed {
		picker.PressKey(timepick.Key(r))
		slog.Debug("Typed", "display", picker.TypedDisplay())
	}
	picker.PressKey(timepick.KeyEnter)
}

func deliverySlot(p *timepick.Picker, t types.Timepoint) {
	slog.Info("Delivery slot picked", "title", p.Title(), "time", t)
}
