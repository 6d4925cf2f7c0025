package limits

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Xevion/go-timepick/types"
)

// Only the minute and hour fields describe a time of day; date fields are
// meaningless for a picker and are not accepted.
var dayParser = cron.NewParser(cron.Minute | cron.Hour)

// CronTimes returns every minute of the day matched by a two-field "minute hour"
// cron expression, such as "*/15 9-17" or "0,30 8,12,18".
func CronTimes(expression string) ([]types.Timepoint, error) {
	schedule, err := dayParser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expression, err)
	}

	// Any fixed UTC day works since only hour and minute fields are matched.
	midnight := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	end := midnight.Add(24 * time.Hour)

	var points []types.Timepoint
	for next := schedule.Next(midnight.Add(-time.Second)); next.Before(end); next = schedule.Next(next) {
		points = append(points, types.FromTime(next))
	}

	return points, nil
}
