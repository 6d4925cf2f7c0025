package timepick

import (
	"github.com/Xevion/go-timepick/internal/ordered"
	"github.com/Xevion/go-timepick/types"
)

type ConditionCheck struct {
	fail bool
}

func checkMinTime(minTime *types.Timepoint, t types.Timepoint) ConditionCheck {
	cc := ConditionCheck{fail: false}
	if minTime != nil && minTime.After(t) {
		cc.fail = true
	}
	return cc
}

func checkMaxTime(maxTime *types.Timepoint, t types.Timepoint) ConditionCheck {
	cc := ConditionCheck{fail: false}
	if maxTime != nil && maxTime.Before(t) {
		cc.fail = true
	}
	return cc
}

// checkAllowlistTimes fails unless t is in the allow-list. An empty allow-list
// allows everything.
func checkAllowlistTimes(allow *ordered.Set, t types.Timepoint) ConditionCheck {
	if allow.Empty() {
		return ConditionCheck{fail: false}
	}
	return ConditionCheck{fail: !allow.Contains(t)}
}

func checkDisabledTimes(deny *ordered.Set, t types.Timepoint) ConditionCheck {
	return ConditionCheck{fail: deny.Contains(t)}
}

// checkTypedTime fails while the typed keyboard entry does not yet form a complete time.
func checkTypedTime(hour, minute int) ConditionCheck {
	cc := ConditionCheck{fail: false}
	if hour < 0 || minute < 0 || minute >= 60 {
		cc.fail = true
	}
	return cc
}
