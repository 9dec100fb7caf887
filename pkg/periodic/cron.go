package periodic

import (
	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/goasync/pkg/common/errors"
)

// cronParser accepts the seconds-enabled cron format:
// "second minute hour day month weekday", plus descriptors like @hourly.
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// NewCron creates a timer driven by a cron expression instead of a fixed
// period. Lifecycle and counter semantics are identical to New.
//
// Examples:
//
//	"*/5 * * * * *"  - every 5 seconds
//	"0 30 14 * * 1-5" - 2:30 PM on weekdays
//	"@hourly"         - every hour
func NewCron(fn func(), cronExpr string, opts ...Option) (Timer, error) {
	if fn == nil {
		return nil, errors.NewValidationError("periodic", "fn", nil, "cannot be nil").
			WithHint("provide a callback to invoke")
	}
	if cronExpr == "" {
		return nil, errors.NewValidationError("periodic", "cronExpr", cronExpr, "cannot be empty").
			WithHint("provide a cron expression such as \"*/5 * * * * *\"")
	}

	schedule, err := cronParser.Parse(cronExpr)
	if err != nil {
		return nil, errors.NewValidationError("periodic", "cronExpr", cronExpr, err.Error())
	}

	t := newTimer(fn, opts)
	t.schedule = schedule
	return t, nil
}

// ValidateCronExpression validates a cron expression without building a timer.
func ValidateCronExpression(cronExpr string) error {
	if _, err := cronParser.Parse(cronExpr); err != nil {
		return errors.NewValidationError("periodic", "cronExpr", cronExpr, err.Error())
	}
	return nil
}
