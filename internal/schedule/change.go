// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package schedule

import (
	"errors"
	"time"
)

// ErrUnknownOp is returned by [Editor.Apply] for an unrecognized change op.
var ErrUnknownOp = errors.New("schedule: unknown change op")

// Op names a single schedule field change.
type Op string

const (
	OpStartDate     Op = "start_date"
	OpStartTime     Op = "start_time"
	OpEndDate       Op = "end_date"
	OpEndTime       Op = "end_time"
	OpTimezone      Op = "timezone"
	OpAllDay        Op = "all_day"
	OpToBeConfirmed Op = "to_be_confirmed"
	OpDoesRepeat    Op = "does_repeat"
	OpRuleFrequency Op = "rule_frequency"
	OpRuleEndMode   Op = "rule_end_mode"
	OpRuleInterval  Op = "rule_interval"
	OpRuleUntil     Op = "rule_until"
	OpRuleCount     Op = "rule_count"
	OpRuleByDay     Op = "rule_byday"
)

// Change is a tagged single-field edit entering the schedule editor. Only
// the field matching the op is read; the rest are ignored.
type Change struct {
	Op Op `json:"op"`

	// At carries the value for date, time, and until ops.
	At *time.Time `json:"at,omitempty"`

	// TZ carries the value for the timezone op.
	TZ string `json:"tz,omitempty"`

	// Enabled carries the value for the all_day and does_repeat toggles.
	Enabled bool `json:"enabled,omitempty"`

	// Raw carries the unparsed value for the numeric rule fields (interval,
	// count); the rule model owns the permissive parse.
	Raw string `json:"raw,omitempty"`

	Frequency Frequency     `json:"frequency,omitempty"`
	Mode      EndRepeatMode `json:"mode,omitempty"`
	Days      []Weekday     `json:"days,omitempty"`
}

// Apply dispatches a tagged change to the matching editor operation and
// returns the resulting change-set. A nil At on a date/time op is treated as
// unset input (empty change-set), matching the editor's permissive policy.
func (e *Editor) Apply(change Change) (ChangeSet, error) {
	at := func() time.Time {
		if change.At == nil {
			return time.Time{}
		}
		return *change.At
	}

	switch change.Op {
	case OpStartDate:
		return e.ChangeStartDate(at()), nil
	case OpStartTime:
		return e.ChangeStartTime(at()), nil
	case OpEndDate:
		return e.ChangeEndDate(at()), nil
	case OpEndTime:
		return e.ChangeEndTime(at()), nil
	case OpTimezone:
		return e.ChangeTimezone(change.TZ), nil
	case OpAllDay:
		return e.SetAllDay(change.Enabled), nil
	case OpToBeConfirmed:
		return e.SetToBeConfirmed(), nil
	case OpDoesRepeat:
		return e.SetDoesRepeat(change.Enabled), nil
	case OpRuleFrequency:
		return e.ChangeRuleFrequency(change.Frequency), nil
	case OpRuleEndMode:
		return e.ChangeRuleEndMode(change.Mode), nil
	case OpRuleInterval:
		return e.ChangeRuleInterval(change.Raw), nil
	case OpRuleUntil:
		return e.ChangeRuleUntil(at()), nil
	case OpRuleCount:
		return e.ChangeRuleCount(change.Raw), nil
	case OpRuleByDay:
		return e.ChangeRuleByDay(change.Days...), nil
	default:
		return ChangeSet{}, ErrUnknownOp
	}
}
