package domain

import "time"

// ConfigFileName is the settings file name inside the tempo config dir.
const ConfigFileName = "settings.toml"

// Settings is the persisted application configuration.
// Missing or corrupt settings always resolve to DefaultSettings.
type Settings struct {
	Pomodoro PomodoroSettings `toml:"pomodoro"`
	Alerts   AlertSettings    `toml:"alerts"`
}

// PomodoroSettings holds the pomodoro phase durations from the [pomodoro]
// section. Durations are whole minutes to keep the file hand-editable.
type PomodoroSettings struct {
	WorkMinutes       int `toml:"work_minutes"`
	ShortBreakMinutes int `toml:"short_break_minutes"`
	LongBreakMinutes  int `toml:"long_break_minutes"`
	CyclesBeforeLong  int `toml:"cycles_before_long"`
}

// WorkDuration returns the work phase duration.
func (p PomodoroSettings) WorkDuration() time.Duration {
	return time.Duration(p.WorkMinutes) * time.Minute
}

// ShortBreakDuration returns the short break duration.
func (p PomodoroSettings) ShortBreakDuration() time.Duration {
	return time.Duration(p.ShortBreakMinutes) * time.Minute
}

// LongBreakDuration returns the long break duration.
func (p PomodoroSettings) LongBreakDuration() time.Duration {
	return time.Duration(p.LongBreakMinutes) * time.Minute
}

// AlertSettings holds the alert delivery toggles from the [alerts] section.
type AlertSettings struct {
	Bell   bool `toml:"bell"`
	Flash  bool `toml:"flash"`
	Notify bool `toml:"notify"`
}

// DefaultSettings returns the configuration used when no settings file
// exists or it cannot be decoded.
func DefaultSettings() *Settings {
	return &Settings{
		Pomodoro: PomodoroSettings{
			WorkMinutes:       25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			CyclesBeforeLong:  4,
		},
		Alerts: AlertSettings{
			Bell:   true,
			Flash:  true,
			Notify: false,
		},
	}
}

// Normalize fills in zero or negative values with defaults so a partially
// written settings file still yields a usable configuration.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	if s.Pomodoro.WorkMinutes <= 0 {
		s.Pomodoro.WorkMinutes = def.Pomodoro.WorkMinutes
	}
	if s.Pomodoro.ShortBreakMinutes <= 0 {
		s.Pomodoro.ShortBreakMinutes = def.Pomodoro.ShortBreakMinutes
	}
	if s.Pomodoro.LongBreakMinutes <= 0 {
		s.Pomodoro.LongBreakMinutes = def.Pomodoro.LongBreakMinutes
	}
	if s.Pomodoro.CyclesBeforeLong <= 0 {
		s.Pomodoro.CyclesBeforeLong = def.Pomodoro.CyclesBeforeLong
	}
}
