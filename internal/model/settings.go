package model

const (
	DefaultPomodoroMins          = 25
	DefaultShortBreakMins        = 5
	DefaultLongBreakMins         = 15
	DefaultPomodorosForLongBreak = 4
)

type Settings struct {
	PomodoroMins          int  `json:"pomodoroMins"`
	ShortBreakMins        int  `json:"shortBreakMins"`
	LongBreakMins         int  `json:"longBreakMins"`
	PomodorosForLongBreak int  `json:"pomodorosForLongBreak"`
	SoundEnabled          bool `json:"soundEnabled"`
	NotificationsEnabled  bool `json:"notificationsEnabled"`
}

func DefaultSettings() Settings {
	return Settings{
		PomodoroMins:          DefaultPomodoroMins,
		ShortBreakMins:        DefaultShortBreakMins,
		LongBreakMins:         DefaultLongBreakMins,
		PomodorosForLongBreak: DefaultPomodorosForLongBreak,
		SoundEnabled:          true,
		NotificationsEnabled:  true,
	}
}

// BreakMins returns the configured break length for the given break kind.
func (s Settings) BreakMins(isLongBreak bool) int {
	if isLongBreak {
		return s.LongBreakMins
	}
	return s.ShortBreakMins
}
