package model

type DailyStats struct {
	Date               string `json:"date"`
	CompletedPomodoros int    `json:"completedPomodoros"`
	TotalFocusMinutes  int    `json:"totalFocusMinutes"`
}

func NewDailyStats(date string) DailyStats {
	return DailyStats{Date: date}
}
