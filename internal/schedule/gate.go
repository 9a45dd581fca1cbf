package schedule

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Gate пропускает отправку только в окне [SendHour:00, SendHour:MinuteWindow).
type Gate struct {
	Location     *time.Location
	SendHour     int
	MinuteWindow int

	now func() time.Time
}

func NewGate(loc *time.Location, sendHour, minuteWindow int) (*Gate, error) {
	if loc == nil {
		return nil, fmt.Errorf("schedule: nil location")
	}
	if sendHour < 0 || sendHour > 23 {
		return nil, fmt.Errorf("schedule: send hour %d out of range", sendHour)
	}
	if minuteWindow < 0 || minuteWindow > 60 {
		return nil, fmt.Errorf("schedule: minute window %d out of range", minuteWindow)
	}
	return &Gate{Location: loc, SendHour: sendHour, MinuteWindow: minuteWindow, now: time.Now}, nil
}

// WithClock подменяет часы (для тестов).
func (g *Gate) WithClock(now func() time.Time) *Gate {
	g.now = now
	return g
}

// Now — текущее время в настроенной зоне.
func (g *Gate) Now() time.Time {
	return g.now().In(g.Location)
}

func (g *Gate) IsSendTime(t time.Time) bool {
	t = t.In(g.Location)
	return t.Hour() == g.SendHour && t.Minute() >= 0 && t.Minute() < g.MinuteWindow
}

// NextWindow returns the start of the next send window strictly after t.
func (g *Gate) NextWindow(t time.Time) time.Time {
	t = t.In(g.Location)
	next := time.Date(t.Year(), t.Month(), t.Day(), g.SendHour, 0, 0, 0, g.Location)
	if !next.After(t) {
		next = time.Date(t.Year(), t.Month(), t.Day()+1, g.SendHour, 0, 0, 0, g.Location)
	}
	return next
}

// Day — локальная дата, по ней считаем «уже отправляли сегодня».
func (g *Gate) Day(t time.Time) string {
	return t.In(g.Location).Format(time.DateOnly)
}

// SkipMessage — строка для лога, когда сейчас не время отправки.
func (g *Gate) SkipMessage(now time.Time) string {
	now = now.In(g.Location)
	return fmt.Sprintf(
		"Skipping: now %s %s, target hour=%d, window=%dm, next window %s.",
		now.Format("2006-01-02 15:04"), g.Location, g.SendHour, g.MinuteWindow,
		humanize.RelTime(g.NextWindow(now), now, "ago", "from now"),
	)
}
