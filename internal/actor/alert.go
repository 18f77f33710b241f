package actor

import (
	"context"
	"fmt"
	"time"

	"nrgchamp/sensormon/internal/record"
)

// Thresholds holds the per-type alert boundaries for AlertActor. BatLow is
// a percentage (spec §9 notes this is independent of the battery
// analyzer's ratio threshold).
type Thresholds struct {
	TempHigh float64
	TempLow  float64
	HumHigh  float64
	HumLow   float64
	BatLow   float64
}

// DefaultThresholds returns the spec §3 default thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{TempHigh: 30, TempLow: 10, HumHigh: 80, HumLow: 20, BatLow: 30}
}

type alertMsgKind int

const (
	alIngest alertMsgKind = iota
	alStatus
)

type alertMsg struct {
	kind        alertMsgKind
	record      record.Record
	replyStatus chan string
}

// AlertActor owns a private threshold table and an append-only alert log;
// both are touched only by its single run goroutine.
type AlertActor struct {
	mb         *mailbox[alertMsg]
	thresholds map[record.Type]Thresholds
	defaults   Thresholds
	log        []string
	now        func() time.Time
}

// NewAlertActor starts an AlertActor's run goroutine with the given
// per-type threshold overrides (may be nil) and default thresholds.
func NewAlertActor(thresholds map[record.Type]Thresholds, defaults Thresholds) *AlertActor {
	a := &AlertActor{
		mb:         newMailbox[alertMsg](DefaultMailboxCapacity),
		thresholds: cloneThresholds(thresholds),
		defaults:   defaults,
		now:        time.Now,
	}
	go a.mb.run(a.handle)
	return a
}

func cloneThresholds(src map[record.Type]Thresholds) map[record.Type]Thresholds {
	out := make(map[record.Type]Thresholds, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func (a *AlertActor) handle(msg alertMsg) {
	switch msg.kind {
	case alIngest:
		a.ingest(msg.record)
	case alStatus:
		msg.replyStatus <- a.status()
	}
}

func (a *AlertActor) resolveThresholds(t record.Type) Thresholds {
	if th, ok := a.thresholds[t]; ok {
		return th
	}
	return a.defaults
}

func (a *AlertActor) ingest(r record.Record) {
	th := a.resolveThresholds(r.Type)
	if r.HasTemperature() {
		switch {
		case r.Temperature > th.TempHigh:
			a.emit("HIGH TEMP ALERT", fmt.Sprintf("Sensor %s reported %.1f°C (threshold: %.0f°C)", r.Serial, r.Temperature, th.TempHigh))
		case r.Temperature < th.TempLow:
			a.emit("LOW TEMP ALERT", fmt.Sprintf("Sensor %s reported %.1f°C (threshold: %.0f°C)", r.Serial, r.Temperature, th.TempLow))
		}
	}
	if r.HasHumidity() {
		switch {
		case r.Humidity > th.HumHigh:
			a.emit("HIGH HUMIDITY ALERT", fmt.Sprintf("Sensor %s reported %.1f%% (threshold: %.0f%%)", r.Serial, r.Humidity, th.HumHigh))
		case r.Humidity < th.HumLow:
			a.emit("LOW HUMIDITY ALERT", fmt.Sprintf("Sensor %s reported %.1f%% (threshold: %.0f%%)", r.Serial, r.Humidity, th.HumLow))
		}
	}
	if r.HasBattery() {
		pct := r.BatteryPercent()
		if pct < th.BatLow {
			a.emit("LOW BATTERY ALERT", fmt.Sprintf("Sensor %s battery at %.1f%% (threshold: %.0f%%)", r.Serial, pct, th.BatLow))
		}
	}
}

func (a *AlertActor) emit(kind, body string) {
	ts := a.now().Format("15:04:05")
	a.log = append(a.log, fmt.Sprintf("[%s] %s: %s", ts, kind, body))
}

func (a *AlertActor) status() string {
	out := ""
	for i, line := range a.log {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// Ingest enqueues r for threshold evaluation.
func (a *AlertActor) Ingest(r record.Record) {
	a.mb.send(alertMsg{kind: alIngest, record: r})
}

// Status returns the alert log joined by newlines.
func (a *AlertActor) Status(ctx context.Context) (string, error) {
	reply := make(chan string, 1)
	a.mb.send(alertMsg{kind: alStatus, replyStatus: reply})
	return awaitReply(ctx, reply)
}

func (a *AlertActor) stop() {
	a.mb.stop(RequestTimeout)
}
