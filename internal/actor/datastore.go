package actor

import (
	"context"

	"nrgchamp/sensormon/internal/record"
)

// StatsResult is the reply payload for DataStoreActor.Analyze.
type StatsResult struct {
	Count        int
	Temperature  float64
	Humidity     float64
	BatteryLevel float64
}

type dataStoreMsgKind int

const (
	dsIngest dataStoreMsgKind = iota
	dsAnalyze
	dsStatus
)

type dataStoreMsg struct {
	kind        dataStoreMsgKind
	record      record.Record
	analyzeType record.Type
	replyStats  chan StatsResult
	replyStatus chan dataStoreStatus
}

type dataStoreStatus struct {
	processed     int
	activeSensors int
}

// DataStoreActor owns a private map of per-sensor history and a monotonic
// processed counter; both are touched only by its single run goroutine
// (spec §4.6).
type DataStoreActor struct {
	mb        *mailbox[dataStoreMsg]
	storage   map[string][]record.Record
	processed int
}

// NewDataStoreActor starts a DataStoreActor's run goroutine and returns a
// handle to it.
func NewDataStoreActor() *DataStoreActor {
	a := &DataStoreActor{
		mb:      newMailbox[dataStoreMsg](DefaultMailboxCapacity),
		storage: make(map[string][]record.Record),
	}
	go a.mb.run(a.handle)
	return a
}

func (a *DataStoreActor) handle(msg dataStoreMsg) {
	switch msg.kind {
	case dsIngest:
		a.ingest(msg.record)
	case dsAnalyze:
		msg.replyStats <- a.analyze(msg.analyzeType)
	case dsStatus:
		msg.replyStatus <- dataStoreStatus{processed: a.processed, activeSensors: len(a.storage)}
	}
}

func (a *DataStoreActor) ingest(r record.Record) {
	if r.Serial == "" {
		return
	}
	a.storage[r.Serial] = append(a.storage[r.Serial], r)
	a.processed++
}

func (a *DataStoreActor) analyze(t record.Type) StatsResult {
	var tempSum, humSum, batSum float64
	var tempN, humN, batN int
	sensors := 0
	for _, hist := range a.storage {
		matches := false
		for _, r := range hist {
			if r.Type == t {
				matches = true
				break
			}
		}
		if !matches {
			continue
		}
		sensors++
		for _, r := range hist {
			if r.HasTemperature() {
				tempSum += r.Temperature
				tempN++
			}
			if r.HasHumidity() {
				humSum += r.Humidity
				humN++
			}
			if r.HasBattery() {
				batSum += r.BatteryPercent()
				batN++
			}
		}
	}
	res := StatsResult{Count: sensors}
	if tempN > 0 {
		res.Temperature = tempSum / float64(tempN)
	}
	if humN > 0 {
		res.Humidity = humSum / float64(humN)
	}
	if batN > 0 {
		res.BatteryLevel = batSum / float64(batN)
	}
	return res
}

// Ingest enqueues r for processing. It suspends the caller only while the
// mailbox is full.
func (a *DataStoreActor) Ingest(r record.Record) {
	a.mb.send(dataStoreMsg{kind: dsIngest, record: r})
}

// Analyze computes StatsResult across sensors whose history contains any
// record of type t. Count is the number of distinct matching sensors, not
// records.
func (a *DataStoreActor) Analyze(ctx context.Context, t record.Type) (StatsResult, error) {
	reply := make(chan StatsResult, 1)
	a.mb.send(dataStoreMsg{kind: dsAnalyze, analyzeType: t, replyStats: reply})
	return awaitReply(ctx, reply)
}

// Status returns (processed, activeSensorCount).
func (a *DataStoreActor) Status(ctx context.Context) (int, int, error) {
	reply := make(chan dataStoreStatus, 1)
	a.mb.send(dataStoreMsg{kind: dsStatus, replyStatus: reply})
	st, err := awaitReply(ctx, reply)
	if err != nil {
		return 0, 0, err
	}
	return st.processed, st.activeSensors, nil
}

// stop halts the run goroutine, draining whatever is already buffered.
func (a *DataStoreActor) stop() {
	a.mb.stop(RequestTimeout)
}
