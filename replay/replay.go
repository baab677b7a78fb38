// Package replay records the deliveries of a session as a compact binary
// event stream that can be decoded later for inspection.
package replay

import (
	"bytes"
	"io"
	"sync"

	"github.com/SanoKhan22/CricketAR-sub000/cerror"
	"github.com/SanoKhan22/CricketAR-sub000/internal"
	"github.com/SanoKhan22/CricketAR-sub000/worker"
	"github.com/zeebo/xxh3"
)

// Event IDs on the wire.
const (
	EventIDDelivery = byte(iota)
	EventIDPhase
	EventIDContact
	EventIDOutcome
)

// Event is one entry of the replay stream.
type Event interface {
	ID() byte
	Encode() []byte
	Tick() int64
}

type baseEvent struct {
	EvTick int64
}

func (e baseEvent) Tick() int64 {
	return e.EvTick
}

func writeHeader(ev Event, buf *bytes.Buffer) {
	buf.WriteByte(ev.ID())
	writeLInt64(buf, ev.Tick())
}

// DeliveryEvent records the bowl parameters at release.
type DeliveryEvent struct {
	baseEvent

	Speed  float32
	Line   string
	Length string
}

func NewDeliveryEvent(tick int64, speed float32, line, length string) DeliveryEvent {
	return DeliveryEvent{baseEvent: baseEvent{EvTick: tick}, Speed: speed, Line: line, Length: length}
}

func (DeliveryEvent) ID() byte {
	return EventIDDelivery
}

func (ev DeliveryEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	writeHeader(ev, buf)
	writeLFloat32(buf, ev.Speed)
	writeString(buf, ev.Line)
	writeString(buf, ev.Length)

	return append([]byte(nil), buf.Bytes()...)
}

// PhaseEvent records a swing phase transition.
type PhaseEvent struct {
	baseEvent

	From string
	To   string
}

func NewPhaseEvent(tick int64, from, to string) PhaseEvent {
	return PhaseEvent{baseEvent: baseEvent{EvTick: tick}, From: from, To: to}
}

func (PhaseEvent) ID() byte {
	return EventIDPhase
}

func (ev PhaseEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	writeHeader(ev, buf)
	writeString(buf, ev.From)
	writeString(buf, ev.To)

	return append([]byte(nil), buf.Bytes()...)
}

// ContactEvent records a bat-ball contact and its resolved launch.
type ContactEvent struct {
	baseEvent

	Zone      string
	Shot      string
	Timing    string
	ExitSpeed float32
}

func NewContactEvent(tick int64, zone, shot, timing string, exitSpeed float32) ContactEvent {
	return ContactEvent{baseEvent: baseEvent{EvTick: tick}, Zone: zone, Shot: shot, Timing: timing, ExitSpeed: exitSpeed}
}

func (ContactEvent) ID() byte {
	return EventIDContact
}

func (ev ContactEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	writeHeader(ev, buf)
	writeString(buf, ev.Zone)
	writeString(buf, ev.Shot)
	writeString(buf, ev.Timing)
	writeLFloat32(buf, ev.ExitSpeed)

	return append([]byte(nil), buf.Bytes()...)
}

// OutcomeEvent records the scored result of a delivery.
type OutcomeEvent struct {
	baseEvent

	Runs      int32
	Dismissed bool
	Distance  float32
	Shot      string
}

func NewOutcomeEvent(tick int64, runs int, dismissed bool, distance float32, shot string) OutcomeEvent {
	return OutcomeEvent{baseEvent: baseEvent{EvTick: tick}, Runs: int32(runs), Dismissed: dismissed, Distance: distance, Shot: shot}
}

func (OutcomeEvent) ID() byte {
	return EventIDOutcome
}

func (ev OutcomeEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	writeHeader(ev, buf)
	writeLInt32(buf, ev.Runs)
	writeBool(buf, ev.Dismissed)
	writeLFloat32(buf, ev.Distance)
	writeString(buf, ev.Shot)

	return append([]byte(nil), buf.Bytes()...)
}

// Recorder buffers encoded events and hands them to a sink off the tick path.
// A running xxh3 digest over everything recorded lets a reader verify the
// stream.
type Recorder struct {
	sink io.Writer
	pool *worker.Pool

	mu      sync.Mutex
	pending bytes.Buffer
	hash    xxh3.Hasher
	sinkErr error
}

// NewRecorder returns a recorder writing to the given sink. All writes run on
// a single worker, so chunks reach the sink in flush order.
func NewRecorder(sink io.Writer) *Recorder {
	return &Recorder{sink: sink, pool: worker.NewPool(1)}
}

// Record encodes and buffers one event.
func (r *Recorder) Record(ev Event) {
	data := ev.Encode()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending.Write(data)
	r.hash.Write(data)
}

// Checksum returns the xxh3 digest of everything recorded so far.
func (r *Recorder) Checksum() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hash.Sum64()
}

// Flush hands the buffered bytes to the writer worker.
func (r *Recorder) Flush() {
	r.mu.Lock()
	if r.pending.Len() == 0 {
		r.mu.Unlock()
		return
	}
	data := append([]byte(nil), r.pending.Bytes()...)
	r.pending.Reset()
	r.mu.Unlock()

	err := r.pool.Submit(func() {
		if _, werr := r.sink.Write(data); werr != nil {
			r.fail(werr)
		}
	})
	if err != nil {
		r.fail(err)
	}
}

// fail records the first sink failure; later ones are dropped.
func (r *Recorder) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sinkErr == nil {
		r.sinkErr = err
	}
}

// Err returns the first sink failure, if any.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sinkErr
}

// Close flushes the remaining buffer, waits for the pending writes to reach
// the sink and reports the first write failure.
func (r *Recorder) Close() error {
	r.Flush()
	r.pool.Close()
	return r.Err()
}

// Decode parses a replay stream back into events.
func Decode(data []byte) ([]Event, error) {
	buf := bytes.NewBuffer(data)
	var events []Event
	for buf.Len() > 0 {
		ev, err := decodeEvent(buf)
		if err != nil {
			return events, cerror.New("error decoding replay event: %v", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func decodeEvent(buf *bytes.Buffer) (Event, error) {
	id, err := buf.ReadByte()
	if err != nil {
		return nil, cerror.New("replay stream truncated reading event id")
	}
	tick, err := readLInt64(buf)
	if err != nil {
		return nil, err
	}

	switch id {
	case EventIDDelivery:
		ev := DeliveryEvent{baseEvent: baseEvent{EvTick: tick}}
		if ev.Speed, err = readLFloat32(buf); err != nil {
			return nil, err
		}
		if ev.Line, err = readString(buf); err != nil {
			return nil, err
		}
		if ev.Length, err = readString(buf); err != nil {
			return nil, err
		}
		return ev, nil
	case EventIDPhase:
		ev := PhaseEvent{baseEvent: baseEvent{EvTick: tick}}
		if ev.From, err = readString(buf); err != nil {
			return nil, err
		}
		if ev.To, err = readString(buf); err != nil {
			return nil, err
		}
		return ev, nil
	case EventIDContact:
		ev := ContactEvent{baseEvent: baseEvent{EvTick: tick}}
		if ev.Zone, err = readString(buf); err != nil {
			return nil, err
		}
		if ev.Shot, err = readString(buf); err != nil {
			return nil, err
		}
		if ev.Timing, err = readString(buf); err != nil {
			return nil, err
		}
		if ev.ExitSpeed, err = readLFloat32(buf); err != nil {
			return nil, err
		}
		return ev, nil
	case EventIDOutcome:
		ev := OutcomeEvent{baseEvent: baseEvent{EvTick: tick}}
		if ev.Runs, err = readLInt32(buf); err != nil {
			return nil, err
		}
		if ev.Dismissed, err = readBool(buf); err != nil {
			return nil, err
		}
		if ev.Distance, err = readLFloat32(buf); err != nil {
			return nil, err
		}
		if ev.Shot, err = readString(buf); err != nil {
			return nil, err
		}
		return ev, nil
	default:
		return nil, cerror.New("unknown replay event id %v", id)
	}
}
