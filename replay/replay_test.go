package replay

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	events := []Event{
		NewDeliveryEvent(10, 31.5, "off", "good"),
		NewPhaseEvent(24, "stance", "backlift"),
		NewPhaseEvent(40, "backlift", "downswing"),
		NewContactEvent(46, "middle/center", "Straight Drive", "good", 25.4),
		NewOutcomeEvent(230, 3, false, 47.2, "Straight Drive"),
		NewOutcomeEvent(520, 0, true, 0, ""),
	}

	var stream bytes.Buffer
	for _, ev := range events {
		stream.Write(ev.Encode())
	}

	decoded, err := Decode(stream.Bytes())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded) != len(events) {
		t.Fatalf("decoded %d events, want %d", len(decoded), len(events))
	}
	for i, ev := range events {
		if decoded[i].ID() != ev.ID() {
			t.Fatalf("event %d id %v, want %v", i, decoded[i].ID(), ev.ID())
		}
		if decoded[i].Tick() != ev.Tick() {
			t.Fatalf("event %d tick %v, want %v", i, decoded[i].Tick(), ev.Tick())
		}
	}

	contact, ok := decoded[3].(ContactEvent)
	if !ok {
		t.Fatalf("event 3 decoded as %T", decoded[3])
	}
	if contact.Zone != "middle/center" || contact.Shot != "Straight Drive" || contact.ExitSpeed != 25.4 {
		t.Fatalf("contact fields lost: %+v", contact)
	}

	outcome, ok := decoded[4].(OutcomeEvent)
	if !ok {
		t.Fatalf("event 4 decoded as %T", decoded[4])
	}
	if outcome.Runs != 3 || outcome.Dismissed || outcome.Distance != 47.2 {
		t.Fatalf("outcome fields lost: %+v", outcome)
	}

	wicket := decoded[5].(OutcomeEvent)
	if !wicket.Dismissed {
		t.Fatalf("dismissal flag lost: %+v", wicket)
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := NewDeliveryEvent(10, 31.5, "off", "good").Encode()
	if _, err := Decode(data[:len(data)-3]); err == nil {
		t.Fatal("expected error on truncated stream")
	}
}

func TestDecodeUnknownID(t *testing.T) {
	if _, err := Decode([]byte{0xFF, 0, 0, 0, 0, 0, 0, 0, 0}); err == nil {
		t.Fatal("expected error on unknown event id")
	}
}

// notifySink signals when the flushed bytes arrive from the worker pool.
type notifySink struct {
	mu   sync.Mutex
	data []byte
	done chan struct{}
}

func (s *notifySink) Write(p []byte) (int, error) {
	s.mu.Lock()
	s.data = append(s.data, p...)
	s.mu.Unlock()
	s.done <- struct{}{}
	return len(p), nil
}

func TestRecorderFlush(t *testing.T) {
	sink := &notifySink{done: make(chan struct{}, 4)}
	r := NewRecorder(sink)

	r.Record(NewDeliveryEvent(10, 31.5, "off", "good"))
	r.Record(NewOutcomeEvent(230, 3, false, 47.2, "Straight Drive"))

	before := r.Checksum()
	r.Flush()

	select {
	case <-sink.done:
	case <-time.After(5 * time.Second):
		t.Fatal("flush never reached the sink")
	}

	sink.mu.Lock()
	data := append([]byte(nil), sink.data...)
	sink.mu.Unlock()

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("flushed stream does not decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("flushed %d events, want 2", len(decoded))
	}

	// The checksum covers everything recorded and survives the flush.
	if r.Checksum() != before {
		t.Fatal("flush changed the checksum")
	}
	r.Record(NewPhaseEvent(240, "follow_through", "recovery"))
	if r.Checksum() == before {
		t.Fatal("checksum ignored a recorded event")
	}
}

func TestRecorderFlushEmpty(t *testing.T) {
	sink := &notifySink{done: make(chan struct{}, 1)}
	r := NewRecorder(sink)
	r.Flush()

	select {
	case <-sink.done:
		t.Fatal("empty flush wrote to the sink")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRecorderCloseFlushesPending(t *testing.T) {
	var sink bytes.Buffer
	r := NewRecorder(&sink)

	r.Record(NewDeliveryEvent(10, 31.5, "off", "good"))
	r.Record(NewOutcomeEvent(230, 3, false, 47.2, "Straight Drive"))

	// No explicit flush: Close drains the buffer and waits for the write.
	if err := r.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	decoded, err := Decode(sink.Bytes())
	if err != nil {
		t.Fatalf("closed stream does not decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("closed stream holds %d events, want 2", len(decoded))
	}
}

func TestRecorderFlushOrder(t *testing.T) {
	var sink bytes.Buffer
	r := NewRecorder(&sink)

	const deliveries = 200
	for i := 0; i < deliveries; i++ {
		r.Record(NewDeliveryEvent(int64(i), 30, "middle", "good"))
		r.Flush()
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	decoded, err := Decode(sink.Bytes())
	if err != nil {
		t.Fatalf("stream does not decode: %v", err)
	}
	if len(decoded) != deliveries {
		t.Fatalf("stream holds %d events, want %d", len(decoded), deliveries)
	}
	for i, ev := range decoded {
		if ev.Tick() != int64(i) {
			t.Fatalf("chunk order broken: event %d carries tick %d", i, ev.Tick())
		}
	}
}

// failSink rejects every write.
type failSink struct{}

func (failSink) Write([]byte) (int, error) {
	return 0, errors.New("sink gone")
}

func TestRecorderSinkErrorSurfaced(t *testing.T) {
	r := NewRecorder(failSink{})
	r.Record(NewDeliveryEvent(10, 31.5, "off", "good"))
	r.Flush()

	if err := r.Close(); err == nil {
		t.Fatal("close swallowed the sink failure")
	}
	if r.Err() == nil {
		t.Fatal("recorder lost the sink failure")
	}
}
