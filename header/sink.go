package header

import (
	"context"
	"fmt"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/hdrmap"
	"github.com/ghettovoice/hdrmap/internal/errorutil"
)

type sinkState uint8

const (
	// no value pushed yet, the entry is untouched
	sinkFirst sinkState = iota
	// at least one value pushed, the entry is occupied
	sinkLatter
	// the insert call returned
	sinkClosed
)

func (s sinkState) String() string {
	switch s {
	case sinkFirst:
		return "first"
	case sinkLatter:
		return "latter"
	case sinkClosed:
		return "closed"
	default:
		return fmt.Sprintf("sinkState(%d)", uint8(s))
	}
}

type sinkTrigger uint8

const (
	triggerPush sinkTrigger = iota
	triggerClose
)

func (t sinkTrigger) String() string {
	switch t {
	case triggerPush:
		return "push"
	case triggerClose:
		return "close"
	default:
		return fmt.Sprintf("sinkTrigger(%d)", uint8(t))
	}
}

// toValues writes the values of one encoded header into its map entry.
// The first pushed value replaces whatever the entry held, the following ones are appended.
type toValues struct {
	first hdrmap.Entry
	occ   *hdrmap.OccupiedEntry
	num   int
	fsm   *stateless.StateMachine
}

func newToValues(entry hdrmap.Entry) *toValues {
	sink := &toValues{first: entry}
	sink.fsm = stateless.NewStateMachine(sinkFirst)
	sink.fsm.Configure(sinkFirst).
		Permit(triggerPush, sinkLatter).
		Permit(triggerClose, sinkClosed)
	sink.fsm.Configure(sinkLatter).
		OnEntryFrom(triggerPush, sink.pushFirst).
		InternalTransition(triggerPush, sink.pushLatter).
		Permit(triggerClose, sinkClosed)
	sink.fsm.Configure(sinkClosed)
	return sink
}

func newSinkStateError(args ...any) error {
	return errorutil.NewWrapperError(ErrSinkState, args...) //errtrace:skip
}

func sinkValue(args []any) (hdrmap.RawValue, error) {
	if len(args) != 1 {
		return "", errtrace.Wrap(newSinkStateError("got %d push args, want 1", len(args)))
	}
	v, ok := args[0].(hdrmap.RawValue)
	if !ok {
		return "", errtrace.Wrap(newSinkStateError("got push arg %T, want %T", args[0], v))
	}
	return v, nil
}

func (sink *toValues) pushFirst(_ context.Context, args ...any) error {
	v, err := sinkValue(args)
	if err != nil {
		return errtrace.Wrap(err)
	}

	switch e := sink.first.(type) {
	case *hdrmap.VacantEntry:
		sink.occ = e.Insert(v)
	case *hdrmap.OccupiedEntry:
		e.Set(v)
		sink.occ = e
	default:
		return errtrace.Wrap(newSinkStateError("unexpected entry %T", sink.first))
	}
	sink.first = nil
	sink.num++
	return nil
}

func (sink *toValues) pushLatter(_ context.Context, args ...any) error {
	v, err := sinkValue(args)
	if err != nil {
		return errtrace.Wrap(err)
	}

	sink.occ.Append(v)
	sink.num++
	return nil
}

// Push implements [Sink].
// It panics with [ErrSinkState] if called after the insert call returned.
func (sink *toValues) Push(vals ...hdrmap.RawValue) {
	for _, v := range vals {
		if err := sink.fsm.Fire(triggerPush, v); err != nil {
			panic(fmt.Errorf("push %q header value: %w", sink.name(), newSinkStateError(err)))
		}
	}
}

func (sink *toValues) close() {
	if err := sink.fsm.Fire(triggerClose); err != nil {
		panic(fmt.Errorf("close %q header sink: %w", sink.name(), newSinkStateError(err)))
	}
}

func (sink *toValues) name() hdrmap.Name {
	if sink.occ != nil {
		return sink.occ.Name()
	}
	if sink.first != nil {
		return sink.first.Name()
	}
	return ""
}
