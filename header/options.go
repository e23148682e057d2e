package header

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"braces.dev/errtrace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghettovoice/hdrmap/log"
)

// Options configures the typed accessors of the package.
type Options struct {
	// Logger is the logger used by the typed accessors.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
	// MeterProvider provides the meter for insert and decode counters.
	// If nil, the global OpenTelemetry meter provider is used.
	MeterProvider metric.MeterProvider
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o *Options) meterProvider() metric.MeterProvider {
	if o == nil || o.MeterProvider == nil {
		return otel.GetMeterProvider()
	}
	return o.MeterProvider
}

type settings struct {
	opts    *Options
	metrics *instruments
}

func (s *settings) log() *slog.Logger { return s.opts.log() }

var (
	curSettings atomic.Pointer[settings]
	defSettings = sync.OnceValue(func() *settings {
		// the global provider delegates to the SDK once it is installed
		ins, err := newInstruments(otel.GetMeterProvider())
		if err != nil {
			return &settings{}
		}
		return &settings{metrics: ins}
	})
)

func config() *settings {
	if s := curSettings.Load(); s != nil {
		return s
	}
	return defSettings()
}

// Configure replaces the package options.
// Passing nil restores the defaults.
func Configure(opts *Options) error {
	if opts == nil {
		curSettings.Store(nil)
		return nil
	}

	ins, err := newInstruments(opts.meterProvider())
	if err != nil {
		return errtrace.Wrap(err)
	}
	curSettings.Store(&settings{opts: opts, metrics: ins})
	return nil
}
