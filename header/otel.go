package header

import (
	"context"

	"braces.dev/errtrace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/ghettovoice/hdrmap/header"

const attrHeaderName = "header.name"

type instruments struct {
	inserts      metric.Int64Counter
	insertedVals metric.Int64Counter
	decodes      metric.Int64Counter
	decodeErrs   metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)

	var (
		ins instruments
		err error
	)
	ins.inserts, err = meter.Int64Counter(
		"hdrmap.header.inserts",
		metric.WithDescription("Number of typed header inserts"),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	ins.insertedVals, err = meter.Int64Counter(
		"hdrmap.header.inserted_values",
		metric.WithDescription("Number of raw values written by typed header inserts"),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	ins.decodes, err = meter.Int64Counter(
		"hdrmap.header.decodes",
		metric.WithDescription("Number of typed header decodes of present headers"),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	ins.decodeErrs, err = meter.Int64Counter(
		"hdrmap.header.decode_errors",
		metric.WithDescription("Number of typed header decodes that failed"),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ins, nil
}

func (ins *instruments) recordInsert(name Name, vals int) {
	if ins == nil {
		return
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(attrHeaderName, string(name)))
	ins.inserts.Add(ctx, 1, attrs)
	ins.insertedVals.Add(ctx, int64(vals), attrs)
}

func (ins *instruments) recordDecode(name Name, err error) {
	if ins == nil {
		return
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(attrHeaderName, string(name)))
	ins.decodes.Add(ctx, 1, attrs)
	if err != nil {
		ins.decodeErrs.Add(ctx, 1, attrs)
	}
}
