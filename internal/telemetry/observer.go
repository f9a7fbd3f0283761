package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"sentradeck/internal/deck"
)

// SpanSlideVisit names the span covering the time one slide is on screen.
const SpanSlideVisit = "slide.visit"

// VisitObserver records a span per slide visit. It implements deck.Observer
// and must be driven from the controller's goroutine.
type VisitObserver struct {
	tracer oteltrace.Tracer
	ctx    context.Context
	titles []string
	total  int

	span oteltrace.Span
}

var _ deck.Observer = (*VisitObserver)(nil)

// NewVisitObserver creates an observer for a deck whose slide titles are
// given in order; titles[0] is slide 1.
func NewVisitObserver(ctx context.Context, p *Provider, titles []string) *VisitObserver {
	return &VisitObserver{
		tracer: p.Tracer(),
		ctx:    ctx,
		titles: titles,
		total:  len(titles),
	}
}

// SlideChanged ends the previous visit and starts one for slide to.
func (o *VisitObserver) SlideChanged(from, to int) {
	o.endVisit()
	_, o.span = o.tracer.Start(o.ctx, SpanSlideVisit,
		oteltrace.WithAttributes(
			attribute.Int("slide.index", to),
			attribute.Int("slide.from", from),
			attribute.String("slide.title", o.title(to)),
			attribute.Int("deck.total", o.total),
		),
	)
}

// AutoAdvanceChanged records an event on the current visit.
func (o *VisitObserver) AutoAdvanceChanged(running bool, interval time.Duration) {
	if o.span == nil {
		return
	}
	name := "auto_advance.stopped"
	attrs := []attribute.KeyValue{}
	if running {
		name = "auto_advance.started"
		attrs = append(attrs, attribute.String("interval", interval.String()))
	}
	o.span.AddEvent(name, oteltrace.WithAttributes(attrs...))
}

// PrintModeChanged records an event on the current visit.
func (o *VisitObserver) PrintModeChanged(on bool) {
	if o.span == nil {
		return
	}
	o.span.AddEvent("print_mode", oteltrace.WithAttributes(attribute.Bool("on", on)))
}

// Close ends the open visit span.
func (o *VisitObserver) Close() {
	o.endVisit()
}

func (o *VisitObserver) endVisit() {
	if o.span != nil {
		o.span.End()
		o.span = nil
	}
}

func (o *VisitObserver) title(index int) string {
	if index < 1 || index > len(o.titles) {
		return ""
	}
	return o.titles[index-1]
}
