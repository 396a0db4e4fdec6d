package observability

import (
	"context"

	"go.uber.org/zap"
)

// ZapObserver emits events to a zap.Logger. The event type becomes the log
// message, Source is attached as the "source" field and Data keys are
// flattened into top-level fields.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver creates a ZapObserver that emits to the given logger. A nil
// logger is replaced with zap.NewNop().
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger}
}

func (o *ZapObserver) OnEvent(_ context.Context, event Event) {
	ce := o.logger.Check(event.Level.ZapLevel(), string(event.Type))
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, len(event.Data)+2)
	fields = append(fields, zap.String("source", event.Source))
	if !event.Timestamp.IsZero() {
		fields = append(fields, zap.Time("event_time", event.Timestamp))
	}
	for k, v := range event.Data {
		fields = append(fields, zap.Any(k, v))
	}
	ce.Write(fields...)
}
