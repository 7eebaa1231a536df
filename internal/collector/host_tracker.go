package collector

import (
	"context"

	"go.uber.org/zap"
)

type HostReading struct {
	Hostname string
	Uptime   uint64 // seconds
}

// HostTracker feeds the static-info panel.
type HostTracker struct {
	src  HostReader
	log  *zap.Logger
	last HostReading
}

func NewHostTracker(src HostReader, log *zap.Logger) *HostTracker {
	return &HostTracker{src: src, log: nopIfNil(log)}
}

// Sample reads host identity. On failure the hostname is empty and uptime 0.
func (t *HostTracker) Sample(ctx context.Context) HostReading {
	res, err := t.src.Read(ctx)
	if err != nil {
		logDegraded(t.log, "host", err)
		t.last = HostReading{}
		return t.last
	}
	t.last = HostReading{Hostname: res.Hostname, Uptime: res.Uptime}
	return t.last
}

func (t *HostTracker) Last() HostReading { return t.last }
