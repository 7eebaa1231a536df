package collector

import (
	"context"
	"math"

	"sysdash/internal/collector/services"
	sderrors "sysdash/internal/errors"

	"go.uber.org/zap"
)

// Each tracker depends on the narrowest read it needs. The services sensors
// satisfy these; tests substitute scripted fakes.

type CPUReader interface {
	Read(ctx context.Context) (services.CPUResult, error)
}

type MemReader interface {
	Read(ctx context.Context) (services.MemResult, error)
}

type DiskReader interface {
	Read(ctx context.Context) (services.DiskResult, error)
}

type HostReader interface {
	Read(ctx context.Context) (services.HostResult, error)
}

// percent is used/total*100 in [0,100]; a zero total yields 0.
func percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return clamp(float64(used) / float64(total) * 100)
}

func clamp(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// logDegraded records a failed OS query. The tracker carries on with a
// fallback value.
func logDegraded(log *zap.Logger, tracker string, err error) {
	se := sderrors.Sample(err, tracker)
	log.Warn(se.Message, zap.String("tracker", tracker), zap.String("code", se.Code), zap.Error(err))
}

func nopIfNil(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
