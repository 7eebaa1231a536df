// Package services wraps gopsutil queries behind one sensor per metric family.
//
// Every sensor is stateless from gopsutil's point of view: any state needed
// between readings (such as the previous CPU times snapshot) lives on the
// sensor instance.
package services

import "context"

// Sensor defines the interface for all system sensors.
type Sensor interface {
	Name() string
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Collect(ctx context.Context) (any, error)
}
