package battlehistory

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockhistory -source=time_provider.go

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

// NewTimeProvider returns a TimeProvider backed by the wall clock
func NewTimeProvider() TimeProvider {
	return realTimeProvider{}
}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
