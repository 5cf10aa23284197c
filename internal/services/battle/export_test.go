package battle

import "time"

// SetAfter replaces the timer that fires target-designation timeouts
func SetAfter(svc Service, after func(d time.Duration, fn func())) {
	svc.(*service).after = after
}
