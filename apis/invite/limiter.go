package invite

import (
	"sync"

	"campus_backend/config"

	"golang.org/x/time/rate"
)

// redeemLimiterStruct slows down per-ip code guessing on the public redeem
// endpoint; the storage-level predicate stays the real gate
type redeemLimiterStruct struct {
	sync.Map // key: ip, value: *rate.Limiter
}

var redeemLimiter redeemLimiterStruct

func (l *redeemLimiterStruct) Allow(ip string) bool {
	if config.Config.Mode == "test" {
		return true
	}
	limiter, _ := l.LoadOrStore(ip, rate.NewLimiter(
		rate.Limit(config.Config.RedeemRateLimit),
		config.Config.RedeemRateBurst,
	))
	return limiter.(*rate.Limiter).Allow()
}
