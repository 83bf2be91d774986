package session_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	mem "nomadtrip/pkg/memcache"
)

var Module = fx.Provide(ProvidePlanSessionStore)

func ProvidePlanSessionStore() mem.PlanSessionStore {
	ttl := 2 * time.Hour
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}
	return mem.NewPlanSessions(ttl)
}
