package account_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"nomadtrip/internal/api/controllers"
	"nomadtrip/internal/repositories"
	"nomadtrip/internal/services"
)

var Module = fx.Provide(
	ProvideAccountService,
	controllers.NewAccountController)

// ProvideAccountService reads the mock-auth knobs from the environment.
// AUTH_AUTO_PROVISION defaults to on, matching the demo flow where any
// credential pair signs in; LOGIN_DELAY_MS paces the exchange.
func ProvideAccountService(repo repositories.AccountRepository) services.AccountServiceInterface {
	autoProvision := true
	if raw := os.Getenv("AUTH_AUTO_PROVISION"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			autoProvision = parsed
		}
	}

	delay := 800 * time.Millisecond
	if raw := os.Getenv("LOGIN_DELAY_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}

	return services.NewAccountService(repo, autoProvision, delay)
}
