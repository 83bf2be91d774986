package store_fx

import (
	"log"
	"os"
	"strings"
	"sync"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"nomadtrip/internal/infra"
	"nomadtrip/internal/repositories"
)

var Module = fx.Provide(
	ProvideAccountRepository,
	ProvideBookingRepository)

// storeBackend selects where accounts and bookings persist. The default is
// the in-memory store so the service runs with zero external dependencies;
// set STORE_BACKEND=postgres to keep records across restarts.
func storeBackend() string {
	backend := strings.ToLower(os.Getenv("STORE_BACKEND"))
	if backend == "" {
		backend = "memory"
	}
	return backend
}

var pgCloseOnce sync.Once

// postgresDB opens the shared pool and registers its shutdown exactly once,
// no matter how many repositories draw from it.
func postgresDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()
	pgCloseOnce.Do(func() {
		lc.Append(fx.StopHook(func() {
			infra.ClosePostgresql(db)
		}))
	})
	return db
}

func ProvideAccountRepository(lc fx.Lifecycle) repositories.AccountRepository {
	switch storeBackend() {
	case "postgres":
		return repositories.NewAccountRepository(postgresDB(lc))
	case "memory":
		return repositories.NewMemoryAccountRepository()
	default:
		log.Fatalf("Unsupported store backend: %s. Use 'memory' or 'postgres'", storeBackend())
		return nil
	}
}

func ProvideBookingRepository(lc fx.Lifecycle) repositories.BookingRepository {
	switch storeBackend() {
	case "postgres":
		return repositories.NewBookingRepository(postgresDB(lc))
	case "memory":
		return repositories.NewMemoryBookingRepository()
	default:
		log.Fatalf("Unsupported store backend: %s. Use 'memory' or 'postgres'", storeBackend())
		return nil
	}
}
