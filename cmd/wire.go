package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	sqliterepo "github.com/mwern/courtctl/internal/adapters/repo/sqlite"
	tomlrepo "github.com/mwern/courtctl/internal/adapters/repo/toml"
	"github.com/mwern/courtctl/internal/application"
	"github.com/mwern/courtctl/internal/ports"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = ".courtctl"

	storeDriverKey = "store.driver"
	storePathKey   = "store.path"

	driverSQLite = "sqlite"
	driverTOML   = "toml"

	sqliteFileName = "reservations.db"
	storeDirMode   = 0o700
)

type app struct {
	booking  *application.BookingService
	schedule *application.ScheduleService
	now      func() time.Time
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(storeDriverKey, driverSQLite)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	repo, err := wireRepository(cfg, homeDir)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	booking := application.NewBookingService(repo, clock)

	return &app{
		booking:  booking,
		schedule: application.NewScheduleService(booking.Ledger(), clock),
		now:      time.Now,
	}, nil
}

func wireRepository(cfg *viper.Viper, homeDir string) (ports.ReservationRepository, error) {
	driver := cfg.GetString(storeDriverKey)
	log.Debug().Str("driver", driver).Msg("wiring reservation store")

	switch driver {
	case driverSQLite:
		path := cfg.GetString(storePathKey)
		if path == "" {
			path = filepath.Join(homeDir, configDirName, sqliteFileName)
		}
		if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		repo, err := sqliterepo.New(path)
		if err != nil {
			return nil, fmt.Errorf("wire sqlite store: %w", err)
		}
		return repo, nil
	case driverTOML:
		repo, err := tomlrepo.NewRepository(cfg)
		if err != nil {
			return nil, fmt.Errorf("wire toml store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
