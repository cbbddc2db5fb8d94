package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/devsolutions/backend/internal/config"
	"github.com/devsolutions/backend/internal/logging"
	"github.com/devsolutions/backend/internal/migrations"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up        未適用のマイグレーションをすべて適用 (default)
  down      直近のマイグレーションを 1 つ戻す
  version   現在のスキーマバージョンを表示`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", "json")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "up", "down", "version":
	default:
		usage()
	}

	m, err := migrations.New(cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("open migrator failed", "error", err)
	}
	// logging.Fatal は defer を実行しないので run の中で Close する
	if err := run(m, cmd); err != nil {
		logging.Fatal("migrate failed", "command", cmd, "error", err)
	}
}

type migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() error
}

// run executes cmd and closes m before returning, whatever the outcome.
func run(m migrator, cmd string) error {
	var err error
	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var (
			v     uint
			dirty bool
		)
		if v, dirty, err = m.Version(); err == nil {
			slog.Info("schema version", "version", v, "dirty", dirty)
		}
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if cerr := m.Close(); cerr != nil {
		slog.Warn("close migrator failed", "error", cerr)
	}
	return err
}
