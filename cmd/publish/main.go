// Publishes the static content registries to PostgreSQL so companion
// trackers can read location and boss metadata without linking this module.
//
// Usage:
//
//	go run ./cmd/publish                 # config from config/publish.yaml
//	DS3WORLD_CONFIG=x.yaml go run ./cmd/publish
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/kindled/ds3world/internal/config"
	"github.com/kindled/ds3world/internal/data"
	"github.com/kindled/ds3world/internal/db"
)

const defaultConfigPath = "config/publish.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := defaultConfigPath
	if p := os.Getenv("DS3WORLD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadPublish(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading content tables: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	slog.Info("migrations applied")

	repo := db.NewContentRepository(database.Pool(), cfg.WorldVersion)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return repo.ReplaceRegions(gctx, regionRows()) })
	g.Go(func() error { return repo.ReplaceLocations(gctx, locationRows()) })
	g.Go(func() error { return repo.ReplaceGroups(gctx, groupRows()) })
	g.Go(func() error { return repo.ReplaceBosses(gctx, bossRows()) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("publishing content: %w", err)
	}

	slog.Info("content published", "world_version", cfg.WorldVersion)
	return nil
}

func regionRows() []db.RegionRow {
	rows := make([]db.RegionRow, 0, len(data.RegionOrder))
	for rank, region := range data.RegionOrder {
		rows = append(rows, db.RegionRow{Name: region, Rank: rank})
	}
	return rows
}

func locationRows() []db.LocationRow {
	var rows []db.LocationRow
	for _, region := range data.Regions() {
		for _, loc := range data.RegionLocations(region) {
			rows = append(rows, db.LocationRow{
				Name:        loc.Name(),
				Region:      region,
				DefaultItem: loc.DefaultItem(),
				Address:     loc.Address(),
				RegionRank:  loc.RegionRank(),
				StaticKey:   loc.StaticKey(),
				Missable:    loc.IsMissable(),
				NPC:         loc.IsNPC(),
				Prominent:   loc.IsProminent(),
				Progression: loc.IsProgression(),
				Boss:        loc.IsBoss(),
				Miniboss:    loc.IsMiniboss(),
				Drop:        loc.IsDrop(),
				Mimic:       loc.IsMimic(),
				HostileNPC:  loc.IsHostileNPC(),
				Lizard:      loc.IsLizard(),
				Shop:        loc.IsShop(),
				Conditional: loc.IsConditional(),
				Hidden:      loc.IsHidden(),
			})
		}
	}
	return rows
}

func groupRows() []db.GroupRow {
	labels := make([]string, 0, len(data.LocationGroups))
	for label := range data.LocationGroups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([]db.GroupRow, 0, len(labels))
	for _, label := range labels {
		memberSet := data.GroupMembers(label)
		members := make([]string, 0, len(memberSet))
		for name := range memberSet {
			members = append(members, name)
		}
		sort.Strings(members)
		rows = append(rows, db.GroupRow{
			Name:        label,
			Description: data.GroupDescriptions[label],
			Members:     members,
		})
	}
	return rows
}

func bossRows() []db.BossRow {
	bosses := data.Bosses()
	rows := make([]db.BossRow, 0, len(bosses)+1)
	for i, b := range bosses {
		rows = append(rows, db.BossRow{
			Name:     b.Name(),
			GameID:   b.GameID(),
			Position: i,
			Unlocks:  b.Unlocks(),
		})
	}
	standIn := data.StandInBoss()
	rows = append(rows, db.BossRow{
		Name:     standIn.Name(),
		GameID:   standIn.GameID(),
		Position: -1,
		StandIn:  true,
		Unlocks:  standIn.Unlocks(),
	})
	return rows
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
