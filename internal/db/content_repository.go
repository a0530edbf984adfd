package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegionRow represents a row in regions.
type RegionRow struct {
	Name string
	Rank int
}

// LocationRow represents a row in locations.
type LocationRow struct {
	Name        string
	Region      string
	DefaultItem string // "" for events, stored as NULL
	Address     int    // 0 for events, stored as NULL
	RegionRank  int
	StaticKey   string
	Missable    bool
	NPC         bool
	Prominent   bool
	Progression bool
	Boss        bool
	Miniboss    bool
	Drop        bool
	Mimic       bool
	HostileNPC  bool
	Lizard      bool
	Shop        bool
	Conditional bool
	Hidden      bool
}

// GroupRow represents a group and its member locations.
type GroupRow struct {
	Name        string
	Description string
	Members     []string
}

// BossRow represents a boss slot and the locations it unblocks.
type BossRow struct {
	Name     string
	GameID   int32
	Position int
	StandIn  bool
	Unlocks  []string
}

// ContentRepository publishes the static content registries.
// Each Replace method swaps the full table contents in one transaction.
type ContentRepository struct {
	pool    *pgxpool.Pool
	version string
}

// NewContentRepository creates a ContentRepository stamping rows with the
// given world version.
func NewContentRepository(pool *pgxpool.Pool, version string) *ContentRepository {
	return &ContentRepository{pool: pool, version: version}
}

// ReplaceRegions replaces the regions table.
func (r *ContentRepository) ReplaceRegions(ctx context.Context, rows []RegionRow) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM regions`); err != nil {
			return fmt.Errorf("clearing regions: %w", err)
		}
		for _, row := range rows {
			_, err := tx.Exec(ctx,
				`INSERT INTO regions (name, rank, world_version) VALUES ($1, $2, $3)`,
				row.Name, row.Rank, r.version)
			if err != nil {
				return fmt.Errorf("inserting region %q: %w", row.Name, err)
			}
		}
		return nil
	})
}

// ReplaceLocations replaces the locations table.
func (r *ContentRepository) ReplaceLocations(ctx context.Context, rows []LocationRow) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM locations`); err != nil {
			return fmt.Errorf("clearing locations: %w", err)
		}
		for _, row := range rows {
			var item, static *string
			if row.DefaultItem != "" {
				item = &row.DefaultItem
			}
			if row.StaticKey != "" {
				static = &row.StaticKey
			}
			var address *int
			if row.Address != 0 {
				address = &row.Address
			}
			_, err := tx.Exec(ctx,
				`INSERT INTO locations (
					name, region, default_item, address, region_rank, static_key,
					missable, npc, prominent, progression, boss, miniboss,
					drop_reward, mimic, hostile_npc, lizard, shop, conditional,
					hidden, world_version
				) VALUES (
					$1, $2, $3, $4, $5, $6,
					$7, $8, $9, $10, $11, $12,
					$13, $14, $15, $16, $17, $18,
					$19, $20
				)`,
				row.Name, row.Region, item, address, row.RegionRank, static,
				row.Missable, row.NPC, row.Prominent, row.Progression, row.Boss, row.Miniboss,
				row.Drop, row.Mimic, row.HostileNPC, row.Lizard, row.Shop, row.Conditional,
				row.Hidden, r.version)
			if err != nil {
				return fmt.Errorf("inserting location %q: %w", row.Name, err)
			}
		}
		return nil
	})
}

// ReplaceGroups replaces the location groups and their memberships.
func (r *ContentRepository) ReplaceGroups(ctx context.Context, rows []GroupRow) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM location_groups`); err != nil {
			return fmt.Errorf("clearing location groups: %w", err)
		}
		for _, row := range rows {
			_, err := tx.Exec(ctx,
				`INSERT INTO location_groups (name, description, world_version) VALUES ($1, $2, $3)`,
				row.Name, row.Description, r.version)
			if err != nil {
				return fmt.Errorf("inserting group %q: %w", row.Name, err)
			}
			for _, member := range row.Members {
				_, err := tx.Exec(ctx,
					`INSERT INTO location_group_members (group_name, location_name) VALUES ($1, $2)`,
					row.Name, member)
				if err != nil {
					return fmt.Errorf("inserting member %q of group %q: %w", member, row.Name, err)
				}
			}
		}
		return nil
	})
}

// ReplaceBosses replaces the bosses and their unlock lists.
func (r *ContentRepository) ReplaceBosses(ctx context.Context, rows []BossRow) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM bosses`); err != nil {
			return fmt.Errorf("clearing bosses: %w", err)
		}
		for _, row := range rows {
			_, err := tx.Exec(ctx,
				`INSERT INTO bosses (name, game_id, position, stand_in, world_version)
				 VALUES ($1, $2, $3, $4, $5)`,
				row.Name, row.GameID, row.Position, row.StandIn, r.version)
			if err != nil {
				return fmt.Errorf("inserting boss %q: %w", row.Name, err)
			}
			for _, unlock := range row.Unlocks {
				_, err := tx.Exec(ctx,
					`INSERT INTO boss_unlocks (boss_name, location_name) VALUES ($1, $2)`,
					row.Name, unlock)
				if err != nil {
					return fmt.Errorf("inserting unlock %q of boss %q: %w", unlock, row.Name, err)
				}
			}
		}
		return nil
	})
}

func (r *ContentRepository) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
