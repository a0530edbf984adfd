// Loads every static registry and prints an integrity report.
//
// Usage:
//
//	go run ./cmd/datacheck            # summary
//	go run ./cmd/datacheck -v         # also list groups and dangling unlocks
//
// Exits non-zero if any table fails to load. Boss unlocks pointing at
// locations without a declared table are reported but not fatal: unlock
// lists reference regions whose tables land in later content revisions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/kindled/ds3world/internal/data"
)

func main() {
	verbose := flag.Bool("v", false, "list groups and dangling boss unlocks")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := data.LoadAll(); err != nil {
		fmt.Fprintf(os.Stderr, "datacheck: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("items:     %d\n", len(data.ItemTable))
	fmt.Printf("locations: %d\n", len(data.LocationTable))
	fmt.Printf("groups:    %d\n", len(data.LocationGroups))
	fmt.Printf("bosses:    %d (+1 stand-in)\n", data.BossCount())
	fmt.Println()

	for _, region := range data.Regions() {
		locs := data.RegionLocations(region)
		rank, _ := data.RegionRank(region)
		fmt.Printf("%-30s rank %2d  %3d locations\n", region, rank, len(locs))
	}

	dangling := danglingUnlocks()
	if len(dangling) > 0 {
		fmt.Printf("\n%d boss unlocks reference locations without a declared table\n", len(dangling))
	}

	if *verbose {
		fmt.Println()
		labels := make([]string, 0, len(data.LocationGroups))
		for label := range data.LocationGroups {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("group %-25s %3d members\n", label, len(data.GroupMembers(label)))
		}
		for _, name := range dangling {
			fmt.Printf("dangling unlock: %s\n", name)
		}
	}
}

// danglingUnlocks returns boss unlock targets that have no location record,
// sorted and deduplicated.
func danglingUnlocks() []string {
	seen := make(map[string]struct{})
	check := func(names []string) {
		for _, name := range names {
			if data.GetLocation(name) == nil {
				seen[name] = struct{}{}
			}
		}
	}
	for _, b := range data.Bosses() {
		check(b.Unlocks())
	}
	check(data.StandInBoss().Unlocks())

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
