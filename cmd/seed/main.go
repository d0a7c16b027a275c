package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"standup-lab/auth"
	"standup-lab/domain"
	"standup-lab/repositories"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Roster is the on-disk shape of a seed file.
type Roster struct {
	Teams []TeamSeed `yaml:"teams"`
}

type TeamSeed struct {
	ID       domain.TeamID   `yaml:"id"`
	Members  []domain.Member `yaml:"members"`
	Checkins []CheckinSeed   `yaml:"checkins"`
}

type CheckinSeed struct {
	domain.Checkin `yaml:",inline"`
	Items          []domain.WorkItem `yaml:"items"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()

	dbPath := flag.String("db", envOr("BADGER_FILEPATH", database.DefaultPath), "Path to badger DB")
	file := flag.String("roster", "testdata/roster.yaml", "Roster YAML file")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "Secret used to sign the printed tokens")
	ttl := flag.Duration("ttl", 24*time.Hour, "Lifetime of the printed tokens")
	flag.Parse()

	roster, err := loadRoster(*file)
	if err != nil {
		return exitConfig, err
	}

	log := logs.GetLoggerFromString(envOr("LOG_LEVEL", "INFO"))
	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("open badger at %s: %w", *dbPath, err)
	}
	defer db.Close()

	ctx := context.Background()
	members := repositories.NewMembershipRepository(db, log)
	checkins := repositories.NewCheckinRepository(db)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Team", "User", "Display name", "Role", "Token"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	now := time.Now().UTC()
	for _, team := range roster.Teams {
		for _, member := range team.Members {
			member.TeamID = team.ID
			member.JoinedAt = now
			if member.Role == "" {
				member.Role = domain.RoleMember
			}
			if err := members.AddMember(ctx, member); err != nil {
				return exitRuntime, fmt.Errorf("team %s: %w", team.ID, err)
			}
			token := "-"
			if *secret != "" {
				token, err = auth.GenerateToken(*secret, domain.Identity{
					UserID:      member.UserID,
					Username:    member.Username,
					DisplayName: member.DisplayName,
				}, *ttl)
				if err != nil {
					return exitRuntime, err
				}
			}
			table.Append([]string{team.ID.String(), string(member.UserID), member.DisplayName, string(member.Role), token})
		}
		for _, checkin := range team.Checkins {
			checkin.TeamID = team.ID
			if err := checkins.SaveCheckin(ctx, checkin.Checkin); err != nil {
				return exitRuntime, fmt.Errorf("checkin %d: %w", checkin.ID, err)
			}
			for _, item := range checkin.Items {
				item.CheckinID = checkin.ID
				if err := checkins.SaveItem(ctx, item); err != nil {
					return exitRuntime, fmt.Errorf("item %d: %w", item.ID, err)
				}
			}
		}
		log.Info("Team seeded", "team_id", team.ID, "members", len(team.Members), "checkins", len(team.Checkins))
	}

	table.Render()
	return exitOK, nil
}

func loadRoster(path string) (Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster: %w", err)
	}
	var roster Roster
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return Roster{}, fmt.Errorf("parse roster %s: %w", path, err)
	}
	sort.Slice(roster.Teams, func(i, j int) bool { return roster.Teams[i].ID < roster.Teams[j].ID })
	return roster, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
