// Command make-admin promotes a user account to the admin role by email
// address. It is the one-shot tool operators run to give an instructor
// access to the admin panel.
//
// Usage:
//
//	make-admin <email>
//
// Requires MONGODB_URI in the environment or a local .env file. The
// connection string must carry a default database. Exit code 0 means the
// user now has the admin role (updated or already there); 1 means anything
// else.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pollwise/admin-tools/internal/adapter/mongodb"
	"github.com/pollwise/admin-tools/internal/adapter/mongodb/user"
	"github.com/pollwise/admin-tools/internal/app"
	"github.com/pollwise/admin-tools/internal/config"
	"github.com/pollwise/admin-tools/internal/domain"
	"github.com/pollwise/admin-tools/internal/service/elevator"
)

const runTimeout = 30 * time.Second

// roleElevator is the slice of the elevator service run depends on.
type roleElevator interface {
	Elevate(ctx context.Context, email string) (*elevator.Result, error)
}

// Seams swapped by tests so connection release is observable without a
// running database.
var (
	connectStore = defaultConnectStore
	newElevator  = defaultNewElevator
)

func defaultConnectStore(ctx context.Context, cfg config.MongoConfig) (io.Closer, *mongo.Database, error) {
	client, db, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return clientCloser{client: client}, db, nil
}

// clientCloser adapts a connected client to io.Closer so run can release it
// the same way on every exit path.
type clientCloser struct {
	client *mongo.Client
}

func (c clientCloser) Close() error {
	return c.client.Disconnect(context.Background())
}

func defaultNewElevator(logger *slog.Logger, db *mongo.Database) roleElevator {
	return elevator.NewService(logger, user.New(db))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: make-admin <email>")
		fmt.Fprintln(out, "Example: make-admin jane.doe@example.com")
		return 1
	}
	email := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", color.RedString("❌"), err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	closer, db, err := connectStore(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(out, "%s Could not connect to MongoDB: %v\n", color.RedString("❌"), err)
		return 1
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("disconnect", "error", err)
		}
	}()

	fmt.Fprintf(out, "Connected to MongoDB\n\n")

	svc := newElevator(logger, db)

	res, err := svc.Elevate(ctx, email)
	if err != nil {
		reportError(out, err, email)
		return 1
	}

	reportResult(out, res, cfg.Admin.PanelURL)
	return 0
}

// printFoundUser prints the matched user and their pre-update role.
func printFoundUser(out io.Writer, u domain.User) {
	fmt.Fprintf(out, "Found user: %s\n", u.DisplayName())
	fmt.Fprintf(out, "Current role: %s\n", u.Role.OrDefault())
}

// reportResult prints the outcome of a successful elevation.
func reportResult(out io.Writer, res *elevator.Result, panelURL string) {
	printFoundUser(out, res.User)

	switch res.Outcome {
	case elevator.OutcomeAlreadyAdmin:
		fmt.Fprintf(out, "\n%s User is already an admin!\n", color.GreenString("✅"))
	default:
		fmt.Fprintf(out, "\n%s Successfully updated %s to admin role!\n", color.GreenString("✅"), res.User.Email)
		fmt.Fprintf(out, "\nYou can now access the admin panel at:\n%s\n", panelURL)
	}
}

// reportError prints a distinct, actionable message per failure class.
func reportError(out io.Writer, err error, email string) {
	cross := color.RedString("❌")

	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(out, "%s User not found with email: %s\n", cross, email)
		fmt.Fprintln(out, "\nMake sure the user has an instructor account first.")
	case errors.Is(err, domain.ErrUpdateFailed):
		// The read matched, so the operator still gets the found-user lines.
		var updateFailed *elevator.UpdateFailedError
		if errors.As(err, &updateFailed) {
			printFoundUser(out, updateFailed.User)
		}
		fmt.Fprintf(out, "%s Failed to update user\n", cross)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
