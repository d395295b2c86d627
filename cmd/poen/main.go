// poen is the command line tool for operating an Open Poen deployment.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/config"
	"github.com/openpoen/backend/internal/consent"
	"github.com/openpoen/backend/internal/ingest"
	"github.com/openpoen/backend/internal/jobs"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/internal/psd2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

var errUsage = errors.New("usage: poen <ingest-now|show-payments|show-users|add-user|create-invite-link> [options]")

// app holds everything the commands need.
type app struct {
	config    config.Config
	out       io.Writer
	runner    *jobs.Runner
	refresher jobs.Refresher
}

func main() {
	// Failures are reported as a single line on stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.Disabled)

	a, err := setup()
	if err == nil {
		err = a.run(context.Background(), os.Args[1:])
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "poen: %s\n", err)
		os.Exit(1)
	}
}

func setup() (app, error) {
	c, err := config.Load()
	if err != nil {
		return app{}, err
	}

	err = models.Open(c)
	if err != nil {
		return app{}, err
	}

	bank, err := psd2.NewClient(c.Bank)
	if err != nil {
		return app{}, err
	}

	runner := jobs.NewRunner(ingest.New(models.DB, bank, c)).WithLease(models.DB)
	return app{
		config:    c,
		out:       os.Stdout,
		runner:    runner,
		refresher: consent.New(models.DB, bank, runner, c),
	}, nil
}

func (a app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "ingest-now":
		return a.ingestNow(ctx)
	case "show-payments":
		return a.showPayments(args[1:])
	case "show-users":
		return a.showUsers()
	case "add-user":
		return a.addUser(args[1:])
	case "create-invite-link":
		return a.createInviteLink(args[1:])
	}

	return fmt.Errorf("unknown command %q, %w", args[0], errUsage)
}

func (a app) ingestNow(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	if a.refresher != nil {
		_, err := a.refresher.Refresh(ctx)
		if err != nil {
			return err
		}
	}

	report := a.runner.IngestJob(ctx)
	if !report.OK {
		return fmt.Errorf("%s (%w)", report.Message, report.Err)
	}

	if report.Skipped {
		fmt.Fprintln(a.out, "Another ingestion is in progress")
		return nil
	}

	fmt.Fprintf(a.out, "Imported %d new payments\n", report.NewCount)
	return nil
}

func (a app) showPayments(args []string) error {
	fs := flag.NewFlagSet("show-payments", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	match := fs.String("match", "", "only show payments whose creditor or debtor name matches this glob")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var payments []models.Payment
	err := models.DB.Order("booking_date ASC").Find(&payments).Error
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tROUTE\tTYPE\tCOUNTERPARTY\tDESCRIPTION")
	for _, p := range payments {
		if *match != "" && !matchesName(*match, p.CreditorName, p.DebtorName) {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.BookingDate.Format(time.DateOnly),
			p.Amount.StringFixed(2),
			p.Route,
			p.Type,
			counterparty(p),
			p.ShortUserDescription,
		)
	}

	return w.Flush()
}

// matchesName reports if any of the names matches the pattern, ignoring case.
func matchesName(pattern string, names ...*string) bool {
	pattern = strings.ToLower(pattern)
	for _, name := range names {
		if name != nil && glob.Glob(pattern, strings.ToLower(*name)) {
			return true
		}
	}

	return false
}

func counterparty(p models.Payment) string {
	name := p.CreditorName
	if p.Route == models.RouteIncome {
		name = p.DebtorName
	}

	if name == nil {
		return "-"
	}
	return *name
}

func (a app) showUsers() error {
	var users []models.User
	err := models.DB.Preload("Projects").Preload("Subprojects").Order("email ASC").Find(&users).Error
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tADMIN\tFINANCIAL\tACTIVE\tPROJECTS\tINITIATIVES")
	for _, u := range users {
		projects := make([]string, 0, len(u.Projects))
		for _, p := range u.Projects {
			projects = append(projects, p.Name)
		}

		subprojects := make([]string, 0, len(u.Subprojects))
		for _, s := range u.Subprojects {
			subprojects = append(subprojects, s.Name)
		}

		fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%t\t%s\t%s\n", u.ID, u.Email, u.Admin, u.Financial, u.Active, strings.Join(projects, ", "), strings.Join(subprojects, ", "))
	}

	return w.Flush()
}

func (a app) addUser(args []string) error {
	fs := flag.NewFlagSet("add-user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "email address of the user")
	admin := fs.Bool("admin", false, "make the user an administrator")
	projectID := fs.String("project-id", "", "make the user an owner of this project")
	subprojectID := fs.String("subproject-id", "", "make the user an owner of this initiative")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return errors.New("--email is required")
	}

	role := models.UserRole{Admin: *admin}
	var err error
	if role.ProjectID, err = parseID(*projectID); err != nil {
		return fmt.Errorf("invalid --project-id: %w", err)
	}
	if role.SubprojectID, err = parseID(*subprojectID); err != nil {
		return fmt.Errorf("invalid --subproject-id: %w", err)
	}

	user, created, err := models.AddUser(models.DB, *email, role)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(a.out, "Added user %s (%s)\n", user.Email, user.ID)
	} else {
		fmt.Fprintf(a.out, "Updated user %s (%s)\n", user.Email, user.ID)
	}
	return nil
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}

func (a app) createInviteLink(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: poen create-invite-link <email>")
	}

	var user models.User
	err := models.DB.Where(&models.User{Email: strings.ToLower(strings.TrimSpace(args[0]))}).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return fmt.Errorf("no user with email address %s", args[0])
	}
	if err != nil {
		return err
	}

	link, err := auth.NewTokens(a.config.SecretKey).InviteLink(a.config.BaseURL, user.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Password reset URL for %s: %s\n", user.Email, link)
	return nil
}
