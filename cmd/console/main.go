package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"leavedesk/internal/client"
	"leavedesk/internal/console/calendar"
	"leavedesk/internal/console/config"
	"leavedesk/internal/console/report"
	"leavedesk/internal/domain/leave"
)

const usage = `leavedesk console

Usage:
  console login <email>                      log in and cache the session
  console logout                             drop the cached session
  console calendar                           list this month's calendar events
  console show <id>                          show one request's details
  console create <from> <to> <type> <reason> submit a leave request (dates YYYY-MM-DD)
  console move <id> <from> <to>              reschedule a request (dates YYYY-MM-DD)
  console delete <id>                        delete a request
  console upcoming                           list upcoming leave
  console report                             export upcoming leave as PDF
`

// stdoutNotifier prints controller notifications the way the web console
// shows toasts.
type stdoutNotifier struct{}

func (stdoutNotifier) Success(msg string) { fmt.Println("ok:", msg) }
func (stdoutNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "error:", msg) }

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		if len(os.Args) != 3 {
			log.Fatal("usage: console login <email>")
		}
		runLogin(ctx, cfg, cfgPath, os.Args[2])
	case "logout":
		cfg.Token = ""
		cfg.UserID = ""
		cfg.Name = ""
		if err := config.Save(cfgPath, cfg); err != nil {
			log.Fatalf("config save failed: %v", err)
		}
		fmt.Println("logged out")
	case "calendar":
		ctrl := loggedIn(cfg)
		ctrl.Refresh(ctx)
		printEvents(ctrl.Events())
	case "show":
		if len(os.Args) != 3 {
			log.Fatal("usage: console show <id>")
		}
		ctrl := loggedIn(cfg)
		ctrl.Refresh(ctx)
		details, ok := ctrl.ClickEvent(os.Args[2])
		if !ok {
			log.Fatalf("no event with id %s", os.Args[2])
		}
		fmt.Printf("%s  %s to %s  %d day(s)  %s  %s\n  reason: %s\n",
			details.ID,
			leave.FormatDisplay(details.StartDate), leave.FormatDisplay(details.EndDate),
			details.Duration, details.Type, details.Status, details.Reason)
	case "create":
		if len(os.Args) < 6 {
			log.Fatal("usage: console create <from> <to> <type> <reason>")
		}
		ctrl := loggedIn(cfg)
		ctrl.Refresh(ctx)
		form := calendar.Form{
			RangeString: leave.FormatDisplay(os.Args[2]) + " to " + leave.FormatDisplay(os.Args[3]),
			Type:        leave.Type(strings.ToUpper(os.Args[4])),
			Reason:      strings.Join(os.Args[5:], " "),
		}
		ctrl.SubmitCreate(ctx, form)
	case "move":
		if len(os.Args) != 5 {
			log.Fatal("usage: console move <id> <from> <to>")
		}
		ctrl := loggedIn(cfg)
		ctrl.Refresh(ctx)
		// The controller expects the drop position's exclusive end, the
		// same shape the calendar widget reports.
		exclusiveEnd, err := leave.ExclusiveEnd(os.Args[4])
		if err != nil {
			log.Fatalf("invalid date %q", os.Args[4])
		}
		ctrl.DragReschedule(ctx, os.Args[2], os.Args[3], exclusiveEnd)
	case "delete":
		if len(os.Args) != 3 {
			log.Fatal("usage: console delete <id>")
		}
		ctrl := loggedIn(cfg)
		ctrl.Refresh(ctx)
		ctrl.Delete(ctx, os.Args[2])
	case "upcoming":
		ctrl := loggedIn(cfg)
		printEvents(ctrl.UpcomingLeave(ctx))
	case "report":
		ctrl := loggedIn(cfg)
		events := ctrl.UpcomingLeave(ctx)
		path, err := report.WriteUpcomingPDF(cfg.ReportDir, cfg.Name, events, time.Now())
		if err != nil {
			log.Fatalf("report failed: %v", err)
		}
		fmt.Println("written", path)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, cfg *config.Config, cfgPath, email string) {
	fmt.Print("password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("read password failed: %v", err)
	}

	c := client.New(cfg.BaseURL)
	session, err := c.Login(ctx, email, strings.TrimSpace(password))
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	cfg.Email = email
	cfg.Token = session.Token
	cfg.UserID = session.User.ID
	cfg.Name = session.User.Name
	if err := config.Save(cfgPath, cfg); err != nil {
		log.Fatalf("config save failed: %v", err)
	}
	fmt.Printf("logged in as %s\n", session.User.Name)
}

func loggedIn(cfg *config.Config) *calendar.Controller {
	if cfg.Token == "" || cfg.UserID == "" {
		log.Fatal("not logged in, run: console login <email>")
	}
	api := client.New(cfg.BaseURL).WithToken(cfg.Token)
	return calendar.NewController(api, stdoutNotifier{}, cfg.UserID)
}

func printEvents(events []leave.DisplayEvent) {
	if len(events) == 0 {
		fmt.Println("no leave requests")
		return
	}
	for _, ev := range events {
		endISO, err := leave.InclusiveEnd(ev.End)
		if err != nil {
			endISO = ev.Start
		}
		fmt.Printf("%s  %s to %s  %d day(s)  %s  %s\n",
			ev.ID,
			leave.FormatDisplay(ev.Start), leave.FormatDisplay(endISO),
			ev.Duration, ev.Type, ev.Status)
	}
}
