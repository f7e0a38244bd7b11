// Package repl is the interactive front of the widget: a readline loop
// that renders the dashboard and forwards user intents to the domain
// state. Invalid input is reported inline and never reaches the model.
package repl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/offlinelab/calendar-plus/internal/calendar"
	"github.com/offlinelab/calendar-plus/internal/config"
	"github.com/offlinelab/calendar-plus/internal/currency"
	"github.com/offlinelab/calendar-plus/internal/dateutil"
	"github.com/offlinelab/calendar-plus/internal/quotes"
	"github.com/offlinelab/calendar-plus/internal/ui"
)

type REPL struct {
	state     *calendar.State
	config    *config.Config
	rl        *readline.Instance
	formatter *ui.Formatter

	quoteOffset int
}

func NewREPL(state *calendar.State, cfg *config.Config) (*REPL, error) {
	formatter := ui.NewFormatter(cfg.UI.ColoredOutput)

	rl, err := setupReadline(formatter.FormatPrompt())
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}

	return &REPL{
		state:     state,
		config:    cfg,
		rl:        rl,
		formatter: formatter,
	}, nil
}

func (r *REPL) Start(ctx context.Context) error {
	defer r.rl.Close()

	r.displayWelcome()
	r.displayDashboard(time.Now())

	for {
		input, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if input == "" {
			continue
		}

		isCommand, command, args := r.parseCommand(input)
		if !isCommand {
			r.displayError(fmt.Errorf("unknown input %q (commands start with /, type /help)", input))
			continue
		}

		if err := r.handleCommand(command, args); err != nil {
			r.displayError(err)
		}

		if command == "/quit" || command == "/exit" {
			return nil
		}

		// User actions can make a reminder newly eligible; surface it
		// without waiting for the next clock tick.
		if surfaced, ok := r.state.EvaluateNotifications(time.Now()); ok {
			r.ShowNotification(surfaced)
		}
	}
}

func (r *REPL) Stop() {
	r.rl.Close()
}

// ShowNotification prints the banner above the prompt. Safe to call
// from the clock goroutine.
func (r *REPL) ShowNotification(reminder calendar.Reminder) {
	fmt.Print("\r\033[K")
	fmt.Println(r.formatter.FormatNotification(reminder))
	r.rl.Refresh()
}

func (r *REPL) handleCommand(command, args string) error {
	switch command {
	case "/help", "/h":
		r.displayHelp()
		return nil

	case "/today", "/t":
		r.displayDashboard(time.Now())
		return nil

	case "/cal":
		return r.handleCalCommand(args)

	case "/list", "/l":
		fmt.Println(r.formatter.FormatReminderList(r.state.Reminders()))
		return nil

	case "/add", "/a":
		return r.handleAddCommand(args)

	case "/done", "/d":
		return r.handleDoneCommand(args)

	case "/rm":
		return r.handleRemoveCommand(args)

	case "/day":
		return r.handleDayCommand(args)

	case "/dismiss":
		r.state.DismissNotification()
		r.displaySystem("Notification dismissed.")
		return nil

	case "/dist":
		return r.handleDistanceCommand(args)

	case "/cleardist":
		return r.handleClearDistanceCommand(args)

	case "/quote":
		r.quoteOffset++
		fmt.Println(r.formatter.FormatQuote(quotes.ForDay(time.Now(), r.quoteOffset)))
		return nil

	case "/convert":
		return r.handleConvertCommand(args)

	case "/quit", "/exit", "/q":
		fmt.Println("\nGoodbye!")
		return nil

	default:
		return fmt.Errorf("unknown command: %s (type /help for available commands)", command)
	}
}

func (r *REPL) handleCalCommand(args string) error {
	now := time.Now()
	if args != "" {
		t, err := time.ParseInLocation("2006-01", args, time.Local)
		if err != nil {
			return fmt.Errorf("usage: /cal [YYYY-MM]")
		}
		now = t
	}
	fmt.Println(r.formatter.FormatMonth(now, r.state))
	return nil
}

// handleDayCommand shows everything attached to one day: its
// reminders and its logged distance.
func (r *REPL) handleDayCommand(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /day <YYYY-MM-DD>")
	}

	day, err := dateutil.ParseDay(args)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args)
	}

	reminders := r.state.RemindersOn(day)
	if len(reminders) == 0 {
		r.displayInfo(fmt.Sprintf("No reminders for %s.", day.Key()))
	} else {
		for _, reminder := range reminders {
			fmt.Println(r.formatter.FormatReminderLine(reminder))
		}
		fmt.Println()
	}

	if km, ok := r.state.Distance(day); ok {
		r.displayInfo(fmt.Sprintf("Logged distance: %gkm", km))
	} else {
		r.displayInfo("No distance logged.")
	}
	return nil
}

func (r *REPL) handleAddCommand(args string) error {
	parts := strings.SplitN(args, " ", 2)
	if len(parts) < 2 {
		return fmt.Errorf("usage: /add <YYYY-MM-DD> <text>")
	}

	day, err := dateutil.ParseDay(parts[0])
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", parts[0])
	}

	reminder, ok := r.state.AddReminder(day, parts[1])
	if !ok {
		return fmt.Errorf("reminder text must not be empty")
	}

	r.displaySystem(fmt.Sprintf("Reminder added for %s: %q", reminder.Date, reminder.Text))
	return nil
}

func (r *REPL) handleDoneCommand(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /done <id>")
	}

	reminder, ok := r.state.FindReminder(args)
	if !ok {
		return fmt.Errorf("no reminder matches %q", args)
	}

	r.state.ToggleReminderComplete(reminder.ID)
	updated, _ := r.state.FindReminder(reminder.ID)
	if updated.IsCompleted {
		r.displaySystem(fmt.Sprintf("Completed: %q", updated.Text))
	} else {
		r.displaySystem(fmt.Sprintf("Reopened: %q", updated.Text))
	}
	return nil
}

func (r *REPL) handleRemoveCommand(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /rm <id>")
	}

	reminder, ok := r.state.FindReminder(args)
	if !ok {
		return fmt.Errorf("no reminder matches %q", args)
	}

	r.state.DeleteReminder(reminder.ID)
	r.displaySystem(fmt.Sprintf("Deleted: %q", reminder.Text))
	return nil
}

func (r *REPL) handleDistanceCommand(args string) error {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return fmt.Errorf("usage: /dist <YYYY-MM-DD> <km>")
	}

	day, err := dateutil.ParseDay(parts[0])
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", parts[0])
	}

	km, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("invalid distance %q, expected a number", parts[1])
	}

	if err := r.state.SetDailyDistance(day, km); err != nil {
		return err
	}

	r.displaySystem(fmt.Sprintf("Logged %gkm for %s.", km, day.Key()))
	return nil
}

func (r *REPL) handleClearDistanceCommand(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /cleardist <YYYY-MM-DD>")
	}

	day, err := dateutil.ParseDay(args)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args)
	}

	if !r.state.ClearDailyDistance(day) {
		r.displayInfo(fmt.Sprintf("No distance logged for %s.", day.Key()))
		return nil
	}

	r.displaySystem(fmt.Sprintf("Distance cleared for %s.", day.Key()))
	return nil
}

func (r *REPL) handleConvertCommand(args string) error {
	parts := strings.Fields(args)
	if len(parts) != 3 {
		return fmt.Errorf("usage: /convert <amount> <from> <to>")
	}

	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q, expected a number", parts[0])
	}

	result, err := currency.Convert(amount, parts[1], parts[2])
	if err != nil {
		return err
	}

	r.displayInfo(fmt.Sprintf("%.2f %s = %.2f %s",
		amount, strings.ToUpper(parts[1]), result, strings.ToUpper(parts[2])))
	return nil
}
