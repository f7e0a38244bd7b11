package repl

import (
	"fmt"
	"time"

	"github.com/offlinelab/calendar-plus/internal/quotes"
)

// displayDashboard renders the whole widget: clock, calendar grid,
// countdown, quote, active notification and the reminders list.
func (r *REPL) displayDashboard(now time.Time) {
	fmt.Println()
	fmt.Println(r.formatter.FormatDateTime(now))
	fmt.Println()
	fmt.Println(r.formatter.FormatMonth(now, r.state))

	if r.config.UI.ShowCountdown {
		fmt.Println(r.formatter.FormatCountdown(now))
		fmt.Println()
	}

	if r.config.UI.ShowQuote {
		fmt.Println(r.formatter.FormatQuote(quotes.ForDay(now, r.quoteOffset)))
		fmt.Println()
	}

	if active, ok := r.state.ActiveNotification(); ok {
		fmt.Println(r.formatter.FormatNotification(active))
		fmt.Println()
	}

	fmt.Println(r.formatter.FormatReminderList(r.state.Reminders()))
}

func (r *REPL) displayError(err error) {
	fmt.Println(r.formatter.FormatError(err))
	fmt.Println()
}

func (r *REPL) displayWelcome() {
	fmt.Print(r.formatter.FormatWelcome())
}

func (r *REPL) displayHelp() {
	fmt.Print(r.formatter.FormatHelp())
}

func (r *REPL) displayInfo(msg string) {
	fmt.Println(r.formatter.FormatInfo(msg))
	fmt.Println()
}

func (r *REPL) displaySystem(msg string) {
	fmt.Println(r.formatter.FormatSystem(msg))
	fmt.Println()
}
