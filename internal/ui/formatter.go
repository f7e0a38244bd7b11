package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/offlinelab/calendar-plus/internal/calendar"
	"github.com/offlinelab/calendar-plus/internal/dateutil"
)

var weekDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Formatter renders the widget's views, optionally with color.
type Formatter struct {
	colored bool
}

func NewFormatter(colored bool) *Formatter {
	return &Formatter{colored: colored}
}

func (f *Formatter) FormatWelcome() string {
	if f.colored {
		title := HeaderStyle.Render("Calendar-Plus")
		subtitle := DimStyle.Render("Your daily dose of organization and inspiration, offline.")
		help := DimStyle.Render("Type /help for commands")
		return "\n" + BoxStyle.Render(title+"\n"+subtitle+"\n\n"+help) + "\n\n"
	}

	lines := []string{
		"",
		"Calendar-Plus",
		"Your daily dose of organization and inspiration, offline.",
		"Type /help for commands",
		"",
	}
	return strings.Join(lines, "\n")
}

// FormatDateTime renders the clock header: 12-hour time plus long date.
func (f *Formatter) FormatDateTime(now time.Time) string {
	clock := now.Format("03:04:05 PM")
	date := now.Format("Monday, January 2, 2006")
	if f.colored {
		return TimeStyle.Render(clock) + "\n" + DateStyle.Render(date)
	}
	return clock + "\n" + date
}

// FormatMonth renders the month grid for the month containing now.
// Today is highlighted, days carrying reminders get a dot marker, and
// logged distances for the month are listed under the grid.
func (f *Formatter) FormatMonth(now time.Time, state *calendar.State) string {
	year, month := now.Year(), now.Month()
	today := dateutil.DayOf(now)

	var b strings.Builder

	title := fmt.Sprintf("%s %d", month, year)
	if f.colored {
		title = HeaderStyle.Render(title)
	}
	b.WriteString(center(title, 7*4) + "\n")

	for _, wd := range weekDays {
		cell := fmt.Sprintf("%4s", wd)
		if f.colored {
			cell = WeekdayStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < dateutil.FirstWeekday(year, month); i++ {
		b.WriteString("    ")
		col++
	}

	var distances []string
	for dom := 1; dom <= dateutil.DaysInMonth(year, month); dom++ {
		d := dateutil.Day{Year: year, Month: month, Day: dom}

		mark := " "
		if state.HasReminderOn(d) {
			mark = "•"
			if f.colored {
				mark = ReminderMarkStyle.Render("•")
			}
		}

		num := fmt.Sprintf("%3d", dom)
		if d == today {
			if f.colored {
				num = TodayStyle.Render(num)
			} else {
				num = fmt.Sprintf(">%2d", dom) // marks today without color
			}
		}
		b.WriteString(num + mark)

		if km, ok := state.Distance(d); ok {
			distances = append(distances, fmt.Sprintf("%s: %gkm", d.Key(), km))
		}

		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	if len(distances) > 0 {
		label := "Logged distances:"
		if f.colored {
			label = DistanceStyle.Render(label)
		}
		b.WriteString("\n" + label + "\n")
		for _, line := range distances {
			if f.colored {
				line = DistanceStyle.Render("  " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// FormatCountdown renders the days-remaining view.
func (f *Formatter) FormatCountdown(now time.Time) string {
	inMonth := dateutil.DaysRemainingInMonth(now)
	inYear := dateutil.DaysRemainingInYear(now)

	if f.colored {
		return CountdownStyle.Render(fmt.Sprintf("%d", inMonth)) + DimStyle.Render(" days left this month   ") +
			CountdownStyle.Render(fmt.Sprintf("%d", inYear)) + DimStyle.Render(" days left this year")
	}
	return fmt.Sprintf("%d days left this month   %d days left this year", inMonth, inYear)
}

// FormatQuote renders the motivational quote card.
func (f *Formatter) FormatQuote(quote string) string {
	line := fmt.Sprintf("%q", quote)
	attribution := "— Daily Motivation —"
	if f.colored {
		return QuoteStyle.Render(line) + "\n" + DimStyle.Render(attribution)
	}
	return line + "\n" + attribution
}

// FormatNotification renders the active-notification banner.
func (f *Formatter) FormatNotification(r calendar.Reminder) string {
	msg := fmt.Sprintf("Reminder Today: %q", r.Text)
	hint := "(/dismiss to dismiss)"
	if f.colored {
		return BannerStyle.Render(msg) + " " + DimStyle.Render(hint)
	}
	return msg + " " + hint
}

// FormatReminderList renders every reminder, completed ones struck out.
func (f *Formatter) FormatReminderList(reminders []calendar.Reminder) string {
	if len(reminders) == 0 {
		msg := "No reminders set. Use /add to create one."
		if f.colored {
			return DimStyle.Render(msg)
		}
		return msg
	}

	var b strings.Builder
	header := "Your Reminders"
	if f.colored {
		header = HeaderStyle.Render(header)
	}
	b.WriteString(header + "\n")

	for _, r := range reminders {
		b.WriteString(f.FormatReminderLine(r) + "\n")
	}
	return b.String()
}

// FormatReminderLine renders one reminder with its short id.
func (f *Formatter) FormatReminderLine(r calendar.Reminder) string {
	date, err := dateutil.ParseDay(r.Date)
	dateLabel := r.Date
	if err == nil {
		dateLabel = date.Time().Format("Jan 2, 2006")
	}

	line := fmt.Sprintf("  [%s] %s  %s", shortID(r.ID), dateLabel, r.Text)
	if !f.colored {
		if r.IsCompleted {
			line += " (done)"
		}
		return line
	}
	if r.IsCompleted {
		return CompletedStyle.Render(line)
	}
	return DimStyle.Render(fmt.Sprintf("  [%s] ", shortID(r.ID))) +
		WeekdayStyle.Render(dateLabel) + "  " + r.Text
}

func (f *Formatter) FormatError(err error) string {
	prefix := "Error: "
	if f.colored {
		prefix = ErrorStyle.Render("Error: ")
	}
	return prefix + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	if f.colored {
		return InfoStyle.Render(info)
	}
	return info
}

func (f *Formatter) FormatSystem(msg string) string {
	if f.colored {
		return SystemStyle.Render(msg)
	}
	return msg
}

const helpMarkdown = `# Commands

## Viewing
- ` + "`/today`" + ` - full dashboard: clock, calendar, countdown, quote, reminders
- ` + "`/cal [YYYY-MM]`" + ` - month grid (current month by default)
- ` + "`/list`" + ` - all reminders
- ` + "`/day <YYYY-MM-DD>`" + ` - reminders and distance for one day
- ` + "`/quote`" + ` - show (and rotate) the daily quote

## Reminders
- ` + "`/add <YYYY-MM-DD> <text>`" + ` - add a reminder for a day
- ` + "`/done <id>`" + ` - toggle completion (id prefix is enough)
- ` + "`/rm <id>`" + ` - delete a reminder
- ` + "`/dismiss`" + ` - dismiss the current notification banner

## Travel log
- ` + "`/dist <YYYY-MM-DD> <km>`" + ` - log the day's distance (0 is a valid entry)
- ` + "`/cleardist <YYYY-MM-DD>`" + ` - remove the day's entry

## Extras
- ` + "`/convert <amount> <from> <to>`" + ` - offline currency conversion
- ` + "`/help`" + `, ` + "`/quit`" + `
`

// FormatHelp renders the command reference, through glamour when the
// terminal supports color.
func (f *Formatter) FormatHelp() string {
	if f.colored {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if rendered, err := renderer.Render(helpMarkdown); err == nil {
				return rendered
			}
		}
	}
	return helpMarkdown
}

// FormatPrompt returns the input prompt.
func (f *Formatter) FormatPrompt() string {
	if f.colored {
		return BorderStyle.Render("calendar") + CountdownStyle.Render(" > ")
	}
	return "calendar > "
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func center(s string, width int) string {
	// lipgloss.Width would be more precise but the title never carries
	// wide runes.
	pad := width - len(stripANSI(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
