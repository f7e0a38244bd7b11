// Package quotes rotates the widget's motivational quote: one per day
// of the year, with a manual refresh offset layered on top.
package quotes

import "time"

var motivationalQuotes = []string{
	"The secret of getting ahead is getting started.",
	"Small steps every day add up to big results.",
	"Discipline is choosing between what you want now and what you want most.",
	"You don't have to be great to start, but you have to start to be great.",
	"Done is better than perfect.",
	"The best time to plant a tree was twenty years ago. The second best time is now.",
	"Success is the sum of small efforts repeated day in and day out.",
	"Focus on progress, not perfection.",
	"A year from now you may wish you had started today.",
	"Action is the foundational key to all success.",
	"It always seems impossible until it's done.",
	"What you do today can improve all your tomorrows.",
	"Motivation gets you going, habit keeps you growing.",
	"The way to get started is to quit talking and begin doing.",
	"Don't watch the clock; do what it does. Keep going.",
	"Every accomplishment starts with the decision to try.",
	"Either you run the day or the day runs you.",
	"Well begun is half done.",
	"Energy and persistence conquer all things.",
	"Lost time is never found again.",
}

// ForDay returns the quote for the given time. refreshOffset lets the
// user cycle to the next quote without waiting for the day to change.
func ForDay(t time.Time, refreshOffset int) string {
	idx := (t.YearDay() + refreshOffset) % len(motivationalQuotes)
	if idx < 0 {
		idx += len(motivationalQuotes)
	}
	return motivationalQuotes[idx]
}

// Count returns how many quotes are in the rotation.
func Count() int {
	return len(motivationalQuotes)
}
