package timetable

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Period string

const (
	PeriodToday    Period = "today"
	PeriodTomorrow Period = "tomorrow"
	PeriodWeek     Period = "week"
)

// ModeHTML is the markup kind returned alongside formatted text.
const ModeHTML = "HTML"

var trailingDayNumber = regexp.MustCompile(`\s+\d+$`)

// Format renders a schedule payload as chat text. It is a pure function:
// the reference date comes in as an argument. An empty string means
// "nothing scheduled" and covers the degraded-fetch case as well; the
// caller decides what message to show for it.
func Format(p Payload, ref Ref, period Period, today time.Time) (text string, mode string) {
	if !p.OK || len(p.Items) == 0 {
		return "", ""
	}

	items := filterByPeriod(p.Items, period, today)
	if len(items) == 0 {
		return "", ""
	}

	var sb strings.Builder

	if period == PeriodWeek {
		renderWeek(&sb, items, ref.Teacher)
	} else {
		sb.WriteString("<b>" + periodTitle(period) + "</b>")
		for i, item := range items {
			sb.WriteString("\n\n")
			renderItem(&sb, item, ref.Teacher, i+1)
		}
	}

	return sb.String(), ModeHTML
}

func filterByPeriod(items []Item, period Period, today time.Time) []Item {
	var date string
	switch period {
	case PeriodToday:
		date = CivilDate(today)
	case PeriodTomorrow:
		date = CivilDate(today.AddDate(0, 0, 1))
	default:
		return items
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(item.Date, date) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func renderWeek(sb *strings.Builder, items []Item, teacher bool) {
	byDay := make(map[int][]Item)
	for _, item := range items {
		// weekday numbers outside 1..7 are upstream garbage, drop them
		if item.WeekdayNum >= 1 && item.WeekdayNum <= 7 {
			byDay[item.WeekdayNum] = append(byDay[item.WeekdayNum], item)
		}
	}

	for day := 1; day <= 7; day++ {
		group := byDay[day]
		if len(group) == 0 {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("<b>" + weekdayTitle(group[0].Weekday) + "</b>")

		for i, item := range group {
			sb.WriteString("\n\n")
			renderItem(sb, item, teacher, i+1)
		}
	}
}

func renderItem(sb *strings.Builder, item Item, teacher bool, number int) {
	counterparty := item.Teacher
	if teacher {
		counterparty = item.Group
	}

	fmt.Fprintf(sb, "<b>%d.</b> %s <b>%s</b>", number, lessonGlyph(item.Discipline), item.Discipline)
	fmt.Fprintf(sb, "\n👤 <b>%s</b>  🕒 <code>%s</code>", counterparty, timeRange(item.Start, item.End))

	if item.Room != "" {
		fmt.Fprintf(sb, "\n📍 <i>%s</i>", item.Room)
	}
}

func timeRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + "–" + end
	case start != "":
		return start
	default:
		return end
	}
}

func lessonGlyph(discipline string) string {
	lower := strings.ToLower(discipline)
	switch {
	case strings.HasPrefix(lower, "лек"):
		return "🟢"
	case strings.HasPrefix(lower, "лаб"):
		return "🔵"
	case strings.HasPrefix(lower, "пр"):
		return "🟠"
	default:
		return "⚪"
	}
}

// weekdayTitle cleans the upstream display name: a leading calendar emoji
// and a trailing day-of-month numeral both go away.
func weekdayTitle(name string) string {
	name = strings.TrimPrefix(name, "📅")
	name = trailingDayNumber.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

func periodTitle(period Period) string {
	if period == PeriodTomorrow {
		return "Завтра"
	}
	return "Сегодня"
}
