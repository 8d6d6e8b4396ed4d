package reconcile

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// needByHour pins every resolved date to the business end-of-day convention.
const needByHour = 17

var (
	datePunctuation = regexp.MustCompile(`[^\w\s/:-]`)
	dateLeadIn      = regexp.MustCompile(`^(fecha|para|por|antes de|a mas tardar|como maximo|hasta)\s+`)
	weekdayExpr     = regexp.MustCompile(`^(el\s+)?(?:(proximo|este)\s+)?(lunes|martes|miercoles|jueves|viernes|sabado|domingo)$`)
	inDaysDigits    = regexp.MustCompile(`dentro de (\d{1,3}) dias`)
	inDaysWords     = regexp.MustCompile(`dentro de ([a-z]+) dias`)
	relativeWords   = regexp.MustCompile(`\b(hoy|manana|pasado manana|proximo|este|que viene|semana que viene|dentro de)\b`)
)

// weekdayIndex uses the Monday=0 convention the weekday arithmetic expects.
var weekdayIndex = map[string]int{
	"lunes":     0,
	"martes":    1,
	"miercoles": 2,
	"jueves":    3,
	"viernes":   4,
	"sabado":    5,
	"domingo":   6,
}

var numberWordDays = map[string]int{
	"un":      1,
	"uno":     1,
	"dos":     2,
	"tres":    3,
	"cuatro":  4,
	"cinco":   5,
	"seis":    6,
	"siete":   7,
	"ocho":    8,
	"nueve":   9,
	"diez":    10,
	"quince":  15,
	"veinte":  20,
	"treinta": 30,
}

var absoluteLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"02/01/06",
	"02-01-06",
}

// DateResolver parses Spanish natural-language and absolute date
// expressions relative to an injectable clock.
type DateResolver struct {
	now func() time.Time
}

// NewDateResolver builds a resolver. A nil clock falls back to time.Now.
func NewDateResolver(now func() time.Time) *DateResolver {
	if now == nil {
		now = time.Now
	}
	return &DateResolver{now: now}
}

// Parse resolves a free-text date expression to a concrete timestamp at
// 17:00 local time, or nil when nothing matches. It never fails: garbage
// in means nil out.
func (r *DateResolver) Parse(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	txt := Normalize(value)
	// Tolerate trailing punctuation like "hoy." or "hoy,".
	txt = datePunctuation.ReplaceAllString(txt, " ")
	txt = strings.TrimSpace(whitespaceRun.ReplaceAllString(txt, " "))
	txt = dateLeadIn.ReplaceAllString(txt, "")

	now := r.now()

	switch txt {
	case "hoy":
		return at17(now)
	case "manana":
		return at17(now.AddDate(0, 0, 1))
	case "pasado manana":
		return at17(now.AddDate(0, 0, 2))
	}

	if m := weekdayExpr.FindStringSubmatch(txt); m != nil {
		qualifier := m[2]
		target := weekdayIndex[m[3]]
		delta := (target - mondayBased(now.Weekday()) + 7) % 7
		// "proximo lunes" always means the following occurrence: when said
		// on a Monday it is +7, never today. A bare weekday or "este" may
		// resolve to today; that asymmetry is deliberate.
		if qualifier == "proximo" && delta == 0 {
			delta = 7
		}
		return at17(now.AddDate(0, 0, delta))
	}

	if m := inDaysDigits.FindStringSubmatch(txt); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return at17(now.AddDate(0, 0, days))
		}
	}
	if m := inDaysWords.FindStringSubmatch(txt); m != nil {
		if days, ok := numberWordDays[m[1]]; ok {
			return at17(now.AddDate(0, 0, days))
		}
	}

	raw := strings.TrimSpace(value)
	for _, layout := range absoluteLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, now.Location()); err == nil {
			return at17(parsed)
		}
	}
	return nil
}

// HasRelativeLanguage reports whether the text carries a relative-date
// keyword. Callers use it to recompute a stale relative date (a drafted
// "manana" that now resolves to the past) from the current message.
func HasRelativeLanguage(value string) bool {
	return relativeWords.MatchString(Normalize(value))
}

func at17(t time.Time) *time.Time {
	resolved := time.Date(t.Year(), t.Month(), t.Day(), needByHour, 0, 0, 0, t.Location())
	return &resolved
}

func mondayBased(d time.Weekday) int {
	return (int(d) + 6) % 7
}
