package session

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"shutterdesk/models"
)

const dateLayout = "2006-01-02"

// Display numbers shown to operators start here and count up by row position
// within the current view. They are snapshot-local and never persisted.
const displayNumberBase = 10000

// SortKey selects the column a session listing is ordered by.
type SortKey string

const (
	SortByID          SortKey = "id"
	SortByClientName  SortKey = "client_name"
	SortBySessionType SortKey = "session_type"
	SortByStatus      SortKey = "status"
	SortByQuoteAmount SortKey = "quote_amount"
	SortByDate        SortKey = "date"
	SortByTime        SortKey = "time"
	SortByLocation    SortKey = "location"
	SortByPhone       SortKey = "phone"
)

// SortDirection orders a listing ascending or descending. Toggle semantics
// belong to the caller; every Sort call receives an explicit direction.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterOptions narrows a session listing. Every criterion is optional;
// an empty value leaves that dimension unfiltered.
type FilterOptions struct {
	Status      string
	SessionType string
	DateFrom    string // Inclusive, "YYYY-MM-DD"
	DateTo      string // Inclusive, "YYYY-MM-DD"
}

// Search returns the sessions whose client name, email, session type or
// identifier contains term, case-insensitively. An empty term matches
// everything.
func Search(sessions []models.Session, term string) []models.Session {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return sessions
	}
	var out []models.Session
	for _, sess := range sessions {
		if strings.Contains(strings.ToLower(sess.ClientName), term) ||
			strings.Contains(strings.ToLower(sess.ClientEmail), term) ||
			strings.Contains(strings.ToLower(sess.SessionType), term) ||
			strings.Contains(strings.ToLower(sess.ID), term) {
			out = append(out, sess)
		}
	}
	return out
}

// Filter applies the optional criteria in opts. Status and session type are
// case-insensitive exact matches; the date range is inclusive on both ends
// and compares calendar dates only. Sessions with missing or unparseable
// dates fail an active date filter but pass when none is set.
func Filter(sessions []models.Session, opts FilterOptions) []models.Session {
	from, hasFrom := parseDate(opts.DateFrom)
	to, hasTo := parseDate(opts.DateTo)

	var out []models.Session
	for _, sess := range sessions {
		if opts.Status != "" && !strings.EqualFold(string(sess.Status), opts.Status) {
			continue
		}
		if opts.SessionType != "" && !strings.EqualFold(sess.SessionType, opts.SessionType) {
			continue
		}
		if hasFrom || hasTo {
			day, ok := parseDate(sess.Date)
			if !ok {
				continue
			}
			if hasFrom && day.Before(from) {
				continue
			}
			if hasTo && day.After(to) {
				continue
			}
		}
		out = append(out, sess)
	}
	return out
}

// Sort orders sessions by key and direction using a stable sort. Numeric
// keys compare numerically with missing values as 0; the date key compares
// calendar dates with missing values smallest; all other keys compare as
// locale-aware text. The input slice is not modified.
func Sort(sessions []models.Session, key SortKey, dir SortDirection) []models.Session {
	out := make([]models.Session, len(sessions))
	copy(out, sessions)

	col := collate.New(language.English)
	textLess := func(a, b string) bool { return col.CompareString(a, b) < 0 }

	var less func(a, b models.Session) bool
	switch key {
	case SortByID:
		less = func(a, b models.Session) bool { return numericValue(a.ID) < numericValue(b.ID) }
	case SortByQuoteAmount:
		less = func(a, b models.Session) bool { return a.QuoteAmount.Float64() < b.QuoteAmount.Float64() }
	case SortByDate:
		less = func(a, b models.Session) bool { return dateValue(a.Date).Before(dateValue(b.Date)) }
	case SortByClientName:
		less = func(a, b models.Session) bool { return textLess(a.ClientName, b.ClientName) }
	case SortBySessionType:
		less = func(a, b models.Session) bool { return textLess(a.SessionType, b.SessionType) }
	case SortByStatus:
		less = func(a, b models.Session) bool { return textLess(string(a.Status), string(b.Status)) }
	case SortByTime:
		less = func(a, b models.Session) bool { return textLess(a.Time, b.Time) }
	case SortByLocation:
		less = func(a, b models.Session) bool { return textLess(a.Location, b.Location) }
	case SortByPhone:
		less = func(a, b models.Session) bool { return textLess(a.ClientPhone, b.ClientPhone) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// QuerySessions composes the query pipeline in its fixed order:
// search, then filter, then sort.
func QuerySessions(sessions []models.Session, term string, opts FilterOptions, key SortKey, dir SortDirection) []models.Session {
	return Sort(Filter(Search(sessions, term), opts), key, dir)
}

// BuildRows renders a queried view into presentation rows, assigning each a
// positional display number within this view only.
func BuildRows(sessions []models.Session) []models.SessionRow {
	rows := make([]models.SessionRow, 0, len(sessions))
	for i, sess := range sessions {
		view := BuildView(sess)
		rows = append(rows, models.SessionRow{
			DisplayNo:   displayNumberBase + i,
			SessionID:   view.ID,
			ClientName:  view.ClientName,
			ClientEmail: view.ClientEmail,
			ClientPhone: view.ClientPhone,
			SessionType: view.SessionType,
			Date:        view.Date,
			Time:        view.Time,
			Location:    view.Location,
			Status:      view.Status,
			QuoteAmount: view.QuoteAmount,
		})
	}
	return rows
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	day, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// dateValue parses a session date for ordering; missing and unparseable
// dates collapse to the zero time, which sorts first.
func dateValue(s string) time.Time {
	day, _ := parseDate(s)
	return day
}

// numericValue interprets an identifier or amount as a number, with missing
// or non-numeric values as 0.
func numericValue(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
