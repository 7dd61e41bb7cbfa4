package usecase

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"market_relay/internal/feature/issues/domain/entity"
	"market_relay/internal/shared/bsdate"
)

// Placeholders.
const (
	NotAvailable = "N/A"
	InProgress   = "In Progress"
	InvalidDate  = "Invalid Date"
	Unknown      = "Unknown"
)

var statusLabels = map[int64]string{
	0:  "Open",
	1:  "Closed",
	-2: "In Progress",
}

var (
	inProgressJSON = json.RawMessage(strconv.Quote(InProgress))
	emptyJSON      = json.RawMessage(`""`)
)

// Normalize maps one raw entry to an Issue. issueType is set by the caller.
func Normalize(raw entity.RawIssue) entity.Issue {
	return entity.Issue{
		CompanyName:           MarkupText(raw.Company.CompanyName),
		CompanySymbol:         MarkupText(raw.Company.Symbol),
		Units:                 FormatNumber(raw.TotalUnits),
		Price:                 FormatNumber(raw.IssuePrice),
		OpeningDateAd:         orDefault(raw.OpeningDate, inProgressJSON),
		ClosingDateAd:         orDefault(raw.ClosingDate, inProgressJSON),
		ExtendedClosingDateAd: orDefault(raw.FinalDate, inProgressJSON),
		OpeningDateBs:         ToBS(raw.OpeningDate),
		ClosingDateBs:         ToBS(raw.ClosingDate),
		ExtendedClosingDateBs: ToBS(raw.FinalDate),
		ListingDate:           orDefault(raw.ListingDate, emptyJSON),
		IssueManager:          orDefault(raw.IssueManager, emptyJSON),
		Status:                StatusLabel(raw.Status),
	}
}

// MarkupText returns the text between the first ">" and the next "<".
// Without a ">" the input is returned unchanged; without a following "<" the rest is returned.
func MarkupText(s string) string {
	_, after, found := strings.Cut(s, ">")
	if !found {
		return s
	}
	text, _, _ := strings.Cut(after, "<")
	return text
}

// FormatNumber renders a JSON number or numeric string canonically:
// whole values without a fraction, others without trailing zeros. Anything else is "N/A".
func FormatNumber(raw json.RawMessage) string {
	s, ok := scalar(raw)
	if !ok {
		return NotAvailable
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return NotAvailable
	}
	if d.IsInteger() {
		return d.Truncate(0).String()
	}
	return d.String()
}

// ToBS converts an ISO Gregorian date to its BS equivalent.
// Absent, null or empty dates are "In Progress"; unparseable or out of range dates are "Invalid Date".
func ToBS(raw json.RawMessage) string {
	var s *string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s); err != nil {
			return InvalidDate
		}
	}
	if s == nil || *s == "" {
		return InProgress
	}
	d, err := bsdate.ParseAD(*s)
	if err != nil {
		return InvalidDate
	}
	return d.String()
}

// StatusLabel maps a numeric status code to its label. Strings and unknown codes are "Unknown".
func StatusLabel(raw json.RawMessage) string {
	if !isNumber(raw) {
		return Unknown
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil || !d.IsInteger() {
		return Unknown
	}
	if label, ok := statusLabels[d.IntPart()]; ok {
		return label
	}
	return Unknown
}

// scalar returns the text of a JSON number or string.
func scalar(raw json.RawMessage) (string, bool) {
	if isNumber(raw) {
		return string(raw), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNumber(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

func orDefault(raw, def json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return def
	}
	return raw
}
