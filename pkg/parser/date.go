package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// RecorderMarker must follow the date token for a name to carry a date.
const RecorderMarker = "-Recorder"

var datePrefixPattern = regexp.MustCompile(`^(\d{2})-(\d{2})(?:-(\d{2})-(\d{2}))?` + regexp.QuoteMeta(RecorderMarker))

// DateLabel turns "01-13-Recorder..." into "1月13日" and
// "01-16-01-21-Recorder..." into "1月16日-1月21日". Any other identifier
// yields "".
func DateLabel(identifier string) string {
	m := datePrefixPattern.FindStringSubmatch(identifier)
	if m == nil {
		return ""
	}

	label := monthDay(m[1], m[2])
	if m[3] != "" {
		label += "-" + monthDay(m[3], m[4])
	}
	return label
}

func monthDay(month, day string) string {
	// Both are exactly two ASCII digits, so Atoi cannot fail.
	mm, _ := strconv.Atoi(month)
	dd, _ := strconv.Atoi(day)
	return fmt.Sprintf("%d月%d日", mm, dd)
}
