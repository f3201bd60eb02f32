package reporting

import (
	"fmt"

	"www.velocidex.com/golang/sysmon-report/parser"
)

// Sentence renders one record as a single line of English. Absent
// fields render as the literal string "None" - downstream consumers
// diff these reports so the placeholder must stay byte stable.
func Sentence(record *parser.EventRecord) string {
	return fmt.Sprintf(
		"At %s, on computer %s, %s: %s (process ID %s).",
		orNone(record.UtcTime),
		orNone(record.Computer),
		record.Description,
		orNone(record.Image),
		orNone(record.ProcessID))
}

func orNone(value string) string {
	if value == "" {
		return "None"
	}
	return value
}
