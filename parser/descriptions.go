package parser

// Plain English descriptions for the common Sysmon event types.
var eventDescriptions = map[string]string{
	"1":   "Process created (a program started)",
	"2":   "A process changed a file creation time",
	"3":   "Network connection created",
	"4":   "Sysmon service state changed",
	"5":   "Process terminated (a program ended)",
	"6":   "Driver loaded",
	"7":   "Image (EXE/DLL) loaded",
	"8":   "Remote thread created in another process",
	"9":   "Raw disk access",
	"10":  "Process accessed another process",
	"11":  "File created on disk",
	"12":  "Registry object created or deleted",
	"13":  "Registry value set",
	"14":  "Registry key/values renamed",
	"15":  "File stream created",
	"22":  "DNS query performed",
	"255": "Sysmon configuration change",
}

const unknownDescription = "Other Sysmon event"

// Describe is total - any event id which is not in the table,
// including the empty (absent) id, maps to the fallback phrase.
func Describe(event_id string) string {
	description, pres := eventDescriptions[event_id]
	if !pres {
		return unknownDescription
	}
	return description
}
