package analysis

import (
	"strings"

	"www.velocidex.com/golang/sysmon-report/parser"
)

// Binaries commonly abused by living off the land techniques. This
// is a deliberately blunt heuristic: the match is a case insensitive
// substring test over the full image path, so partial hits are
// accepted rather than missed.
var suspiciousImages = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wmic.exe",
	"rundll32.exe",
	"regsvr32.exe",
}

// Suspicious selects the records whose image path matches any of the
// suspicious binaries. Records without an image are never selected.
// Input order is preserved.
func Suspicious(records []*parser.EventRecord) []*parser.EventRecord {
	result := []*parser.EventRecord{}

	for _, record := range records {
		if record.Image == "" {
			continue
		}

		image := strings.ToLower(record.Image)
		for _, suspicious := range suspiciousImages {
			if strings.Contains(image, suspicious) {
				result = append(result, record)
				break
			}
		}
	}

	return result
}
