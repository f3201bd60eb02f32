// Package analysis derives summaries from the parsed event set: per
// event type frequencies and the subset of events worth a closer
// look.
package analysis

import (
	"sort"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/sysmon-report/parser"
)

type EventTypeCount struct {
	EventID     string
	Description string
	Count       int
}

// CountByType groups the records by (event id, description) and
// counts each group. The result is ordered by count descending; ties
// are broken by ascending event id then description so the output is
// reproducible between runs.
func CountByType(records []*parser.EventRecord) []*EventTypeCount {
	groups := ordereddict.NewDict()

	for _, record := range records {
		key := record.EventID + "\x00" + record.Description
		value, pres := groups.Get(key)
		if pres {
			value.(*EventTypeCount).Count++
			continue
		}

		groups.Set(key, &EventTypeCount{
			EventID:     record.EventID,
			Description: record.Description,
			Count:       1,
		})
	}

	result := make([]*EventTypeCount, 0, groups.Len())
	for _, key := range groups.Keys() {
		value, _ := groups.Get(key)
		result = append(result, value.(*EventTypeCount))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		if result[i].EventID != result[j].EventID {
			return result[i].EventID < result[j].EventID
		}
		return result[i].Description < result[j].Description
	})

	return result
}
