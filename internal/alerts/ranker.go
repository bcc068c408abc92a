package alerts

import "sort"

var priorityWeight = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Rank returns the alerts ordered critical first. The sort is stable:
// alerts of equal priority keep their emission order, so per-truck,
// per-rule sequence is the tie-break. Unknown priorities rank as low.
// Rank never filters; callers slice the result themselves.
func Rank(alerts []Alert) []Alert {
	ranked := make([]Alert, len(alerts))
	copy(ranked, alerts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return weight(ranked[i].Priority) < weight(ranked[j].Priority)
	})

	return ranked
}

func weight(priority string) int {
	if w, ok := priorityWeight[priority]; ok {
		return w
	}
	return priorityWeight[PriorityLow]
}
