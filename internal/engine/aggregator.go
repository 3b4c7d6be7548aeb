package engine

import (
	mirrordomain "mailpilot-backend/internal/mirror/domain"
	"mailpilot-backend/pkg/gmail"
)

// Aggregate computes, per rule, how many distinct messages had a label
// change touching any label in the rule's add or remove set. A message
// counts at most once per rule per call, no matter how many events it
// produced or whether they were adds, removes, or both. Every rule gets
// an entry, so rules without matches report 0.
func Aggregate(rules []mirrordomain.Rule, events []gmail.HistoryEvent) map[string]int {
	// labelID -> rule remote ids reachable through it
	labelToRules := make(map[string][]string)
	for _, rule := range rules {
		for _, labelID := range rule.AddLabelIDs {
			labelToRules[labelID] = append(labelToRules[labelID], rule.RemoteID)
		}
		for _, labelID := range rule.RemoveLabelIDs {
			labelToRules[labelID] = append(labelToRules[labelID], rule.RemoteID)
		}
	}

	// rule remote id -> distinct message ids seen this run
	seen := make(map[string]map[string]struct{})
	for _, event := range events {
		for _, labelID := range event.LabelIDs {
			for _, ruleID := range labelToRules[labelID] {
				messages, ok := seen[ruleID]
				if !ok {
					messages = make(map[string]struct{})
					seen[ruleID] = messages
				}
				messages[event.MessageID] = struct{}{}
			}
		}
	}

	counts := make(map[string]int, len(rules))
	for _, rule := range rules {
		counts[rule.RemoteID] = len(seen[rule.RemoteID])
	}
	return counts
}
