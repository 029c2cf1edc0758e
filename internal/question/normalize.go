package question

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// IndexSet is a set of option indices. Bank authors may write a single
// integer or a list of integers; both decode to the same set.
type IndexSet []int

// UnmarshalJSON accepts either an integer or a list of integers.
func (set *IndexSet) UnmarshalJSON(data []byte) error {
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*set = IndexSet{single}
		return nil
	}
	var many []int
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer_index must be an integer or a list of integers")
	}
	*set = IndexSet(many)
	return nil
}

// UnmarshalYAML accepts either an integer scalar or a sequence of integers.
func (set *IndexSet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single int
		if err := node.Decode(&single); err != nil {
			return fmt.Errorf("answer_index must be an integer or a list of integers")
		}
		*set = IndexSet{single}
		return nil
	case yaml.SequenceNode:
		var many []int
		if err := node.Decode(&many); err != nil {
			return fmt.Errorf("answer_index must be an integer or a list of integers")
		}
		*set = IndexSet(many)
		return nil
	default:
		return fmt.Errorf("answer_index must be an integer or a list of integers")
	}
}

// Normalize returns the set sorted with duplicates removed.
func (set IndexSet) Normalize() IndexSet {
	if len(set) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(set))
	normalized := make(IndexSet, 0, len(set))
	for _, index := range set {
		if _, ok := seen[index]; ok {
			continue
		}
		seen[index] = struct{}{}
		normalized = append(normalized, index)
	}
	sort.Ints(normalized)
	return normalized
}

// Contains reports whether the set includes the given index.
func (set IndexSet) Contains(index int) bool {
	for _, candidate := range set {
		if candidate == index {
			return true
		}
	}
	return false
}
