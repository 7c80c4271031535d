package emevd

import (
	"path"
	"sort"

	"fxr-query/core/reconcile"
)

// SelfTarget makes a NestedRule resolve started events in the initializer's
// own script.
const SelfTarget = "self"

// NestedRule describes one kind of initializer call.
type NestedRule struct {
	// Invoke is the initializer instruction.
	Invoke Opcode `yaml:"invoke"`
	// EventIDOffset is where the started event id sits in the call's arguments.
	EventIDOffset int64 `yaml:"event_id_offset"`
	// ParamBase is where the forwarded parameter block starts.
	ParamBase int64 `yaml:"param_base"`
	// Target names the script holding the started events, or SelfTarget.
	Target string `yaml:"target"`
	// Initializers is a glob over script names; empty matches every script.
	Initializers string `yaml:"initializers"`
}

// LooseRule selects events to be read literally.
type LooseRule struct {
	// Scripts is a glob over script names; empty matches every script.
	Scripts string `yaml:"scripts"`
	// Events lists event ids to read.
	Events []int64 `yaml:"events"`
	// Parameterless additionally selects every event that declares no parameters.
	Parameterless bool `yaml:"parameterless"`
}

// ScanResult reports what a Scan walked.
type ScanResult struct {
	IDs            reconcile.IDSet
	NestedScripts  int
	LooseEvents    int
	MissingTargets []string
}

// Scan applies the rules to a set of scripts keyed by name.
// Nested rules whose target script is absent are reported in MissingTargets.
func Scan(scripts map[string]*Script, nested []NestedRule, loose []LooseRule) ScanResult {
	res := ScanResult{IDs: make(reconcile.IDSet)}
	missing := make(map[string]struct{})

	for _, name := range sortedNames(scripts) {
		script := scripts[name]

		for _, rule := range nested {
			if !matches(rule.Initializers, name) {
				continue
			}
			target := script
			if rule.Target != "" && rule.Target != SelfTarget {
				var ok bool
				if target, ok = scripts[rule.Target]; !ok {
					missing[rule.Target] = struct{}{}
					continue
				}
			}
			merge(res.IDs, NestedReferences(script, target, rule.Invoke, rule.EventIDOffset, rule.ParamBase))
			res.NestedScripts++
		}

		for _, rule := range loose {
			if !matches(rule.Scripts, name) {
				continue
			}
			for _, id := range looseEventIDs(script, rule) {
				merge(res.IDs, LooseReferences(script, id))
				res.LooseEvents++
			}
		}
	}

	for name := range missing {
		res.MissingTargets = append(res.MissingTargets, name)
	}
	sort.Strings(res.MissingTargets)

	return res
}

func looseEventIDs(script *Script, rule LooseRule) []int64 {
	seen := make(map[int64]struct{}, len(rule.Events))
	var ids []int64
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, id := range rule.Events {
		add(id)
	}
	if rule.Parameterless {
		for _, ev := range script.Events {
			if len(ev.Parameters) == 0 {
				add(ev.ID)
			}
		}
	}
	return ids
}

func matches(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}

func merge(dst, src reconcile.IDSet) {
	for id := range src {
		dst.Add(id)
	}
}

func sortedNames(scripts map[string]*Script) []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
