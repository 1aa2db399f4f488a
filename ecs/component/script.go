package component

import "github.com/d5/tengo/v2"

// Script is a compiled per-tick behavior expression.
type Script struct {
	Source   string
	Compiled *tengo.Compiled
	Failed   bool
	Ticks    int
}

var ScriptComponent = NewComponent[Script]()
