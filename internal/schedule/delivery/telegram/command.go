package telegram

import (
	"strings"
	"unicode"
)

type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdHelp
	cmdView
	cmdAdd
	cmdClear
	cmdStatus
	cmdGreet
)

// command is a parsed bot command, e.g. "/ap@PlanningBot mardi Game night".
type command struct {
	kind commandKind
	name string
	args string
}

func parseCommand(text string) (command, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return command{}, false
	}

	head, args := cutSpace(text)
	name, _, _ := strings.Cut(strings.TrimPrefix(head, "/"), "@")
	name = strings.ToLower(name)

	return command{kind: lookupCommand(name), name: name, args: args}, true
}

func lookupCommand(name string) commandKind {
	switch name {
	case "start", "help", "aide":
		return cmdHelp
	case "planning", "p":
		return cmdView
	case "ajouter_planning", "ap", "aplanning":
		return cmdAdd
	case "effacer_planning", "ep", "eplanning":
		return cmdClear
	case "debug_planning":
		return cmdStatus
	case "bonjour":
		return cmdGreet
	}
	return cmdUnknown
}

// requiresModerator reports whether the command mutates state or speaks for the bot.
func (c command) requiresModerator() bool {
	switch c.kind {
	case cmdAdd, cmdClear, cmdGreet:
		return true
	}
	return false
}

// cutSpace splits s around its first run of whitespace, e.g. "mardi Game night" into ("mardi", "Game night").
func cutSpace(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
