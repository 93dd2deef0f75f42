package bot

import "strings"

// Kind identifies which of the chat triggers matched.
type Kind int

const (
	KindUnknown Kind = iota
	KindDefaults
	KindPlace
	KindUser
)

// Command is a parsed chat trigger. Arg carries the place text or the
// username, depending on Kind.
type Command struct {
	Kind Kind
	Arg  string
}

// Parse matches the three chat triggers: "time", "time in <place>" and
// "time for <user>". A leading "@" on the username is stripped; everything
// else is left exactly as typed.
func Parse(text string) Command {
	text = strings.TrimSpace(text)

	if text == "time" {
		return Command{Kind: KindDefaults}
	}
	if rest, ok := strings.CutPrefix(text, "time in "); ok {
		if place := strings.TrimSpace(rest); place != "" {
			return Command{Kind: KindPlace, Arg: place}
		}
	}
	if rest, ok := strings.CutPrefix(text, "time for "); ok {
		name := strings.TrimPrefix(strings.TrimSpace(rest), "@")
		if name != "" {
			return Command{Kind: KindUser, Arg: name}
		}
	}
	return Command{Kind: KindUnknown}
}
