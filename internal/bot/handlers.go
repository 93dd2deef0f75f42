package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"timebot/internal/clock"
	"timebot/internal/localtime"
	"timebot/internal/metrics"
	"timebot/internal/providers/slackapi"
)

// UserDirectory is the chat platform's live member lookup. Only Slack
// provides one; on other platforms the bot runs without it.
type UserDirectory interface {
	FindUserByName(name string) (*slackapi.UserProfile, error)
}

const (
	usageReply               = "Try: time, time in <place>, or time for <user>."
	unsupportedPlatformReply = "Sorry, that only works on Slack."
)

// Bot turns chat command text into reply text
type Bot struct {
	times     localtime.Service
	directory UserDirectory
	logger    *slog.Logger
	now       func() time.Time
}

// New creates a bot. A nil directory disables the "time for" command with a
// fixed unsupported-platform reply.
func New(times localtime.Service, directory UserDirectory, logger *slog.Logger) *Bot {
	return &Bot{
		times:     times,
		directory: directory,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleText dispatches one chat command and returns the reply text. Every
// failure path ends in a reply; nothing here is fatal.
func (b *Bot) HandleText(text string) string {
	cmd := Parse(text)

	switch cmd.Kind {
	case KindDefaults:
		metrics.Commands.WithLabelValues("defaults").Inc()
		return b.handleDefaults()
	case KindPlace:
		metrics.Commands.WithLabelValues("place").Inc()
		return b.handlePlace(cmd.Arg)
	case KindUser:
		metrics.Commands.WithLabelValues("user").Inc()
		return b.handleUser(cmd.Arg)
	default:
		metrics.Commands.WithLabelValues("unknown").Inc()
		return usageReply
	}
}

// handleDefaults renders the default-table entries in table order. Entries
// whose lookup failed render as "<label>: ?" instead of sinking the reply.
func (b *Bot) handleDefaults() string {
	now := b.now()
	entries := b.times.DefaultTimes(now)

	parts := make([]string, len(entries))
	for i, e := range entries {
		if e.Err != nil {
			parts[i] = e.Label + ": ?"
			continue
		}
		parts[i] = fmt.Sprintf("%s: %s", e.Label, clock.FormatOffset(e.Offset, now))
	}
	return strings.Join(parts, ", ")
}

func (b *Bot) handlePlace(query string) string {
	now := b.now()

	loc, err := b.times.Resolve(query)
	if err != nil {
		return "Sorry, no idea: " + err.Error()
	}
	offset, err := b.times.Offset(loc, now)
	if err != nil {
		return "Sorry, no idea: " + err.Error()
	}
	return fmt.Sprintf("%s (%s)", clock.FormatOffset(offset, now), loc.Address)
}

// handleUser formats the current time using the profile's raw offset only.
// Slack keeps tz_offset DST-adjusted, so no DST component is added here.
func (b *Bot) handleUser(name string) string {
	if b.directory == nil {
		return unsupportedPlatformReply
	}

	profile, err := b.directory.FindUserByName(name)
	if err != nil {
		if errors.Is(err, slackapi.ErrUserNotFound) {
			return fmt.Sprintf("Sorry, I don't know who %s is.", name)
		}
		b.logger.Error("user directory lookup failed", "name", name, "error", err)
		return "Sorry, no idea: " + err.Error()
	}
	if !profile.HasOffset {
		return fmt.Sprintf("%s hasn't set a timezone. Maybe ask them to update their Slack profile?", name)
	}

	formatted := clock.FormatOffset(profile.UTCOffset, b.now())
	if profile.Label != "" {
		return fmt.Sprintf("%s (%s)", formatted, profile.Label)
	}
	return formatted
}
