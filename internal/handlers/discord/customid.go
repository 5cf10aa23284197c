package discord

import "strings"

const (
	customIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100

	domainBattle = "battle"
	actionSync   = "sync"

	syncYes = "yes"
	syncNo  = "no"
)

// customID is the domain:action[:target] key carried by a button
type customID struct {
	Domain string
	Action string
	Target string
}

func (c customID) String() string {
	parts := []string{c.Domain, c.Action}
	if c.Target != "" {
		parts = append(parts, c.Target)
	}
	return strings.Join(parts, customIDSeparator)
}

// parseCustomID splits a button id. Extra parts after the target are ignored.
func parseCustomID(raw string) (customID, bool) {
	if raw == "" || len(raw) > MaxCustomIDLength {
		return customID{}, false
	}
	parts := strings.Split(raw, customIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return customID{}, false
	}

	id := customID{Domain: parts[0], Action: parts[1]}
	if len(parts) > 2 {
		id.Target = parts[2]
	}
	return id, true
}

func syncButtonID(sync bool) string {
	target := syncNo
	if sync {
		target = syncYes
	}
	return customID{Domain: domainBattle, Action: actionSync, Target: target}.String()
}
