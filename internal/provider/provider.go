// Package provider is the placeholder provider shipped with chattext. It resolves placeholders from a static table,
// the player they are resolved for, and statistics about the host.
package provider

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"awesome-dragon.science/go/chattext/pkg/log"
	"awesome-dragon.science/go/chattext/pkg/placeholder"
	"awesome-dragon.science/go/chattext/pkg/text"
)

var (
	percentRe = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)
	bracketRe = regexp.MustCompile(`\[([A-Za-z0-9_]+)]`)
)

// Provider resolves %name% and [name] placeholders. Unknown placeholders are left as they are. Once placeholders are
// resolved, the text is colourised
type Provider struct {
	static map[string]string
	stats  StatsSource
	log    *log.Logger
}

// New creates a Provider. stats may be nil, in which case the server_* placeholders are not resolved
func New(static map[string]string, stats StatsSource, logger *log.Logger) *Provider {
	if static == nil {
		static = make(map[string]string)
	}

	return &Provider{static: static, stats: stats, log: logger}
}

// SetPlaceholders replaces %name% placeholders
func (p *Provider) SetPlaceholders(player *placeholder.OfflinePlayer, in string) (string, error) {
	return p.replace(percentRe, player, in)
}

// SetBracketPlaceholders replaces [name] placeholders
func (p *Provider) SetBracketPlaceholders(player *placeholder.OfflinePlayer, in string) (string, error) {
	return p.replace(bracketRe, player, in)
}

// lookup holds the state of a single replace call. Host stats are read at most once per call
type lookup struct {
	p      *Provider
	player *placeholder.OfflinePlayer
	stats  *Stats
}

func (p *Provider) replace(re *regexp.Regexp, player *placeholder.OfflinePlayer, in string) (string, error) {
	matches := re.FindAllStringSubmatchIndex(in, -1)
	if len(matches) == 0 {
		return text.Colourise(in), nil
	}

	l := &lookup{p: p, player: player}
	out := strings.Builder{}
	last := 0

	for _, m := range matches {
		out.WriteString(in[last:m[0]])
		last = m[1]

		name := in[m[2]:m[3]]

		res, ok, err := l.resolve(name)
		if err != nil {
			return "", fmt.Errorf("could not resolve placeholder %q: %w", name, err)
		}

		if !ok {
			p.log.Tracef("unknown placeholder %q", name)
			out.WriteString(in[m[0]:m[1]])

			continue
		}

		out.WriteString(res)
	}

	out.WriteString(in[last:])

	return text.Colourise(out.String()), nil
}

func (l *lookup) resolve(name string) (string, bool, error) {
	switch name {
	case "player_name", "player_uuid":
		if l.player == nil {
			return "", false, nil
		}

		if name == "player_name" {
			return l.player.Name, true, nil
		}

		return l.player.ID.String(), true, nil
	}

	if res, ok := l.p.static[name]; ok {
		return res, true, nil
	}

	if !strings.HasPrefix(name, "server_") || l.p.stats == nil {
		return "", false, nil
	}

	if l.stats == nil {
		s, err := l.p.stats.Stats()
		if err != nil {
			return "", false, err
		}

		l.stats = &s
	}

	switch name {
	case "server_ram_used":
		return humanize.IBytes(l.stats.MemUsed), true, nil
	case "server_ram_total":
		return humanize.IBytes(l.stats.MemTotal), true, nil
	case "server_cpu":
		return fmt.Sprintf("%.1f%%", l.stats.CPUPercent), true, nil
	case "server_uptime":
		var epoch time.Time
		return strings.TrimSpace(humanize.RelTime(epoch, epoch.Add(l.stats.Uptime), "", "")), true, nil
	}

	return "", false, nil
}
