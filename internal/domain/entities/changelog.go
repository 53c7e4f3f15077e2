package entities

import (
	"fmt"
	"strings"
)

const (
	unreleasedHeading = "## [Unreleased]"
	changedSubheading = "### Changed"
	releasePrefix     = "## ["
	bulletPrefix      = "- "
)

// ChangelogEntries renders one Keep-a-Changelog bullet per update.
func ChangelogEntries(updates []DependencyUpdate) []string {
	entries := make([]string, 0, len(updates))
	for _, update := range updates {
		entries = append(entries, fmt.Sprintf(
			"%schanged the `%s` dependency from `%s` to `%s`",
			bulletPrefix, update.Name, update.OldVersion, update.NewVersion,
		))
	}
	return entries
}

// InsertChangelogEntries adds bullet entries to the "### Changed"
// subsection of "## [Unreleased]" in a Keep-a-Changelog document.
//
// The content is returned unchanged when there is no Unreleased section.
// A missing "### Changed" subsection is created right below the heading;
// an existing one receives the entries after its last bullet.
func InsertChangelogEntries(content string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")

	start := indexOfLine(lines, 0, len(lines), unreleasedHeading)
	if start < 0 {
		return content
	}
	end := nextReleaseHeading(lines, start)

	changed := indexOfLine(lines, start+1, end, changedSubheading)
	if changed < 0 {
		block := append([]string{"", changedSubheading, ""}, entries...)
		return strings.Join(spliceLines(lines, start+1, block), "\n")
	}

	return strings.Join(spliceLines(lines, lastBulletAfter(lines, changed, end)+1, entries), "\n")
}

// indexOfLine finds the first line in [from, to) whose trimmed text is want.
func indexOfLine(lines []string, from, to int, want string) int {
	for i := from; i < to; i++ {
		if strings.TrimSpace(lines[i]) == want {
			return i
		}
	}
	return -1
}

func nextReleaseHeading(lines []string, after int) int {
	for i := after + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), releasePrefix) {
			return i
		}
	}
	return len(lines)
}

// lastBulletAfter returns the last bullet of the block that starts at
// heading, skipping blank lines; heading itself when the block is empty.
func lastBulletAfter(lines []string, heading, end int) int {
	last := heading
	for i := heading + 1; i < end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, bulletPrefix) {
			break
		}
		last = i
	}
	return last
}

func spliceLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	return append(result, lines[at:]...)
}
