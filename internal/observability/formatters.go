// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ascent-tracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for list and show commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMember outputs a human-readable summary of one member record.
func (p *Printer) PrintMember(name string, member *types.MemberRecord) {
	if member == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job Title: %s\n", member.JobTitle))
	sb.WriteString(fmt.Sprintf("Joined:    %s\n", member.JoinDate))
	sb.WriteString(fmt.Sprintf("Birthday:  %s\n", member.Birthday))

	for _, family := range types.HierarchicalFamilies() {
		skills := *member.SkillList(family)
		if len(skills) == 0 {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s:\n", family))
		writeItemList(&sb, skills, maxItemsToShow)
	}
	if len(member.Certifications) > 0 {
		sb.WriteString("\nCertifications:\n")
		writeItemList(&sb, member.Certifications, maxItemsToShow)
	}

	if len(member.Goals) > 0 {
		sb.WriteString("\nGoals:\n")
		writeItemList(&sb, member.Goals, maxItemsToShow)
	}
	if len(member.Achievements) > 0 {
		sb.WriteString("\nAchievements:\n")
		writeItemList(&sb, member.Achievements, maxItemsToShow)
	}

	p.printBox(strings.ToUpper(name), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTaxonomy outputs the category/subskill structure of one hierarchical
// family, or the certification catalog for the flat family.
func (p *Printer) PrintTaxonomy(family types.SkillFamily, categories []string, subskills func(string) []string, certifications []string) {
	var sb strings.Builder

	if family.Hierarchical() {
		if len(categories) == 0 {
			sb.WriteString("(no categories)")
		}
		for i, category := range categories {
			sb.WriteString(fmt.Sprintf("%s\n", category))
			writeItemList(&sb, subskills(category), maxItemsToShow)
			if i < len(categories)-1 {
				sb.WriteString("\n")
			}
		}
	} else {
		if len(certifications) == 0 {
			sb.WriteString("(no certifications)")
		}
		writeItemList(&sb, certifications, len(certifications))
	}

	p.printBox(strings.ToUpper(family.String()), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMeetings outputs the meeting log in the given (already sorted) order.
func (p *Printer) PrintMeetings(meetings []types.MeetingRecord) {
	var sb strings.Builder

	if len(meetings) == 0 {
		sb.WriteString("(no meetings)")
	}
	for i, meeting := range meetings {
		title := meeting.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s  %s\n", meeting.Date, title))
		if meeting.Highlights != "" {
			highlights := meeting.Highlights
			if len(highlights) > 45 {
				highlights = highlights[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", highlights))
		}
		if i < len(meetings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MEETINGS (newest first)", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImportSummary outputs the result of a bulk skills import.
func (p *Printer) PrintImportSummary(rows, categoriesAdded, subskillsAdded int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rows processed:   %d\n", rows))
	sb.WriteString(fmt.Sprintf("Categories added: %d\n", categoriesAdded))
	sb.WriteString(fmt.Sprintf("Subskills added:  %d", subskillsAdded))
	p.printBox("SKILLS IMPORT", sb.String())
}

// writeItemList writes up to limit bulleted items plus an "and N more" line.
func writeItemList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}
