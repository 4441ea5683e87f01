// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
)

// StringList displays a titled list of strings with an optional cursor.
type StringList struct {
	title     string
	empty     string
	items     []string
	selected  int
	cursor    bool
	itemStyle *lipgloss.Style
	styles    *styles.Styles
	width     int
	height    int
}

// NewStringList creates a list. empty is rendered when there are no items.
func NewStringList(s *styles.Styles, title, empty string) *StringList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &StringList{
		title:  title,
		empty:  empty,
		styles: s,
		width:  80,
		height: 10,
	}
}

// WithItemStyle renders unselected items with style instead of the normal style.
func (l *StringList) WithItemStyle(style lipgloss.Style) *StringList {
	l.itemStyle = &style
	return l
}

// View renders the list.
func (l *StringList) View() string {
	lines := make([]string, 0, len(l.items)+2)
	lines = append(lines, l.styles.Subtitle.Render(l.header()))

	if len(l.items) == 0 {
		lines = append(lines, l.styles.Muted.Render("  "+l.empty))
		return strings.Join(lines, "\n")
	}

	start, end := l.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i))
	}
	if end < len(l.items) {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("  ... %d more", len(l.items)-end)))
	}

	return strings.Join(lines, "\n")
}

func (l *StringList) header() string {
	if len(l.items) == 0 {
		return l.title + ":"
	}
	return fmt.Sprintf("%s (%d):", l.title, len(l.items))
}

// visibleRange keeps the selected item on screen.
func (l *StringList) visibleRange() (int, int) {
	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.cursor && l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}
	return start, end
}

func (l *StringList) renderItem(index int) string {
	item := l.truncate(l.items[index])

	if l.cursor && index == l.selected {
		return l.styles.Selected.Render("> " + item)
	}
	if l.itemStyle != nil {
		return "  " + l.itemStyle.Render(item)
	}
	return l.styles.Normal.Render("  " + item)
}

func (l *StringList) truncate(item string) string {
	maxLen := l.width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	runes := []rune(item)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return item
}

// SetItems replaces the items and resets the selection.
func (l *StringList) SetItems(items []string) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = 0
	}
}

// Items returns the current items.
func (l *StringList) Items() []string {
	return l.items
}

// ShowCursor toggles the selection cursor.
func (l *StringList) ShowCursor(show bool) {
	l.cursor = show
}

// Selected returns the index of the selected item.
func (l *StringList) Selected() int {
	return l.selected
}

// SelectedItem returns the selected item, or "" when the list is empty.
func (l *StringList) SelectedItem() string {
	if l.selected < 0 || l.selected >= len(l.items) {
		return ""
	}
	return l.items[l.selected]
}

// MoveUp moves selection up.
func (l *StringList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *StringList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *StringList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of items.
func (l *StringList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *StringList) IsEmpty() bool {
	return len(l.items) == 0
}
