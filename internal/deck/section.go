package deck

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned by ParseSection for names outside the registry.
var ErrUnknownSection = errors.New("unknown section")

// SectionID identifies one of the page regions. The string value doubles as the
// HTML anchor id.
type SectionID string

const (
	SectionHome     SectionID = "home"
	SectionSummary  SectionID = "summary"
	SectionMarket   SectionID = "market"
	SectionProducts SectionID = "products"
	SectionFinance  SectionID = "finance"
	SectionTeam     SectionID = "team"
)

var sectionOrder = [...]SectionID{
	SectionHome,
	SectionSummary,
	SectionMarket,
	SectionProducts,
	SectionFinance,
	SectionTeam,
}

// Sections returns every section in page order. The slice is a fresh copy.
func Sections() []SectionID {
	out := make([]SectionID, len(sectionOrder))
	copy(out, sectionOrder[:])
	return out
}

// ParseSection maps an anchor id to its SectionID.
func ParseSection(s string) (SectionID, error) {
	for _, id := range sectionOrder {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Index returns the position of the section in page order, or -1.
func (s SectionID) Index() int {
	for i, id := range sectionOrder {
		if id == s {
			return i
		}
	}
	return -1
}

// Label is the nav bar caption.
func (s SectionID) Label() string {
	switch s {
	case SectionHome:
		return "首页"
	case SectionSummary:
		return "摘要"
	case SectionMarket:
		return "市场"
	case SectionProducts:
		return "空间"
	case SectionFinance:
		return "财务"
	case SectionTeam:
		return "团队"
	default:
		return string(s)
	}
}

// Glyph is the single-cell icon shown next to the label.
func (s SectionID) Glyph() string {
	switch s {
	case SectionHome:
		return "☁"
	case SectionSummary:
		return "ℹ"
	case SectionMarket:
		return "↗"
	case SectionProducts:
		return "⌖"
	case SectionFinance:
		return "¥"
	case SectionTeam:
		return "☺"
	default:
		return "·"
	}
}

func (s SectionID) String() string { return string(s) }
