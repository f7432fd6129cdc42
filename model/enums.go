package model

import "fmt"

// PageType represents the content type of a planned page
type PageType int

const (
	// PageTypeTeacherOnly is a presenter-on-camera page with no slide content
	PageTypeTeacherOnly PageType = iota
	// PageTypeKnowledge is a regular knowledge-point page
	PageTypeKnowledge
	// PageTypeQuote is a page dedicated to quoted material
	PageTypeQuote
	// PageTypeSection is a standalone section divider page
	PageTypeSection
	// PageTypeTitle is the course title page
	PageTypeTitle
)

// String returns a human-readable representation of the page type
func (pt PageType) String() string {
	switch pt {
	case PageTypeTeacherOnly:
		return "teacher_only"
	case PageTypeKnowledge:
		return "knowledge"
	case PageTypeQuote:
		return "quote"
	case PageTypeSection:
		return "section"
	case PageTypeTitle:
		return "title"
	default:
		return "unknown"
	}
}

// IsStructural reports whether the page is a divider (title or section) that
// never carries slide content.
func (pt PageType) IsStructural() bool {
	return pt == PageTypeTitle || pt == PageTypeSection
}

// MarshalText implements encoding.TextMarshaler
func (pt PageType) MarshalText() ([]byte, error) {
	return []byte(pt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (pt *PageType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "teacher_only":
		*pt = PageTypeTeacherOnly
	case "knowledge":
		*pt = PageTypeKnowledge
	case "quote":
		*pt = PageTypeQuote
	case "section":
		*pt = PageTypeSection
	case "title":
		*pt = PageTypeTitle
	default:
		return fmt.Errorf("unknown page type %q", text)
	}
	return nil
}

// Layout represents one of the fixed visual slide templates
type Layout int

const (
	// LayoutHalfScreen shows content beside the presenter video
	LayoutHalfScreen Layout = iota
	// LayoutSmallAvatar shows content with a small presenter avatar
	LayoutSmallAvatar
	// LayoutFullScreen shows content edge to edge
	LayoutFullScreen
	// LayoutTeacherOnly shows only the presenter
	LayoutTeacherOnly
	// LayoutSection is the section divider template
	LayoutSection
	// LayoutTitle is the title page template
	LayoutTitle
)

// String returns a human-readable representation of the layout
func (l Layout) String() string {
	switch l {
	case LayoutHalfScreen:
		return "half_screen"
	case LayoutSmallAvatar:
		return "small_avatar"
	case LayoutFullScreen:
		return "full_screen"
	case LayoutTeacherOnly:
		return "teacher_only"
	case LayoutSection:
		return "section"
	case LayoutTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Valid reports whether the layout is a member of the fixed enum.
func (l Layout) Valid() bool {
	return l >= LayoutHalfScreen && l <= LayoutTitle
}

// IsVisual reports whether the layout is one of the three content templates
// tracked by the run-length limiter.
func (l Layout) IsVisual() bool {
	return l == LayoutHalfScreen || l == LayoutSmallAvatar || l == LayoutFullScreen
}

// MarshalText implements encoding.TextMarshaler
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Layout) UnmarshalText(text []byte) error {
	switch string(text) {
	case "half_screen":
		*l = LayoutHalfScreen
	case "small_avatar":
		*l = LayoutSmallAvatar
	case "full_screen":
		*l = LayoutFullScreen
	case "teacher_only":
		*l = LayoutTeacherOnly
	case "section":
		*l = LayoutSection
	case "title":
		*l = LayoutTitle
	default:
		return fmt.Errorf("unknown layout %q", text)
	}
	return nil
}

// Intent represents how a text fragment is meant to be delivered
type Intent int

const (
	// IntentShow is content displayed as a knowledge point
	IntentShow Intent = iota
	// IntentSupport is supporting material (examples, quotations)
	IntentSupport
	// IntentSay is spoken presenter text
	IntentSay
)

// String returns the wire form of the intent
func (i Intent) String() string {
	switch i {
	case IntentShow:
		return "SHOW"
	case IntentSupport:
		return "SUPPORT"
	case IntentSay:
		return "SAY"
	default:
		return "unknown"
	}
}

// ParseIntent converts the wire form back to an Intent. The second return is
// false for anything outside the fixed vocabulary.
func ParseIntent(s string) (Intent, bool) {
	switch s {
	case "SHOW":
		return IntentShow, true
	case "SUPPORT":
		return IntentSupport, true
	case "SAY":
		return IntentSay, true
	default:
		return 0, false
	}
}

// MarshalText implements encoding.TextMarshaler
func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Intent) UnmarshalText(text []byte) error {
	v, ok := ParseIntent(string(text))
	if !ok {
		return fmt.Errorf("unknown intent %q", text)
	}
	*i = v
	return nil
}
