package search

import (
	"strings"
	"unicode"

	"stock-terminal/core/query"
	"stock-terminal/core/stock"

	"go.uber.org/zap"
)

// Settings is a snapshot of the search configuration, taken once per pass.
type Settings struct {
	// TooltipSearch makes plain name terms also search the tooltip.
	TooltipSearch bool
}

// Matcher tests stock entries against parsed queries.
type Matcher struct {
	src      Sources
	settings Settings
	logger   *zap.Logger
}

// NewMatcher creates a matcher over the given sources.
func NewMatcher(src Sources, settings Settings, logger *zap.Logger) *Matcher {
	if src.Describer == nil {
		src.Describer = IdentityDescriber{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{src: src, settings: settings, logger: logger}
}

// Match reports whether the entry satisfies the query.
func (m *Matcher) Match(q query.Query, e stock.Entry) bool {
	if q.MatchAll {
		return true
	}
	return q.Match(&fields{m: m, id: e.Identity})
}

// fields is the per-entry scratch record. Every slot is filled on first use.
type fields struct {
	m  *Matcher
	id stock.Identity

	name             *string
	modID            *string
	modName          *string
	tooltipLower     *string
	tooltipCompacted *string
	registryID       *string
	tags             *[]string

	item       Item
	resolution Resolution
	resolved   bool
}

// MatchTerm implements query.TermMatcher.
func (f *fields) MatchTerm(t query.Term) bool {
	switch t.Field {
	case query.FieldMod:
		if strings.Contains(f.getModID(), t.Text) {
			return true
		}
		return strings.Contains(f.getModName(), t.Text)
	case query.FieldTooltip:
		return strings.Contains(f.getTooltipCompacted(), compact(t.Text))
	case query.FieldAlternateID:
		if f.getItem().IsEmpty() {
			return false
		}
		for _, tag := range f.getTags() {
			if strings.Contains(tag, t.Text) {
				return true
			}
		}
		return false
	case query.FieldRegistryID:
		if f.getItem().IsEmpty() {
			return false
		}
		return strings.Contains(f.getRegistryID(), t.Text)
	default:
		if strings.Contains(f.getName(), t.Text) {
			return true
		}
		if f.m.settings.TooltipSearch {
			return strings.Contains(f.getTooltipLower(), t.Text)
		}
		return false
	}
}

func (f *fields) getName() string {
	if f.name == nil {
		s := lower(f.m.src.Describer.DisplayName(f.id))
		f.name = &s
	}
	return *f.name
}

func (f *fields) getModID() string {
	if f.modID == nil {
		s := lower(f.m.src.Describer.ModID(f.id))
		f.modID = &s
	}
	return *f.modID
}

func (f *fields) getModName() string {
	if f.modName == nil {
		var s string
		if id := f.getModID(); id != "" && f.m.src.Mods != nil {
			name, err := f.m.src.Mods.ModName(id)
			if err != nil {
				f.m.logger.Debug("mod name lookup failed", zap.String("mod", id), zap.Error(err))
			}
			s = lower(name)
		}
		f.modName = &s
	}
	return *f.modName
}

func (f *fields) loadTooltip() {
	joined := strings.Join(f.m.src.Describer.Tooltip(f.id), "\n")
	l := lower(joined)
	c := compact(joined)
	f.tooltipLower = &l
	f.tooltipCompacted = &c
}

func (f *fields) getTooltipLower() string {
	if f.tooltipLower == nil {
		f.loadTooltip()
	}
	return *f.tooltipLower
}

func (f *fields) getTooltipCompacted() string {
	if f.tooltipCompacted == nil {
		f.loadTooltip()
	}
	return *f.tooltipCompacted
}

func (f *fields) getItem() Item {
	if !f.resolved {
		f.resolved = true
		if f.m.src.Resolver != nil {
			f.item, f.resolution = f.m.src.Resolver.Resolve(f.id)
		}
		if f.resolution == Unresolved {
			f.item = Item{}
		}
	}
	return f.item
}

func (f *fields) getTags() []string {
	if f.tags == nil {
		var out []string
		if f.m.src.Tags != nil {
			tags, err := f.m.src.Tags.Tags(f.getItem())
			if err != nil {
				f.m.logger.Debug("tag lookup failed", zap.Stringer("identity", f.id), zap.Error(err))
			}
			out = make([]string, 0, len(tags))
			for _, tag := range tags {
				out = append(out, lower(tag))
			}
		}
		f.tags = &out
	}
	return *f.tags
}

func (f *fields) getRegistryID() string {
	if f.registryID == nil {
		s := lower(f.getItem().RegistryName)
		f.registryID = &s
	}
	return *f.registryID
}

func lower(s string) string {
	return strings.ToLower(s)
}

// compact lower-cases s and removes all whitespace.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lower(s))
}
