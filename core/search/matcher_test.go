package search_test

import (
	"errors"
	"testing"

	"stock-terminal/core/query"
	"stock-terminal/core/search"
	"stock-terminal/core/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type meta struct {
	name     string
	mod      string
	tooltip  []string
	registry string
	tags     []string
}

// fakeCatalog serves fixed metadata keyed by identity.
type fakeCatalog struct {
	items   map[stock.Identity]meta
	mods    map[string]string
	modErr  error
	tagsErr error
}

func (c *fakeCatalog) DisplayName(id stock.Identity) string { return c.items[id].name }
func (c *fakeCatalog) ModID(id stock.Identity) string       { return c.items[id].mod }
func (c *fakeCatalog) Tooltip(id stock.Identity) []string   { return c.items[id].tooltip }

func (c *fakeCatalog) ModName(modID string) (string, error) {
	if c.modErr != nil {
		return "", c.modErr
	}
	return c.mods[modID], nil
}

func (c *fakeCatalog) Resolve(id stock.Identity) (search.Item, search.Resolution) {
	if m, ok := c.items[id]; ok && m.registry != "" {
		return search.Item{Identity: id, RegistryName: m.registry}, search.Resolved
	}
	return search.Item{}, search.Unresolved
}

func (c *fakeCatalog) Tags(item search.Item) ([]string, error) {
	if c.tagsErr != nil {
		return nil, c.tagsErr
	}
	return c.items[item.Identity].tags, nil
}

func (c *fakeCatalog) sources() search.Sources {
	return search.Sources{Describer: c, Mods: c, Resolver: c, Tags: c}
}

var (
	ironID   = stock.Identity{Item: "minecraft:iron_ingot"}
	goldID   = stock.Identity{Item: "minecraft:gold_ingot"}
	gearID   = stock.Identity{Item: "thermal:iron_gear"}
	strayID  = stock.Identity{Item: "stray:thing"}
	fixtures = map[stock.Identity]meta{
		ironID: {
			name:     "Iron Ingot",
			mod:      "minecraft",
			tooltip:  []string{"Smithing material"},
			registry: "minecraft:iron_ingot",
			tags:     []string{"ingotIron", "forge:ingots"},
		},
		goldID: {
			name:     "Gold Ingot",
			mod:      "minecraft",
			tooltip:  []string{"Shiny"},
			registry: "minecraft:gold_ingot",
			tags:     []string{"ingotGold"},
		},
		gearID: {
			name:    "Iron Gear",
			mod:     "thermal",
			tooltip: []string{"Used in", "Machines"},
		},
		strayID: {name: "Stray"},
	}
)

func newCatalog() *fakeCatalog {
	return &fakeCatalog{
		items: fixtures,
		mods:  map[string]string{"minecraft": "Minecraft", "thermal": "Thermal Expansion"},
	}
}

func match(m *search.Matcher, raw string, id stock.Identity) bool {
	return m.Match(query.Parse(raw), stock.Entry{Identity: id, Quantity: 1})
}

func TestMatcher_Fields(t *testing.T) {
	m := search.NewMatcher(newCatalog().sources(), search.Settings{}, nil)

	tests := []struct {
		name string
		raw  string
		id   stock.Identity
		want bool
	}{
		{"Name", "iron", ironID, true},
		{"Name case-insensitive", "IRON", ironID, true},
		{"Name miss", "gold", ironID, false},
		{"Mod id", "@minecraft", ironID, true},
		{"Mod name fallback", "@expansion", gearID, true},
		{"Mod miss", "@thermal", ironID, false},
		{"Tooltip", "#smithing", ironID, true},
		{"Tooltip quoted span normalized", `#"smith ing"`, ironID, true},
		{"Tooltip across lines", "#inmachines", gearID, true},
		{"Tooltip split into two terms", "#smith rial", ironID, false},
		{"Tooltip two scoped terms", "#smith #rial", ironID, true},
		{"Tag", "$ingotiron", ironID, true},
		{"Tag miss", "$ingotgold", ironID, false},
		{"Registry id", "&iron_ingot", ironID, true},
		{"Registry id star", "*minecraft:", ironID, true},
		{"Registry unresolved", "&thermal", gearID, false},
		{"Tag unresolved", "$gear", gearID, false},
		{"Negation excludes", "-iron", ironID, false},
		{"Negation includes", "-iron", goldID, true},
		{"Negated unresolved passes", "-&anything", gearID, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match(m, tt.raw, tt.id))
		})
	}
}

func TestMatcher_NameFallsBackToTooltip(t *testing.T) {
	src := newCatalog().sources()

	off := search.NewMatcher(src, search.Settings{TooltipSearch: false}, nil)
	on := search.NewMatcher(src, search.Settings{TooltipSearch: true}, nil)

	assert.False(t, match(off, "smithing", ironID))
	assert.True(t, match(on, "smithing", ironID))

	// The fallback keeps spaces, unlike the # field
	assert.True(t, match(on, `"used in"`, gearID))
	assert.False(t, match(on, `"usedin"`, gearID))
	assert.True(t, match(on, `#"usedin"`, gearID))

	// Scoped terms never fall back to the tooltip
	assert.False(t, match(on, "@smithing", ironID))
}

func TestMatcher_OrAndPrecedence(t *testing.T) {
	cat := &fakeCatalog{items: map[stock.Identity]meta{
		{Item: "a:combo"}:   {name: "iron and gold combo"},
		{Item: "a:copper"}:  {name: "copper wire"},
		{Item: "a:unknown"}: {name: "stone"},
	}}
	m := search.NewMatcher(cat.sources(), search.Settings{}, nil)
	q := query.Parse("iron gold|copper")

	var hits []string
	for _, id := range []stock.Identity{{Item: "a:combo"}, {Item: "a:copper"}, {Item: "a:unknown"}} {
		if m.Match(q, stock.Entry{Identity: id}) {
			hits = append(hits, id.Item)
		}
	}
	assert.Equal(t, []string{"a:combo", "a:copper"}, hits)
}

func TestMatcher_LookupFailuresDegrade(t *testing.T) {
	cat := newCatalog()
	cat.modErr = errors.New("registry offline")
	cat.tagsErr = errors.New("tags offline")
	m := search.NewMatcher(cat.sources(), search.Settings{}, nil)

	assert.False(t, match(m, "@expansion", gearID))
	assert.True(t, match(m, "@thermal", gearID))
	assert.False(t, match(m, "$ingot", ironID))
	assert.True(t, match(m, "-$ingot", ironID))
	assert.True(t, match(m, "iron", ironID))
}

func TestMatcher_NilSources(t *testing.T) {
	m := search.NewMatcher(search.Sources{}, search.Settings{TooltipSearch: true}, nil)

	assert.True(t, match(m, "iron_ingot", ironID))
	assert.True(t, match(m, "@minecraft", ironID))
	assert.False(t, match(m, "@expansion", ironID))
	assert.False(t, match(m, "$ingot", ironID))
	assert.False(t, match(m, "&iron", ironID))
	assert.False(t, match(m, "#x", ironID))
}

type mockDescriber struct {
	mock.Mock
}

func (m *mockDescriber) DisplayName(id stock.Identity) string {
	return m.Called(id).String(0)
}

func (m *mockDescriber) ModID(id stock.Identity) string {
	return m.Called(id).String(0)
}

func (m *mockDescriber) Tooltip(id stock.Identity) []string {
	return m.Called(id).Get(0).([]string)
}

func TestMatcher_LookupsComputedOncePerEntry(t *testing.T) {
	d := new(mockDescriber)
	d.On("DisplayName", ironID).Return("Iron Ingot")
	d.On("ModID", ironID).Return("minecraft")
	d.On("Tooltip", ironID).Return([]string{"Smithing material"})

	m := search.NewMatcher(search.Sources{Describer: d}, search.Settings{TooltipSearch: true}, nil)

	// Every group misses so all terms are evaluated
	assert.False(t, match(m, "x y|#a #b|@c @d|e #f", ironID))

	d.AssertNumberOfCalls(t, "DisplayName", 1)
	d.AssertNumberOfCalls(t, "ModID", 1)
	d.AssertNumberOfCalls(t, "Tooltip", 1)

	// A second Match starts from a fresh scratch record
	assert.True(t, match(m, "iron", ironID))
	d.AssertNumberOfCalls(t, "DisplayName", 2)
}

func TestMatcher_MatchAllSkipsLookups(t *testing.T) {
	d := new(mockDescriber)
	m := search.NewMatcher(search.Sources{Describer: d}, search.Settings{}, nil)

	assert.True(t, match(m, "", ironID))
	assert.True(t, match(m, "iron||gold", ironID))
	d.AssertNotCalled(t, "DisplayName", mock.Anything)
}

func TestNamespace(t *testing.T) {
	assert.Equal(t, "minecraft", search.Namespace("minecraft:stone"))
	assert.Equal(t, "", search.Namespace("stone"))
}

func TestResolution_String(t *testing.T) {
	assert.Equal(t, "resolved", search.Resolved.String())
	assert.Equal(t, "fallback", search.FallbackResolved.String())
	assert.Equal(t, "unresolved", search.Unresolved.String())
}
