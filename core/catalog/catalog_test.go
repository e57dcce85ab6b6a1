package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-terminal/core/catalog"
	"stock-terminal/core/query"
	"stock-terminal/core/search"
	"stock-terminal/core/sorting"
	"stock-terminal/core/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ingot  = stock.Identity{Item: "minecraft:iron_ingot"}
	potion = stock.Identity{Item: "minecraft:potion", Variant: "healing"}
	splash = stock.Identity{Item: "minecraft:potion", Variant: "splash"}
	ghost  = stock.Identity{Item: "ghost:thing"}
)

func fixture() *catalog.Catalog {
	snap := catalog.NewSnapshot()
	snap.AddMod("minecraft", "Minecraft")
	snap.AddItem(catalog.ItemDef{
		Item: ingot.Item, Name: "Iron Ingot", ModID: "minecraft",
		Tooltip: []string{"Smithing material"}, Tags: []string{"forge:ingots/iron"}, Order: 2,
	})
	snap.AddItem(catalog.ItemDef{Item: "minecraft:potion", Name: "Potion", RegistryID: "minecraft:potion", Order: 1})
	snap.AddItem(catalog.ItemDef{Item: potion.Item, Variant: potion.Variant, Name: "Potion of Healing", Order: 0})
	return catalog.NewStatic(snap)
}

func TestCatalog_Resolve(t *testing.T) {
	c := fixture()

	item, res := c.Resolve(potion)
	assert.Equal(t, search.Resolved, res)
	assert.Equal(t, potion, item.Identity)
	assert.Equal(t, "minecraft:potion", item.RegistryName)

	item, res = c.Resolve(splash)
	assert.Equal(t, search.FallbackResolved, res)
	assert.Equal(t, potion.Generic(), item.Identity)
	assert.Equal(t, "minecraft:potion", item.RegistryName)

	item, res = c.Resolve(ghost)
	assert.Equal(t, search.Unresolved, res)
	assert.True(t, item.IsEmpty())
}

func TestCatalog_Describer(t *testing.T) {
	c := fixture()

	assert.Equal(t, "Potion of Healing", c.DisplayName(potion))
	assert.Equal(t, "Potion", c.DisplayName(splash))
	assert.Equal(t, "ghost:thing", c.DisplayName(ghost))

	assert.Equal(t, "minecraft", c.ModID(ingot))
	assert.Equal(t, "ghost", c.ModID(ghost))

	assert.Equal(t, []string{"Smithing material"}, c.Tooltip(ingot))
	assert.Nil(t, c.Tooltip(ghost))
}

func TestCatalog_ModNameAndTags(t *testing.T) {
	c := fixture()

	name, err := c.ModName("minecraft")
	require.NoError(t, err)
	assert.Equal(t, "Minecraft", name)

	_, err = c.ModName("ghost")
	assert.ErrorIs(t, err, catalog.ErrUnknownMod)

	tags, err := c.Tags(search.Item{Identity: ingot})
	require.NoError(t, err)
	assert.Equal(t, []string{"forge:ingots/iron"}, tags)

	tags, err = c.Tags(search.Item{})
	require.NoError(t, err)
	assert.Nil(t, tags)
}

func TestCatalog_OrderStrategy(t *testing.T) {
	c := fixture()
	reg := sorting.NewRegistry(c, nil, c.OrderStrategy())

	entries := []stock.Entry{
		{Identity: ghost},
		{Identity: ingot},
		{Identity: splash},
		{Identity: potion},
	}
	reg.Sort(entries, sorting.KeyCustom, sorting.Ascending)

	got := make([]stock.Identity, len(entries))
	for i, e := range entries {
		got[i] = e.Identity
	}
	assert.Equal(t, []stock.Identity{potion, splash, ingot, ghost}, got)
}

func TestCatalog_SearchIntegration(t *testing.T) {
	c := fixture()
	m := search.NewMatcher(c.Sources(), search.Settings{}, nil)

	tests := []struct {
		raw  string
		id   stock.Identity
		want bool
	}{
		{"@minecraft", ingot, true},
		{"@ghost", ghost, true},
		{"$ingots/iron", ingot, true},
		{"$ingots", ghost, false},
		{"*minecraft:potion", splash, true},
		{"#smithingmaterial", ingot, true},
		{"healing", potion, true},
		{"healing", splash, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(query.Parse(tt.raw), stock.Entry{Identity: tt.id}))
		})
	}
}

type flakySource struct {
	err  error
	name string
}

func (s *flakySource) Name() string { return "flaky" }

func (s *flakySource) Load(context.Context) (*catalog.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	snap := catalog.NewSnapshot()
	name := s.name
	if name == "" {
		name = "Cogwheel"
	}
	snap.AddItem(catalog.ItemDef{Item: "create:cogwheel", Name: name, Order: 1})
	return snap, nil
}

func TestCatalog_Refresh(t *testing.T) {
	src := &flakySource{}
	cache, err := catalog.NewCache(time.Hour, nil, src)
	require.NoError(t, err)

	c := catalog.New(cache, nil)
	assert.Zero(t, c.Len())

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "Cogwheel", c.DisplayName(stock.Identity{Item: "create:cogwheel"}))

	// A failed reload keeps the previous snapshot
	src.err = errors.New("database is down")
	assert.Error(t, c.Reload(context.Background()))
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_NoCache(t *testing.T) {
	c := catalog.New(nil, nil)
	assert.NoError(t, c.Refresh(context.Background()))
	assert.NoError(t, c.Reload(context.Background()))
	assert.Equal(t, "a:b", c.DisplayName(stock.Identity{Item: "a:b"}))
}

func TestCatalog_Pin(t *testing.T) {
	src := &flakySource{}
	cache, err := catalog.NewCache(time.Hour, nil, src)
	require.NoError(t, err)
	c := catalog.New(cache, nil)
	require.NoError(t, c.Refresh(context.Background()))

	cog := stock.Identity{Item: "create:cogwheel"}
	lens := c.Pin()

	src.name = "Large Cogwheel"
	require.NoError(t, c.Reload(context.Background()))

	assert.Equal(t, "Cogwheel", lens.DisplayName(cog))
	assert.Equal(t, "Large Cogwheel", c.DisplayName(cog))
	m := search.NewMatcher(lens.Sources(), search.Settings{}, nil)
	assert.False(t, m.Match(query.Parse("large"), stock.Entry{Identity: cog}))
	m = search.NewMatcher(c.Sources(), search.Settings{}, nil)
	assert.True(t, m.Match(query.Parse("large"), stock.Entry{Identity: cog}))
}

func TestCatalog_OrderStrategyUnordered(t *testing.T) {
	snap := catalog.NewSnapshot()
	snap.AddItem(catalog.ItemDef{Item: "a:b", Name: "B"})
	assert.Nil(t, catalog.NewStatic(snap).OrderStrategy())
	assert.Nil(t, catalog.New(nil, nil).Pin().OrderStrategy())
	assert.NotNil(t, fixture().OrderStrategy())
}
