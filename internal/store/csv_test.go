package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/store"
)

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, ItemID: 1, SellerID: 1, Price: decimal.RequireFromString("400.00"), Quantity: 0, Active: false, Deleted: false},
		{ID: 2, ItemID: 2, SellerID: 2, Price: decimal.RequireFromString("12.50"), Quantity: 3, Active: true, Deleted: false},
		{ID: 3, ItemID: 3, SellerID: 1, Price: decimal.RequireFromString("7.00"), Quantity: 1, Active: false, Deleted: true},
	}
}

func encodeAll[T any](t store.Table[T], recs []T) []store.Row {
	rows := make([]store.Row, len(recs))
	for i, r := range recs {
		rows[i] = t.Encode(r)
	}
	return rows
}

func TestCSVStore_CreatesDirAndHeaderOnlyFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	st, err := store.NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, st.EnsureTables(store.Schemas...))

	for _, sc := range store.Schemas {
		b, err := os.ReadFile(st.Path(sc))
		require.NoError(t, err)
		rows, err := st.Load(sc)
		require.NoError(t, err)
		assert.Empty(t, rows, sc.Name)
		assert.Equal(t, joinHeader(sc)+"\n", string(b))
	}
}

func joinHeader(sc store.Schema) string {
	out := ""
	for i, h := range sc.Header {
		if i > 0 {
			out += ","
		}
		out += h
	}
	return out
}

func TestCSVStore_SaveEmptyKeepsHeader(t *testing.T) {
	st, err := store.NewCSV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveAll(st, store.Orders, nil))
	b, err := os.ReadFile(st.Path(store.OrderSchema))
	require.NoError(t, err)
	assert.Equal(t, "order_id,buyer_id,seller_id,listing_id,unit_price,quantity,total_price,status\n", string(b))
}

func TestCSVStore_RoundTripListings(t *testing.T) {
	st, err := store.NewCSV(t.TempDir())
	require.NoError(t, err)

	want := sampleListings()
	require.NoError(t, store.SaveAll(st, store.Listings, want))

	got, err := store.LoadAll(st, store.Listings)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	assert.Equal(t, encodeAll(store.Listings, want), encodeAll(store.Listings, got))

	b, err := os.ReadFile(st.Path(store.ListingSchema))
	require.NoError(t, err)
	assert.Contains(t, string(b), "2,2,2,12.50,3,True,False\n")
	assert.Contains(t, string(b), "3,3,1,7.00,1,False,True\n")
}

func TestCSVStore_RoundTripAllKinds(t *testing.T) {
	st, err := store.NewCSV(t.TempDir())
	require.NoError(t, err)

	users := []domain.User{{ID: 1, Username: "Alice", Password: "pw,1"}, {ID: 2, Username: "Bob", Password: `say "hi"`}}
	items := []domain.Item{{ID: 1, Name: "Iphone 12", Category: domain.Electronics, Brand: "Apple", Condition: domain.LikeNew}}
	orders := []domain.Order{{ID: 1, BuyerID: 2, SellerID: 1, ListingID: 1,
		UnitPrice: decimal.RequireFromString("400.00"), Quantity: 1,
		TotalPrice: decimal.RequireFromString("400.00"), Status: domain.OrderCompleted}}

	require.NoError(t, store.SaveAll(st, store.Users, users))
	require.NoError(t, store.SaveAll(st, store.Items, items))
	require.NoError(t, store.SaveAll(st, store.Orders, orders))

	gotUsers, err := store.LoadAll(st, store.Users)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)

	gotItems, err := store.LoadAll(st, store.Items)
	require.NoError(t, err)
	assert.Equal(t, items, gotItems)

	gotOrders, err := store.LoadAll(st, store.Orders)
	require.NoError(t, err)
	assert.Equal(t, encodeAll(store.Orders, orders), encodeAll(store.Orders, gotOrders))
}

func TestCSVStore_LoadToleratesColumnOrderAndBlankIDs(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewCSV(dir)
	require.NoError(t, err)

	data := "\uFEFFdeleted,active,quantity,price,seller_id,item_id,listing_id\n" +
		"no,yes,2,10,1,1,5\n" +
		"False,True,1,3,1,2,\n" +
		",,,,1,3,6\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "listings.csv"), []byte(data), 0o644))

	got, err := store.LoadAll(st, store.Listings)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 5, got[0].ID)
	assert.True(t, got[0].Active)
	assert.False(t, got[0].Deleted)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, "10.00", got[0].Price.StringFixed(2))

	// empty optional columns fall back to defaults
	assert.Equal(t, 6, got[1].ID)
	assert.True(t, got[1].Active)
	assert.False(t, got[1].Deleted)
	assert.Equal(t, 0, got[1].Quantity)
	assert.True(t, got[1].Price.IsZero())
}

func TestCSVStore_LoadErrors(t *testing.T) {
	cases := []struct {
		name string
		file string
		data string
		load func(store.Store) error
	}{
		{
			name: "missing column",
			file: "users.csv",
			data: "user_id,username\n1,Alice\n",
			load: func(s store.Store) error { _, err := store.LoadAll(s, store.Users); return err },
		},
		{
			name: "unknown category",
			file: "items.csv",
			data: "item_id,name,category,brand,condition,description\n1,Lamp,Garden,Ikea,NEW,\n",
			load: func(s store.Store) error { _, err := store.LoadAll(s, store.Items); return err },
		},
		{
			name: "bad integer id",
			file: "orders.csv",
			data: "order_id,buyer_id,seller_id,listing_id,unit_price,quantity,total_price,status\nx,1,2,3,1.00,1,1.00,COMPLETED\n",
			load: func(s store.Store) error { _, err := store.LoadAll(s, store.Orders); return err },
		},
		{
			name: "bad price",
			file: "listings.csv",
			data: "listing_id,item_id,seller_id,price,quantity,active,deleted\n1,1,1,cheap,1,True,False\n",
			load: func(s store.Store) error { _, err := store.LoadAll(s, store.Listings); return err },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			st, err := store.NewCSV(dir)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dir, tc.file), []byte(tc.data), 0o644))

			err = tc.load(st)
			assert.ErrorIs(t, err, domain.ErrStorage)
		})
	}
}

func TestCSVStore_EmptyFileIsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.csv"), nil, 0o644))

	got, err := store.LoadAll(st, store.Users)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrderStatusDefaultsToCompleted(t *testing.T) {
	o, err := store.Orders.Decode(store.Row{"1", "2", "1", "1", "5.00", "2", "10.00", ""})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, o.Status)
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"True", "true", "1", "YES", "y", " True "} {
		assert.True(t, store.ParseBool(s), s)
	}
	for _, s := range []string{"False", "0", "no", "", "maybe"} {
		assert.False(t, store.ParseBool(s), s)
	}
	assert.Equal(t, "True", store.FormatBool(true))
	assert.Equal(t, "False", store.FormatBool(false))
}
