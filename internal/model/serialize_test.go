package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeItems(t *testing.T) {
	t.Run("round trip keeps every field", func(t *testing.T) {
		items := []LineItem{
			{
				ID:       "1",
				Name:     "Aged Balsamic Vinegar",
				Price:    decimal.RequireFromString("8.50"),
				Quantity: 2,
				Stock:    20,
				Category: "Pantry",
				Image:    Image{URL: "https://example.com/1.jpg", Hint: "balsamic bottle"},
			},
			{ID: "2", Name: "Black Truffle Oil", Price: decimal.RequireFromString("24"), Quantity: 1, Stock: 12},
		}

		s, err := EncodeItems(items)
		require.NoError(t, err)

		got, err := DecodeItems(s)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := range items {
			assert.True(t, items[i].Price.Equal(got[i].Price))
			got[i].Price = items[i].Price
			assert.Equal(t, items[i], got[i])
		}
	})

	t.Run("nil list encodes as empty array", func(t *testing.T) {
		s, err := EncodeItems(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", s)
	})

	t.Run("numeric prices are accepted", func(t *testing.T) {
		got, err := DecodeItems(`[{"id":"1","name":"Honey","price":11.25,"quantity":1,"stock":18,"category":"Sweets","image":{"url":"u","hint":"jar"}}]`)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "11.25", got[0].Price.StringFixed(2))
		assert.Equal(t, "jar", got[0].Image.Hint)
	})

	t.Run("empty and null decode to nil", func(t *testing.T) {
		for _, in := range []string{"", "  ", "null"} {
			got, err := DecodeItems(in)
			require.NoError(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("corrupt input returns error", func(t *testing.T) {
		_, err := DecodeItems(`{"id":"1"}`)
		require.Error(t, err)

		_, err = DecodeItems(`[{"id":"1"`)
		require.Error(t, err)
	})
}

func TestLoadSaveCatalog(t *testing.T) {
	content := `products:
  - id: " 3 "
    name: Saffron Threads
    description: Grade I Persian saffron, 2g tin.
    price: 14.75
    stock: 30
    category: Spices
    image:
      url: https://example.com/3.jpg
      hint: saffron tin
  - id: "4"
    name: Wildflower Honey
    price: "11.25"
    stock: 18
    category: Sweets
    image:
      url: https://example.com/4.jpg
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Products, 2)

	p := c.Find("3")
	require.NotNil(t, p, "ids are trimmed on load")
	assert.Equal(t, "Saffron Threads", p.Name)
	assert.Equal(t, "14.75", p.Price.StringFixed(2))
	assert.Equal(t, "11.25", c.Products[1].Price.StringFixed(2))
	assert.Nil(t, c.Find("99"))

	// Save and reload
	out := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SaveCatalog(out, c))
	again, err := LoadCatalog(out)
	require.NoError(t, err)
	require.Len(t, again.Products, 2)
	assert.Equal(t, c.Products[0].Name, again.Products[0].Name)
	assert.True(t, c.Products[0].Price.Equal(again.Products[0].Price))
	assert.Equal(t, c.Products[1].Image, again.Products[1].Image)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: [oops\n"), 0644))
	_, err = LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestSaveOrderFormat(t *testing.T) {
	o := &Order{
		ID:       "0b7d4f2c-2f7a-4b53-9d8e-6f1e4b0b9a11",
		Customer: "Ada",
		Notes:    "Gift wrap please.\nNo card.",
		Created:  time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
		Items: []LineItem{
			{ID: "1", Name: "Aged Balsamic Vinegar", Price: decimal.RequireFromString("8.5"), Quantity: 2, Stock: 20, Category: "Pantry"},
			{ID: "8", Name: "Dark Chocolate Bar", Price: decimal.RequireFromString("6.20"), Quantity: 3, Stock: 50},
		},
	}

	path := filepath.Join(t.TempDir(), "order.yaml")
	require.NoError(t, SaveOrder(path, o))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "id: 0b7d4f2c-"))
	assert.Contains(t, out, "created: 2026-03-04T10:30:00Z")
	assert.Contains(t, out, "notes: |-\n")
	assert.Contains(t, out, "price: 8.5\n")
	assert.Contains(t, out, "count: 5")
	assert.Contains(t, out, "total: 35.6\n")
	assert.NotContains(t, out, "email:")

	loaded, err := LoadOrder(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Count())
	assert.Equal(t, "35.60", loaded.Total().StringFixed(2))
	assert.Equal(t, o.Notes, loaded.Notes)
}

func TestSaveOrderKeepsPricePrecision(t *testing.T) {
	o := &Order{
		ID:       "0b7d4f2c-2f7a-4b53-9d8e-6f1e4b0b9a11",
		Customer: "Ada",
		Created:  time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
		Items: []LineItem{
			{ID: "9", Name: "Saffron Pinch", Price: decimal.RequireFromString("0.125"), Quantity: 3, Stock: 10},
		},
	}
	charged := o.Total()

	path := filepath.Join(t.TempDir(), "order.yaml")
	require.NoError(t, SaveOrder(path, o))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "price: 0.125\n")
	assert.Contains(t, string(data), "total: 0.375\n")

	loaded, err := LoadOrder(path)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.True(t, decimal.RequireFromString("0.125").Equal(loaded.Items[0].Price))
	assert.True(t, charged.Equal(loaded.Total()), "want %s, got %s", charged, loaded.Total())
}
