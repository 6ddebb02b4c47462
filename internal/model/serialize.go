package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// EncodeItems serializes a list as a JSON array.
// A nil list is written as an empty array, never as null.
func EncodeItems(items []LineItem) (string, error) {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode line items: %w", err)
	}
	return string(data), nil
}

// DecodeItems parses a JSON array of line items.
// Prices may be JSON numbers or strings.
func DecodeItems(s string) ([]LineItem, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	var items []LineItem
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode line items: %w", err)
	}
	return items, nil
}

// LoadCatalog loads a catalog file from the given path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	for i := range c.Products {
		c.Products[i].ID = NormalizeProductID(c.Products[i].ID)
	}
	return &c, nil
}

// SaveCatalog saves a catalog file to the given path.
func SaveCatalog(path string, c *Catalog) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	productsNode := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range c.Products {
		productsNode.Content = append(productsNode.Content, buildProductNode(&c.Products[i]))
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "products"},
		productsNode,
	)

	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}

// LoadOrder loads an order file from the given path.
func LoadOrder(path string) (*Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read order file %s: %w", path, err)
	}

	var o Order
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse order file %s: %w", path, err)
	}
	return &o, nil
}

// SaveOrder saves an order file to the given path.
// Count and total are written for readers of the file; they are derived
// from the items again on load.
func SaveOrder(path string, o *Order) error {
	node := buildOrderNode(o)

	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write order file %s: %w", path, err)
	}
	return nil
}

// buildOrderNode creates a yaml.Node tree for an Order with proper formatting.
func buildOrderNode(o *Order) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(doc, "id", o.ID)
	addStringField(doc, "customer", o.Customer)
	if o.Email != "" {
		addStringField(doc, "email", o.Email)
	}
	if o.Notes != "" {
		addMultilineStringField(doc, "notes", o.Notes)
	}
	addTimeField(doc, "created", o.Created)

	itemsNode := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range o.Items {
		itemsNode.Content = append(itemsNode.Content, buildLineItemNode(&o.Items[i]))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "items"},
		itemsNode,
	)

	addIntField(doc, "count", o.Count())
	addDecimalField(doc, "total", o.Total())
	return doc
}

func buildLineItemNode(li *LineItem) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addStringField(node, "id", li.ID)
	addStringField(node, "name", li.Name)
	addDecimalField(node, "price", li.Price)
	addIntField(node, "quantity", li.Quantity)
	addIntField(node, "stock", li.Stock)
	if li.Category != "" {
		addStringField(node, "category", li.Category)
	}
	if li.Image.URL != "" || li.Image.Hint != "" {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "image"},
			buildImageNode(li.Image),
		)
	}
	return node
}

func buildProductNode(p *Product) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addStringField(node, "id", p.ID)
	addStringField(node, "name", p.Name)
	if p.Description != "" {
		addMultilineStringField(node, "description", p.Description)
	}
	addDecimalField(node, "price", p.Price)
	addIntField(node, "stock", p.Stock)
	addStringField(node, "category", p.Category)
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "image"},
		buildImageNode(p.Image),
	)
	return node
}

func buildImageNode(img Image) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addStringField(node, "url", img.URL)
	if img.Hint != "" {
		addStringField(node, "hint", img.Hint)
	}
	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", value), Tag: "!!int"},
	)
}

// addDecimalField writes d at full precision. Rounding is for display only.
func addDecimalField(node *yaml.Node, key string, d decimal.Decimal) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: d.String()},
	)
}

func addTimeField(node *yaml.Node, key string, t time.Time) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: t.Format(time.RFC3339)},
	)
}

func addMultilineStringField(node *yaml.Node, key, value string) {
	// Use literal block scalar style for multi-line strings
	style := yaml.LiteralStyle
	if !containsNewline(value) {
		style = 0 // Use default style for single-line
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: style},
	)
}

func containsNewline(s string) bool {
	return strings.Contains(s, "\n")
}
