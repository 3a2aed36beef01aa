package domain

import "github.com/shopspring/decimal"

// CartItem is unique by ID within a cart and always has Qty >= 1.
type CartItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Qty         int             `json:"qty"`
	Thumbnail   string          `json:"thumbnail,omitempty"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

type Cart struct {
	CartID int        `json:"cartId"`
	Items  []CartItem `json:"items"`
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Qty
	}
	return n
}
