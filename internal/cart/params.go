package cart

import (
	"context"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

type Params struct {
	ResetCart bool             `json:"resetCart,omitempty"`
	AddItem   *domain.CartItem `json:"addItem,omitempty"`
	IsEditing *bool            `json:"isEditing,omitempty"`
}

func (c *Cart) ApplyParams(ctx context.Context, p Params) error {
	if p.ResetCart {
		if err := c.Refresh(ctx); err != nil {
			return err
		}
	}
	if p.AddItem != nil {
		c.Merge(*p.AddItem)
	}
	if p.IsEditing != nil {
		c.SetEditing(*p.IsEditing)
	}
	return nil
}
