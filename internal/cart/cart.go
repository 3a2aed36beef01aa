package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

var (
	ErrNotEditing   = errors.New("cart is not in edit mode")
	ErrItemNotFound = errors.New("item is not in the cart")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrQtyOverflow  = errors.New("quantity out of range")
)

type API interface {
	Get(ctx context.Context) (domain.Cart, error)
	Add(ctx context.Context, dishID int) error
	Remove(ctx context.Context, dishID int) error
	UpdateQuantity(ctx context.Context, dishID, qty int) error
	Clear(ctx context.Context) error
}

type OrderCreator interface {
	Create(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
}

type Cart struct {
	mu      sync.Mutex
	api     API
	cartID  int
	items   []domain.CartItem
	editing bool
}

func New(api API) *Cart {
	return &Cart{api: api, items: []domain.CartItem{}}
}

func (c *Cart) Snapshot() domain.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Cart{CartID: c.cartID, Items: c.copyItems()}
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyItems()
}

func (c *Cart) Total() decimal.Decimal {
	return c.Snapshot().Total()
}

func (c *Cart) Editing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing
}

func (c *Cart) SetEditing(on bool) {
	c.mu.Lock()
	c.editing = on
	c.mu.Unlock()
}

func (c *Cart) Merge(item domain.CartItem) domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(item.ID); i >= 0 {
		c.items[i].Qty++
		return c.items[i]
	}
	item.Qty = 1
	c.items = append(c.items, item)
	return item
}

func (c *Cart) Add(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	if err := c.api.Add(ctx, item.ID); err != nil {
		return domain.CartItem{}, err
	}
	return c.Merge(item), nil
}

func (c *Cart) ChangeQty(dishID, delta int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.editing {
		return 0, ErrNotEditing
	}
	i := c.indexOf(dishID)
	if i < 0 {
		return 0, ErrItemNotFound
	}
	current := c.items[i].Qty
	if delta > 0 && current > math.MaxInt-delta {
		return 0, ErrQtyOverflow
	}
	qty := current + delta
	if qty < 1 {
		qty = 1
	}
	c.items[i].Qty = qty
	return qty, nil
}

// DoneEditing pushes every local quantity to the server, one item at a time,
// and leaves edit mode. A failed item does not stop or undo the others.
func (c *Cart) DoneEditing(ctx context.Context) BatchResult {
	items := c.Items()

	result := BatchResult{Processed: make([]ItemResult, 0, len(items))}
	for _, item := range items {
		res := ItemResult{DishID: item.ID, Qty: item.Qty, Status: StatusOK}
		if err := c.api.UpdateQuantity(ctx, item.ID, item.Qty); err != nil {
			log.Printf("[cart] quantity update for dish %d failed: %v", item.ID, err)
			res.Status = StatusError
			res.Message = err.Error()
			res.err = err
			result.Failed++
		} else {
			result.Updated++
		}
		result.Processed = append(result.Processed, res)
	}

	c.SetEditing(false)
	return result
}

func (c *Cart) Remove(ctx context.Context, dishID int) error {
	if err := c.api.Remove(ctx, dishID); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(dishID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	return nil
}

func (c *Cart) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.items = []domain.CartItem{}
	c.mu.Unlock()

	server, err := c.api.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh cart: %w", err)
	}

	items := make([]domain.CartItem, 0, len(server.Items))
	for _, item := range server.Items {
		if item.Qty < 1 {
			item.Qty = 1
		}
		items = append(items, item)
	}

	c.mu.Lock()
	c.cartID = server.CartID
	c.items = items
	c.mu.Unlock()
	return nil
}

func (c *Cart) Reset() {
	c.mu.Lock()
	c.cartID = 0
	c.items = []domain.CartItem{}
	c.editing = false
	c.mu.Unlock()
}

func (c *Cart) Clear(ctx context.Context) error {
	if err := c.api.Clear(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

func (c *Cart) Checkout(ctx context.Context, orders OrderCreator, req domain.OrderRequest) (domain.Order, error) {
	snapshot := c.Snapshot()
	if len(snapshot.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	req.CartID = snapshot.CartID
	req.TotalPrice = snapshot.Total()
	req.TotalItems = snapshot.Count()

	order, err := orders.Create(ctx, req)
	if err != nil {
		return domain.Order{}, err
	}

	if err := c.Refresh(ctx); err != nil {
		log.Printf("[cart] refresh after checkout of order %d failed: %v", order.ID, err)
	}
	return order, nil
}

func (c *Cart) indexOf(dishID int) int {
	for i := range c.items {
		if c.items[i].ID == dishID {
			return i
		}
	}
	return -1
}

func (c *Cart) copyItems() []domain.CartItem {
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}
