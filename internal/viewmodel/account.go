package viewmodel

import (
	"context"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// Cart shows the cart and checks it out.
type Cart struct {
	cart   repository.CartRepository
	orders repository.OrderRepository
	state  loader[model.CartResponse]
}

func NewCart(cart repository.CartRepository, orders repository.OrderRepository) *Cart {
	return &Cart{cart: cart, orders: orders}
}

func (c *Cart) Load(ctx context.Context) (State[model.CartResponse], error) {
	return c.state.run(ctx, "cart", fresh(deref(c.cart.Get)))
}

// Remove drops a book from the cart and reloads it.
func (c *Cart) Remove(ctx context.Context, bookID string) (model.ActionResult, error) {
	if err := c.cart.Remove(ctx, bookID); err != nil {
		return failed(err, "Failed to remove from cart")
	}
	_, _ = c.Load(ctx)
	return model.ActionResult{Success: true, Message: "Removed from cart"}, nil
}

// Checkout places an order for the cart contents. An empty cart is refused
// without calling upstream.
func (c *Cart) Checkout(ctx context.Context) (model.ActionResult, *model.OrderResponse, error) {
	cur := c.state.snapshot()
	if !cur.Success() || len(cur.Data.Items) == 0 {
		st, err := c.Load(ctx)
		if err != nil {
			return model.ActionResult{Message: "Failed to load cart"}, nil, err
		}
		cur = st
	}
	if len(cur.Data.Items) == 0 {
		return model.ActionResult{Message: "Cart is empty"}, nil, nil
	}

	order, err := c.orders.Place(ctx)
	if err != nil {
		return rejected[*model.OrderResponse](err, "Failed to place order")
	}
	c.state.set(model.CartResponse{Items: make([]model.CartItemResponse, 0)})
	return model.ActionResult{Success: true, Message: "Order placed"}, order, nil
}

// Favorites lists the user's favorite books.
type Favorites struct {
	favorites repository.FavoriteRepository
	state     loader[[]model.FavoriteResponse]
}

func NewFavorites(favorites repository.FavoriteRepository) *Favorites {
	return &Favorites{favorites: favorites}
}

func (f *Favorites) Load(ctx context.Context) (State[[]model.FavoriteResponse], error) {
	return f.state.run(ctx, "favorites", fresh(f.favorites.List))
}

// Following lists the authors the user follows.
type Following struct {
	follows repository.FollowRepository
	state   loader[[]model.FollowResponse]
}

func NewFollowing(follows repository.FollowRepository) *Following {
	return &Following{follows: follows}
}

func (f *Following) Load(ctx context.Context) (State[[]model.FollowResponse], error) {
	return f.state.run(ctx, "followed authors", fresh(f.follows.List))
}

// Orders lists past orders and shows a single one.
type Orders struct {
	orders repository.OrderRepository
	list   loader[[]model.OrderResponse]
	detail loader[model.OrderResponse]
}

func NewOrders(orders repository.OrderRepository) *Orders {
	return &Orders{orders: orders}
}

func (o *Orders) Load(ctx context.Context) (State[[]model.OrderResponse], error) {
	return o.list.run(ctx, "orders", fresh(o.orders.List))
}

func (o *Orders) Detail(ctx context.Context, id string) (State[model.OrderResponse], error) {
	if strings.TrimSpace(id) == "" {
		return o.detail.snapshot(), ErrInvalidQuery
	}
	return o.detail.run(ctx, "order", fresh(deref(func(ctx context.Context) (*model.OrderResponse, error) {
		return o.orders.Get(ctx, id)
	})))
}

// Profile shows and edits the signed-in user.
type Profile struct {
	users repository.UserRepository
	state loader[model.UserResponse]
}

func NewProfile(users repository.UserRepository) *Profile {
	return &Profile{users: users}
}

func (p *Profile) Load(ctx context.Context) (State[model.UserResponse], error) {
	return p.state.run(ctx, "profile", fresh(deref(p.users.Profile)))
}

// Update validates and saves the profile. Validation failures return a
// message and ErrInvalidQuery without calling upstream.
func (p *Profile) Update(ctx context.Context, req model.UpdateProfileRequest) (model.ActionResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if msg := validationMessage(req); msg != "" {
		return model.ActionResult{Message: msg}, ErrInvalidQuery
	}
	u, err := p.users.UpdateProfile(ctx, req)
	if err != nil {
		return failed(err, "Failed to update profile")
	}
	p.state.set(*u)
	return model.ActionResult{Success: true, Message: "Profile updated"}, nil
}
