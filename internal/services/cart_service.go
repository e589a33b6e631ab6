package services

import (
	"fmt"
	"sync"

	"caremarket/internal/models"
	"caremarket/internal/repositories"
)

// CartService maintains the in-session cart for each user. Carts live in
// memory only and are lost on restart; stock is advisory and not reserved.
type CartService struct {
	productRepo repositories.ProductRepository
	carts       map[string][]models.CartItem
	mu          sync.RWMutex
}

// NewCartService creates a new CartService.
func NewCartService(productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
		carts:       make(map[string][]models.CartItem),
	}
}

// AddItem appends a product to the user's cart, or increments the quantity
// if it is already there. Quantity must be a positive integer.
func (s *CartService) AddItem(userID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return fmt.Errorf("product %s not found: %w", productID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i, item := range items {
		if item.Product.ID == productID {
			items[i].Quantity += quantity
			s.carts[userID] = items
			return nil
		}
	}
	s.carts[userID] = append(items, models.CartItem{Product: *product, Quantity: quantity})
	return nil
}

// UpdateQuantity sets the quantity of a cart entry. A quantity below 1 is a
// no-op; callers must remove the item explicitly instead.
func (s *CartService) UpdateQuantity(userID, productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i, item := range items {
		if item.Product.ID == productID {
			items[i].Quantity = quantity
			s.carts[userID] = items
			return
		}
	}
}

// RemoveItem removes the matching entry. No error if absent.
func (s *CartService) RemoveItem(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i, item := range items {
		if item.Product.ID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the user's cart entries in insertion order.
func (s *CartService) Items(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.carts[userID]))
	copy(items, s.carts[userID])
	return items
}

// Total sums price * quantity over the cart. Recomputed on every read.
func (s *CartService) Total(userID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.carts[userID] {
		total += item.Subtotal()
	}
	return total
}

// Clear empties the user's cart. Called once checkout is confirmed.
func (s *CartService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}
