package services_test

import (
	"testing"

	"caremarket/internal/models"
	"caremarket/internal/repositories"
	"caremarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedCartProducts(t *testing.T, repo *repositories.MockProductRepository) {
	t.Helper()
	products := []models.Product{
		{ID: "prod-1", Name: "Grab Bar Set", Price: 49.99, Stock: 10, StripePriceID: "price_grab_bar"},
		{ID: "prod-2", Name: "Pill Organizer", Price: 12.50, Stock: 25, StripePriceID: "price_pill_org"},
	}
	for i := range products {
		assert.NoError(t, repo.Create(&products[i]))
	}
}

func TestCartService_AddItemAndTotal(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCartProducts(t, repo)
	cart := services.NewCartService(repo)

	assert.NoError(t, cart.AddItem("user-1", "prod-1", 2))
	assert.NoError(t, cart.AddItem("user-1", "prod-2", 1))

	expected := 49.99*2 + 12.50
	assert.InDelta(t, expected, cart.Total("user-1"), 0.0001)

	// Total is a pure read: repeated calls return the same value and do not
	// change the cart.
	assert.InDelta(t, expected, cart.Total("user-1"), 0.0001)
	assert.Len(t, cart.Items("user-1"), 2)

	// Adding the same product again increments the existing entry.
	assert.NoError(t, cart.AddItem("user-1", "prod-1", 1))
	assert.Len(t, cart.Items("user-1"), 2)
	assert.InDelta(t, 49.99*3+12.50, cart.Total("user-1"), 0.0001)
}

func TestCartService_AddItemValidation(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCartProducts(t, repo)
	cart := services.NewCartService(repo)

	err := cart.AddItem("user-1", "prod-1", 0)
	assert.Error(t, err)

	err = cart.AddItem("user-1", "missing", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	assert.Empty(t, cart.Items("user-1"))
}

func TestCartService_UpdateQuantityBelowOneIsNoOp(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCartProducts(t, repo)
	cart := services.NewCartService(repo)

	assert.NoError(t, cart.AddItem("user-1", "prod-1", 2))

	cart.UpdateQuantity("user-1", "prod-1", 0)
	items := cart.Items("user-1")
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	cart.UpdateQuantity("user-1", "prod-1", 5)
	items = cart.Items("user-1")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartService_RemoveItemIsIdempotent(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCartProducts(t, repo)
	cart := services.NewCartService(repo)

	assert.NoError(t, cart.AddItem("user-1", "prod-1", 1))
	assert.NoError(t, cart.AddItem("user-1", "prod-2", 1))

	cart.RemoveItem("user-1", "prod-1")
	assert.Len(t, cart.Items("user-1"), 1)

	// Removing the same or an unknown product changes nothing.
	cart.RemoveItem("user-1", "prod-1")
	cart.RemoveItem("user-1", "never-existed")
	assert.Len(t, cart.Items("user-1"), 1)
}

func TestCartService_Clear(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCartProducts(t, repo)
	cart := services.NewCartService(repo)

	assert.NoError(t, cart.AddItem("user-1", "prod-1", 2))
	cart.Clear("user-1")

	assert.Empty(t, cart.Items("user-1"))
	assert.Zero(t, cart.Total("user-1"))
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCartProducts(t, repo)
	cart := services.NewCartService(repo)

	assert.NoError(t, cart.AddItem("user-1", "prod-1", 1))
	assert.NoError(t, cart.AddItem("user-2", "prod-2", 3))

	assert.Len(t, cart.Items("user-1"), 1)
	assert.Len(t, cart.Items("user-2"), 1)
	assert.InDelta(t, 49.99, cart.Total("user-1"), 0.0001)
	assert.InDelta(t, 37.50, cart.Total("user-2"), 0.0001)
}
