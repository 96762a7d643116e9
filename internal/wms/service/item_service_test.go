package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestItemService(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	item, err := e.items.Create(ctx, &CreateItemRequest{
		ID: 11, Description: "spare item", Price: mustDecimal("3.50"), SKUID: 12, SupplierID: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), item.ID)

	tests := []struct {
		name string
		req  CreateItemRequest
		want error
	}{
		{"same id for the same supplier", CreateItemRequest{ID: 10, Description: "x", SKUID: 180, SupplierID: supplierID}, ErrValidation},
		{"supplier already sells the SKU", CreateItemRequest{ID: 30, Description: "x", SKUID: 12, SupplierID: supplierID}, ErrValidation},
		{"unknown SKU", CreateItemRequest{ID: 31, Description: "x", SKUID: 999, SupplierID: supplierID}, ErrNotFound},
		{"negative price", CreateItemRequest{ID: 32, Description: "x", Price: mustDecimal("-1"), SKUID: 180, SupplierID: 7}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.items.Create(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// same item id under another supplier is a different item
	_, err = e.items.Create(ctx, &CreateItemRequest{ID: 10, Description: "other", SKUID: 12, SupplierID: 7})
	require.NoError(t, err)

	all, err := e.items.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	updated, err := e.items.Update(ctx, 10, supplierID, &UpdateItemRequest{NewDescription: "renamed", NewPrice: mustDecimal("9.99")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Description)

	got, err := e.items.Get(ctx, 10, supplierID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Description)
	assert.True(t, got.Price.Equal(mustDecimal("9.99")))

	_, err = e.items.Update(ctx, 10, 99, &UpdateItemRequest{NewDescription: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, e.items.Delete(ctx, 10, supplierID))
	assert.ErrorIs(t, e.items.Delete(ctx, 10, supplierID), ErrNotFound)

	_, err = e.items.Get(ctx, 10, 7)
	assert.NoError(t, err)
}
