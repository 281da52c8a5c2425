package services

import (
	"cloud.google.com/go/civil"

	"aquadrop-backend/models"
)

// AdjustQuantity applies delta to the part's stock, flooring at zero rather
// than rejecting an over-deduction. last_updated always moves to today.
func AdjustQuantity(part models.InventoryPart, delta int, today civil.Date) models.InventoryPart {
	part.Quantity = max(0, part.Quantity+delta)
	part.LastUpdated = today
	return part
}
