// Package audit fills the CreatedBy/UpdatedBy fields of documents from the
// authenticated user in the request context.
package audit

import (
	"context"

	appctx "farina/internal/core/context"
)

// EnrichCreatedByDirect sets both audit fields from the context user.
// If no user is in context this is a no-op.
func EnrichCreatedByDirect(ctx context.Context, createdBy, updatedBy *string) {
	userID := appctx.GetUserID(ctx)
	if userID != "" && createdBy != nil && updatedBy != nil {
		*createdBy = userID
		*updatedBy = userID
	}
}

// EnrichUpdatedByDirect sets only UpdatedBy from the context user.
func EnrichUpdatedByDirect(ctx context.Context, updatedBy *string) {
	userID := appctx.GetUserID(ctx)
	if userID != "" && updatedBy != nil {
		*updatedBy = userID
	}
}
