package trade

import (
	"context"
	"fmt"

	appactivity "github.com/crm/backend/internal/application/activity"
	"github.com/crm/backend/internal/domain/activity"
)

// logActivity appends one activity record through the transaction-scoped
// record repository, so it commits or rolls back with the business change.
func logActivity(ctx context.Context, repos TransactionalRepositories, customerID, statusID int64, text, typeName string, doc activity.DocumentRef, userOwner string) error {
	return appactivity.NewRecorder(repos.ActivityRecords()).Record(ctx, customerID, statusID, text, typeName, doc, userOwner)
}

func quoteRef(id int64) activity.DocumentRef {
	return activity.DocumentRef{Type: activity.DocumentTypeQuotes, ID: id}
}

func orderRef(id int64) activity.DocumentRef {
	return activity.DocumentRef{Type: activity.DocumentTypeOrders, ID: id}
}

func invoiceRef(id int64) activity.DocumentRef {
	return activity.DocumentRef{Type: activity.DocumentTypeInvoices, ID: id}
}

func purchaseOrderRef(id int64) activity.DocumentRef {
	return activity.DocumentRef{Type: activity.DocumentTypePurchaseOrders, ID: id}
}

func documentNumber(prefix string, id int64) string {
	return fmt.Sprintf("%s-%06d", prefix, id)
}
