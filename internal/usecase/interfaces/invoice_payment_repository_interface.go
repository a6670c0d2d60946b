package interfaces

import (
	"context"

	"atelier_ops/internal/domain/entities"
)

// IInvoicePaymentRepository abstracts DynamoDB persistence for InvoicePayment.
type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	ListByTicketID(ctx context.Context, ticketID string) ([]entities.InvoicePayment, error)
}
