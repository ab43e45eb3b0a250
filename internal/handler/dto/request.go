package dto

type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Venue        string `json:"venue"`
	StartsAt     string `json:"starts_at" binding:"required"`
	SaleStartsAt string `json:"sale_starts_at" binding:"required"`
	SaleEndsAt   string `json:"sale_ends_at" binding:"required"`
}

type CreateTicketTypeRequest struct {
	Name            string `json:"name" binding:"required"`
	Price           string `json:"price" binding:"required"`
	InitialQuantity int    `json:"initial_quantity" binding:"required,gt=0"`
	NumPerOrder     int    `json:"num_per_order"`
	MaxPerOrder     int    `json:"max_per_order"`
}

type OrderItemRequest struct {
	TicketTypeID string `json:"ticket_type_id" binding:"required,uuid"`
	Quantity     int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	EventID     string             `json:"event_id" binding:"required,uuid"`
	CustomerID  string             `json:"customer_id" binding:"required,uuid"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	HolderName  string             `json:"holder_name" binding:"required"`
	HolderEmail string             `json:"holder_email" binding:"required,email"`
	HolderPhone string             `json:"holder_phone"`
}

type CancelOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

type CheckinRequest struct {
	Code string `json:"code" binding:"required"`
}

type PaymentCallbackRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
	Outcome string `json:"outcome" binding:"required,oneof=success failure"`
	Amount  string `json:"amount"`
}
