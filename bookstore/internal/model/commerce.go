package model

import "time"

type Cart struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	Items     []CartItem `json:"items" db:"-"`
	Total     float64    `json:"total" db:"-"`
}

type CartItem struct {
	ID          int64     `json:"id" db:"id"`
	CartID      int64     `json:"cart_id" db:"cart_id"`
	BookID      int64     `json:"book_id" db:"book_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type AddToCartRequest struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

type Wishlist struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	BookID    int64     `json:"book_id" db:"book_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type WishlistRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	BookID int64 `json:"book_id" validate:"required,gt=0"`
}

type Order struct {
	ID              int64       `json:"id" db:"id"`
	OrderNumber     string      `json:"order_number" db:"order_number"`
	UserID          int64       `json:"user_id" db:"user_id"`
	TotalPrice      float64     `json:"total_price" db:"total_price"`
	Status          OrderStatus `json:"status" db:"status"`
	ShippingAddress string      `json:"shipping_address" db:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
	Books           []OrderBook `json:"books" db:"-"`
}

type OrderBook struct {
	OrderID  int64   `json:"order_id" db:"order_id"`
	BookID   int64   `json:"book_id" db:"book_id"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}

type OrderLineRequest struct {
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

type OrderRequest struct {
	UserID          int64              `json:"user_id" validate:"required,gt=0"`
	ShippingAddress string             `json:"shipping_address"`
	Books           []OrderLineRequest `json:"books" validate:"required,min=1,dive"`
}

type OrderUpdateRequest struct {
	Status          OrderStatus `json:"status" validate:"omitempty,oneof=Pending Paid Shipped Cancelled"`
	ShippingAddress *string     `json:"shipping_address"`
}

type BookPurchase struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	BookID       int64     `json:"book_id" db:"book_id"`
	OrderID      *int64    `json:"order_id,omitempty" db:"order_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	TotalPrice   float64   `json:"total_price" db:"total_price"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type PurchaseRequest struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

type Transaction struct {
	ID            int64             `json:"id" db:"id"`
	OrderID       int64             `json:"order_id" db:"order_id"`
	UserID        int64             `json:"user_id" db:"user_id"`
	Amount        float64           `json:"amount" db:"amount"`
	PaymentMethod string            `json:"payment_method" db:"payment_method"`
	Status        TransactionStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

type TransactionRequest struct {
	OrderID       int64             `json:"order_id" validate:"required,gt=0"`
	Amount        float64           `json:"amount" validate:"required,gt=0"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=card cash paypal"`
	Status        TransactionStatus `json:"status" validate:"omitempty,oneof=pending completed failed"`
}

type TransactionUpdateRequest struct {
	Status TransactionStatus `json:"status" validate:"required,oneof=pending completed failed"`
}

// Cents compares money without float drift.
func Cents(v float64) int64 {
	if v < 0 {
		return int64(v*100 - 0.5)
	}
	return int64(v*100 + 0.5)
}

func Money(v float64) float64 {
	return float64(Cents(v)) / 100
}

func LineTotal(unitPrice float64, qty int) float64 {
	return float64(Cents(unitPrice)*int64(qty)) / 100
}
