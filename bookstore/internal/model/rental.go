package model

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

type BookReservation struct {
	ID               int64             `json:"id" db:"id"`
	UserID           int64             `json:"user_id" db:"user_id"`
	MembershipCardID int64             `json:"membership_card_id" db:"membership_card_id"`
	BookID           int64             `json:"book_id" db:"book_id"`
	ReservationCode  string            `json:"reservation_code" db:"reservation_code"`
	Status           ReservationStatus `json:"status" db:"status"`
	PickupDeadline   time.Time         `json:"pickup_deadline" db:"pickup_deadline"`
	PickedUpAt       *time.Time        `json:"picked_up_at,omitempty" db:"picked_up_at"`
	PaymentMethod    PaymentMethod     `json:"payment_method" db:"payment_method"`
	CardHolderName   *string           `json:"card_holder_name,omitempty" db:"card_holder_name"`
	CardLastFour     *string           `json:"card_last_four,omitempty" db:"card_last_four"`
	CardExpiry       *string           `json:"card_expiry,omitempty" db:"card_expiry"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

type PaymentDetails struct {
	PaymentMethod  PaymentMethod `json:"payment_method" validate:"required,oneof=cash card"`
	CardHolderName string        `json:"card_holder_name" validate:"required_if=PaymentMethod card,max=255"`
	CardLastFour   string        `json:"card_last_four" validate:"required_if=PaymentMethod card,omitempty,len=4,numeric"`
	CardExpiry     string        `json:"card_expiry" validate:"required_if=PaymentMethod card,omitempty,cardexpiry"`
}

// Stored drops card fields for cash payments.
func (p PaymentDetails) Stored() (holder, lastFour, expiry *string) {
	if p.PaymentMethod != PaymentCard {
		return nil, nil, nil
	}
	return &p.CardHolderName, &p.CardLastFour, &p.CardExpiry
}

type ReservationRequest struct {
	BookID     int64  `json:"book_id" validate:"required,gt=0"`
	CardNumber string `json:"card_number" validate:"required"`
	PaymentDetails
}

type ReservationFilter struct {
	UserID int64
	Status ReservationStatus
	Page   int
	Size   int
}

type ActiveRental struct {
	ID            int64              `json:"id" db:"id"`
	UserID        int64              `json:"user_id" db:"user_id"`
	BookID        int64              `json:"book_id" db:"book_id"`
	ReservationID *int64             `json:"reservation_id,omitempty" db:"reservation_id"`
	Status        ActiveRentalStatus `json:"status" db:"status"`
	RentalDate    time.Time          `json:"rental_date" db:"rental_date"`
	DueDate       time.Time          `json:"due_date" db:"due_date"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" db:"updated_at"`
}

type WalkInRentalRequest struct {
	UserID     int64 `json:"user_id" validate:"required,gt=0"`
	BookID     int64 `json:"book_id" validate:"required,gt=0"`
	RentalDays int   `json:"rental_days" validate:"omitempty,min=1,max=90"`
}

type RentalFilter struct {
	UserID int64
	Status ActiveRentalStatus
	Page   int
	Size   int
}

type Rental struct {
	ID             int64     `json:"id" db:"id"`
	ActiveRentalID int64     `json:"active_rental_id" db:"active_rental_id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	BookID         int64     `json:"book_id" db:"book_id"`
	RentalDate     time.Time `json:"rental_date" db:"rental_date"`
	DueDate        time.Time `json:"due_date" db:"due_date"`
	ReturnDate     time.Time `json:"return_date" db:"return_date"`
	DaysLate       int       `json:"days_late" db:"days_late"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type ReturnRequest struct {
	ActiveRentalID int64 `json:"active_rental_id" validate:"required,gt=0"`
	ReturnDate     *Date `json:"return_date"`
	DaysLate       *int  `json:"days_late" validate:"omitempty,min=0"`
}

type Overdue struct {
	ID             int64     `json:"id" db:"id"`
	ActiveRentalID int64     `json:"active_rental_id" db:"active_rental_id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	BookID         int64     `json:"book_id" db:"book_id"`
	DaysOverdue    int       `json:"days_overdue" db:"days_overdue"`
	PenaltyAmount  float64   `json:"penalty_amount" db:"penalty_amount"`
	IsPaid         bool      `json:"is_paid" db:"is_paid"`
	IsReturned     bool      `json:"is_returned" db:"is_returned"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type OverdueUpdateRequest struct {
	IsPaid     *bool `json:"is_paid"`
	IsReturned *bool `json:"is_returned"`
}

type SweepResult struct {
	Expired   int `json:"expired"`
	Cancelled int `json:"cancelled"`
}

// ExpiredReservation is a sweep row that moved to expired or cancelled.
type ExpiredReservation struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`
	BookID int64 `db:"book_id"`
}

type Dashboard struct {
	BooksToRent         int     `json:"books_to_rent"`
	BooksToSell         int     `json:"books_to_sell"`
	Users               int     `json:"users"`
	Members             int     `json:"members"`
	WaitingReservations int     `json:"waiting_reservations"`
	ActiveRentals       int     `json:"active_rentals"`
	OverdueRentals      int     `json:"overdue_rentals"`
	UnpaidPenalties     float64 `json:"unpaid_penalties"`
	Revenue             float64 `json:"revenue"`
}

type EventStat struct {
	EventType string    `json:"event_type" db:"event_type"`
	Count     int64     `json:"count" db:"count"`
	Amount    float64   `json:"amount" db:"amount"`
	LastAt    time.Time `json:"last_at" db:"last_at"`
}

type DashboardMetric string

const (
	MetricBooksToRent         DashboardMetric = "books_to_rent"
	MetricBooksToSell         DashboardMetric = "books_to_sell"
	MetricUsers               DashboardMetric = "users"
	MetricMembers             DashboardMetric = "members"
	MetricWaitingReservations DashboardMetric = "waiting_reservations"
	MetricActiveRentals       DashboardMetric = "active_rentals"
	MetricOverdueRentals      DashboardMetric = "overdue_rentals"
	MetricUnpaidPenalties     DashboardMetric = "unpaid_penalties"
	MetricRevenue             DashboardMetric = "revenue"
)

var DashboardMetrics = []DashboardMetric{
	MetricBooksToRent,
	MetricBooksToSell,
	MetricUsers,
	MetricMembers,
	MetricWaitingReservations,
	MetricActiveRentals,
	MetricOverdueRentals,
	MetricUnpaidPenalties,
	MetricRevenue,
}

func (d *Dashboard) Set(m DashboardMetric, v float64) {
	switch m {
	case MetricBooksToRent:
		d.BooksToRent = int(v)
	case MetricBooksToSell:
		d.BooksToSell = int(v)
	case MetricUsers:
		d.Users = int(v)
	case MetricMembers:
		d.Members = int(v)
	case MetricWaitingReservations:
		d.WaitingReservations = int(v)
	case MetricActiveRentals:
		d.ActiveRentals = int(v)
	case MetricOverdueRentals:
		d.OverdueRentals = int(v)
	case MetricUnpaidPenalties:
		d.UnpaidPenalties = v
	case MetricRevenue:
		d.Revenue = v
	}
}

// RentalEvent is a consumed lifecycle event as stored for statistics.
type RentalEvent struct {
	EventType string    `db:"event_type"`
	UserID    int64     `db:"user_id"`
	BookID    int64     `db:"book_id"`
	RefID     int64     `db:"ref_id"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}
