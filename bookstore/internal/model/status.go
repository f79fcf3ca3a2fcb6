package model

import (
	"fmt"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
)

type AvailabilityStatus string

const (
	Available AvailabilityStatus = "available"
	Rented    AvailabilityStatus = "rented"
	Reserved  AvailabilityStatus = "reserved"
)

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionGood    Condition = "good"
	ConditionWorn    Condition = "worn"
	ConditionDamaged Condition = "damaged"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type ReservationStatus string

const (
	ReservationWaiting   ReservationStatus = "waiting"
	ReservationPicked    ReservationStatus = "picked"
	ReservationExpired   ReservationStatus = "expired"
	ReservationCancelled ReservationStatus = "cancelled"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationWaiting: {ReservationPicked, ReservationExpired, ReservationCancelled},
	ReservationExpired: {ReservationCancelled},
}

func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	return allowed(reservationTransitions, s, to)
}

// Transition is the only place reservation moves are decided.
func (s ReservationStatus) Transition(to ReservationStatus) error {
	return checkTransition("reservation", reservationTransitions, s, to)
}

// HoldsStock reports whether a reservation in this status still owns a stock unit.
func (s ReservationStatus) HoldsStock() bool {
	return s == ReservationWaiting || s == ReservationExpired
}

type ActiveRentalStatus string

const (
	RentalActive   ActiveRentalStatus = "active"
	RentalOverdue  ActiveRentalStatus = "overdue"
	RentalReturned ActiveRentalStatus = "returned"
)

var activeRentalTransitions = map[ActiveRentalStatus][]ActiveRentalStatus{
	RentalActive:  {RentalOverdue, RentalReturned},
	RentalOverdue: {RentalReturned},
}

func (s ActiveRentalStatus) CanTransition(to ActiveRentalStatus) bool {
	return allowed(activeRentalTransitions, s, to)
}

func (s ActiveRentalStatus) Transition(to ActiveRentalStatus) error {
	if s == RentalReturned && to == RentalReturned {
		return errs.ErrAlreadyReturned
	}
	return checkTransition("active rental", activeRentalTransitions, s, to)
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPaid      OrderStatus = "Paid"
	OrderShipped   OrderStatus = "Shipped"
	OrderCancelled OrderStatus = "Cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderPaid, OrderCancelled},
	OrderPaid:    {OrderShipped, OrderCancelled},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return allowed(orderTransitions, s, to)
}

func (s OrderStatus) Transition(to OrderStatus) error {
	return checkTransition("order", orderTransitions, s, to)
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

var transactionTransitions = map[TransactionStatus][]TransactionStatus{
	TransactionPending: {TransactionCompleted, TransactionFailed},
}

func (s TransactionStatus) CanTransition(to TransactionStatus) bool {
	return allowed(transactionTransitions, s, to)
}

func (s TransactionStatus) Transition(to TransactionStatus) error {
	return checkTransition("transaction", transactionTransitions, s, to)
}

func allowed[S ~string](table map[S][]S, from, to S) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func checkTransition[S ~string](entity string, table map[S][]S, from, to S) error {
	if allowed(table, from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s %s -> %s", errs.ErrInvalidTransition, entity, from, to)
}
