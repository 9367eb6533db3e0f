package controllers

import "errors"

// Error messages are part of the wire contract; clients match on them.
var (
	ErrMissingFields     = errors.New("Missing required fields")
	ErrEmailRequired     = errors.New("Email is required")
	ErrAlreadySubscribed = errors.New("Email already subscribed")
	ErrNoTables          = errors.New("No tables available at this time")
	ErrItemsRequired     = errors.New("Order items are required")
	ErrCustomerRequired  = errors.New("Customer information is required")
	ErrOrderNotFound     = errors.New("Order not found")
)
