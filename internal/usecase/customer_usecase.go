// Package usecase defines the interfaces of the entity services and the
// typed inputs their create and update operations accept.
package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// CustomerUsecase manages the customer collection.
type CustomerUsecase interface {
	// List returns one page of customers for the raw query parameters.
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Customer], error)

	// GetByID retrieves a customer by its unique id.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)

	// Create validates and persists a new customer. Email must be unique
	// across the collection, case-insensitively.
	Create(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// Update applies a partial patch to an existing customer.
	Update(ctx context.Context, id string, input *UpdateCustomerInput) (*entity.Customer, error)

	// Delete removes a customer.
	Delete(ctx context.Context, id string) error
}

// CreateCustomerInput carries a full customer payload. ID may be supplied by
// the caller; when omitted the service assigns one.
type CreateCustomerInput struct {
	ID             *string `json:"id" validate:"omitempty,min=1"`
	Name           string  `json:"name" validate:"required"`
	PrimaryAddress string  `json:"primaryAddress" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required,phone"`
	PlanTier       *string `json:"planTier" validate:"omitempty,min=1"`
}

// UpdateCustomerInput is a partial customer patch; nil fields are untouched.
type UpdateCustomerInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	PrimaryAddress *string `json:"primaryAddress" validate:"omitempty,min=1"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,phone"`
	PlanTier       *string `json:"planTier" validate:"omitempty,min=1"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateCustomerInput) Empty() bool {
	return in.Name == nil && in.PrimaryAddress == nil && in.Email == nil &&
		in.Phone == nil && in.PlanTier == nil
}
