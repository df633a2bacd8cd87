package impl

import (
	"context"
	"net/url"
	"strings"

	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/domain/listquery"
	"hvacops/internal/domain/repository"
	"hvacops/internal/errors"
	"hvacops/internal/usecase"
	"hvacops/internal/validation"
)

var customerListOptions = listquery.Options{
	Filterable:  []string{"planTier", "email"},
	Sortable:    []string{"name", "email"},
	DefaultSort: "name",
}

type customerService struct {
	store repository.SnapshotStore
}

// NewCustomerService creates the customer service.
func NewCustomerService(store repository.SnapshotStore) usecase.CustomerUsecase {
	return &customerService{store: store}
}

func (s *customerService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Customer], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.Customers, listquery.Parse(raw, customerListOptions))
	return &res, nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findCustomer(snap.Customers, id); idx >= 0 {
		c := snap.Customers[idx]
		return &c, nil
	}

	return nil, notFound("customer", id)
}

func (s *customerService) Create(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	if err := validation.Struct("customer", input); err != nil {
		return nil, err
	}

	var created entity.Customer
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if customerEmailTaken(snap.Customers, input.Email, "") {
			return duplicateEmail(input.Email)
		}

		id, err := resolveID(input.ID, "cust", "customer", func(id string) bool {
			return findCustomer(snap.Customers, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.Customer{
			ID:             id,
			Name:           input.Name,
			PrimaryAddress: input.PrimaryAddress,
			Email:          input.Email,
			Phone:          input.Phone,
			PlanTier:       trimPtr(input.PlanTier),
		}
		snap.Customers = append(snap.Customers, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *customerService) Update(ctx context.Context, id string, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("customer patch names no fields.", nil)
	}
	if err := validation.Struct("customer", input); err != nil {
		return nil, err
	}

	var updated entity.Customer
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findCustomer(snap.Customers, id)
		if idx < 0 {
			return notFound("customer", id)
		}

		if input.Email != nil && customerEmailTaken(snap.Customers, *input.Email, id) {
			return duplicateEmail(*input.Email)
		}

		c := &snap.Customers[idx]
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.PrimaryAddress != nil {
			c.PrimaryAddress = *input.PrimaryAddress
		}
		if input.Email != nil {
			c.Email = *input.Email
		}
		if input.Phone != nil {
			c.Phone = *input.Phone
		}
		if input.PlanTier != nil {
			c.PlanTier = trimPtr(input.PlanTier)
		}

		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findCustomer(snap.Customers, id)
		if idx < 0 {
			return notFound("customer", id)
		}

		snap.Customers = append(snap.Customers[:idx], snap.Customers[idx+1:]...)
		return nil
	})
}

func findCustomer(customers []entity.Customer, id string) int {
	for i := range customers {
		if customers[i].ID == id {
			return i
		}
	}
	return -1
}

// customerEmailTaken reports whether another customer already uses the email,
// compared case-insensitively. selfID exempts the record being updated.
func customerEmailTaken(customers []entity.Customer, email, selfID string) bool {
	for i := range customers {
		if customers[i].ID != selfID && strings.EqualFold(customers[i].Email, email) {
			return true
		}
	}
	return false
}

func duplicateEmail(email string) error {
	return domainerrors.NewValidationError(
		"a customer with this email already exists.",
		map[string]string{"email": email})
}
