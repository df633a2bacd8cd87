package impl

import (
	"context"
	"math"
	"net/url"

	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/domain/listquery"
	"hvacops/internal/domain/repository"
	"hvacops/internal/errors"
	"hvacops/internal/usecase"
	"hvacops/internal/validation"
)

// totalCostTolerance absorbs float rounding when comparing the stated total
// against the line item sum.
const totalCostTolerance = 0.001

var partsOrderListOptions = listquery.Options{
	Filterable:  []string{"finalQuoteId", "status"},
	Sortable:    []string{"status", "totalCost"},
	DefaultSort: "status",
}

type partsOrderService struct {
	store repository.SnapshotStore
}

// NewPartsOrderService creates the parts order service.
func NewPartsOrderService(store repository.SnapshotStore) usecase.PartsOrderUsecase {
	return &partsOrderService{store: store}
}

func (s *partsOrderService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.PartsOrder], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.PartsOrders, listquery.Parse(raw, partsOrderListOptions))
	return &res, nil
}

func (s *partsOrderService) GetByID(ctx context.Context, id string) (*entity.PartsOrder, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findPartsOrder(snap.PartsOrders, id); idx >= 0 {
		po := snap.PartsOrders[idx]
		return &po, nil
	}

	return nil, notFound("parts order", id)
}

func (s *partsOrderService) Create(ctx context.Context, input *usecase.CreatePartsOrderInput) (*entity.PartsOrder, error) {
	if err := validation.Struct("parts order", input); err != nil {
		return nil, err
	}

	items := partsOrderItemsFromInput(input.Items)
	if err := checkTotalCost(items, *input.TotalCost); err != nil {
		return nil, err
	}

	var created entity.PartsOrder
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if findFinalQuote(snap.FinalQuotes, input.FinalQuoteID) < 0 {
			return danglingReference("finalQuoteId", input.FinalQuoteID)
		}

		id, err := resolveID(input.ID, "po", "parts order", func(id string) bool {
			return findPartsOrder(snap.PartsOrders, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.PartsOrder{
			ID:           id,
			FinalQuoteID: input.FinalQuoteID,
			Items:        items,
			TotalCost:    *input.TotalCost,
			Status:       input.Status,
			ETADate:      input.ETADate,
			Notes:        trimPtr(input.Notes),
		}
		snap.PartsOrders = append(snap.PartsOrders, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *partsOrderService) Update(ctx context.Context, id string, input *usecase.UpdatePartsOrderInput) (*entity.PartsOrder, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("parts order patch names no fields.", nil)
	}
	if err := validation.Struct("parts order", input); err != nil {
		return nil, err
	}

	var updated entity.PartsOrder
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findPartsOrder(snap.PartsOrders, id)
		if idx < 0 {
			return notFound("parts order", id)
		}

		if input.FinalQuoteID != nil && findFinalQuote(snap.FinalQuotes, *input.FinalQuoteID) < 0 {
			return danglingReference("finalQuoteId", *input.FinalQuoteID)
		}

		// Merge first so the total is checked against the items as they
		// would be persisted, whichever side the patch touches.
		next := snap.PartsOrders[idx]
		if input.FinalQuoteID != nil {
			next.FinalQuoteID = *input.FinalQuoteID
		}
		if input.Items != nil {
			next.Items = partsOrderItemsFromInput(input.Items)
		}
		if input.TotalCost != nil {
			next.TotalCost = *input.TotalCost
		}
		if input.Status != nil {
			next.Status = *input.Status
		}
		if input.ETADate != nil {
			next.ETADate = input.ETADate
		}
		if input.Notes != nil {
			next.Notes = trimPtr(input.Notes)
		}

		if err := checkTotalCost(next.Items, next.TotalCost); err != nil {
			return err
		}

		snap.PartsOrders[idx] = next
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *partsOrderService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findPartsOrder(snap.PartsOrders, id)
		if idx < 0 {
			return notFound("parts order", id)
		}

		snap.PartsOrders = append(snap.PartsOrders[:idx], snap.PartsOrders[idx+1:]...)
		return nil
	})
}

func findPartsOrder(orders []entity.PartsOrder, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

func partsOrderItemsFromInput(inputs []usecase.PartsOrderItemInput) []entity.PartsOrderItem {
	items := make([]entity.PartsOrderItem, len(inputs))
	for i, item := range inputs {
		items[i] = entity.PartsOrderItem{
			PartID:      item.PartID,
			Description: item.Description,
			Qty:         *item.Qty,
			CostEach:    *item.CostEach,
		}
	}
	return items
}

// checkTotalCost enforces that the stated total matches the sum of the line
// items within tolerance.
func checkTotalCost(items []entity.PartsOrderItem, total float64) error {
	var sum float64
	for _, item := range items {
		sum += float64(item.Qty) * item.CostEach
	}
	if math.Abs(sum-total) > totalCostTolerance {
		return domainerrors.NewValidationError(
			"totalCost must equal the sum of the line items.",
			map[string]float64{"totalCost": total, "itemsTotal": sum})
	}
	return nil
}
