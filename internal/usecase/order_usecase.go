package usecase

import (
	"context"
	"errors"
	"log"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyCompleted = errors.New("order already completed")
)

// IOrderUseCase covers the order half of the engine. Orders are created only
// by quote acceptance; the single exposed mutation is completion, which
// atomically creates the bill.

type IOrderUseCase interface {
	Complete(ctx context.Context, orderID int64) (entities.Bill, error)
	Get(ctx context.Context, id, userID int64, role entities.Role) (entities.ServiceOrder, error)
	List(ctx context.Context, userID int64, role entities.Role) ([]entities.ServiceOrder, error)
}

type OrderUseCase struct {
	orders interfaces.IOrderRepository
	bills  interfaces.IBillRepository
	tx     interfaces.ITxManager
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, bills interfaces.IBillRepository, tx interfaces.ITxManager) *OrderUseCase {
	return &OrderUseCase{orders: orders, bills: bills, tx: tx}
}

// Complete marks the order completed and creates its bill in one
// transaction. The status write is conditional on the order still being
// open, so a second completion attempt fails instead of minting a second
// bill.
func (u *OrderUseCase) Complete(ctx context.Context, orderID int64) (entities.Bill, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Bill{}, err
	}
	if o.ID == 0 {
		return entities.Bill{}, ErrOrderNotFound
	}
	if _, ok := entities.NextOrderStatus(o.Status, entities.OrderEventComplete); !ok {
		return entities.Bill{}, ErrOrderAlreadyCompleted
	}

	var bill entities.Bill
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		applied, err := u.orders.MarkCompletedIfOpen(ctx, orderID)
		if err != nil {
			return err
		}
		if !applied {
			return ErrOrderAlreadyCompleted
		}
		bill, err = u.bills.Create(ctx, entities.Bill{
			OrderID:  orderID,
			ClientID: o.ClientID,
			Amount:   o.FinalPrice,
			Status:   entities.BillStatusPending,
		})
		return err
	})
	if err != nil {
		return entities.Bill{}, err
	}

	log.Printf("[order][usecase] completed order_id=%d bill_id=%d amount=%.2f", orderID, bill.ID, bill.Amount)
	return bill, nil
}

func (u *OrderUseCase) Get(ctx context.Context, id, userID int64, role entities.Role) (entities.ServiceOrder, error) {
	var (
		o   entities.ServiceOrder
		err error
	)
	if role == entities.RoleContractor {
		o, err = u.orders.GetByID(ctx, id)
	} else {
		o, err = u.orders.GetByIDForClient(ctx, id, userID)
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context, userID int64, role entities.Role) ([]entities.ServiceOrder, error) {
	if role == entities.RoleContractor {
		return u.orders.ListAll(ctx)
	}
	return u.orders.ListByClient(ctx, userID)
}
