package service

import (
	"context"
	"fmt"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerService handles customer business logic.
type CustomerService struct {
	customers generic.BaseRepository[*model.Customer]
}

func NewCustomerService(customers generic.BaseRepository[*model.Customer]) *CustomerService {
	return &CustomerService{customers: customers}
}

// List returns the actor's customers (all of them for admins), newest first.
func (s *CustomerService) List(ctx context.Context, actor authz.Actor) ([]*model.Customer, error) {
	return s.customers.Find(ctx, authz.CustomerListFilter(actor), bson.D{{Key: "createdAt", Value: -1}})
}

// Create stores a new customer owned by the actor.
func (s *CustomerService) Create(ctx context.Context, actor authz.Actor, req *model.CustomerRequest) (*model.Customer, error) {
	customer := &model.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		User:      actor.ID,
		CreatedAt: time.Now(),
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// Get returns one customer. Owner or admin.
func (s *CustomerService) Get(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessCustomer(actor, customer, authz.OpRead) {
		return nil, apperr.ErrNotAuthorized
	}
	return customer, nil
}

// Update rewrites a customer's contact fields. Owner or admin.
func (s *CustomerService) Update(ctx context.Context, actor authz.Actor, id primitive.ObjectID, req *model.CustomerRequest) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessCustomer(actor, customer, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}

	return s.customers.UpdateByID(ctx, id, bson.M{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"company": req.Company,
	})
}

// Delete removes a customer. Owner or admin.
func (s *CustomerService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessCustomer(actor, customer, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.customers.DeleteByID(ctx, id)
}
