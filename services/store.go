package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"aquadrop-backend/models"
	"aquadrop-backend/storage"
	"aquadrop-backend/utils"
)

const defaultIntervalDays = 90

// Store owns the customer, inventory and service collections. Every mutation
// is persisted through the gateway before it becomes visible to readers.
type Store struct {
	mu      sync.RWMutex
	gateway storage.Gateway
	clock   utils.Clock
	log     logrus.FieldLogger
	newID   func() string

	customers []models.Customer
	inventory []models.InventoryPart
	services  []models.ServiceRecord
}

type Option func(*Store)

func WithClock(clock utils.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// OpenStore loads the three collections from gw. Collections that were
// never saved are seeded with the sample data and written back.
func OpenStore(ctx context.Context, gw storage.Gateway, opts ...Option) (*Store, error) {
	s := &Store{
		gateway: gw,
		clock:   utils.RealClock{},
		log:     logrus.StandardLogger(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("module", "store")

	var seeded []storage.Document
	var err error
	var fresh bool

	if s.customers, fresh, err = loadCollection(ctx, gw, storage.KeyCustomers, models.SampleCustomers); err != nil {
		return nil, err
	} else if fresh {
		seeded = append(seeded, mustEncode(storage.KeyCustomers, s.customers))
	}
	if s.inventory, fresh, err = loadCollection(ctx, gw, storage.KeyInventory, models.SampleInventory); err != nil {
		return nil, err
	} else if fresh {
		seeded = append(seeded, mustEncode(storage.KeyInventory, s.inventory))
	}
	emptyLog := func() []models.ServiceRecord { return []models.ServiceRecord{} }
	if s.services, fresh, err = loadCollection(ctx, gw, storage.KeyServices, emptyLog); err != nil {
		return nil, err
	} else if fresh {
		seeded = append(seeded, mustEncode(storage.KeyServices, s.services))
	}

	if len(seeded) > 0 {
		if err := gw.Save(ctx, seeded...); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
		s.log.WithField("collections", len(seeded)).Info("seeded store with sample data")
	}
	return s, nil
}

func loadCollection[T any](ctx context.Context, gw storage.Gateway, key string, seed func() []T) ([]T, bool, error) {
	data, err := gw.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return seed(), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, false, nil
}

func encode(key string, v any) (storage.Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return storage.Document{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return storage.Document{Key: key, Data: data}, nil
}

func mustEncode(key string, v any) storage.Document {
	doc, err := encode(key, v)
	if err != nil {
		panic(err)
	}
	return doc
}

// commit persists the documents as one unit.
func (s *Store) commit(ctx context.Context, docs ...storage.Document) error {
	if err := s.gateway.Save(ctx, docs...); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}

// Today is the current calendar date according to the store's clock.
func (s *Store) Today() civil.Date {
	return utils.Today(s.clock)
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

func customerID(c models.Customer) string  { return c.ID }
func partID(p models.InventoryPart) string { return p.ID }

// --- customers

// CustomerInput is the payload for creating a customer.
type CustomerInput struct {
	ID              string                `json:"id"`
	Name            string                `json:"name" validate:"required"`
	Phone           string                `json:"phone" validate:"omitempty,phone"`
	Email           string                `json:"email" validate:"omitempty,email"`
	Address         string                `json:"address"`
	InstallDate     *civil.Date           `json:"install_date"`
	IntervalDays    *int                  `json:"interval_days" validate:"omitempty,gte=0"`
	LastServiceDate *civil.Date           `json:"last_service_date"`
	Lat             *float64              `json:"lat"`
	Long            *float64              `json:"long"`
	Status          models.CustomerStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CustomerPatch carries the fields to change; nil fields are left alone.
// LastServiceDate is absent on purpose: it only moves through RecordService.
// An empty Phone or Email clears the field.
type CustomerPatch struct {
	Name         *string                `json:"name"`
	Phone        *string                `json:"phone"`
	Email        *string                `json:"email"`
	Address      *string                `json:"address"`
	InstallDate  *civil.Date            `json:"install_date"`
	IntervalDays *int                   `json:"interval_days" validate:"omitempty,gte=0"`
	Lat          *float64               `json:"lat"`
	Long         *float64               `json:"long"`
	Status       *models.CustomerStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.customers)
}

func (s *Store) Customer(id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexByID(s.customers, id, customerID)
	if i < 0 {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return s.customers[i], nil
}

// CustomerView classifies a single customer against today.
func (s *Store) CustomerView(id string) (CustomerView, error) {
	c, err := s.Customer(id)
	if err != nil {
		return CustomerView{}, err
	}
	return Classify(c, s.Today()), nil
}

// CustomerViews classifies every customer against today and keeps those
// matching filter.
func (s *Store) CustomerViews(filter CustomerFilter) []CustomerView {
	today := s.Today()
	views := make([]CustomerView, 0)
	for _, c := range s.Customers() {
		v := Classify(c, today)
		if filter.Match(v) {
			views = append(views, v)
		}
	}
	return views
}

func (s *Store) Summary() Summary {
	return Summarize(s.Customers(), s.Today())
}

func (s *Store) CreateCustomer(ctx context.Context, in CustomerInput) (models.Customer, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return models.Customer{}, fromValidator(err)
	}
	if strings.TrimSpace(in.Name) == "" {
		return models.Customer{}, invalid("name", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Customer{
		ID:              in.ID,
		Name:            in.Name,
		Phone:           in.Phone,
		Email:           in.Email,
		Address:         in.Address,
		InstallDate:     in.InstallDate,
		IntervalDays:    defaultIntervalDays,
		LastServiceDate: in.LastServiceDate,
		Lat:             in.Lat,
		Long:            in.Long,
		Status:          in.Status,
	}
	if c.ID == "" {
		c.ID = s.newID()
	} else if indexByID(s.customers, c.ID, customerID) >= 0 {
		return models.Customer{}, invalid("id", "already exists")
	}
	if in.IntervalDays != nil {
		c.IntervalDays = *in.IntervalDays
	}
	if c.InstallDate == nil {
		today := s.Today()
		c.InstallDate = &today
	}
	if c.Status == "" {
		c.Status = models.CustomerActive
	}

	next := append([]models.Customer{c}, s.customers...)
	doc, err := encode(storage.KeyCustomers, next)
	if err != nil {
		return models.Customer{}, err
	}
	if err := s.commit(ctx, doc); err != nil {
		return models.Customer{}, err
	}
	s.customers = next
	s.log.WithField("customer", c.ID).Info("customer created")
	return c, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) (models.Customer, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		return models.Customer{}, fromValidator(err)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Customer{}, invalid("name", "is required")
	}
	if patch.Phone != nil && *patch.Phone != "" && !utils.ValidatePhone(*patch.Phone) {
		return models.Customer{}, invalid("phone", "must be a valid phone number")
	}
	if patch.Email != nil && *patch.Email != "" && !utils.ValidateEmail(*patch.Email) {
		return models.Customer{}, invalid("email", "must be a valid email address")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.customers, id, customerID)
	if i < 0 {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	c := s.customers[i]

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.InstallDate != nil {
		if c.InstallDate != nil && *c.InstallDate != *patch.InstallDate {
			return models.Customer{}, invalid("install_date", "cannot be changed once set")
		}
		c.InstallDate = patch.InstallDate
	}
	if patch.IntervalDays != nil {
		c.IntervalDays = *patch.IntervalDays
	}
	if patch.Lat != nil {
		c.Lat = patch.Lat
	}
	if patch.Long != nil {
		c.Long = patch.Long
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}

	return c, s.replaceCustomer(ctx, i, c)
}

// SetCustomerStatus activates or deactivates a customer.
func (s *Store) SetCustomerStatus(ctx context.Context, id string, status models.CustomerStatus) (models.Customer, error) {
	if status != models.CustomerActive && status != models.CustomerInactive {
		return models.Customer{}, invalid("status", "must be one of active inactive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.customers, id, customerID)
	if i < 0 {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	c := s.customers[i]
	c.Status = status
	return c, s.replaceCustomer(ctx, i, c)
}

// replaceCustomer must be called with the write lock held.
func (s *Store) replaceCustomer(ctx context.Context, i int, c models.Customer) error {
	next := slices.Clone(s.customers)
	next[i] = c
	doc, err := encode(storage.KeyCustomers, next)
	if err != nil {
		return err
	}
	if err := s.commit(ctx, doc); err != nil {
		return err
	}
	s.customers = next
	return nil
}

// DeleteCustomer removes the customer. Its service records stay in the log.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.customers, id, customerID)
	if i < 0 {
		return fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	next := slices.Delete(slices.Clone(s.customers), i, i+1)
	doc, err := encode(storage.KeyCustomers, next)
	if err != nil {
		return err
	}
	if err := s.commit(ctx, doc); err != nil {
		return err
	}
	s.customers = next
	s.log.WithField("customer", id).Info("customer deleted")
	return nil
}

// --- inventory

type PartInput struct {
	PartName string          `json:"part_name" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

type PartPatch struct {
	PartName *string          `json:"part_name"`
	Quantity *int             `json:"quantity" validate:"omitempty,gte=0"`
	UnitCost *decimal.Decimal `json:"unit_cost"`
}

func (s *Store) Parts() []models.InventoryPart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inventory)
}

func (s *Store) Part(id string) (models.InventoryPart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexByID(s.inventory, id, partID)
	if i < 0 {
		return models.InventoryPart{}, fmt.Errorf("part %s: %w", id, ErrNotFound)
	}
	return s.inventory[i], nil
}

// InventoryValue is the stock value of every part at unit cost.
func (s *Store) InventoryValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Parts() {
		total = total.Add(p.StockValue())
	}
	return total
}

// LowStockParts lists parts whose quantity is at or below threshold.
func (s *Store) LowStockParts(threshold int) []models.InventoryPart {
	low := make([]models.InventoryPart, 0)
	for _, p := range s.Parts() {
		if p.Quantity <= threshold {
			low = append(low, p)
		}
	}
	return low
}

func (s *Store) CreatePart(ctx context.Context, in PartInput) (models.InventoryPart, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return models.InventoryPart{}, fromValidator(err)
	}
	if strings.TrimSpace(in.PartName) == "" {
		return models.InventoryPart{}, invalid("part_name", "is required")
	}
	if in.UnitCost.IsNegative() {
		return models.InventoryPart{}, invalid("unit_cost", "must be at least 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.InventoryPart{
		ID:          s.newID(),
		PartName:    in.PartName,
		Quantity:    in.Quantity,
		UnitCost:    in.UnitCost,
		LastUpdated: s.Today(),
	}
	next := append([]models.InventoryPart{p}, s.inventory...)
	doc, err := encode(storage.KeyInventory, next)
	if err != nil {
		return models.InventoryPart{}, err
	}
	if err := s.commit(ctx, doc); err != nil {
		return models.InventoryPart{}, err
	}
	s.inventory = next
	s.log.WithField("part", p.ID).Info("part created")
	return p, nil
}

// UpdatePart replaces the given fields and always refreshes last_updated.
func (s *Store) UpdatePart(ctx context.Context, id string, patch PartPatch) (models.InventoryPart, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		return models.InventoryPart{}, fromValidator(err)
	}
	if patch.PartName != nil && strings.TrimSpace(*patch.PartName) == "" {
		return models.InventoryPart{}, invalid("part_name", "is required")
	}
	if patch.UnitCost != nil && patch.UnitCost.IsNegative() {
		return models.InventoryPart{}, invalid("unit_cost", "must be at least 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.inventory, id, partID)
	if i < 0 {
		return models.InventoryPart{}, fmt.Errorf("part %s: %w", id, ErrNotFound)
	}
	p := s.inventory[i]
	if patch.PartName != nil {
		p.PartName = *patch.PartName
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.UnitCost != nil {
		p.UnitCost = *patch.UnitCost
	}
	p.LastUpdated = s.Today()

	return p, s.replacePart(ctx, i, p)
}

// AdjustPart corrects stock by delta through AdjustQuantity.
func (s *Store) AdjustPart(ctx context.Context, id string, delta int) (models.InventoryPart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.inventory, id, partID)
	if i < 0 {
		return models.InventoryPart{}, fmt.Errorf("part %s: %w", id, ErrNotFound)
	}
	p := AdjustQuantity(s.inventory[i], delta, s.Today())
	return p, s.replacePart(ctx, i, p)
}

// replacePart must be called with the write lock held.
func (s *Store) replacePart(ctx context.Context, i int, p models.InventoryPart) error {
	next := slices.Clone(s.inventory)
	next[i] = p
	doc, err := encode(storage.KeyInventory, next)
	if err != nil {
		return err
	}
	if err := s.commit(ctx, doc); err != nil {
		return err
	}
	s.inventory = next
	return nil
}

// DeletePart removes the part unconditionally. Service records keep their
// own snapshot of its name.
func (s *Store) DeletePart(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.inventory, id, partID)
	if i < 0 {
		return fmt.Errorf("part %s: %w", id, ErrNotFound)
	}
	next := slices.Delete(slices.Clone(s.inventory), i, i+1)
	doc, err := encode(storage.KeyInventory, next)
	if err != nil {
		return err
	}
	if err := s.commit(ctx, doc); err != nil {
		return err
	}
	s.inventory = next
	s.log.WithField("part", id).Info("part deleted")
	return nil
}
