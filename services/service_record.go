package services

import (
	"context"
	"slices"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"

	"aquadrop-backend/models"
	"aquadrop-backend/storage"
	"aquadrop-backend/utils"
)

// DefaultTechnician is recorded when a visit names no technician.
const DefaultTechnician = "Tech1"

type PartUsageInput struct {
	PartID string `json:"part_id" validate:"required"`
	Qty    int    `json:"qty" validate:"gte=1"`
}

type RecordServiceInput struct {
	CustomerID    string             `json:"customer_id" validate:"required"`
	ServiceDate   civil.Date         `json:"service_date"`
	Type          models.ServiceType `json:"type" validate:"required,oneof=Basic Full"`
	PartsReplaced []PartUsageInput   `json:"parts_replaced" validate:"dive"`
	Remarks       string             `json:"remarks"`
	Technician    string             `json:"technician"`
}

// RecordService logs a completed visit. The new record, the customer's
// last_service_date and the part deductions are committed in one gateway
// write; on any failure none of them is applied.
//
// Parts that are no longer in inventory are skipped. Deductions that exceed
// the stock leave the part at zero. The service date overwrites the
// customer's last_service_date even when it is older than the current one.
func (s *Store) RecordService(ctx context.Context, in RecordServiceInput) (models.ServiceRecord, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return models.ServiceRecord{}, fromValidator(err)
	}
	if !in.ServiceDate.IsValid() {
		return models.ServiceRecord{}, invalid("service_date", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ci := indexByID(s.customers, in.CustomerID, customerID)
	if ci < 0 {
		return models.ServiceRecord{}, invalid("customer_id", "customer "+in.CustomerID+" not found")
	}

	today := s.Today()
	log := s.log.WithFields(logrus.Fields{"func": "RecordService", "customer": in.CustomerID})

	inventory := slices.Clone(s.inventory)
	used := make([]models.PartUsage, 0, len(in.PartsReplaced))
	for _, p := range in.PartsReplaced {
		pi := indexByID(inventory, p.PartID, partID)
		if pi < 0 {
			log.WithField("part", p.PartID).Warn("part not in inventory, skipped")
			continue
		}
		part := inventory[pi]
		if p.Qty > part.Quantity {
			log.WithFields(logrus.Fields{"part": p.PartID, "stock": part.Quantity, "qty": p.Qty}).
				Warn("deduction exceeds stock, clamped at zero")
		}
		used = append(used, models.PartUsage{PartID: part.ID, PartName: part.PartName, Qty: p.Qty})
		inventory[pi] = AdjustQuantity(part, -p.Qty, today)
	}

	technician := in.Technician
	if technician == "" {
		technician = DefaultTechnician
	}
	rec := models.ServiceRecord{
		ID:            s.newID(),
		CustomerID:    in.CustomerID,
		ServiceDate:   in.ServiceDate,
		Type:          in.Type,
		PartsReplaced: used,
		Remarks:       in.Remarks,
		Technician:    technician,
		UpdatedAt:     s.clock.Now().UTC(),
	}

	customers := slices.Clone(s.customers)
	serviceDate := in.ServiceDate
	customers[ci].LastServiceDate = &serviceDate

	services := append([]models.ServiceRecord{rec}, s.services...)

	docs := make([]storage.Document, 0, 3)
	for _, c := range []struct {
		key string
		v   any
	}{
		{storage.KeyServices, services},
		{storage.KeyCustomers, customers},
		{storage.KeyInventory, inventory},
	} {
		if c.key == storage.KeyInventory && len(used) == 0 {
			continue
		}
		doc, err := encode(c.key, c.v)
		if err != nil {
			return models.ServiceRecord{}, err
		}
		docs = append(docs, doc)
	}
	if err := s.commit(ctx, docs...); err != nil {
		log.WithError(err).Error("service not recorded")
		return models.ServiceRecord{}, err
	}

	s.services = services
	s.customers = customers
	s.inventory = inventory
	log.WithFields(logrus.Fields{"service": rec.ID, "parts": len(used)}).Info("service recorded")
	return rec, nil
}

// ServiceRecords returns the whole log, newest first.
func (s *Store) ServiceRecords() []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.services)
}

// ServiceRecordsForCustomer returns one customer's history, newest first.
// Records of deleted customers remain reachable by id.
func (s *Store) ServiceRecordsForCustomer(id string) []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ServiceRecord, 0)
	for _, r := range s.services {
		if r.CustomerID == id {
			out = append(out, r)
		}
	}
	return out
}

// RecentService is a dashboard row.
type RecentService struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	ServiceDate  civil.Date         `json:"service_date"`
	Type         models.ServiceType `json:"type"`
}

// RecentServices returns up to n of the newest records joined with the
// customer name, "-" when the customer no longer exists.
func (s *Store) RecentServices(n int) []RecentService {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []RecentService{}
	}
	out := make([]RecentService, 0, min(n, len(s.services)))
	for _, r := range s.services {
		if len(out) >= n {
			break
		}
		name := "-"
		if i := indexByID(s.customers, r.CustomerID, customerID); i >= 0 {
			name = s.customers[i].Name
		}
		out = append(out, RecentService{
			ID:           r.ID,
			CustomerID:   r.CustomerID,
			CustomerName: name,
			ServiceDate:  r.ServiceDate,
			Type:         r.Type,
		})
	}
	return out
}
