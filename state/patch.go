package state

import "clampacked-backend/models"

// OrderPatch is a partial update to an order draft. Nil fields are left
// untouched; set fields overwrite, last write wins.
type OrderPatch struct {
	IslandID     *string              `json:"island_id"`
	StoreID      *string              `json:"store_id"`
	DeliveryDate *models.DeliveryDate `json:"delivery_date"`
	PickupCode   *string              `json:"pickup_code"`
	OrderNote    *string              `json:"order_note"`
	PDFUploaded  *bool                `json:"pdf_uploaded"`
}

func (p OrderPatch) apply(draft *models.OrderDraft) {
	if p.IslandID != nil {
		draft.IslandID = *p.IslandID
	}
	if p.StoreID != nil {
		draft.StoreID = *p.StoreID
	}
	if p.DeliveryDate != nil {
		d := *p.DeliveryDate
		draft.DeliveryDate = &d
	}
	if p.PickupCode != nil {
		draft.PickupCode = *p.PickupCode
	}
	if p.OrderNote != nil {
		draft.OrderNote = *p.OrderNote
	}
	if p.PDFUploaded != nil {
		draft.PDFUploaded = *p.PDFUploaded
	}
}

// RidePatch is a partial update to a ride draft.
type RidePatch struct {
	FromID       *string `json:"from_id"`
	ToID         *string `json:"to_id"`
	RideID       *string `json:"ride_id"`
	Passengers   *int    `json:"passengers"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
}

func (p RidePatch) apply(draft *models.RideDraft) {
	if p.FromID != nil {
		draft.FromID = *p.FromID
	}
	if p.ToID != nil {
		draft.ToID = *p.ToID
	}
	if p.RideID != nil {
		draft.RideID = *p.RideID
	}
	if p.Passengers != nil {
		draft.Passengers = *p.Passengers
		if draft.Passengers < 1 {
			draft.Passengers = 1
		}
	}
	if p.ContactName != nil {
		draft.ContactName = *p.ContactName
	}
	if p.ContactPhone != nil {
		draft.ContactPhone = *p.ContactPhone
	}
}
