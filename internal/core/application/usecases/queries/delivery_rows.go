// Package queries contains read-only operations against the database.
// Queries bypass the aggregates and read projection rows directly; they never
// modify state and never hold a transaction open.
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryItemResponse is one snapshotted order line.
type DeliveryItemResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// DriverResponse identifies the driver bound to a delivery.
type DriverResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Mobile string    `json:"mobile"`
}

// DeliveryResponse is the read model of one delivery as shown in listings
// and detail views.
type DeliveryResponse struct {
	ID                  uuid.UUID              `json:"id"`
	CustomerID          uuid.UUID              `json:"customerId"`
	ShopID              uuid.UUID              `json:"shopId"`
	ShopName            string                 `json:"shopName"`
	ShopAddress         string                 `json:"shopAddress"`
	ItemDescription     string                 `json:"itemDescription"`
	Items               []DeliveryItemResponse `json:"items"`
	ContactNumber       string                 `json:"contactNumber"`
	Village             string                 `json:"village"`
	EstimatedDistanceKm *float64               `json:"estimatedDistanceKm,omitempty"`
	NeedBy              *time.Time             `json:"needByAt,omitempty"`
	ProductTotal        decimal.Decimal        `json:"productTotal"`
	DeliveryFee         decimal.Decimal        `json:"deliveryFee"`
	GrandTotal          decimal.Decimal        `json:"grandTotal"`
	Status              string                 `json:"status"`
	ConfirmationStatus  string                 `json:"confirmationStatus"`
	ConfirmationNote    string                 `json:"confirmationNote,omitempty"`
	ConfirmedAt         *time.Time             `json:"confirmedAt,omitempty"`
	AssignedDriver      *DriverResponse        `json:"assignedDriver,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
}

// deliverySelect is the shared projection for delivery listings. Driver
// details come from a join on users so listings need no extra lookups.
const deliverySelect = `
	SELECT
		d.id,
		d.customer_id,
		d.shop_id,
		d.shop_name,
		d.shop_address,
		d.item_description,
		d.contact_number,
		d.village,
		d.estimated_distance_km,
		d.need_by,
		d.product_total,
		d.delivery_fee,
		d.grand_total,
		d.status,
		d.confirmation_status,
		d.confirmation_note,
		d.confirmed_at,
		d.created_at,
		u.id,
		u.name,
		u.mobile
	FROM deliveries d
	LEFT JOIN users u ON u.id = d.assigned_driver_id
`

func scanDeliveryRows(rows *sql.Rows) ([]DeliveryResponse, error) {
	deliveries := make([]DeliveryResponse, 0)

	for rows.Next() {
		var resp DeliveryResponse
		var note sql.NullString
		var driverID uuid.NullUUID
		var driverName, driverMobile sql.NullString

		err := rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.ShopID,
			&resp.ShopName,
			&resp.ShopAddress,
			&resp.ItemDescription,
			&resp.ContactNumber,
			&resp.Village,
			&resp.EstimatedDistanceKm,
			&resp.NeedBy,
			&resp.ProductTotal,
			&resp.DeliveryFee,
			&resp.GrandTotal,
			&resp.Status,
			&resp.ConfirmationStatus,
			&note,
			&resp.ConfirmedAt,
			&resp.CreatedAt,
			&driverID,
			&driverName,
			&driverMobile,
		)
		if err != nil {
			return nil, err
		}

		resp.ConfirmationNote = note.String
		if driverID.Valid {
			resp.AssignedDriver = &DriverResponse{
				ID:     driverID.UUID,
				Name:   driverName.String,
				Mobile: driverMobile.String,
			}
		}

		deliveries = append(deliveries, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// attachItems loads the item snapshots for every listed delivery in one query
// and groups them onto the responses.
func attachItems(ctx context.Context, db *gorm.DB, deliveries []DeliveryResponse) error {
	if len(deliveries) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(deliveries))
	index := make(map[uuid.UUID]*DeliveryResponse, len(deliveries))
	for i := range deliveries {
		ids = append(ids, deliveries[i].ID)
		index[deliveries[i].ID] = &deliveries[i]
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			delivery_id,
			product_id,
			name,
			quantity,
			unit_price
		FROM delivery_items
		WHERE delivery_id IN ?
		ORDER BY delivery_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var deliveryID uuid.UUID
		var item DeliveryItemResponse

		if err = rows.Scan(&deliveryID, &item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}

		if resp, ok := index[deliveryID]; ok {
			resp.Items = append(resp.Items, item)
		}
	}

	return rows.Err()
}
