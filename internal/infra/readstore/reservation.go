package readstore

import (
	"context"

	"petstay/internal/domain/reservation"
	"petstay/internal/infra"
	"petstay/internal/infra/db"
	"petstay/internal/pkg/pgconv"
	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSQL = `
SELECT r.id, r.customer_id, u.name, r.start_date, r.end_date, r.nights, r.status,
       r.subtotal_cents, r.discount_cents, r.discount_source, r.coupon_id, c.code,
       r.note, r.proof_ref, r.proof_note,
       r.created_at, r.updated_at
FROM reservations r
JOIN users u ON u.id = r.customer_id
LEFT JOIN coupons c ON c.id = r.coupon_id
WHERE r.id = $1`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewSQL, id)

	var view queries.ReservationView
	var status int
	var note string
	err := row.Scan(
		&view.ID, &view.CustomerID, &view.CustomerName,
		&view.StartDate, &view.EndDate, &view.Nights, &status,
		&view.SubtotalCents, &view.DiscountCents, &view.DiscountSource,
		&view.CouponID, &view.CouponCode,
		&note, &view.ProofRef, &view.ProofNote,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}

	view.Status = reservation.Status(status).String()
	if note != "" {
		view.Note = &note
	}
	view.TotalCents = view.SubtotalCents - view.DiscountCents
	if view.TotalCents < 0 {
		view.TotalCents = 0
	}

	pets, err := s.loadPets(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Pets = pets

	history, err := s.loadHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	view.History = history

	return &view, nil
}

const reservationListSQL = `
SELECT r.id, r.customer_id, u.name,
       (SELECT count(*) FROM reservation_pets p WHERE p.reservation_id = r.id),
       r.start_date, r.end_date, r.status,
       r.subtotal_cents, r.discount_cents, r.created_at
FROM reservations r
JOIN users u ON u.id = r.customer_id`

func (s *ReservationReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx,
		reservationListSQL+` WHERE r.customer_id = $1 ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`,
		customerID, limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}
	return scanListItems(rows)
}

func (s *ReservationReadStore) FindAll(ctx context.Context, status *string, limit, offset int32) ([]*queries.ReservationListItem, error) {
	if status != nil {
		code, ok := statusCode(*status)
		if !ok {
			return []*queries.ReservationListItem{}, nil
		}
		rows, err := s.db.Query(ctx,
			reservationListSQL+` WHERE r.status = $1 ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`,
			code, limit, offset,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list reservations by status", err)
		}
		return scanListItems(rows)
	}

	rows, err := s.db.Query(ctx,
		reservationListSQL+` ORDER BY r.created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return scanListItems(rows)
}

func (s *ReservationReadStore) loadPets(ctx context.Context, id uuid.UUID) ([]queries.PetView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT pet_id, pet_name, amount_cents FROM reservation_pets WHERE reservation_id = $1 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation pet views", err)
	}
	defer rows.Close()

	var pets []queries.PetView
	for rows.Next() {
		var p queries.PetView
		if err := rows.Scan(&p.ID, &p.Name, &p.AmountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation pet view", err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation pet views", err)
	}
	return pets, nil
}

func (s *ReservationReadStore) loadHistory(ctx context.Context, id uuid.UUID) ([]queries.HistoryEntryView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT h.status, h.actor_id, a.name, h.recorded_at
		 FROM reservation_history h
		 JOIN users a ON a.id = h.actor_id
		 WHERE h.reservation_id = $1
		 ORDER BY h.id`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation history views", err)
	}
	defer rows.Close()

	var history []queries.HistoryEntryView
	for rows.Next() {
		var entry queries.HistoryEntryView
		var status int
		if err := rows.Scan(&status, &entry.ActorID, &entry.ActorName, &entry.RecordedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation history view", err)
		}
		entry.Status = reservation.Status(status).String()
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation history views", err)
	}
	return history, nil
}

type listRows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

func scanListItems(rows listRows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		var status int
		var subtotalCents int64
		err := rows.Scan(
			&item.ID, &item.CustomerID, &item.CustomerName, &item.PetCount,
			&item.StartDate, &item.EndDate, &status,
			&subtotalCents, &item.DiscountCents, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		item.Status = reservation.Status(status).String()
		item.TotalCents = subtotalCents - item.DiscountCents
		if item.TotalCents < 0 {
			item.TotalCents = 0
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation list items", err)
	}
	return items, nil
}

func statusCode(name string) (int, bool) {
	for code := reservation.StatusCreated; code <= reservation.StatusCancelled; code++ {
		if code.String() == name {
			return int(code), true
		}
	}
	return 0, false
}
