package repository

import (
	"context"

	"petstay/internal/domain/reservation"
	"petstay/internal/infra"
	"petstay/internal/infra/db"
	"petstay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const insertReservationSQL = `
INSERT INTO reservations (
	id, customer_id, start_date, end_date, nights,
	subtotal_cents, discount_cents, discount_source, coupon_id,
	status, note, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	quote := res.PriceQuote()
	stay := res.Stay()

	_, err := r.db.Exec(ctx, insertReservationSQL,
		res.ID(), res.CustomerID(), stay.Start(), stay.End(), quote.Nights,
		quote.Subtotal.Cents(), res.Discount().Cents(), string(res.DiscountSource()), res.CouponID(),
		int(res.Status()), res.Note().String(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	if err := r.insertPets(ctx, res); err != nil {
		return err
	}
	return r.insertPendingHistory(ctx, res)
}

const selectReservationForUpdateSQL = `
SELECT customer_id, start_date, end_date, nights,
       subtotal_cents, discount_cents, discount_source, coupon_id,
       status, note, proof_ref, proof_note, proof_submitted_at,
       created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, selectReservationForUpdateSQL, id)

	var rec reservationRecord
	err := row.Scan(
		&rec.CustomerID, &rec.StartDate, &rec.EndDate, &rec.Nights,
		&rec.SubtotalCents, &rec.DiscountCents, &rec.DiscountSource, &rec.CouponID,
		&rec.Status, &rec.Note, &rec.ProofRef, &rec.ProofNote, &rec.ProofSubmittedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	rec.ID = id

	pets, charges, err := r.loadPets(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := r.loadHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	return rec.toDomain(pets, charges, history), nil
}

const updateReservationSQL = `
UPDATE reservations SET
	start_date = $2, end_date = $3, nights = $4,
	subtotal_cents = $5, discount_cents = $6, discount_source = $7, coupon_id = $8,
	status = $9, note = $10, proof_ref = $11, proof_note = $12, proof_submitted_at = $13,
	updated_at = $14
WHERE id = $1`

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	quote := res.PriceQuote()
	stay := res.Stay()

	var proofRef, proofNote *string
	var proofSubmittedAt any
	if proof := res.Proof(); proof != nil {
		ref, note := proof.ArtifactRef(), proof.Note()
		proofRef, proofNote = &ref, &note
		proofSubmittedAt = proof.SubmittedAt()
	}

	tag, err := r.db.Exec(ctx, updateReservationSQL,
		res.ID(), stay.Start(), stay.End(), quote.Nights,
		quote.Subtotal.Cents(), res.Discount().Cents(), string(res.DiscountSource()), res.CouponID(),
		int(res.Status()), res.Note().String(), proofRef, proofNote, proofSubmittedAt,
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found on save", nil, infra.KindNotFound)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM reservation_pets WHERE reservation_id = $1`, res.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear reservation pets", err)
	}
	if err := r.insertPets(ctx, res); err != nil {
		return err
	}
	return r.insertPendingHistory(ctx, res)
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found on delete", nil, infra.KindNotFound)
	}
	return nil
}

const insertReservationPetSQL = `
INSERT INTO reservation_pets (reservation_id, pet_id, pet_name, amount_cents, position)
VALUES ($1, $2, $3, $4, $5)`

func (r *ReservationRepository) insertPets(ctx context.Context, res *reservation.Reservation) error {
	for i, charge := range res.PriceQuote().PerPet {
		_, err := r.db.Exec(ctx, insertReservationPetSQL,
			res.ID(), charge.Pet.ID(), charge.Pet.Name(), charge.Amount.Cents(), i,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert reservation pet", err)
		}
	}
	return nil
}

const insertHistorySQL = `
INSERT INTO reservation_history (reservation_id, status, actor_id, recorded_at)
VALUES ($1, $2, $3, $4)`

func (r *ReservationRepository) insertPendingHistory(ctx context.Context, res *reservation.Reservation) error {
	for _, entry := range res.PendingHistory() {
		_, err := r.db.Exec(ctx, insertHistorySQL,
			res.ID(), int(entry.Status), entry.ActorID, entry.RecordedAt,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert reservation history", err)
		}
	}
	return nil
}

func (r *ReservationRepository) loadPets(ctx context.Context, id uuid.UUID) ([]reservation.PetRef, []reservation.PetCharge, error) {
	rows, err := r.db.Query(ctx,
		`SELECT pet_id, pet_name, amount_cents FROM reservation_pets WHERE reservation_id = $1 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to load reservation pets", err)
	}
	defer rows.Close()

	var pets []reservation.PetRef
	var charges []reservation.PetCharge
	for rows.Next() {
		var petID uuid.UUID
		var name string
		var amountCents int64
		if err := rows.Scan(&petID, &name, &amountCents); err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan reservation pet", err)
		}
		ref := reservation.NewPetRef(petID, name)
		pets = append(pets, ref)
		charges = append(charges, reservation.PetCharge{Pet: ref, Amount: reservation.MoneyFromCents(amountCents)})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate reservation pets", err)
	}
	return pets, charges, nil
}

func (r *ReservationRepository) loadHistory(ctx context.Context, id uuid.UUID) ([]reservation.HistoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, actor_id, recorded_at FROM reservation_history WHERE reservation_id = $1 ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation history", err)
	}
	defer rows.Close()

	var history []reservation.HistoryEntry
	for rows.Next() {
		var status int
		var entry reservation.HistoryEntry
		if err := rows.Scan(&status, &entry.ActorID, &entry.RecordedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation history", err)
		}
		entry.Status = reservation.Status(status)
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation history", err)
	}
	return history, nil
}
