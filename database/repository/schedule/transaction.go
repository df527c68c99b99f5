package scheduleRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"beautycrave/models"
	"beautycrave/services/scheduling"
)

// planFn re-validates the request against the freshly read document and
// returns the mutated schedule. Running it inside the transaction closes the
// race between the client-side availability check and the commit: two
// concurrent reservations of the same run serialize on the document, and the
// loser gets its occupancy error instead of a partial write.
type planFn func(s models.DaySchedule) (*models.DaySchedule, *scheduling.BookingError)

// Reserve books a run of slots inside one store transaction.
func (r *MongoScheduleRepo) Reserve(ctx context.Context, scheduleID, slotID string, customer models.Customer, services []models.Service) (*models.DaySchedule, error) {
	return r.mutateTransactionally(ctx, scheduleID, func(s models.DaySchedule) (*models.DaySchedule, *scheduling.BookingError) {
		plan, berr := scheduling.PlanReservation(s, slotID, customer, services, r.hours, r.rule)
		if berr != nil {
			return nil, berr
		}
		scheduling.ApplyReservation(&s, plan)
		return &s, nil
	})
}

// Cancel frees the booking anchored at slotID inside one store transaction.
func (r *MongoScheduleRepo) Cancel(ctx context.Context, scheduleID, slotID string) (*models.DaySchedule, error) {
	return r.mutateTransactionally(ctx, scheduleID, func(s models.DaySchedule) (*models.DaySchedule, *scheduling.BookingError) {
		plan, berr := scheduling.PlanCancellation(s, slotID, r.hours)
		if berr != nil {
			return nil, berr
		}
		scheduling.ApplyCancellation(&s, plan)
		return &s, nil
	})
}

// Rebook moves a booking to a new primary slot on the same schedule inside
// one store transaction, so the cancel half and the reserve half commit or
// abort together.
func (r *MongoScheduleRepo) Rebook(ctx context.Context, scheduleID, originalSlotID, newSlotID string, customer models.Customer, services []models.Service) (*models.DaySchedule, error) {
	return r.mutateTransactionally(ctx, scheduleID, func(s models.DaySchedule) (*models.DaySchedule, *scheduling.BookingError) {
		plan, berr := scheduling.PlanRebooking(s, originalSlotID, newSlotID, customer, services, r.hours, r.rule)
		if berr != nil {
			return nil, berr
		}
		scheduling.ApplyRebooking(&s, plan)
		return &s, nil
	})
}

func (r *MongoScheduleRepo) mutateTransactionally(ctx context.Context, scheduleID string, fn planFn) (*models.DaySchedule, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, scheduling.NetworkError(fmt.Errorf("could not start mongo session: %w", err))
	}
	defer sess.EndSession(ctx)

	var updated *models.DaySchedule
	txnFn := func(sc mongo.SessionContext) error {
		var current models.DaySchedule
		if err := r.coll.FindOne(sc, bson.M{"id": scheduleID}).Decode(&current); err != nil {
			if err == mongo.ErrNoDocuments {
				return scheduling.NewBookingError(scheduling.CodeUnknownError, "schedule %s not found", scheduleID)
			}
			return scheduling.NetworkError(fmt.Errorf("read inside transaction failed: %w", err))
		}

		next, berr := fn(current)
		if berr != nil {
			return berr
		}

		res, err := r.coll.UpdateOne(sc,
			bson.M{"id": scheduleID},
			bson.M{"$set": bson.M{"timeSlots": next.TimeSlots}},
		)
		if err != nil {
			return scheduling.NetworkError(fmt.Errorf("write inside transaction failed: %w", err))
		}
		if res.MatchedCount == 0 {
			return scheduling.NewBookingError(scheduling.CodeUnknownError, "schedule %s vanished mid-transaction", scheduleID)
		}
		updated = next
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return scheduling.NetworkError(err)
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if _, ok := scheduling.AsBookingError(err); ok {
			return nil, err
		}
		return nil, scheduling.NetworkError(fmt.Errorf("schedule transaction failed: %w", err))
	}

	return updated, nil
}
