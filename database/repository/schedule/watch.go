package scheduleRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"beautycrave/models"
	"beautycrave/utils"
)

// Watch opens a change stream over the schedules collection and emits
// (before, after) document pairs for every update. The notification
// pipeline diffs the pair to spot newly booked slots. Pre-images require
// the collection to be created with changeStreamPreAndPostImages enabled;
// without them Before is nil and the diff treats every booked primary as new.
func (r *MongoScheduleRepo) Watch(ctx context.Context) (<-chan ScheduleChange, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"update", "replace"}},
		}}},
	}
	opts := options.ChangeStream().
		SetFullDocument(options.UpdateLookup).
		SetFullDocumentBeforeChange(options.WhenAvailable)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule change stream: %w", err)
	}

	out := make(chan ScheduleChange)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		logger := utils.GetLogger().Sugar()

		for stream.Next(ctx) {
			var event struct {
				FullDocument             *models.DaySchedule `bson:"fullDocument"`
				FullDocumentBeforeChange *models.DaySchedule `bson:"fullDocumentBeforeChange"`
			}
			if err := stream.Decode(&event); err != nil {
				logger.Warnf("schedule watch: failed to decode change event: %v", err)
				continue
			}
			if event.FullDocument == nil {
				continue
			}
			select {
			case out <- ScheduleChange{Before: event.FullDocumentBeforeChange, After: event.FullDocument}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Errorf("schedule watch: change stream ended: %v", err)
		}
	}()

	return out, nil
}
