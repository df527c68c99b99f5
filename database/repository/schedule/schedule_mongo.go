package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"beautycrave/config"
	"beautycrave/database"
	"beautycrave/models"
	"beautycrave/services/scheduling"
)

// ErrScheduleExists is returned when a schedule already covers the date.
var ErrScheduleExists = errors.New("a schedule for that date already exists")

// MongoScheduleRepo implements ScheduleRepository over a single "schedules"
// collection, one document per business day.
type MongoScheduleRepo struct {
	coll  *mongo.Collection
	hours scheduling.Hours
	rule  scheduling.PhoneRule
}

// NewMongoScheduleRepo constructs the repository and ensures its indexes.
func NewMongoScheduleRepo(hours scheduling.Hours, rule scheduling.PhoneRule) ScheduleRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("schedules")
	repo := &MongoScheduleRepo{coll: coll, hours: hours, rule: rule}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for the document keys: id, share token and
// date are each unique.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shareToken", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create persists a new schedule document.
func (r *MongoScheduleRepo) Create(ctx context.Context, schedule *models.DaySchedule) error {
	if _, err := r.coll.InsertOne(ctx, schedule); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrScheduleExists
		}
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// GetByID retrieves a schedule document by ID.
func (r *MongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.DaySchedule, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByToken retrieves a schedule document by its shareable link token.
func (r *MongoScheduleRepo) GetByToken(ctx context.Context, token string) (*models.DaySchedule, error) {
	return r.findOne(ctx, bson.M{"shareToken": token})
}

func (r *MongoScheduleRepo) findOne(ctx context.Context, filter bson.M) (*models.DaySchedule, error) {
	var schedule models.DaySchedule
	if err := r.coll.FindOne(ctx, filter).Decode(&schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, scheduling.NewBookingError(scheduling.CodeUnknownError, "schedule not found")
		}
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}
	return &schedule, nil
}

// ListAll returns every schedule ordered by date ascending.
func (r *MongoScheduleRepo) ListAll(ctx context.Context) ([]models.DaySchedule, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.DaySchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, nil
}
