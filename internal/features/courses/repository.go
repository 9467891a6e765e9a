package courses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/debanjo31/uLearnApi/internal/pkg/logger"
	apperrors "github.com/debanjo31/uLearnApi/pkg/errors"
)

// Repository handles database interactions for the courses feature. It
// also reads the users and sections collections to resolve relations on
// read, keeping the data-access boundary in one place.
type Repository struct {
	coursesCollection  *mongo.Collection
	usersCollection    *mongo.Collection
	sectionsCollection *mongo.Collection
}

// ListOptions captures the filter, sort and page of a course listing.
type ListOptions struct {
	Category  string
	Level     string
	Status    string
	Search    string
	SortBy    string
	SortOrder string
	Offset    int
	Limit     int
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	coursesCollection := db.Collection("courses")

	_, err := coursesCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "instructorId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}, {Key: "level", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			// Text index backing the search filter
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().
				SetWeights(bson.D{
					{Key: "title", Value: 10},
					{Key: "description", Value: 1},
				}).
				SetName("course_text_search"),
		},
	})
	if err != nil {
		logger.Warn("failed to create course indexes: %v", err)
	}

	return &Repository{
		coursesCollection:  coursesCollection,
		usersCollection:    db.Collection("users"),
		sectionsCollection: db.Collection("sections"),
	}
}

// Create inserts a new course owned by its instructor
func (r *Repository) Create(ctx context.Context, course *Course) error {
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	if course.Status == "" {
		course.Status = StatusDraft
	}

	result, err := r.coursesCollection.InsertOne(ctx, course)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}

	return nil
}

// GetByID finds a course by its ID
func (r *Repository) GetByID(ctx context.Context, courseID string) (*Course, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid course id", apperrors.ErrBadRequest)
	}

	var course Course
	err = r.coursesCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: course not found", apperrors.ErrNotFound)
		}
		return nil, err
	}

	return &course, nil
}

// List returns a filtered, sorted page of courses plus the total count
func (r *Repository) List(ctx context.Context, opts ListOptions) ([]Course, int64, error) {
	filter := bson.M{}

	// Listings only surface published courses unless a status filter is
	// given explicitly.
	if opts.Status != "" {
		filter["status"] = opts.Status
	} else {
		filter["status"] = StatusPublished
	}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Search != "" {
		filter["$text"] = bson.M{"$search": opts.Search}
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: SortField(opts.SortBy), Value: SortDirection(opts.SortOrder)}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cursor, err := r.coursesCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var courses []Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, err
	}
	if courses == nil {
		courses = []Course{}
	}

	total, err := r.coursesCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// ListByInstructor returns a page of an instructor's courses in every
// status, newest first.
func (r *Repository) ListByInstructor(ctx context.Context, instructorID primitive.ObjectID, offset, limit int) ([]Course, int64, error) {
	filter := bson.M{"instructorId": instructorID}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coursesCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var courses []Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, err
	}
	if courses == nil {
		courses = []Course{}
	}

	total, err := r.coursesCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Update applies a patch to a course
func (r *Repository) Update(ctx context.Context, courseID primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now()

	result, err := r.coursesCollection.UpdateOne(ctx, bson.M{"_id": courseID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: course not found", apperrors.ErrNotFound)
	}

	return nil
}

// Delete removes a course document
func (r *Repository) Delete(ctx context.Context, courseID primitive.ObjectID) error {
	result, err := r.coursesCollection.DeleteOne(ctx, bson.M{"_id": courseID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: course not found", apperrors.ErrNotFound)
	}

	return nil
}

// ResolveInstructor fetches the owning user's public summary
func (r *Repository) ResolveInstructor(ctx context.Context, instructorID primitive.ObjectID) (*InstructorSummary, error) {
	var summary InstructorSummary
	err := r.usersCollection.FindOne(ctx, bson.M{"_id": instructorID}).Decode(&summary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

// GetCourseSections fetches the course's sections sorted by order
func (r *Repository) GetCourseSections(ctx context.Context, courseID primitive.ObjectID) ([]SectionSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.sectionsCollection.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sections []SectionSummary
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []SectionSummary{}
	}

	return sections, nil
}

// InstructorStats aggregates counts, enrollments, rating and revenue over
// the instructor's courses.
func (r *Repository) InstructorStats(ctx context.Context, instructorID primitive.ObjectID) (*InstructorStats, error) {
	statusCount := func(status string) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$status", status}}, 1, 0,
		}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"instructorId": instructorID}}},
		{{Key: "$group", Value: bson.M{
			"_id":                nil,
			"totalCourses":       bson.M{"$sum": 1},
			"publishedCourses":   statusCount(StatusPublished),
			"draftCourses":       statusCount(StatusDraft),
			"unpublishedCourses": statusCount(StatusUnpublished),
			"totalEnrollments":   bson.M{"$sum": "$enrollmentCount"},
			"averageRating":      bson.M{"$avg": "$rating"},
			"totalRevenue": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$price", "$enrollmentCount"},
			}},
		}}},
	}

	cursor, err := r.coursesCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []InstructorStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	// No courses yet: every stat is zero
	if len(results) == 0 {
		return &InstructorStats{}, nil
	}

	return &results[0], nil
}
