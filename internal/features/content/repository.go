package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/debanjo31/uLearnApi/internal/database"
	"github.com/debanjo31/uLearnApi/internal/pkg/logger"
	apperrors "github.com/debanjo31/uLearnApi/pkg/errors"
)

// Repository handles database interactions for the content hierarchy:
// sections within a course and modules within a section. Order-uniqueness
// per parent is enforced twice: a pre-check for a friendly error, and a
// unique compound index as the authority under concurrent writes.
type Repository struct {
	db                 *mongo.Database
	sectionsCollection *mongo.Collection
	modulesCollection  *mongo.Collection
	coursesCollection  *mongo.Collection
}

// CourseRef is the slice of a course the hierarchy needs for
// authorization.
type CourseRef struct {
	ID           primitive.ObjectID `bson:"_id"`
	InstructorID primitive.ObjectID `bson:"instructorId"`
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	sectionsCollection := db.Collection("sections")
	modulesCollection := db.Collection("modules")

	_, err := sectionsCollection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "courseId", Value: 1}, {Key: "order", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("section_order_unique"),
	})
	if err != nil {
		logger.Warn("failed to create section indexes: %v", err)
	}

	_, err = modulesCollection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "sectionId", Value: 1}, {Key: "order", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("module_order_unique"),
	})
	if err != nil {
		logger.Warn("failed to create module indexes: %v", err)
	}

	return &Repository{
		db:                 db,
		sectionsCollection: sectionsCollection,
		modulesCollection:  modulesCollection,
		coursesCollection:  db.Collection("courses"),
	}
}

// GetCourseRef resolves the ancestor course for authorization
func (r *Repository) GetCourseRef(ctx context.Context, courseID string) (*CourseRef, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid course id", apperrors.ErrBadRequest)
	}

	var ref CourseRef
	err = r.coursesCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&ref)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: course not found", apperrors.ErrNotFound)
		}
		return nil, err
	}

	return &ref, nil
}

// ---------------------------------------------------------------- sections

// CreateSection inserts a section after checking the sibling orders. The
// unique index stays authoritative when two creates race past the check.
func (r *Repository) CreateSection(ctx context.Context, section *Section) error {
	count, err := r.sectionsCollection.CountDocuments(ctx, bson.M{
		"courseId": section.CourseID,
		"order":    section.Order,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: a section with order %d already exists", apperrors.ErrConflict, section.Order)
	}

	section.CreatedAt = time.Now()
	section.UpdatedAt = time.Now()

	result, err := r.sectionsCollection.InsertOne(ctx, section)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: a section with order %d already exists", apperrors.ErrConflict, section.Order)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		section.ID = oid
	}

	return nil
}

// GetSections returns the course's sections sorted ascending by order
func (r *Repository) GetSections(ctx context.Context, courseID primitive.ObjectID) ([]Section, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.sectionsCollection.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sections []Section
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []Section{}
	}

	return sections, nil
}

// GetSection returns one section scoped to its course. An id that exists
// under a different course resolves to not found rather than leaking the
// other course's section.
func (r *Repository) GetSection(ctx context.Context, courseID primitive.ObjectID, sectionID string) (*Section, error) {
	oid, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid section id", apperrors.ErrBadRequest)
	}

	var section Section
	err = r.sectionsCollection.FindOne(ctx, bson.M{"_id": oid, "courseId": courseID}).Decode(&section)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: section not found", apperrors.ErrNotFound)
		}
		return nil, err
	}

	return &section, nil
}

// GetSectionByID returns a section by id alone. Module operations use it
// to walk up to the owning course.
func (r *Repository) GetSectionByID(ctx context.Context, sectionID string) (*Section, error) {
	oid, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid section id", apperrors.ErrBadRequest)
	}

	var section Section
	err = r.sectionsCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&section)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: section not found", apperrors.ErrNotFound)
		}
		return nil, err
	}

	return &section, nil
}

// UpdateSection applies a patch to a section scoped to its course. A new
// order re-runs the uniqueness check excluding the section itself.
func (r *Repository) UpdateSection(ctx context.Context, courseID primitive.ObjectID, sectionID string, updates bson.M) (*Section, error) {
	oid, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid section id", apperrors.ErrBadRequest)
	}

	if newOrder, ok := updates["order"]; ok {
		count, err := r.sectionsCollection.CountDocuments(ctx, bson.M{
			"courseId": courseID,
			"order":    newOrder,
			"_id":      bson.M{"$ne": oid},
		})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: a section with order %v already exists", apperrors.ErrConflict, newOrder)
		}
	}

	updates["updatedAt"] = time.Now()

	var updated Section
	err = r.sectionsCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "courseId": courseID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: section not found", apperrors.ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: a section with that order already exists", apperrors.ErrConflict)
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteSectionCascade removes a section and all its modules in one
// transaction so a failure mid-delete cannot orphan modules.
func (r *Repository) DeleteSectionCascade(ctx context.Context, courseID primitive.ObjectID, sectionID string) error {
	oid, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return fmt.Errorf("%w: invalid section id", apperrors.ErrBadRequest)
	}

	return database.WithTransaction(ctx, r.db, func(sessCtx mongo.SessionContext) error {
		result, err := r.sectionsCollection.DeleteOne(sessCtx, bson.M{"_id": oid, "courseId": courseID})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return fmt.Errorf("%w: section not found", apperrors.ErrNotFound)
		}

		if _, err := r.modulesCollection.DeleteMany(sessCtx, bson.M{"sectionId": oid}); err != nil {
			return err
		}

		return nil
	})
}

// ReorderSections applies a batch of new section positions all-or-nothing.
// Every id must resolve within the course and the resulting order set must
// be duplicate free before anything is written; the writes then run in one
// transaction, parking moved sections at negative orders first so the
// unique index never trips on swaps.
func (r *Repository) ReorderSections(ctx context.Context, courseID primitive.ObjectID, pairs []SectionOrder) ([]Section, error) {
	siblings, err := r.GetSections(ctx, courseID)
	if err != nil {
		return nil, err
	}

	finalOrders := make(map[primitive.ObjectID]int, len(siblings))
	for _, s := range siblings {
		finalOrders[s.ID] = s.Order
	}

	moved := make([]primitive.ObjectID, 0, len(pairs))
	for _, pair := range pairs {
		oid, err := primitive.ObjectIDFromHex(pair.SectionID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid section id %s", apperrors.ErrBadRequest, pair.SectionID)
		}
		if _, ok := finalOrders[oid]; !ok {
			return nil, fmt.Errorf("%w: section %s not found in course", apperrors.ErrNotFound, pair.SectionID)
		}
		finalOrders[oid] = pair.Order
		moved = append(moved, oid)
	}

	if err := checkOrderSet(finalOrders); err != nil {
		return nil, err
	}

	now := time.Now()
	err = database.WithTransaction(ctx, r.db, func(sessCtx mongo.SessionContext) error {
		// Phase one: park every moved section at a distinct negative
		// order to free its slot.
		for i, oid := range moved {
			_, err := r.sectionsCollection.UpdateOne(sessCtx,
				bson.M{"_id": oid, "courseId": courseID},
				bson.M{"$set": bson.M{"order": -(i + 1)}},
			)
			if err != nil {
				return err
			}
		}

		// Phase two: set the final orders.
		for i, oid := range moved {
			_, err := r.sectionsCollection.UpdateOne(sessCtx,
				bson.M{"_id": oid, "courseId": courseID},
				bson.M{"$set": bson.M{"order": pairs[i].Order, "updatedAt": now}},
			)
			if err != nil {
				if mongo.IsDuplicateKeyError(err) {
					return fmt.Errorf("%w: reorder collides with an existing section order", apperrors.ErrConflict)
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetSections(ctx, courseID)
}

// ---------------------------------------------------------------- modules

// CreateModule inserts a module after checking the sibling orders
func (r *Repository) CreateModule(ctx context.Context, module *Module) error {
	count, err := r.modulesCollection.CountDocuments(ctx, bson.M{
		"sectionId": module.SectionID,
		"order":     module.Order,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: a module with order %d already exists", apperrors.ErrConflict, module.Order)
	}

	module.CreatedAt = time.Now()
	module.UpdatedAt = time.Now()

	result, err := r.modulesCollection.InsertOne(ctx, module)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: a module with order %d already exists", apperrors.ErrConflict, module.Order)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		module.ID = oid
	}

	return nil
}

// GetModules returns the section's modules sorted ascending by order
func (r *Repository) GetModules(ctx context.Context, sectionID primitive.ObjectID) ([]Module, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.modulesCollection.Find(ctx, bson.M{"sectionId": sectionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var modules []Module
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}
	if modules == nil {
		modules = []Module{}
	}

	return modules, nil
}

// GetModule returns one module scoped to its section
func (r *Repository) GetModule(ctx context.Context, sectionID primitive.ObjectID, moduleID string) (*Module, error) {
	oid, err := primitive.ObjectIDFromHex(moduleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid module id", apperrors.ErrBadRequest)
	}

	var module Module
	err = r.modulesCollection.FindOne(ctx, bson.M{"_id": oid, "sectionId": sectionID}).Decode(&module)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: module not found", apperrors.ErrNotFound)
		}
		return nil, err
	}

	return &module, nil
}

// UpdateModule applies a patch to a module scoped to its section
func (r *Repository) UpdateModule(ctx context.Context, sectionID primitive.ObjectID, moduleID string, updates bson.M) (*Module, error) {
	oid, err := primitive.ObjectIDFromHex(moduleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid module id", apperrors.ErrBadRequest)
	}

	if newOrder, ok := updates["order"]; ok {
		count, err := r.modulesCollection.CountDocuments(ctx, bson.M{
			"sectionId": sectionID,
			"order":     newOrder,
			"_id":       bson.M{"$ne": oid},
		})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: a module with order %v already exists", apperrors.ErrConflict, newOrder)
		}
	}

	updates["updatedAt"] = time.Now()

	var updated Module
	err = r.modulesCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "sectionId": sectionID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: module not found", apperrors.ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: a module with that order already exists", apperrors.ErrConflict)
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteModule removes one module scoped to its section
func (r *Repository) DeleteModule(ctx context.Context, sectionID primitive.ObjectID, moduleID string) error {
	oid, err := primitive.ObjectIDFromHex(moduleID)
	if err != nil {
		return fmt.Errorf("%w: invalid module id", apperrors.ErrBadRequest)
	}

	result, err := r.modulesCollection.DeleteOne(ctx, bson.M{"_id": oid, "sectionId": sectionID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: module not found", apperrors.ErrNotFound)
	}

	return nil
}

// ReorderModules applies a batch of new module positions all-or-nothing,
// mirroring ReorderSections.
func (r *Repository) ReorderModules(ctx context.Context, sectionID primitive.ObjectID, pairs []ModuleOrder) ([]Module, error) {
	siblings, err := r.GetModules(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	finalOrders := make(map[primitive.ObjectID]int, len(siblings))
	for _, m := range siblings {
		finalOrders[m.ID] = m.Order
	}

	moved := make([]primitive.ObjectID, 0, len(pairs))
	for _, pair := range pairs {
		oid, err := primitive.ObjectIDFromHex(pair.ModuleID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid module id %s", apperrors.ErrBadRequest, pair.ModuleID)
		}
		if _, ok := finalOrders[oid]; !ok {
			return nil, fmt.Errorf("%w: module %s not found in section", apperrors.ErrNotFound, pair.ModuleID)
		}
		finalOrders[oid] = pair.Order
		moved = append(moved, oid)
	}

	if err := checkOrderSet(finalOrders); err != nil {
		return nil, err
	}

	now := time.Now()
	err = database.WithTransaction(ctx, r.db, func(sessCtx mongo.SessionContext) error {
		for i, oid := range moved {
			_, err := r.modulesCollection.UpdateOne(sessCtx,
				bson.M{"_id": oid, "sectionId": sectionID},
				bson.M{"$set": bson.M{"order": -(i + 1)}},
			)
			if err != nil {
				return err
			}
		}

		for i, oid := range moved {
			_, err := r.modulesCollection.UpdateOne(sessCtx,
				bson.M{"_id": oid, "sectionId": sectionID},
				bson.M{"$set": bson.M{"order": pairs[i].Order, "updatedAt": now}},
			)
			if err != nil {
				if mongo.IsDuplicateKeyError(err) {
					return fmt.Errorf("%w: reorder collides with an existing module order", apperrors.ErrConflict)
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetModules(ctx, sectionID)
}

// checkOrderSet rejects a projected sibling ordering that contains a
// duplicate, before any write lands.
func checkOrderSet(finalOrders map[primitive.ObjectID]int) error {
	seen := make(map[int]bool, len(finalOrders))
	for _, order := range finalOrders {
		if seen[order] {
			return fmt.Errorf("%w: reorder would assign order %d to more than one sibling", apperrors.ErrConflict, order)
		}
		seen[order] = true
	}
	return nil
}
