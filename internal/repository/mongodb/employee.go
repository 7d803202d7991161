package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type employeeDocument struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	EmpID      string        `bson:"emp_id"`
	Name       string        `bson:"name"`
	Department string        `bson:"department"`
	ShiftStart string        `bson:"shift_start"`
	ShiftEnd   string        `bson:"shift_end"`
	CreatedAt  *time.Time    `bson:"created_at,omitempty"`
}

func (d employeeDocument) toEntity() employee.Employee {
	return employee.Employee{
		ID:         d.ID.Hex(),
		EmpID:      d.EmpID,
		Name:       d.Name,
		Department: d.Department,
		ShiftStart: d.ShiftStart,
		ShiftEnd:   d.ShiftEnd,
		CreatedAt:  d.CreatedAt,
	}
}

var employeeProjection = bson.M{"name": 1, "emp_id": 1, "department": 1, "shift_start": 1, "shift_end": 1, "created_at": 1}

type employeeRepository struct {
	users *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) employee.EmployeeRepository {
	return &employeeRepository{users: db.Collection(collectionUsers)}
}

func (r *employeeRepository) findOne(ctx context.Context, filter bson.M) (employee.Employee, error) {
	var doc employeeDocument
	err := r.users.FindOne(ctx, filter, options.FindOne().SetProjection(employeeProjection)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("find employee: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *employeeRepository) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"emp_id": empID})
}

func employeeListFilter(filter employee.EmployeeFilter) bson.M {
	query := bson.M{}
	if filter.EmpID != nil {
		query["emp_id"] = *filter.EmpID
	}
	return query
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	cursor, err := r.users.Find(ctx, employeeListFilter(filter), options.Find().SetProjection(employeeProjection))
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]employee.Employee, len(docs))
	for i, d := range docs {
		employees[i] = d.toEntity()
	}
	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if e.EmpID != "" {
		count, err := r.users.CountDocuments(ctx, bson.M{"emp_id": e.EmpID})
		if err != nil {
			return employee.Employee{}, fmt.Errorf("count employees: %w", err)
		}
		if count > 0 {
			return employee.Employee{}, employee.ErrEmpIDExists
		}
	}
	if e.CreatedAt == nil {
		now := time.Now().UTC()
		e.CreatedAt = &now
	}

	doc := employeeDocument{
		EmpID:      e.EmpID,
		Name:       e.Name,
		Department: e.Department,
		ShiftStart: e.ShiftStart,
		ShiftEnd:   e.ShiftEnd,
		CreatedAt:  e.CreatedAt,
	}
	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	doc.ID = res.InsertedID.(bson.ObjectID)
	return doc.toEntity(), nil
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	oid, ok := parseObjectID(e.ID)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        e.Name,
		"department":  e.Department,
		"shift_start": e.ShiftStart,
		"shift_end":   e.ShiftEnd,
	}}

	var doc employeeDocument
	err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(employeeProjection),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return employee.ErrEmployeeNotFound
	}

	res, err := r.users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
