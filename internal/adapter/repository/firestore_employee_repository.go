package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/logger"
)

const employeesCollection = "employees"

type firestoreEmployeeRepository struct {
	client *firestore.Client
}

func NewFirestoreEmployeeRepository(client *firestore.Client) repository.EmployeeRepository {
	return &firestoreEmployeeRepository{
		client: client,
	}
}

func (r *firestoreEmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	employee.CreatedAt = time.Now()

	_, err := r.client.Collection(employeesCollection).Doc(employee.ID).Set(ctx, employee)
	if err != nil {
		return errors.Internal("Failed to create employee", err)
	}

	return nil
}

func (r *firestoreEmployeeRepository) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	doc, err := r.client.Collection(employeesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Employee", err)
		}
		return nil, errors.Internal("Failed to get employee", err)
	}

	return r.docToEmployee(doc)
}

func (r *firestoreEmployeeRepository) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return r.getByField(ctx, "email", email)
}

func (r *firestoreEmployeeRepository) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	return r.getByField(ctx, "username", username)
}

func (r *firestoreEmployeeRepository) GetBySetupToken(ctx context.Context, token string) (*entity.Employee, error) {
	return r.getByField(ctx, "setupToken", token)
}

func (r *firestoreEmployeeRepository) getByField(ctx context.Context, field, value string) (*entity.Employee, error) {
	query := r.client.Collection(employeesCollection).Where(field, "==", value).Limit(1)

	doc, err := query.Documents(ctx).Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Employee", nil)
		}
		return nil, errors.Internal("Failed to query employee", err)
	}

	return r.docToEmployee(doc)
}

func (r *firestoreEmployeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	employee.UpdatedAt = time.Now()

	_, err := r.client.Collection(employeesCollection).Doc(employee.ID).Set(ctx, employee)
	if err != nil {
		return errors.Internal("Failed to update employee", err)
	}

	return nil
}

func (r *firestoreEmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(employeesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete employee", err)
	}

	return nil
}

func (r *firestoreEmployeeRepository) List(ctx context.Context, department string, limit, offset int) ([]*entity.Employee, int64, error) {
	query := r.client.Collection(employeesCollection).Query
	if department != "" {
		query = query.Where("department", "==", department)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while listing employees: %v", err)
		return nil, 0, errors.Internal("Failed to list employees", err)
	}

	total := int64(len(allDocs))

	// Pagination applied in-memory; employee counts are small for this product.
	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var employees []*entity.Employee
	for _, doc := range allDocs[start:end] {
		employee, err := r.docToEmployee(doc)
		if err != nil {
			continue // Skip malformed documents
		}
		employees = append(employees, employee)
	}

	return employees, total, nil
}

func (r *firestoreEmployeeRepository) docToEmployee(doc *firestore.DocumentSnapshot) (*entity.Employee, error) {
	var employee entity.Employee
	if err := doc.DataTo(&employee); err != nil {
		return nil, errors.Internal("Failed to parse employee data", err)
	}
	employee.ID = doc.Ref.ID
	return &employee, nil
}
