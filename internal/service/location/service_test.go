package location

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

// fakeLocationRepo is an in-memory last-writer-wins store.
type fakeLocationRepo struct {
	records map[uuid.UUID]models.DriverLocation
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{records: map[uuid.UUID]models.DriverLocation{}}
}

func (f *fakeLocationRepo) Upsert(_ context.Context, driverID uuid.UUID, lat, lng float64) (models.DriverLocation, error) {
	loc := models.DriverLocation{
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lng,
		UpdatedAt: time.Now(),
	}
	f.records[driverID] = loc
	return loc, nil
}

func (f *fakeLocationRepo) GetByDriver(_ context.Context, driverID uuid.UUID) (models.DriverLocation, error) {
	loc, ok := f.records[driverID]
	if !ok {
		return models.DriverLocation{}, types.ErrNoLocation
	}
	return loc, nil
}

func (f *fakeLocationRepo) ListDrivers(_ context.Context) ([]models.DriverWithLocation, error) {
	return []models.DriverWithLocation{}, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) AssignDriver(_ context.Context, studentID, driverID uuid.UUID) error {
	u, ok := f.users[studentID]
	if !ok {
		return types.ErrUserNotFound
	}
	u.AssignedDriverID = &driverID
	return nil
}

type capturingPublisher struct {
	events []models.LocationUpdatedEvent
}

func (p *capturingPublisher) PublishLocationUpdate(_ context.Context, e models.LocationUpdatedEvent) error {
	p.events = append(p.events, e)
	return nil
}

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(users ...*models.User) (*Service, *fakeLocationRepo, *capturingPublisher) {
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
	for _, u := range users {
		userRepo.users[u.ID] = u
	}
	locRepo := newFakeLocationRepo()
	pub := &capturingPublisher{}
	s := New(locRepo, userRepo, pub, passthroughTxManager{}, logger.InitLogger("test", logger.LevelError))
	return s, locRepo, pub
}

func driverUser() *models.User {
	return &models.User{ID: uuid.New(), Name: "Ravi", Email: "ravi@campus.edu", Role: types.RoleDriver}
}

func studentUser() *models.User {
	return &models.User{ID: uuid.New(), Name: "Asha", Email: "asha@campus.edu", Role: types.RoleStudent}
}

func TestUpdateLocation_RoundTrip(t *testing.T) {
	driver := driverUser()
	s, _, pub := newTestService(driver)
	ctx := context.Background()

	before := time.Now()
	got, err := s.UpdateLocation(ctx, driver, 17.447, 78.349)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.Latitude != 17.447 || got.Longitude != 78.349 {
		t.Fatalf("stored coordinates mismatch: %+v", got)
	}
	if got.UpdatedAt.Before(before) {
		t.Fatalf("updated_at %v predates the call at %v", got.UpdatedAt, before)
	}

	queried, err := s.GetDriverLocation(ctx, driver.ID)
	if err != nil {
		t.Fatalf("query after update failed: %v", err)
	}
	if queried.Location == nil {
		t.Fatalf("expected a location after update")
	}
	if queried.Location.Latitude != 17.447 || queried.Location.Longitude != 78.349 {
		t.Fatalf("queried coordinates mismatch: %+v", queried.Location)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.events))
	}
}

func TestUpdateLocation_OutOfRange(t *testing.T) {
	driver := driverUser()
	s, repo, _ := newTestService(driver)
	ctx := context.Background()

	cases := []struct{ lat, lng float64 }{
		{91, 0},
		{-90.0001, 0},
		{0, 181},
		{0, -180.5},
	}
	for _, c := range cases {
		if _, err := s.UpdateLocation(ctx, driver, c.lat, c.lng); !errors.Is(err, types.ErrOutOfRange) {
			t.Fatalf("(%v,%v): expected ErrOutOfRange, got %v", c.lat, c.lng, err)
		}
	}

	// Store must be untouched after rejected reports.
	if len(repo.records) != 0 {
		t.Fatalf("store changed by rejected updates: %v", repo.records)
	}
}

func TestUpdateLocation_BoundaryCoordinatesAccepted(t *testing.T) {
	driver := driverUser()
	s, _, _ := newTestService(driver)

	for _, c := range []struct{ lat, lng float64 }{{90, 180}, {-90, -180}, {0, 0}} {
		if _, err := s.UpdateLocation(context.Background(), driver, c.lat, c.lng); err != nil {
			t.Fatalf("(%v,%v): expected acceptance, got %v", c.lat, c.lng, err)
		}
	}
}

func TestUpdateLocation_SecondWriteWins(t *testing.T) {
	driver := driverUser()
	s, _, _ := newTestService(driver)
	ctx := context.Background()

	if _, err := s.UpdateLocation(ctx, driver, 10, 20); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if _, err := s.UpdateLocation(ctx, driver, 30, 40); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	got, err := s.GetDriverLocation(ctx, driver.ID)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if got.Location.Latitude != 30 || got.Location.Longitude != 40 {
		t.Fatalf("expected the second write only, got %+v", got.Location)
	}
}

func TestUpdateLocation_StudentForbidden(t *testing.T) {
	student := studentUser()
	s, repo, _ := newTestService(student)

	if _, err := s.UpdateLocation(context.Background(), student, 10, 20); !errors.Is(err, types.ErrNotDriver) {
		t.Fatalf("expected ErrNotDriver, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("store changed by forbidden update")
	}
}

func TestGetDriverLocation_NeverReported(t *testing.T) {
	driver := driverUser()
	s, _, _ := newTestService(driver)

	got, err := s.GetDriverLocation(context.Background(), driver.ID)
	if !errors.Is(err, types.ErrNoLocation) {
		t.Fatalf("expected ErrNoLocation, got %v", err)
	}
	// Identity is still resolved so the handler can report who has no location.
	if got == nil || got.ID != driver.ID {
		t.Fatalf("expected driver identity alongside ErrNoLocation")
	}
}

func TestGetDriverLocation_StudentIdentityIsNotFound(t *testing.T) {
	student := studentUser()
	s, _, _ := newTestService(student)

	if _, err := s.GetDriverLocation(context.Background(), student.ID); !errors.Is(err, types.ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound for a student identity, got %v", err)
	}
}

func TestGetDriverLocation_UnknownDriver(t *testing.T) {
	s, _, _ := newTestService()

	if _, err := s.GetDriverLocation(context.Background(), uuid.New()); !errors.Is(err, types.ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestAssignDriver_OverwritesPriorAssignment(t *testing.T) {
	student := studentUser()
	driverA := driverUser()
	driverB := driverUser()
	s, _, _ := newTestService(student, driverA, driverB)
	ctx := context.Background()

	if _, err := s.AssignDriver(ctx, student, driverA.ID); err != nil {
		t.Fatalf("first assignment failed: %v", err)
	}
	if _, err := s.AssignDriver(ctx, student, driverB.ID); err != nil {
		t.Fatalf("reassignment failed: %v", err)
	}
	if student.AssignedDriverID == nil || *student.AssignedDriverID != driverB.ID {
		t.Fatalf("expected assignment to point at driver B")
	}
}

func TestAssignDriver_TargetMustBeDriver(t *testing.T) {
	student := studentUser()
	otherStudent := studentUser()
	s, _, _ := newTestService(student, otherStudent)

	if _, err := s.AssignDriver(context.Background(), student, otherStudent.ID); !errors.Is(err, types.ErrAssignTargetNotDriver) {
		t.Fatalf("expected ErrAssignTargetNotDriver, got %v", err)
	}
}

func TestAssignDriver_DriverCallerRejected(t *testing.T) {
	driver := driverUser()
	other := driverUser()
	s, _, _ := newTestService(driver, other)

	if _, err := s.AssignDriver(context.Background(), driver, other.ID); !errors.Is(err, types.ErrNotStudent) {
		t.Fatalf("expected ErrNotStudent, got %v", err)
	}
}
