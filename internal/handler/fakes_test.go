package handler_test

// In-memory store fakes backing the handler tests.  They enforce the
// same invariants as the SQL repositories (unique pairs, capacity,
// event status) and return the same sentinel errors, so the handlers
// can be exercised end to end through the real router without MySQL.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/config"
	"github.com/iliyamo/event-management/internal/handler"
	"github.com/iliyamo/event-management/internal/model"
	"github.com/iliyamo/event-management/internal/repository"
	"github.com/iliyamo/event-management/internal/router"
	"github.com/iliyamo/event-management/internal/utils"
)

const testSecret = "test-secret"

type memStore struct {
	mu sync.Mutex

	users      map[uint64]model.User
	admins     map[uint64]bool
	attendees  map[uint64]uint64 // userID -> attendeeID
	organizers map[uint64]uint64 // userID -> organizerID
	events     map[uint64]model.Event
	regs       []model.Registration
	employees  map[uint64]model.Employee
	assigns    []model.Assignment
	feedback   []model.Feedback
	notifs     []model.Notification
	openLogins map[uint64]int // userID -> open login records

	nextID uint64
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uint64]model.User{},
		admins:     map[uint64]bool{},
		attendees:  map[uint64]uint64{},
		organizers: map[uint64]uint64{},
		events:     map[uint64]model.Event{},
		employees:  map[uint64]model.Employee{},
		openLogins: map[uint64]int{},
	}
}

func (s *memStore) id() uint64 { s.nextID++; return s.nextID }

// ----- handler.UserStore -----

func (s *memStore) Create(ctx context.Context, name, email, password, phone, address string, cost int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	uid := s.id()
	s.users[uid] = model.User{ID: uid, Name: name, Email: email, PasswordHash: hash, Phone: phone, Address: address}
	s.attendees[uid] = s.id()
	return uid, nil
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *memStore) IsAdmin(ctx context.Context, userID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admins[userID], nil
}

// ----- handler.LoginStore -----

func (s *memStore) RecordLogin(ctx context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openLogins[userID]++
	return nil
}

func (s *memStore) CloseLatest(ctx context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openLogins[userID] > 0 {
		s.openLogins[userID]--
	}
	return nil
}

// ----- handler.OrganizerStore -----

func (s *memStore) EnsureOrganizer(ctx context.Context, userID uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.organizers[userID]; ok {
		return id, nil
	}
	id := s.id()
	s.organizers[userID] = id
	return id, nil
}

// ----- handler.EventStore -----

func (s *memStore) List(ctx context.Context) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Event{}
	for _, ev := range s.events {
		ev.CurrentAttendees = s.countRegsLocked(ev.ID)
		out = append(out, ev)
	}
	return out, nil
}

func (s *memStore) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return model.Event{}, repository.ErrEventNotFound
	}
	ev.CurrentAttendees = s.countRegsLocked(id)
	return ev, nil
}

func (s *memStore) CreateEvent(ctx context.Context, organizerID uint64, ev model.Event) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev.ID = s.id()
	ev.OrganizerID = organizerID
	s.events[ev.ID] = ev
	return ev.ID, nil
}

func (s *memStore) countRegsLocked(eventID uint64) int {
	n := 0
	for _, r := range s.regs {
		if r.EventID == eventID {
			n++
		}
	}
	return n
}

// ----- handler.RegistrationStore -----

func (s *memStore) Register(ctx context.Context, userID, eventID uint64) (uint64, model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attendeeID, ok := s.attendees[userID]
	if !ok {
		return 0, model.Event{}, repository.ErrNotAttendee
	}
	for _, r := range s.regs {
		if r.AttendeeID == attendeeID && r.EventID == eventID {
			return 0, model.Event{}, repository.ErrAlreadyRegistered
		}
	}
	ev, ok := s.events[eventID]
	if !ok {
		return 0, model.Event{}, repository.ErrEventNotFound
	}
	if s.countRegsLocked(eventID) >= ev.MaxAttendees {
		return 0, model.Event{}, repository.ErrEventFull
	}
	if ev.EventStatus == model.StatusCompleted || ev.EventStatus == model.StatusCancelled {
		return 0, model.Event{}, repository.ErrEventClosed
	}
	reg := model.Registration{
		ID:           s.id(),
		AttendeeID:   attendeeID,
		EventID:      eventID,
		RegisterDate: time.Now().UTC().Format("2006-01-02"),
	}
	s.regs = append(s.regs, reg)
	eid := eventID
	s.notifs = append(s.notifs, model.Notification{
		ID:        s.id(),
		UserID:    userID,
		EventID:   &eid,
		Message:   "You have successfully registered for " + ev.Title,
		CreatedAt: time.Now().UTC(),
	})
	ev.CurrentAttendees = s.countRegsLocked(eventID)
	return reg.ID, ev, nil
}

func (s *memStore) ListByUser(ctx context.Context, userID uint64) ([]model.UserRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attendeeID := s.attendees[userID]
	out := []model.UserRegistration{}
	for _, r := range s.regs {
		if r.AttendeeID == attendeeID {
			ev := s.events[r.EventID]
			ev.CurrentAttendees = s.countRegsLocked(r.EventID)
			out = append(out, model.UserRegistration{Registration: r, Event: ev})
		}
	}
	return out, nil
}

func (s *memStore) ListByEvent(ctx context.Context, eventID uint64) ([]model.EventRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.EventRegistration{}
	for _, r := range s.regs {
		if r.EventID != eventID {
			continue
		}
		for uid, aid := range s.attendees {
			if aid == r.AttendeeID {
				u := s.users[uid]
				out = append(out, model.EventRegistration{
					Registration: r, UserID: uid, UserName: u.Name, UserEmail: u.Email,
				})
			}
		}
	}
	return out, nil
}

// ----- handler.EmployeeStore -----

func (s *memStore) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Employee{}
	for _, e := range s.employees {
		out = append(out, e)
	}
	return out, nil
}

func (s *memStore) GetEmployee(ctx context.Context, id uint64) (model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return model.Employee{}, repository.ErrNotFound
	}
	return e, nil
}

func (s *memStore) CreateEmployee(ctx context.Context, name, role string, salary float64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.employees[id] = model.Employee{
		ID: id, Name: name, Role: role, Salary: salary,
		HireDate: time.Now().UTC().Format("2006-01-02"),
	}
	return id, nil
}

func (s *memStore) UpdateEmployee(ctx context.Context, id uint64, name, role string, salary float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.Name, e.Role, e.Salary = name, role, salary
	s.employees[id] = e
	return nil
}

func (s *memStore) DeleteEmployee(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.employees, id)
	return nil
}

// ----- handler.AssignmentStore -----

func (s *memStore) Assign(ctx context.Context, employeeID, eventID uint64, role string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assigns {
		if a.EmployeeID == employeeID && a.EventID == eventID {
			return 0, repository.ErrAlreadyAssigned
		}
	}
	a := model.Assignment{ID: s.id(), EmployeeID: employeeID, EventID: eventID, Role: role}
	s.assigns = append(s.assigns, a)
	return a.ID, nil
}

// ----- handler.FeedbackStore -----

func (s *memStore) CreateFeedback(ctx context.Context, userID, eventID uint64, rating int, comment string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.feedback {
		if f.UserID == userID && f.EventID == eventID {
			return 0, repository.ErrFeedbackExists
		}
	}
	f := model.Feedback{ID: s.id(), UserID: userID, EventID: eventID, Rating: rating, Comment: comment, SubmittedAt: time.Now().UTC()}
	s.feedback = append(s.feedback, f)
	return f.ID, nil
}

func (s *memStore) FeedbackByEvent(ctx context.Context, eventID uint64) ([]model.EventFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.EventFeedback{}
	for _, f := range s.feedback {
		if f.EventID == eventID {
			out = append(out, model.EventFeedback{Feedback: f, UserName: s.users[f.UserID].Name})
		}
	}
	return out, nil
}

// ----- handler.NotificationStore -----

func (s *memStore) NotificationsByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Notification{}
	for _, n := range s.notifs {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *memStore) MarkRead(ctx context.Context, notificationID, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifs {
		if n.ID == notificationID && n.UserID == userID {
			s.notifs[i].IsRead = true
			return nil
		}
	}
	return repository.ErrNotFound
}

// Adapters renaming fake methods onto the store interfaces where the
// method sets collide on one struct.

type eventStoreAdapter struct{ *memStore }

func (a eventStoreAdapter) Create(ctx context.Context, organizerID uint64, ev model.Event) (uint64, error) {
	return a.CreateEvent(ctx, organizerID, ev)
}

type employeeStoreAdapter struct{ *memStore }

func (a employeeStoreAdapter) List(ctx context.Context) ([]model.Employee, error) {
	return a.ListEmployees(ctx)
}
func (a employeeStoreAdapter) GetByID(ctx context.Context, id uint64) (model.Employee, error) {
	return a.GetEmployee(ctx, id)
}
func (a employeeStoreAdapter) Create(ctx context.Context, name, role string, salary float64) (uint64, error) {
	return a.CreateEmployee(ctx, name, role, salary)
}
func (a employeeStoreAdapter) Update(ctx context.Context, id uint64, name, role string, salary float64) error {
	return a.UpdateEmployee(ctx, id, name, role, salary)
}
func (a employeeStoreAdapter) Delete(ctx context.Context, id uint64) error {
	return a.DeleteEmployee(ctx, id)
}

type feedbackStoreAdapter struct{ *memStore }

func (a feedbackStoreAdapter) Create(ctx context.Context, userID, eventID uint64, rating int, comment string) (uint64, error) {
	return a.CreateFeedback(ctx, userID, eventID, rating, comment)
}
func (a feedbackStoreAdapter) ListByEvent(ctx context.Context, eventID uint64) ([]model.EventFeedback, error) {
	return a.FeedbackByEvent(ctx, eventID)
}

type notificationStoreAdapter struct{ *memStore }

func (a notificationStoreAdapter) ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	return a.NotificationsByUser(ctx, userID)
}

// newTestServer builds the real router over the fakes.
func newTestServer(st *memStore) *echo.Echo {
	cfg := config.Config{JWTSecret: testSecret, AccessTTLMin: 60, BcryptCost: 4}
	e := echo.New()
	router.RegisterRoutes(e, router.Deps{
		JWTSecret: testSecret,
		AdminCheck: func(c echo.Context, userID uint64) (bool, error) {
			return st.IsAdmin(c.Request().Context(), userID)
		},
		Auth:          handler.NewAuthHandler(cfg, st, st),
		Events:        handler.NewEventHandler(eventStoreAdapter{st}, st),
		Registrations: handler.NewRegistrationHandler(st, nil),
		Employees:     handler.NewEmployeeHandler(employeeStoreAdapter{st}),
		Assignments:   handler.NewAssignmentHandler(st),
		Feedback:      handler.NewFeedbackHandler(feedbackStoreAdapter{st}),
		Notifications: handler.NewNotificationHandler(notificationStoreAdapter{st}),
	})
	return e
}
