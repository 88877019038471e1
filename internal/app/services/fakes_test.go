package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

// snapshotter is implemented by the in-memory stores so injectedTx can undo a failed body
type snapshotter interface {
	snapshot() (restore func())
}

// injectedTx runs bodies in memory. A failing body restores every participating store;
// FailBegin and FailCommit inject errors around it.
type injectedTx struct {
	mu sync.Mutex

	stores     []snapshotter
	FailBegin  error
	FailCommit error

	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
	ReadOnlyCalls int
}

func newInjectedTx(stores ...snapshotter) *injectedTx {
	return &injectedTx{stores: stores}
}

func (r *injectedTx) InTx(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.BeginCalls++
	if r.FailBegin != nil {
		return r.FailBegin
	}

	restores := make([]func(), 0, len(r.stores))
	for _, s := range r.stores {
		restores = append(restores, s.snapshot())
	}
	rollback := func() {
		r.RollbackCalls++
		for _, restore := range restores {
			restore()
		}
	}

	if err := fn(ctx, nil); err != nil {
		rollback()
		return err
	}
	if r.FailCommit != nil {
		rollback()
		return r.FailCommit
	}
	r.CommitCalls++
	return nil
}

func (r *injectedTx) InReadOnlyTx(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error {
	r.mu.Lock()
	r.ReadOnlyCalls++
	r.mu.Unlock()
	return fn(ctx, nil)
}

// memDictionary is an in-memory DictionaryStore
type memDictionary[T any] struct {
	rows     map[int64]string
	deps     map[int64]bool
	nextID   int64
	build    func(id int64, name string) *T
	notFound error
	calls    int
}

func newMemDictionary[T any](build func(int64, string) *T, notFound error) *memDictionary[T] {
	return &memDictionary[T]{
		rows:     map[int64]string{},
		deps:     map[int64]bool{},
		build:    build,
		notFound: notFound,
	}
}

func newMemLocations() *memDictionary[models.Location] {
	return newMemDictionary(func(id int64, name string) *models.Location {
		return &models.Location{ID: id, Location: name}
	}, apperrors.ErrLocationNotFound)
}

func newMemGroups() *memDictionary[models.Group] {
	return newMemDictionary(func(id int64, name string) *models.Group {
		return &models.Group{ID: id, Name: name}
	}, apperrors.ErrGroupNotFound)
}

func newMemRoles() *memDictionary[models.Role] {
	return newMemDictionary(func(id int64, name string) *models.Role {
		return &models.Role{ID: id, Name: name}
	}, apperrors.ErrRoleNotFound)
}

func (m *memDictionary[T]) seed(name string) int64 {
	m.nextID++
	m.rows[m.nextID] = name
	return m.nextID
}

func (m *memDictionary[T]) GetAll(_ context.Context) ([]*T, error) {
	m.calls++
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.build(id, m.rows[id]))
	}
	return out, nil
}

func (m *memDictionary[T]) Create(_ context.Context, name string) (*T, error) {
	m.calls++
	return m.build(m.seed(name), name), nil
}

func (m *memDictionary[T]) Update(_ context.Context, id int64, name string) (*T, error) {
	m.calls++
	if _, ok := m.rows[id]; !ok {
		return nil, m.notFound
	}
	m.rows[id] = name
	return m.build(id, name), nil
}

func (m *memDictionary[T]) Delete(_ context.Context, id int64) error {
	m.calls++
	if _, ok := m.rows[id]; !ok {
		return m.notFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memDictionary[T]) Exists(_ context.Context, id int64) (bool, error) {
	m.calls++
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memDictionary[T]) HasDependents(_ context.Context, id int64) (bool, error) {
	m.calls++
	return m.deps[id], nil
}

// memPositions is an in-memory PositionStore
type memPositions struct {
	rows   map[int64]*models.Position
	deps   map[int64]bool
	nextID int64
	calls  int
}

func newMemPositions() *memPositions {
	return &memPositions{rows: map[int64]*models.Position{}, deps: map[int64]bool{}}
}

func (m *memPositions) GetAll(_ context.Context) ([]*models.Position, error) {
	m.calls++
	out := []*models.Position{}
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPositions) Create(_ context.Context, name string, organizationID int64) (*models.Position, error) {
	m.calls++
	m.nextID++
	p := &models.Position{ID: m.nextID, Name: name, OrganizationID: organizationID}
	m.rows[p.ID] = p
	return p, nil
}

func (m *memPositions) Update(_ context.Context, id int64, name string, organizationID int64) (*models.Position, error) {
	m.calls++
	p, ok := m.rows[id]
	if !ok {
		return nil, apperrors.ErrPositionNotFound
	}
	p.Name, p.OrganizationID = name, organizationID
	return p, nil
}

func (m *memPositions) Delete(_ context.Context, id int64) error {
	m.calls++
	if _, ok := m.rows[id]; !ok {
		return apperrors.ErrPositionNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memPositions) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memPositions) HasDependents(_ context.Context, id int64) (bool, error) {
	return m.deps[id], nil
}

// memCatalog is an in-memory CatalogStore
type memCatalog struct {
	organizations map[int64]string
	practices     map[int64]*models.Practice
}

func newMemCatalog() *memCatalog {
	return &memCatalog{organizations: map[int64]string{}, practices: map[int64]*models.Practice{}}
}

func (m *memCatalog) GetOrganizations(_ context.Context) ([]*models.Organization, error) {
	out := []*models.Organization{}
	for id, name := range m.organizations {
		out = append(out, &models.Organization{ID: id, Name: name})
	}
	return out, nil
}

func (m *memCatalog) GetPractices(_ context.Context) ([]*models.Practice, error) {
	out := []*models.Practice{}
	for _, p := range m.practices {
		out = append(out, p)
	}
	return out, nil
}

func (m *memCatalog) OrganizationExists(_ context.Context, id int64) (bool, error) {
	_, ok := m.organizations[id]
	return ok, nil
}

func (m *memCatalog) PracticeExists(_ context.Context, id int64) (bool, error) {
	_, ok := m.practices[id]
	return ok, nil
}

// memSupervisors is an in-memory SupervisorStore
type memSupervisors struct {
	rows   map[int64]*models.Supervisor
	nextID int64
	calls  int
}

func newMemSupervisors() *memSupervisors {
	return &memSupervisors{rows: map[int64]*models.Supervisor{}}
}

func (m *memSupervisors) GetAll(_ context.Context) ([]*models.SupervisorDetails, error) {
	out := []*models.SupervisorDetails{}
	for _, s := range m.rows {
		out = append(out, &models.SupervisorDetails{Supervisor: *s})
	}
	return out, nil
}

func (m *memSupervisors) Create(_ context.Context, s *models.Supervisor) (*models.Supervisor, error) {
	m.calls++
	m.nextID++
	created := *s
	created.ID = m.nextID
	m.rows[created.ID] = &created
	return &created, nil
}

func (m *memSupervisors) Update(_ context.Context, id int64, patch models.SupervisorPatch) (*models.Supervisor, error) {
	m.calls++
	s, ok := m.rows[id]
	if !ok {
		return nil, apperrors.ErrSupervisorNotFound
	}
	s.FullName = patch.FullName
	if patch.PracticeID != nil {
		s.PracticeID = *patch.PracticeID
	}
	if patch.PositionID != nil {
		s.PositionID = *patch.PositionID
	}
	if patch.RoleID != nil {
		s.RoleID = *patch.RoleID
	}
	updated := *s
	return &updated, nil
}

func (m *memSupervisors) Delete(_ context.Context, id int64) error {
	m.calls++
	if _, ok := m.rows[id]; !ok {
		return apperrors.ErrSupervisorNotFound
	}
	delete(m.rows, id)
	return nil
}

// memStudents is an in-memory StudentStore
type memStudents struct {
	rows       map[int64]*models.Student
	groups     map[int64]bool
	failDelete error
}

func newMemStudents() *memStudents {
	return &memStudents{rows: map[int64]*models.Student{}, groups: map[int64]bool{}}
}

func (m *memStudents) add(studentID, userID, groupID int64) *models.Student {
	s := &models.Student{ID: studentID, UserID: userID, GroupID: groupID, PracticeID: 1}
	m.rows[studentID] = s
	m.groups[groupID] = true
	return s
}

func (m *memStudents) snapshot() func() {
	saved := map[int64]models.Student{}
	for id, s := range m.rows {
		saved[id] = *s
	}
	return func() {
		m.rows = map[int64]*models.Student{}
		for id, s := range saved {
			s := s
			m.rows[id] = &s
		}
	}
}

func (m *memStudents) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, s := range m.rows {
		if s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *memStudents) GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	s, err := m.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.StudentProfile{UserID: s.UserID, PracticeID: s.PracticeID, Supervisors: []models.ProfileSupervisor{}}, nil
}

func (m *memStudents) LockGroup(_ context.Context, _ db.Querier, studentID int64) (int64, error) {
	s, ok := m.rows[studentID]
	if !ok {
		return 0, apperrors.ErrStudentNotFound
	}
	return s.GroupID, nil
}

func (m *memStudents) UpdateGroup(_ context.Context, _ db.Querier, studentID, groupID int64) error {
	if !m.groups[groupID] {
		return apperrors.ErrGroupNotFound
	}
	s, ok := m.rows[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.GroupID = groupID
	return nil
}

func (m *memStudents) Delete(_ context.Context, _ db.Querier, studentID int64) error {
	if m.failDelete != nil {
		return m.failDelete
	}
	if _, ok := m.rows[studentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.rows, studentID)
	return nil
}

// memDiary is an in-memory DiaryStore that keeps soft-deleted rows
type memDiary struct {
	rows       map[int64]*models.DiaryEntry
	nextID     int64
	failInsert error
	calls      int
}

func newMemDiary() *memDiary {
	return &memDiary{rows: map[int64]*models.DiaryEntry{}}
}

func (m *memDiary) add(studentID int64, description string, deleted bool) int64 {
	m.nextID++
	m.rows[m.nextID] = &models.DiaryEntry{
		ID: m.nextID, StudentID: studentID, WorkDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
		Description: description, IsDeleted: deleted,
	}
	return m.nextID
}

func (m *memDiary) snapshot() func() {
	saved := map[int64]models.DiaryEntry{}
	for id, e := range m.rows {
		saved[id] = *e
	}
	nextID := m.nextID
	return func() {
		m.rows = map[int64]*models.DiaryEntry{}
		for id, e := range saved {
			e := e
			m.rows[id] = &e
		}
		m.nextID = nextID
	}
}

func (m *memDiary) forStudent(studentID int64) (live, deleted int) {
	for _, e := range m.rows {
		if e.StudentID != studentID {
			continue
		}
		if e.IsDeleted {
			deleted++
		} else {
			live++
		}
	}
	return live, deleted
}

func (m *memDiary) ListByStudent(_ context.Context, studentID int64) ([]*models.DiaryEntry, error) {
	m.calls++
	out := []*models.DiaryEntry{}
	for _, e := range m.rows {
		if e.StudentID == studentID && !e.IsDeleted {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memDiary) GetByID(_ context.Context, id int64) (*models.DiaryEntry, error) {
	m.calls++
	e, ok := m.rows[id]
	if !ok || e.IsDeleted {
		return nil, apperrors.ErrDiaryEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *memDiary) Create(_ context.Context, studentID int64, workDate time.Time, description string) (*models.DiaryEntry, error) {
	m.calls++
	id := m.add(studentID, description, false)
	m.rows[id].WorkDate = workDate
	copied := *m.rows[id]
	return &copied, nil
}

func (m *memDiary) Update(_ context.Context, studentID, id int64, workDate *time.Time, description string) (*models.DiaryEntry, error) {
	m.calls++
	e, ok := m.rows[id]
	if !ok || e.IsDeleted || e.StudentID != studentID {
		return nil, apperrors.ErrDiaryEntryNotFound
	}
	e.Description = description
	if workDate != nil {
		e.WorkDate = *workDate
	}
	copied := *e
	return &copied, nil
}

func (m *memDiary) SoftDelete(_ context.Context, studentID, id int64) error {
	m.calls++
	e, ok := m.rows[id]
	if !ok || e.IsDeleted || e.StudentID != studentID {
		return apperrors.ErrDiaryEntryNotFound
	}
	e.IsDeleted = true
	return nil
}

func (m *memDiary) InsertDatedToday(_ context.Context, _ db.Querier, studentID int64, description string) (int64, error) {
	if m.failInsert != nil {
		return 0, m.failInsert
	}
	return m.add(studentID, description, false), nil
}

func (m *memDiary) PurgeByStudent(_ context.Context, _ db.Querier, studentID int64) (int64, error) {
	var n int64
	for id, e := range m.rows {
		if e.StudentID == studentID {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

// memWorks is an in-memory IndividualWorkStore that keeps soft-deleted rows
type memWorks struct {
	rows   map[int64]*models.IndividualWork
	nextID int64
	calls  int
}

func newMemWorks() *memWorks {
	return &memWorks{rows: map[int64]*models.IndividualWork{}}
}

func (m *memWorks) add(studentID int64, description string, deleted bool) int64 {
	m.nextID++
	m.rows[m.nextID] = &models.IndividualWork{
		ID: m.nextID, StudentID: studentID, Description: description, IsDeleted: deleted,
		IssueDate:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		IssueDeadline: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
	}
	return m.nextID
}

func (m *memWorks) snapshot() func() {
	saved := map[int64]models.IndividualWork{}
	for id, w := range m.rows {
		saved[id] = *w
	}
	return func() {
		m.rows = map[int64]*models.IndividualWork{}
		for id, w := range saved {
			w := w
			m.rows[id] = &w
		}
	}
}

func (m *memWorks) ListByStudent(_ context.Context, studentID int64) ([]*models.IndividualWork, error) {
	m.calls++
	out := []*models.IndividualWork{}
	for _, w := range m.rows {
		if w.StudentID == studentID && !w.IsDeleted {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memWorks) GetByID(_ context.Context, id int64) (*models.IndividualWork, error) {
	m.calls++
	w, ok := m.rows[id]
	if !ok || w.IsDeleted {
		return nil, apperrors.ErrIndividualWorkNotFound
	}
	copied := *w
	return &copied, nil
}

func (m *memWorks) Create(_ context.Context, w *models.IndividualWork) (*models.IndividualWork, error) {
	m.calls++
	m.nextID++
	created := *w
	created.ID = m.nextID
	m.rows[created.ID] = &created
	copied := created
	return &copied, nil
}

func (m *memWorks) Update(_ context.Context, studentID, id int64, patch models.IndividualWorkPatch) (*models.IndividualWork, error) {
	m.calls++
	w, ok := m.rows[id]
	if !ok || w.IsDeleted || w.StudentID != studentID {
		return nil, apperrors.ErrIndividualWorkNotFound
	}
	if patch.IssueDate != nil {
		w.IssueDate = *patch.IssueDate
	}
	if patch.Description != nil {
		w.Description = *patch.Description
	}
	if patch.IssueDeadline != nil {
		w.IssueDeadline = *patch.IssueDeadline
	}
	if patch.CompleteMark != nil {
		w.CompleteMark = *patch.CompleteMark
	}
	copied := *w
	return &copied, nil
}

func (m *memWorks) SoftDelete(_ context.Context, studentID, id int64) error {
	m.calls++
	w, ok := m.rows[id]
	if !ok || w.IsDeleted || w.StudentID != studentID {
		return apperrors.ErrIndividualWorkNotFound
	}
	w.IsDeleted = true
	return nil
}

func (m *memWorks) PurgeByStudent(_ context.Context, _ db.Querier, studentID int64) (int64, error) {
	var n int64
	for id, w := range m.rows {
		if w.StudentID == studentID {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

// stubReports is a ReportStore recording what reached it
type stubReports struct {
	selects   []string
	selectErr error
	added     []models.NewStudent
	addErr    error
	closed    map[int64]time.Time
	closeErr  error
	result    *models.ResultSet
}

func (s *stubReports) RunReport(_ context.Context, name string) (*models.ResultSet, error) {
	if name != "users" {
		return nil, apperrors.ErrReportNotFound
	}
	return &models.ResultSet{Columns: []string{"user_id"}, Rows: []map[string]any{{"user_id": 1}}, RowCount: 1}, nil
}

func (s *stubReports) RunSelect(_ context.Context, _ db.Querier, sql string) (*models.ResultSet, error) {
	s.selects = append(s.selects, sql)
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	if s.result != nil {
		return s.result, nil
	}
	return &models.ResultSet{Columns: []string{}, Rows: []map[string]any{}}, nil
}

func (s *stubReports) CreateStudentGroupsView(context.Context) error    { return nil }
func (s *stubReports) CreatePracticeStudentsView(context.Context) error { return nil }

func (s *stubReports) StudentsCount(_ context.Context, practiceID int64) (int64, error) {
	return practiceID * 10, nil
}

func (s *stubReports) AverageDiaryEntries(context.Context) (float64, error) { return 2.5, nil }

func (s *stubReports) AddStudent(_ context.Context, ns models.NewStudent) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, ns)
	return nil
}

func (s *stubReports) ClosePractice(_ context.Context, practiceID int64, endDate time.Time) error {
	if s.closeErr != nil {
		return s.closeErr
	}
	if s.closed == nil {
		s.closed = map[int64]time.Time{}
	}
	s.closed[practiceID] = endDate
	return nil
}
