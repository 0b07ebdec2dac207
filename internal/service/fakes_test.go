package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/cache"
	"github.com/lept-reviewer/backend/internal/model"
	"github.com/lept-reviewer/backend/internal/repository"
)

// In-memory repository fakes. Only the behavior the services rely on is
// modeled; everything runs single-threaded in tests.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Create(_ context.Context, email, ipAddress, plan string, questionsRemaining int) (*model.User, error) {
	u := &model.User{
		Email:              email,
		IPAddress:          ipAddress,
		PlanType:           plan,
		QuestionsRemaining: questionsRemaining,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	r.users[email] = u
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdateIP(_ context.Context, email, ipAddress string) error {
	if u, ok := r.users[email]; ok {
		u.IPAddress = ipAddress
	}
	return nil
}

func (r *fakeUserRepo) UpdatePlan(_ context.Context, email, plan string, questionsRemaining int, premiumExpiry *time.Time) error {
	if u, ok := r.users[email]; ok {
		u.PlanType = plan
		u.QuestionsRemaining = questionsRemaining
		u.PremiumExpiry = premiumExpiry
	}
	return nil
}

func (r *fakeUserRepo) DecrementQuestions(_ context.Context, email string, count int) (bool, error) {
	u, ok := r.users[email]
	if !ok || u.QuestionsRemaining < count {
		return false, nil
	}
	u.QuestionsRemaining -= count
	u.QuestionsUsedTotal += count
	return true, nil
}

func (r *fakeUserRepo) AdjustQuota(_ context.Context, email string, newQuota int) error {
	if u, ok := r.users[email]; ok {
		u.QuestionsRemaining = newQuota
	}
	return nil
}

func (r *fakeUserRepo) SetBlocked(_ context.Context, email string, blocked bool) error {
	if u, ok := r.users[email]; ok {
		u.IsBlocked = blocked
	}
	return nil
}

func (r *fakeUserRepo) ListAll(_ context.Context, _ int) ([]model.User, error) {
	users := []model.User{}
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) CountByPlan(_ context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, u := range r.users {
		counts[u.PlanType]++
	}
	return counts, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, email string) error {
	delete(r.users, email)
	return nil
}

type fakeUsageRepo struct {
	logs      []model.UsageLog
	ipBlocked map[string]bool
	ipCounts  map[string]int
	actions   []model.AdminAction
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{ipBlocked: map[string]bool{}, ipCounts: map[string]int{}}
}

func (r *fakeUsageRepo) LogUsage(_ context.Context, log *model.UsageLog) error {
	log.EventID = int64(len(r.logs) + 1)
	log.EventTime = time.Now()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeUsageRepo) ListUserLogs(_ context.Context, email string, _ int) ([]model.UsageLog, error) {
	logs := []model.UsageLog{}
	for _, l := range r.logs {
		if l.Email == email {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (r *fakeUsageRepo) ListAllLogs(_ context.Context, _ int) ([]model.UsageLog, error) {
	return r.logs, nil
}

func (r *fakeUsageRepo) TouchIPHistory(_ context.Context, _, _ string) error { return nil }
func (r *fakeUsageRepo) TouchIPUsage(_ context.Context, _ string) error      { return nil }

func (r *fakeUsageRepo) IncrementIPUsage(_ context.Context, ipAddress string, count int) error {
	r.ipCounts[ipAddress] += count
	return nil
}

func (r *fakeUsageRepo) IsIPBlocked(_ context.Context, ipAddress string) (bool, error) {
	return r.ipBlocked[ipAddress], nil
}

func (r *fakeUsageRepo) SetIPBlocked(_ context.Context, ipAddress string, blocked bool) error {
	r.ipBlocked[ipAddress] = blocked
	return nil
}

func (r *fakeUsageRepo) LogAdminAction(_ context.Context, adminUser, actionType, details string) error {
	r.actions = append(r.actions, model.AdminAction{
		ID:         int64(len(r.actions) + 1),
		AdminUser:  adminUser,
		ActionTime: time.Now(),
		ActionType: actionType,
		Details:    details,
	})
	return nil
}

func (r *fakeUsageRepo) ListAdminActions(_ context.Context, _ int) ([]model.AdminAction, error) {
	return r.actions, nil
}

type fakePaymentRepo struct {
	payments map[int64]*model.Payment
	users    *fakeUserRepo
	nextID   int64
}

func newFakePaymentRepo(users *fakeUserRepo) *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int64]*model.Payment{}, users: users}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *model.Payment) error {
	r.nextID++
	p.ID = r.nextID
	p.Status = model.PaymentPending
	p.SubmittedAt = time.Now()
	copied := *p
	r.payments[p.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id int64) (*model.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) ListPending(_ context.Context) ([]model.Payment, error) {
	pending := []model.Payment{}
	for _, p := range r.payments {
		if p.Status == model.PaymentPending {
			pending = append(pending, *p)
		}
	}
	return pending, nil
}

func (r *fakePaymentRepo) ListAll(_ context.Context, _ int) ([]model.Payment, error) {
	all := []model.Payment{}
	for _, p := range r.payments {
		all = append(all, *p)
	}
	return all, nil
}

func (r *fakePaymentRepo) ListByUser(_ context.Context, email string, _ int) ([]model.Payment, error) {
	payments := []model.Payment{}
	for _, p := range r.payments {
		if p.Email == email {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}

func (r *fakePaymentRepo) ApproveAndUpgrade(ctx context.Context, id int64, adminNotes, approvedBy, plan string, questionsRemaining int, premiumExpiry *time.Time) (*model.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	if p.Status != model.PaymentPending {
		return nil, repository.ErrPaymentNotPending
	}
	now := time.Now()
	p.Status = model.PaymentApproved
	p.AdminNotes = adminNotes
	p.ApprovedBy = approvedBy
	p.ApprovedAt = &now
	if err := r.users.UpdatePlan(ctx, p.Email, plan, questionsRemaining, premiumExpiry); err != nil {
		return nil, err
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) Reject(_ context.Context, id int64, adminNotes, rejectedBy string) (*model.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	if p.Status != model.PaymentPending {
		return nil, repository.ErrPaymentNotPending
	}
	now := time.Now()
	p.Status = model.PaymentRejected
	p.AdminNotes = adminNotes
	p.ApprovedBy = rejectedBy
	p.ApprovedAt = &now
	copied := *p
	return &copied, nil
}

type fakeDocRepo struct {
	userDocs  map[int64]*model.UserDocument
	adminDocs map[int64]*model.AdminDocument
	nextID    int64
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{userDocs: map[int64]*model.UserDocument{}, adminDocs: map[int64]*model.AdminDocument{}}
}

func (r *fakeDocRepo) SaveUserDocument(_ context.Context, d *model.UserDocument) error {
	r.nextID++
	d.ID = r.nextID
	d.UploadedAt = time.Now()
	copied := *d
	r.userDocs[d.ID] = &copied
	return nil
}

func (r *fakeDocRepo) ListUserDocuments(_ context.Context, email string) ([]model.UserDocument, error) {
	docs := []model.UserDocument{}
	for _, d := range r.userDocs {
		if d.Email == email && !d.IsDeleted {
			docs = append(docs, *d)
		}
	}
	return docs, nil
}

func (r *fakeDocRepo) GetUserDocument(_ context.Context, id int64, email string) (*model.UserDocument, error) {
	d, ok := r.userDocs[id]
	if !ok || d.Email != email || d.IsDeleted {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDocRepo) DeleteUserDocument(_ context.Context, id int64, email string) (bool, error) {
	d, ok := r.userDocs[id]
	if !ok || d.Email != email || d.IsDeleted {
		return false, nil
	}
	d.IsDeleted = true
	return true, nil
}

func (r *fakeDocRepo) SaveAdminDocument(_ context.Context, d *model.AdminDocument) error {
	r.nextID++
	d.ID = r.nextID
	d.UploadedAt = time.Now()
	copied := *d
	r.adminDocs[d.ID] = &copied
	return nil
}

func (r *fakeDocRepo) ListAdminDocuments(_ context.Context) ([]model.AdminDocument, error) {
	docs := []model.AdminDocument{}
	for _, d := range r.adminDocs {
		if !d.IsDeleted {
			docs = append(docs, *d)
		}
	}
	return docs, nil
}

func (r *fakeDocRepo) GetAdminDocument(_ context.Context, id int64) (*model.AdminDocument, error) {
	d, ok := r.adminDocs[id]
	if !ok || d.IsDeleted {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDocRepo) SetAdminDocumentDownloadable(_ context.Context, id int64, downloadable bool) error {
	if d, ok := r.adminDocs[id]; ok {
		d.IsDownloadable = downloadable
	}
	return nil
}

func (r *fakeDocRepo) DeleteAdminDocument(_ context.Context, id int64) (bool, error) {
	d, ok := r.adminDocs[id]
	if !ok || d.IsDeleted {
		return false, nil
	}
	d.IsDeleted = true
	return true, nil
}

type fakeStorage struct {
	objects map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) error {
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) PresignedGetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.test/" + key, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

type fakeSecrets struct {
	apiKey        string
	adminPassword string
}

func (s *fakeSecrets) GetOpenAIAPIKey(context.Context) (string, error)  { return s.apiKey, nil }
func (s *fakeSecrets) GetAdminPassword(context.Context) (string, error) { return s.adminPassword, nil }
func (s *fakeSecrets) Close() error                                     { return nil }

type fakeOpenAI struct {
	response string
	err      error
	calls    int
}

func (c *fakeOpenAI) ChatCompletion(context.Context, string, string, string) (string, error) {
	c.calls++
	return c.response, c.err
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.NewWithClient(client)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
