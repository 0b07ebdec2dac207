package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/cache"
	"github.com/lept-reviewer/backend/internal/exam"
	"github.com/lept-reviewer/backend/internal/model"
	"github.com/lept-reviewer/backend/internal/repository"
	"github.com/lept-reviewer/backend/internal/util"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserBlocked        = errors.New("account is blocked")
	ErrIPBlocked          = errors.New("access from this address is blocked")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService handles registration-free login, account status, and the
// admin-side user management operations.
type UserService interface {
	// LoginOrRegister returns the account for email, creating a FREE
	// account on first login. Blocked users and blocked IPs are refused.
	LoginOrRegister(ctx context.Context, email, ipAddress string) (*model.User, error)
	// GetUser returns the cached account row, nil when absent.
	GetUser(ctx context.Context, email string) (*model.User, error)
	Status(user *model.User) model.UserStatus
	UserLogs(ctx context.Context, email string, limit int) ([]model.UsageLog, error)

	AdminLogin(ctx context.Context, password string) error
	ListUsers(ctx context.Context, limit int) ([]model.User, error)
	SetUserBlocked(ctx context.Context, adminUser, email string, blocked bool) error
	AdjustQuota(ctx context.Context, adminUser, email string, newQuota int) error
	ChangePlan(ctx context.Context, adminUser, email, newPlan string) error
	DeleteUser(ctx context.Context, adminUser, email string) error
	AllLogs(ctx context.Context, limit int) ([]model.UsageLog, error)
	AdminActions(ctx context.Context, limit int) ([]model.AdminAction, error)
	// PlanCounts returns user counts per plan tier for the admin dashboard.
	PlanCounts(ctx context.Context) (map[string]int, error)
}

type userService struct {
	userRepo   repository.UserRepository
	usageRepo  repository.UsageRepository
	cache      *cache.Cache
	secrets    SecretService
	userLogger zerolog.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	usageRepo repository.UsageRepository,
	c *cache.Cache,
	secrets SecretService,
	logger zerolog.Logger,
) UserService {
	return &userService{
		userRepo:   userRepo,
		usageRepo:  usageRepo,
		cache:      c,
		secrets:    secrets,
		userLogger: logger.With().Str("service", "UserService").Logger(),
	}
}

func (s *userService) LoginOrRegister(ctx context.Context, email, ipAddress string) (*model.User, error) {
	email = util.NormalizeEmail(email)

	blocked, err := s.isIPBlocked(ctx, ipAddress)
	if err != nil {
		// A cache or DB hiccup on the block check should not lock everyone
		// out; log and continue.
		s.userLogger.Warn().Err(err).Str("ip", ipAddress).Msg("IP block check failed")
	}
	if blocked {
		return nil, ErrIPBlocked
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user, err = s.userRepo.Create(ctx, email, ipAddress, model.PlanFree, exam.FreeQuestionLimit)
		if err != nil {
			return nil, err
		}
		if err := s.usageRepo.TouchIPHistory(ctx, email, ipAddress); err != nil {
			s.userLogger.Warn().Err(err).Str("email", email).Msg("Failed to record IP history")
		}
		if err := s.usageRepo.TouchIPUsage(ctx, ipAddress); err != nil {
			s.userLogger.Warn().Err(err).Str("ip", ipAddress).Msg("Failed to record IP usage")
		}
		s.userLogger.Info().Str("email", email).Msg("New user registered")
		return user, nil
	}

	if user.IsBlocked {
		return nil, ErrUserBlocked
	}

	// Lazily downgrade expired PREMIUM accounts at login.
	if user.PlanType == model.PlanPremium && user.PremiumExpiry != nil && user.PremiumExpiry.Before(time.Now()) {
		if err := s.userRepo.UpdatePlan(ctx, email, model.PlanFree, 0, nil); err != nil {
			return nil, err
		}
		user.PlanType = model.PlanFree
		user.QuestionsRemaining = 0
		user.PremiumExpiry = nil
		s.userLogger.Info().Str("email", email).Msg("Premium expired, reverted to free")
	}

	if user.IPAddress != ipAddress {
		if err := s.userRepo.UpdateIP(ctx, email, ipAddress); err != nil {
			s.userLogger.Warn().Err(err).Str("email", email).Msg("Failed to update IP")
		} else {
			user.IPAddress = ipAddress
		}
	}
	if err := s.usageRepo.TouchIPHistory(ctx, email, ipAddress); err != nil {
		s.userLogger.Warn().Err(err).Str("email", email).Msg("Failed to record IP history")
	}

	if err := s.cache.InvalidateUser(ctx, email); err != nil {
		s.userLogger.Warn().Err(err).Str("email", email).Msg("Failed to invalidate user cache")
	}
	return user, nil
}

// isIPBlocked consults the cache first; the DB row is authoritative.
func (s *userService) isIPBlocked(ctx context.Context, ipAddress string) (bool, error) {
	var blocked bool
	found, err := s.cache.Get(ctx, cache.IPBlockedKey(ipAddress), &blocked)
	if err == nil && found {
		return blocked, nil
	}

	blocked, err = s.usageRepo.IsIPBlocked(ctx, ipAddress)
	if err != nil {
		return false, err
	}
	if cacheErr := s.cache.Set(ctx, cache.IPBlockedKey(ipAddress), blocked, cache.IPBlockedTTL); cacheErr != nil {
		s.userLogger.Warn().Err(cacheErr).Str("ip", ipAddress).Msg("Failed to cache IP block state")
	}
	return blocked, nil
}

func (s *userService) GetUser(ctx context.Context, email string) (*model.User, error) {
	email = util.NormalizeEmail(email)

	var cached model.User
	found, err := s.cache.Get(ctx, cache.UserKey(email), &cached)
	if err == nil && found {
		return &cached, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if cacheErr := s.cache.Set(ctx, cache.UserKey(email), user, cache.UserTTL); cacheErr != nil {
		s.userLogger.Warn().Err(cacheErr).Str("email", email).Msg("Failed to cache user")
	}
	return user, nil
}

// Status converts an account row into the display snapshot shown in the
// sidebar: plan, a human question counter, and premium countdown.
func (s *userService) Status(user *model.User) model.UserStatus {
	status := model.UserStatus{
		Plan:          user.PlanType,
		QuestionsUsed: user.QuestionsUsedTotal,
	}

	now := time.Now()
	if user.PremiumActive(now) {
		days := int(time.Until(*user.PremiumExpiry).Hours() / 24)
		status.QuestionsDisplay = "Unlimited"
		status.ExpiryDisplay = fmt.Sprintf("%d days left", days)
		status.CanUseAdminDocs = true
		return status
	}

	status.QuestionsDisplay = fmt.Sprintf("%d remaining", user.QuestionsRemaining)
	status.CanUseAdminDocs = user.PlanType == model.PlanPro
	return status
}

func (s *userService) UserLogs(ctx context.Context, email string, limit int) ([]model.UsageLog, error) {
	return s.usageRepo.ListUserLogs(ctx, util.NormalizeEmail(email), limit)
}

func (s *userService) AdminLogin(ctx context.Context, password string) error {
	expected, err := s.secrets.GetAdminPassword(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve admin password: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return ErrInvalidCredentials
	}
	if err := s.usageRepo.LogAdminAction(ctx, "admin", model.ActionLogin, "admin login"); err != nil {
		s.userLogger.Warn().Err(err).Msg("Failed to log admin login")
	}
	return nil
}

func (s *userService) ListUsers(ctx context.Context, limit int) ([]model.User, error) {
	return s.userRepo.ListAll(ctx, limit)
}

func (s *userService) SetUserBlocked(ctx context.Context, adminUser, email string, blocked bool) error {
	email = util.NormalizeEmail(email)
	if err := s.requireUser(ctx, email); err != nil {
		return err
	}
	if err := s.userRepo.SetBlocked(ctx, email, blocked); err != nil {
		return err
	}

	action := model.ActionUserBlocked
	if !blocked {
		action = model.ActionUserUnblocked
	}
	s.audit(ctx, adminUser, action, email)
	return s.cache.InvalidateUser(ctx, email)
}

func (s *userService) AdjustQuota(ctx context.Context, adminUser, email string, newQuota int) error {
	email = util.NormalizeEmail(email)
	if err := s.requireUser(ctx, email); err != nil {
		return err
	}
	if err := s.userRepo.AdjustQuota(ctx, email, newQuota); err != nil {
		return err
	}

	s.audit(ctx, adminUser, model.ActionQuotaAdjusted, fmt.Sprintf("%s quota=%d", email, newQuota))
	return s.cache.InvalidateUser(ctx, email)
}

func (s *userService) ChangePlan(ctx context.Context, adminUser, email, newPlan string) error {
	email = util.NormalizeEmail(email)
	if err := s.requireUser(ctx, email); err != nil {
		return err
	}

	var (
		remaining int
		expiry    *time.Time
	)
	switch newPlan {
	case model.PlanFree:
		remaining = exam.FreeQuestionLimit
	case model.PlanPro:
		remaining = exam.ProQuestionBonus
	case model.PlanPremium:
		remaining = exam.PremiumQuotaSentinel
		t := time.Now().AddDate(0, 0, exam.PremiumDurationDays)
		expiry = &t
	default:
		return fmt.Errorf("unknown plan %q", newPlan)
	}

	if err := s.userRepo.UpdatePlan(ctx, email, newPlan, remaining, expiry); err != nil {
		return err
	}
	s.audit(ctx, adminUser, model.ActionPlanChanged, fmt.Sprintf("%s plan=%s", email, newPlan))
	return s.cache.InvalidateUser(ctx, email)
}

func (s *userService) DeleteUser(ctx context.Context, adminUser, email string) error {
	email = util.NormalizeEmail(email)
	if err := s.requireUser(ctx, email); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, email); err != nil {
		return err
	}
	s.audit(ctx, adminUser, model.ActionUserDeleted, email)
	return s.cache.InvalidateUser(ctx, email)
}

func (s *userService) AllLogs(ctx context.Context, limit int) ([]model.UsageLog, error) {
	return s.usageRepo.ListAllLogs(ctx, limit)
}

func (s *userService) AdminActions(ctx context.Context, limit int) ([]model.AdminAction, error) {
	return s.usageRepo.ListAdminActions(ctx, limit)
}

func (s *userService) PlanCounts(ctx context.Context) (map[string]int, error) {
	return s.userRepo.CountByPlan(ctx)
}

func (s *userService) requireUser(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) audit(ctx context.Context, adminUser, actionType, details string) {
	if err := s.usageRepo.LogAdminAction(ctx, adminUser, actionType, details); err != nil {
		s.userLogger.Warn().Err(err).Str("action", actionType).Msg("Failed to log admin action")
	}
}
