package usecase

import (
	"context"
	"errors"
	"time"

	"skill-swap-service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SwapUseCase реализует машину состояний обмена навыками.
type SwapUseCase struct {
	swapRepo       domain.SwapRepository
	userRepo       domain.UserRepository
	skillRepo      domain.SkillRepository
	observer       domain.SwapObserver
	responseWindow time.Duration
	policy         domain.MatchPolicy
	clock          Clock
	logger         *logrus.Logger
}

// NewSwapUseCase создает новый экземпляр SwapUseCase.
func NewSwapUseCase(
	swapRepo domain.SwapRepository,
	userRepo domain.UserRepository,
	skillRepo domain.SkillRepository,
	observer domain.SwapObserver,
	responseWindow time.Duration,
	policy domain.MatchPolicy,
	clock Clock,
	logger *logrus.Logger,
) domain.SwapUseCase {
	if responseWindow <= 0 {
		responseWindow = domain.DefaultResponseWindow
	}
	if policy.MaxLimit <= 0 {
		policy = domain.DefaultMatchPolicy()
	}
	return &SwapUseCase{
		swapRepo:       swapRepo,
		userRepo:       userRepo,
		skillRepo:      skillRepo,
		observer:       observer,
		responseWindow: responseWindow,
		policy:         policy,
		clock:          clock,
		logger:         logger,
	}
}

// CreateSwap создает предложение обмена в состоянии PENDING.
func (uc *SwapUseCase) CreateSwap(ctx context.Context, actorID string, input domain.CreateSwapInput) (*domain.Swap, error) {
	// Валидация входных данных
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if input.RequestedUserID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if input.OfferedSkillID == "" || input.RequestedSkillID == "" {
		return nil, domain.ErrInvalidSkillID
	}

	// 1. Нельзя предлагать обмен самому себе
	if actorID == input.RequestedUserID {
		return nil, domain.ErrInvalidParticipant
	}

	// 2. Обе стороны должны быть активны и не заблокированы
	requester, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !requester.CanParticipate() {
		return nil, domain.ErrInvalidParticipant
	}

	requested, err := uc.userRepo.GetByID(ctx, input.RequestedUserID)
	if err != nil {
		return nil, err
	}
	if !requested.CanParticipate() {
		return nil, domain.ErrInvalidParticipant
	}

	// 3. Навыки должны быть одобренными предложениями соответствующих сторон
	if err := uc.checkOwnership(ctx, actorID, input.OfferedSkillID); err != nil {
		return nil, err
	}
	if err := uc.checkOwnership(ctx, input.RequestedUserID, input.RequestedSkillID); err != nil {
		return nil, err
	}

	swap := domain.NewSwap(
		uuid.NewString(),
		actorID,
		input.RequestedUserID,
		input.OfferedSkillID,
		input.RequestedSkillID,
		input.Details,
		uc.clock.now(),
		uc.responseWindow,
	)

	// 4. Проверяем, что такого же ожидающего обмена нет
	exists, err := uc.swapRepo.ExistsPending(ctx, swap.Key())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicatePendingSwap
	}

	if err := uc.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}

	return swap, nil
}

func (uc *SwapUseCase) checkOwnership(ctx context.Context, userID, skillID string) error {
	offer, err := uc.skillRepo.GetUserOffer(ctx, userID, skillID)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return domain.ErrSkillNotOwned
		}
		return err
	}
	if !offer.IsApproved {
		return domain.ErrSkillNotOwned
	}
	return nil
}

// AcceptSwap принимает обмен. После истечения срока обмен сохраняется в REJECTED,
// и вместе с ним возвращается ErrDeadlineExpired.
func (uc *SwapUseCase) AcceptSwap(ctx context.Context, actorID, swapID string, startDate *time.Time, location string) (*domain.Swap, error) {
	swap, err := uc.transition(ctx, actorID, swapID, func(s *domain.Swap, now time.Time) error {
		return s.Accept(actorID, now, startDate, location)
	})
	if errors.Is(err, domain.ErrDeadlineExpired) && swap != nil {
		uc.logger.WithFields(logrus.Fields{
			"swap_id":  swapID,
			"deadline": swap.ResponseDeadline,
		}).Info("Swap rejected on accept: response deadline expired")
	}
	return swap, err
}

// RejectSwap отклоняет ожидающий обмен.
func (uc *SwapUseCase) RejectSwap(ctx context.Context, actorID, swapID, reason string) (*domain.Swap, error) {
	return uc.transition(ctx, actorID, swapID, func(s *domain.Swap, now time.Time) error {
		return s.Reject(actorID, reason, now)
	})
}

// StartSwap переводит принятый обмен в IN_PROGRESS.
func (uc *SwapUseCase) StartSwap(ctx context.Context, actorID, swapID string) (*domain.Swap, error) {
	return uc.transition(ctx, actorID, swapID, func(s *domain.Swap, now time.Time) error {
		return s.Start(actorID, now)
	})
}

// UpdateProgress обновляет прогресс стороны actorID и завершает обмен, когда обе стороны достигли 100.
func (uc *SwapUseCase) UpdateProgress(ctx context.Context, actorID, swapID string, percent int) (*domain.Swap, error) {
	if percent < 0 || percent > domain.MaxProgress {
		return nil, domain.ErrInvalidProgress
	}
	return uc.transition(ctx, actorID, swapID, func(s *domain.Swap, now time.Time) error {
		return s.UpdateProgress(actorID, percent, now)
	})
}

// CompleteSwap принудительно завершает начатый обмен.
func (uc *SwapUseCase) CompleteSwap(ctx context.Context, actorID, swapID string) (*domain.Swap, error) {
	return uc.transition(ctx, actorID, swapID, func(s *domain.Swap, now time.Time) error {
		return s.Complete(actorID, now)
	})
}

// CancelSwap отменяет обмен с сохранением истории.
func (uc *SwapUseCase) CancelSwap(ctx context.Context, actorID, swapID, reason string) (*domain.Swap, error) {
	return uc.transition(ctx, actorID, swapID, func(s *domain.Swap, now time.Time) error {
		return s.Cancel(actorID, reason, now)
	})
}

// UpdateSwapDetails применяет частичное обновление к ожидающему обмену инициатора.
func (uc *SwapUseCase) UpdateSwapDetails(ctx context.Context, actorID, swapID string, patch domain.SwapDetailsPatch) (*domain.Swap, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	return uc.transition(ctx, actorID, swapID, func(s *domain.Swap, now time.Time) error {
		return s.ApplyDetails(actorID, patch, now)
	})
}

// DeleteSwap удаляет ожидающий обмен по запросу инициатора.
func (uc *SwapUseCase) DeleteSwap(ctx context.Context, actorID, swapID string) error {
	if actorID == "" {
		return domain.ErrUnauthorized
	}
	if swapID == "" {
		return domain.ErrInvalidSwapID
	}
	return uc.swapRepo.Delete(ctx, swapID, func(s *domain.Swap) error {
		return s.CheckDelete(actorID)
	})
}

// GetSwap возвращает обмен одной из его сторон.
func (uc *SwapUseCase) GetSwap(ctx context.Context, actorID, swapID string) (*domain.SwapView, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	swap, err := uc.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParty(actorID) {
		return nil, domain.ErrForbidden
	}
	return domain.ViewSwap(swap, uc.clock.now()), nil
}

// ListSwaps возвращает входящие и/или исходящие обмены пользователя.
func (uc *SwapUseCase) ListSwaps(ctx context.Context, actorID string, filter domain.SwapFilter) ([]*domain.SwapView, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}

	switch filter.Direction {
	case "":
		filter.Direction = domain.DirectionAll
	case domain.DirectionAll, domain.DirectionIncoming, domain.DirectionOutgoing:
	default:
		return nil, domain.ErrInvalidDirection
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	limit, err := normalizePage(filter.Skip, filter.Limit, uc.policy.DefaultLimit, uc.policy.MaxLimit)
	if err != nil {
		return nil, err
	}
	filter.Limit = limit
	filter.UserID = actorID

	swaps, err := uc.swapRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := uc.clock.now()
	views := make([]*domain.SwapView, 0, len(swaps))
	for _, s := range swaps {
		views = append(views, domain.ViewSwap(s, now))
	}
	return views, nil
}

// transition применяет переход к обмену под блокировкой строки. Переход, который
// изменил обмен и все равно вернул ошибку (истекший срок), сохраняется.
func (uc *SwapUseCase) transition(ctx context.Context, actorID, swapID string, apply func(s *domain.Swap, now time.Time) error) (*domain.Swap, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if swapID == "" {
		return nil, domain.ErrInvalidSwapID
	}

	now := uc.clock.now()
	completed := false

	swap, err := uc.swapRepo.Mutate(ctx, swapID, func(s *domain.Swap) (bool, error) {
		before := s.Status
		applyErr := apply(s, now)
		completed = before != domain.SwapCompleted && s.Status == domain.SwapCompleted
		return applyErr == nil || errors.Is(applyErr, domain.ErrDeadlineExpired), applyErr
	})
	if err != nil {
		if errors.Is(err, domain.ErrDeadlineExpired) {
			return swap, err
		}
		return nil, err
	}

	if completed {
		uc.logger.WithFields(logrus.Fields{
			"swap_id":            swap.ID,
			"requester_id":       swap.RequesterID,
			"requested_user_id":  swap.RequestedUserID,
			"triggered_by_actor": actorID,
		}).Info("Swap completed")
		if uc.observer != nil {
			uc.observer.SwapCompleted(ctx, swap)
		}
	}

	return swap, nil
}
