package domain

import (
	"context"
	"time"
)

// SwapStatus - состояние жизненного цикла обмена.
type SwapStatus string

const (
	SwapPending    SwapStatus = "PENDING"
	SwapAccepted   SwapStatus = "ACCEPTED"
	SwapRejected   SwapStatus = "REJECTED"
	SwapInProgress SwapStatus = "IN_PROGRESS"
	SwapCompleted  SwapStatus = "COMPLETED"
	SwapCancelled  SwapStatus = "CANCELLED"
)

const (
	// DefaultResponseWindow - срок ответа на предложение обмена.
	DefaultResponseWindow = 7 * 24 * time.Hour

	// DeadlineExpiredReason записывается в обмен, отклоненный по истечении срока.
	DeadlineExpiredReason = "deadline expired"

	// MaxProgress - прогресс стороны, при котором ее часть обучения завершена.
	MaxProgress = 100
)

// swapTransitions - полный граф переходов. Терминальные состояния не имеют исходящих ребер.
var swapTransitions = map[SwapStatus][]SwapStatus{
	SwapPending:    {SwapAccepted, SwapRejected, SwapCancelled},
	SwapAccepted:   {SwapInProgress, SwapCancelled},
	SwapInProgress: {SwapCompleted, SwapCancelled},
	SwapRejected:   nil,
	SwapCompleted:  nil,
	SwapCancelled:  nil,
}

// Valid сообщает, является ли значение известным состоянием.
func (s SwapStatus) Valid() bool {
	_, ok := swapTransitions[s]
	return ok
}

// Terminal сообщает, что из состояния нет переходов.
func (s SwapStatus) Terminal() bool {
	return s.Valid() && len(swapTransitions[s]) == 0
}

// CanTransition проверяет наличие ребра from -> to.
func CanTransition(from, to SwapStatus) bool {
	for _, next := range swapTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Направления выборки обменов относительно пользователя.
const (
	DirectionAll      = "all"
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// Swap - договоренность о взаимном обучении между двумя пользователями.
type Swap struct {
	ID                    string
	RequesterID           string
	RequestedUserID       string
	OfferedSkillID        string
	RequestedSkillID      string
	Status                SwapStatus
	Message               string
	Location              string
	ResponseDeadline      time.Time
	ProposedStartDate     *time.Time
	ActualStartDate       *time.Time
	CompletionDate        *time.Time
	RespondedAt           *time.Time
	RequesterProgress     int
	RequestedUserProgress int
	CloseReason           string
	ClosedBy              string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int64
}

// SwapDetails - необязательные параметры предложения обмена.
type SwapDetails struct {
	Message           string
	ProposedStartDate *time.Time
	Location          string
}

// SwapDetailsPatch - частичное обновление деталей ожидающего обмена.
// nil-поле означает "не менять".
type SwapDetailsPatch struct {
	Message           *string
	ProposedStartDate *time.Time
	Location          *string
}

// Empty сообщает, что патч ничего не меняет.
func (p SwapDetailsPatch) Empty() bool {
	return p.Message == nil && p.ProposedStartDate == nil && p.Location == nil
}

// NewSwap создает обмен в состоянии PENDING со сроком ответа now + window.
func NewSwap(id, requesterID, requestedUserID, offeredSkillID, requestedSkillID string, details SwapDetails, now time.Time, window time.Duration) *Swap {
	if window <= 0 {
		window = DefaultResponseWindow
	}
	return &Swap{
		ID:                id,
		RequesterID:       requesterID,
		RequestedUserID:   requestedUserID,
		OfferedSkillID:    offeredSkillID,
		RequestedSkillID:  requestedSkillID,
		Status:            SwapPending,
		Message:           details.Message,
		Location:          details.Location,
		ProposedStartDate: details.ProposedStartDate,
		ResponseDeadline:  now.Add(window),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsParty сообщает, является ли пользователь одной из сторон обмена.
func (s *Swap) IsParty(userID string) bool {
	return userID != "" && (userID == s.RequesterID || userID == s.RequestedUserID)
}

// Counterpart возвращает вторую сторону обмена.
func (s *Swap) Counterpart(userID string) string {
	if userID == s.RequesterID {
		return s.RequestedUserID
	}
	return s.RequesterID
}

// Expired сообщает, что срок ответа истек, а обмен все еще ожидает ответа.
// Состояние при этом не меняется: просрочка разрешается только в Accept.
func (s *Swap) Expired(now time.Time) bool {
	return s.Status == SwapPending && now.After(s.ResponseDeadline)
}

func (s *Swap) moveTo(next SwapStatus, now time.Time) error {
	if !CanTransition(s.Status, next) {
		return ErrInvalidState
	}
	s.Status = next
	s.UpdatedAt = now
	return nil
}

// Accept принимает обмен от имени приглашенного пользователя.
// Если срок ответа истек, обмен переводится в REJECTED и возвращается ErrDeadlineExpired:
// изменение состояния нужно сохранить, несмотря на ошибку.
func (s *Swap) Accept(actor string, now time.Time, startDate *time.Time, location string) error {
	if actor != s.RequestedUserID {
		return ErrForbidden
	}
	if s.Status != SwapPending {
		return ErrInvalidState
	}

	if now.After(s.ResponseDeadline) {
		if err := s.moveTo(SwapRejected, now); err != nil {
			return err
		}
		s.CloseReason = DeadlineExpiredReason
		s.ClosedBy = ""
		s.RespondedAt = &now
		return ErrDeadlineExpired
	}

	if err := s.moveTo(SwapAccepted, now); err != nil {
		return err
	}
	s.RespondedAt = &now
	if startDate != nil {
		s.ProposedStartDate = startDate
	}
	if location != "" {
		s.Location = location
	}
	return nil
}

// Reject отклоняет ожидающий обмен.
func (s *Swap) Reject(actor, reason string, now time.Time) error {
	if actor != s.RequestedUserID {
		return ErrForbidden
	}
	if s.Status != SwapPending {
		return ErrInvalidState
	}
	if err := s.moveTo(SwapRejected, now); err != nil {
		return err
	}
	s.CloseReason = reason
	s.ClosedBy = actor
	s.RespondedAt = &now
	return nil
}

// Start начинает принятый обмен.
func (s *Swap) Start(actor string, now time.Time) error {
	if !s.IsParty(actor) {
		return ErrForbidden
	}
	if s.Status != SwapAccepted {
		return ErrInvalidState
	}
	if err := s.moveTo(SwapInProgress, now); err != nil {
		return err
	}
	s.ActualStartDate = &now
	return nil
}

// UpdateProgress обновляет прогресс стороны actor. Когда обе стороны достигают 100,
// обмен автоматически завершается, независимо от того, чье обновление было последним.
func (s *Swap) UpdateProgress(actor string, percent int, now time.Time) error {
	if !s.IsParty(actor) {
		return ErrForbidden
	}
	if percent < 0 || percent > MaxProgress {
		return ErrInvalidProgress
	}
	if s.Status != SwapInProgress {
		return ErrInvalidState
	}

	if actor == s.RequesterID {
		s.RequesterProgress = percent
	} else {
		s.RequestedUserProgress = percent
	}
	s.UpdatedAt = now

	if s.RequesterProgress == MaxProgress && s.RequestedUserProgress == MaxProgress {
		return s.complete(now)
	}
	return nil
}

// Complete принудительно завершает обмен, выставляя прогресс обеих сторон в 100.
func (s *Swap) Complete(actor string, now time.Time) error {
	if !s.IsParty(actor) {
		return ErrForbidden
	}
	if s.Status != SwapInProgress {
		return ErrInvalidState
	}
	s.RequesterProgress = MaxProgress
	s.RequestedUserProgress = MaxProgress
	return s.complete(now)
}

func (s *Swap) complete(now time.Time) error {
	if err := s.moveTo(SwapCompleted, now); err != nil {
		return err
	}
	s.CompletionDate = &now
	return nil
}

// Cancel отменяет обмен. Ожидающий обмен может отменить только инициатор,
// принятый или начатый - любая сторона.
func (s *Swap) Cancel(actor, reason string, now time.Time) error {
	if !s.IsParty(actor) {
		return ErrForbidden
	}

	switch s.Status {
	case SwapPending:
		if actor != s.RequesterID {
			return ErrNotCancellable
		}
	case SwapAccepted, SwapInProgress:
	default:
		return ErrNotCancellable
	}

	if err := s.moveTo(SwapCancelled, now); err != nil {
		return err
	}
	s.CloseReason = reason
	s.ClosedBy = actor
	return nil
}

// CheckDelete проверяет, может ли actor удалить обмен целиком.
func (s *Swap) CheckDelete(actor string) error {
	if actor != s.RequesterID {
		return ErrForbidden
	}
	if s.Status != SwapPending {
		return ErrInvalidState
	}
	return nil
}

// ApplyDetails применяет патч деталей к ожидающему обмену инициатора.
func (s *Swap) ApplyDetails(actor string, patch SwapDetailsPatch, now time.Time) error {
	if actor != s.RequesterID {
		return ErrForbidden
	}
	if s.Status != SwapPending {
		return ErrInvalidState
	}
	if patch.Message != nil {
		s.Message = *patch.Message
	}
	if patch.ProposedStartDate != nil {
		s.ProposedStartDate = patch.ProposedStartDate
	}
	if patch.Location != nil {
		s.Location = *patch.Location
	}
	s.UpdatedAt = now
	return nil
}

// SwapView - обмен с вычисленным признаком просрочки для чтения.
type SwapView struct {
	*Swap
	IsExpired bool
}

// ViewSwap строит представление обмена на момент now.
func ViewSwap(swap *Swap, now time.Time) *SwapView {
	return &SwapView{Swap: swap, IsExpired: swap.Expired(now)}
}

// SwapMutator применяет переход к заблокированной строке обмена.
// changed=true означает, что обмен нужно сохранить, даже если err != nil.
type SwapMutator func(swap *Swap) (changed bool, err error)

// SwapFilter задает выборку обменов пользователя.
type SwapFilter struct {
	UserID    string
	Direction string
	Status    SwapStatus
	Skip      int
	Limit     int
}

// SwapKey - кортеж, по которому определяются дубликаты ожидающих обменов.
type SwapKey struct {
	RequesterID      string
	RequestedUserID  string
	OfferedSkillID   string
	RequestedSkillID string
}

// Key возвращает кортеж дедупликации обмена.
func (s *Swap) Key() SwapKey {
	return SwapKey{
		RequesterID:      s.RequesterID,
		RequestedUserID:  s.RequestedUserID,
		OfferedSkillID:   s.OfferedSkillID,
		RequestedSkillID: s.RequestedSkillID,
	}
}

// SwapRepository определяет контракт для работы с хранилищем обменов.
type SwapRepository interface {
	// Create сохраняет новый обмен; ErrDuplicatePendingSwap, если такой ожидающий обмен уже есть.
	Create(ctx context.Context, swap *Swap) error
	GetByID(ctx context.Context, swapID string) (*Swap, error)
	// Mutate выполняет fn над строкой, заблокированной до конца транзакции.
	Mutate(ctx context.Context, swapID string, fn SwapMutator) (*Swap, error)
	// Delete удаляет обмен, если check над заблокированной строкой вернул nil.
	Delete(ctx context.Context, swapID string, check func(swap *Swap) error) error
	List(ctx context.Context, filter SwapFilter) ([]*Swap, error)
	ExistsPending(ctx context.Context, key SwapKey) (bool, error)
}

// SwapObserver получает уведомления о завершении обменов.
type SwapObserver interface {
	SwapCompleted(ctx context.Context, swap *Swap)
}
