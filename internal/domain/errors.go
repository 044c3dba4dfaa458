package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidSwapID     = errors.New("invalid swap id")
	ErrInvalidSkillID    = errors.New("invalid skill id")
	ErrInvalidSkillName  = errors.New("invalid skill name")
	ErrInvalidLevel      = errors.New("invalid proficiency level")
	ErrInvalidUrgency    = errors.New("invalid urgency")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrInvalidDirection  = errors.New("invalid swap direction")
	ErrInvalidStatus     = errors.New("invalid swap status")
	ErrEmptyPatch        = errors.New("nothing to update")
	ErrEmptyResponse     = errors.New("response must not be empty")
	ErrSelfFeedback      = errors.New("cannot give feedback to yourself")

	// Access errors
	ErrUnauthorized = errors.New("actor identity required")
	ErrForbidden    = errors.New("actor is not allowed to perform this operation")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Skill errors
	ErrSkillNotFound          = errors.New("skill not found")
	ErrSkillAlreadyExists     = errors.New("skill already exists")
	ErrOfferNotFound          = errors.New("skill offer not found")
	ErrOfferAlreadyExists     = errors.New("skill already offered by user")
	ErrRequestNotFound        = errors.New("skill request not found")
	ErrDuplicateActiveRequest = errors.New("active request for this skill already exists")

	// Swap errors
	ErrSwapNotFound         = errors.New("swap not found")
	ErrInvalidState         = errors.New("operation not allowed in current swap state")
	ErrInvalidParticipant   = errors.New("invalid swap participant")
	ErrSkillNotOwned        = errors.New("skill is not an approved offer of this user")
	ErrDuplicatePendingSwap = errors.New("identical pending swap already exists")
	ErrDeadlineExpired      = errors.New("swap response deadline expired")
	ErrNotCancellable       = errors.New("swap cannot be cancelled")

	// Feedback errors
	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrDuplicateFeedback = errors.New("feedback for this swap already given")
)

// HTTPError для ответов API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidUserID:     {Code: "VALIDATION_ERROR", Message: "user id is required"},
	ErrInvalidSwapID:     {Code: "VALIDATION_ERROR", Message: "swap id is required"},
	ErrInvalidSkillID:    {Code: "VALIDATION_ERROR", Message: "skill id is required"},
	ErrInvalidSkillName:  {Code: "VALIDATION_ERROR", Message: "skill name is required"},
	ErrInvalidLevel:      {Code: "VALIDATION_ERROR", Message: "unknown proficiency level"},
	ErrInvalidUrgency:    {Code: "VALIDATION_ERROR", Message: "unknown urgency"},
	ErrInvalidProgress:   {Code: "VALIDATION_ERROR", Message: "progress must be between 0 and 100"},
	ErrInvalidRating:     {Code: "VALIDATION_ERROR", Message: "rating must be between 1 and 5"},
	ErrInvalidPagination: {Code: "VALIDATION_ERROR", Message: "skip must be >= 0, limit must be within allowed range"},
	ErrInvalidDirection:  {Code: "VALIDATION_ERROR", Message: "direction must be incoming, outgoing or all"},
	ErrInvalidStatus:     {Code: "VALIDATION_ERROR", Message: "unknown swap status"},
	ErrEmptyPatch:        {Code: "VALIDATION_ERROR", Message: "nothing to update"},
	ErrEmptyResponse:     {Code: "VALIDATION_ERROR", Message: "response must not be empty"},
	ErrSelfFeedback:      {Code: "VALIDATION_ERROR", Message: "cannot give feedback to yourself"},

	ErrUnauthorized: {Code: "UNAUTHORIZED", Message: "actor identity required"},
	ErrForbidden:    {Code: "FORBIDDEN", Message: "not allowed for this actor"},

	ErrUserNotFound:     {Code: "NOT_FOUND", Message: "user not found"},
	ErrSkillNotFound:    {Code: "NOT_FOUND", Message: "skill not found"},
	ErrOfferNotFound:    {Code: "NOT_FOUND", Message: "skill offer not found"},
	ErrRequestNotFound:  {Code: "NOT_FOUND", Message: "skill request not found"},
	ErrSwapNotFound:     {Code: "NOT_FOUND", Message: "swap not found"},
	ErrFeedbackNotFound: {Code: "NOT_FOUND", Message: "feedback not found"},

	ErrSkillAlreadyExists:     {Code: "SKILL_EXISTS", Message: "skill already exists"},
	ErrOfferAlreadyExists:     {Code: "OFFER_EXISTS", Message: "skill already offered"},
	ErrDuplicateActiveRequest: {Code: "REQUEST_EXISTS", Message: "active request for this skill already exists"},
	ErrInvalidState:           {Code: "INVALID_STATE", Message: "operation not allowed in current swap state"},
	ErrInvalidParticipant:     {Code: "INVALID_PARTICIPANT", Message: "invalid swap participant"},
	ErrSkillNotOwned:          {Code: "SKILL_NOT_OWNED", Message: "skill is not an approved offer of this user"},
	ErrDuplicatePendingSwap:   {Code: "DUPLICATE_PENDING_SWAP", Message: "identical pending swap already exists"},
	ErrDeadlineExpired:        {Code: "DEADLINE_EXPIRED", Message: "response deadline expired, swap rejected"},
	ErrNotCancellable:         {Code: "NOT_CANCELLABLE", Message: "swap cannot be cancelled"},
	ErrDuplicateFeedback:      {Code: "FEEDBACK_EXISTS", Message: "feedback for this swap already given"},
}

// ToHTTPError преобразует domain ошибку (в том числе обернутую) в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	if httpErr, exists := ErrorMapping[err]; exists {
		return httpErr, true
	}
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
