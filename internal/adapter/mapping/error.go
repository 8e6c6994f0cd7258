package mapping

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/pkg/japanese"
)

// ToConnectError maps domain errors onto connect status codes. Errors that
// already carry a connect code pass through unchanged.
func ToConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, entity.ErrInvalidDirection),
		errors.Is(err, entity.ErrInvalidQuestionCount),
		errors.Is(err, entity.ErrInvalidTopicName),
		errors.Is(err, entity.ErrInvalidFilter),
		errors.Is(err, entity.ErrNoQuestions),
		errors.Is(err, japanese.ErrInvalidDirection),
		errors.Is(err, japanese.ErrOutOfRange):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, entity.ErrTopicNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, entity.ErrEmptyTopic):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
