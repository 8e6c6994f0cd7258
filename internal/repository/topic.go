package repository

import (
	"context"

	"github.com/eslsoft/benkyo/internal/entity"
)

// ListTopicQuery holds parameters for listing topics. The filter fields are
// populated from FilterOrder by the store.
type ListTopicQuery struct {
	Pagination
	FilterOrder

	Name         *string
	NamePrefix   *string
	Names        []string
	MinQuestions *int
	MaxQuestions *int

	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

// TopicRepository abstracts where topic files come from.
type TopicRepository interface {
	List(ctx context.Context, query *ListTopicQuery) ([]entity.TopicSummary, int64, error)
	Get(ctx context.Context, name string) (*entity.Topic, *entity.TopicData, error)
}
