package entity

import "errors"

// Domain errors for topics, quizzes and number drills.
var (
	ErrTopicNotFound        = errors.New("topic not found")
	ErrInvalidTopicName     = errors.New("invalid topic name")
	ErrEmptyTopic           = errors.New("topic has no questions")
	ErrInvalidDirection     = errors.New("invalid quiz direction")
	ErrInvalidQuestionCount = errors.New("invalid question count")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrNoQuestions          = errors.New("no questions submitted")
)
