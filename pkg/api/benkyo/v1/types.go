// Package benkyov1 holds the request and response messages of the benkyo
// Connect API. Messages are plain structs encoded with Codec.
package benkyov1

type Topic struct {
	Name          string `json:"name"`
	File          string `json:"file,omitempty"`
	QuestionCount int32  `json:"question_count"`
}

type PaginationRequest struct {
	PageNo   int32 `json:"page_no,omitempty"`
	PageSize int32 `json:"page_size,omitempty"`
}

type PaginationResponse struct {
	Total  int32 `json:"total"`
	PageNo int32 `json:"page_no,omitempty"`
}

type ListTopicsRequest struct {
	Filter     string             `json:"filter,omitempty"`
	OrderBy    string             `json:"order_by,omitempty"`
	Pagination *PaginationRequest `json:"pagination,omitempty"`
}

func (r *ListTopicsRequest) GetFilter() string {
	if r == nil {
		return ""
	}
	return r.Filter
}

func (r *ListTopicsRequest) GetOrderBy() string {
	if r == nil {
		return ""
	}
	return r.OrderBy
}

func (r *ListTopicsRequest) GetPagination() *PaginationRequest {
	if r == nil {
		return nil
	}
	return r.Pagination
}

type ListTopicsResponse struct {
	Topics     []*Topic            `json:"topics"`
	Pagination *PaginationResponse `json:"pagination"`
}

type QuizQuestion struct {
	Prompt       string   `json:"prompt"`
	Answer       string   `json:"answer"`
	Alternatives []string `json:"alternatives,omitempty"`
	Hint         string   `json:"hint,omitempty"`
	UserAnswer   string   `json:"user_answer,omitempty"`
}

type StartQuizRequest struct {
	Topic         string `json:"topic"`
	Direction     string `json:"direction"`
	QuestionCount int32  `json:"question_count,omitempty"`
}

type StartQuizResponse struct {
	Topic     string          `json:"topic"`
	Direction string          `json:"direction"`
	Questions []*QuizQuestion `json:"questions"`
}

type SubmitQuizRequest struct {
	Questions []*QuizQuestion `json:"questions"`
}

type QuizResult struct {
	Question  *QuizQuestion `json:"question"`
	IsCorrect bool          `json:"is_correct"`
}

type SubmitQuizResponse struct {
	Results []*QuizResult `json:"results"`
	Correct int32         `json:"correct"`
	Total   int32         `json:"total"`
	Score   int32         `json:"score"`
}

type ConvertRequest struct {
	Number int32 `json:"number"`
}

type ConvertResponse struct {
	Number  int32  `json:"number"`
	Reading string `json:"reading"`
}

type ReadingsRequest struct {
	Number int32 `json:"number"`
}

type ReadingsResponse struct {
	Number   int32    `json:"number"`
	Readings []string `json:"readings"`
}

type NewQuestionRequest struct {
	Direction string `json:"direction"`
}

type NumberQuestion struct {
	Number    int32  `json:"number"`
	Direction string `json:"direction"`
	Prompt    string `json:"prompt"`
}

type CheckRequest struct {
	Answer    string `json:"answer"`
	Number    int32  `json:"number"`
	Direction string `json:"direction"`
}

type CheckResponse struct {
	Correct  bool     `json:"correct"`
	Expected string   `json:"expected"`
	Accepted []string `json:"accepted"`
}
