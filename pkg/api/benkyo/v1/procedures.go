package benkyov1

const (
	TopicServiceName  = "benkyo.v1.TopicService"
	QuizServiceName   = "benkyo.v1.QuizService"
	NumberServiceName = "benkyo.v1.NumberService"
)

const (
	TopicServiceListTopicsProcedure = "/" + TopicServiceName + "/ListTopics"

	QuizServiceStartQuizProcedure  = "/" + QuizServiceName + "/StartQuiz"
	QuizServiceSubmitQuizProcedure = "/" + QuizServiceName + "/SubmitQuiz"

	NumberServiceConvertProcedure     = "/" + NumberServiceName + "/Convert"
	NumberServiceReadingsProcedure    = "/" + NumberServiceName + "/Readings"
	NumberServiceNewQuestionProcedure = "/" + NumberServiceName + "/NewQuestion"
	NumberServiceCheckProcedure       = "/" + NumberServiceName + "/Check"
)
