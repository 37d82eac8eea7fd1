package tasks

import (
	"lexema.com/postag/redis"
)

const TagTasksDB redis.DB = 0

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// TagTask is the shared task document for one text to tag. Other services
// write their own fields into the same document; updates go through the
// merge-patch path so those survive.
type TagTask struct {
	DocID        string          `json:"document_id"`
	TextFileKey  string          `json:"text_file_key"`
	UserCanceled bool            `json:"user_canceled"`
	TaskStatuses TagTaskStatuses `json:"task_statuses"`
}

type TagTaskStatuses struct {
	Postag TagTaskInfo `json:"postag"`
}

type TagTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	ErrorMessages  []string   `json:"error_messages"`
}

type TagTasks struct {
	client redis.Client
}

func (tasks TagTasks) Get(redisKey string) (*TagTask, error) {
	var task TagTask
	err := tasks.client.GetDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks TagTasks) Update(redisKey string, updateFunc func(task *TagTask)) error {
	var task TagTask
	return tasks.client.UpdateDocument(redisKey, &task, func() {
		updateFunc(&task)
	})
}
