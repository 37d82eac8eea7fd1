package worker

import (
	"fmt"

	"lexema.com/postag/tasks"
)

type redisTransactions interface {
	getTagTask(redisKey string) (*tasks.TagTask, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) getTagTask(redisKey string) (*tasks.TagTask, error) {
	return wrapper.tasksClient.Tags.Get(redisKey)
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	err := wrapper.tasksClient.Tags.Update(task.redisKey, func(tagTask *tasks.TagTask) {
		tagTask.TaskStatuses.Postag.Status = tasks.TaskStatusStarted
		tagTask.TaskStatuses.Postag.Attempts += 1
		tagTask.TaskStatuses.Postag.StartedAt = getFormattedNow()
		tagTask.TaskStatuses.Postag.CompletedAt = nil
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	err := wrapper.tasksClient.Tags.Update(task.redisKey, func(tagTask *tasks.TagTask) {
		tagTask.TaskStatuses.Postag.Status = tasks.TaskStatusCanceled
		tagTask.TaskStatuses.Postag.StartedAt = getFormattedNow()
		tagTask.TaskStatuses.Postag.CompletedAt = getFormattedNow()
		tagTask.TaskStatuses.Postag.Attempts += 1
		tagTask.TaskStatuses.Postag.ErrorMessages = append(
			tagTask.TaskStatuses.Postag.ErrorMessages,
			errorMessages...,
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	err := wrapper.tasksClient.Tags.Update(task.redisKey, func(tagTask *tasks.TagTask) {
		tagTask.TaskStatuses.Postag.Status = tasks.TaskStatusCompletedFailure
		tagTask.TaskStatuses.Postag.StartedAt = getFormattedNow()
		tagTask.TaskStatuses.Postag.CompletedAt = getFormattedNow()
		tagTask.TaskStatuses.Postag.Attempts += 1
		tagTask.TaskStatuses.Postag.ErrorMessages = append(
			tagTask.TaskStatuses.Postag.ErrorMessages,
			fmt.Sprintf(
				"Task has exceeded retries. (Attempts: %d, max retries: %d )",
				tagTask.TaskStatuses.Postag.Attempts,
				maxRetries,
			),
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.tasksClient.Tags.Update(task.redisKey, func(tagTask *tasks.TagTask) {
		tagTask.TaskStatuses.Postag.Status = tasks.TaskStatusFailed
		tagTask.TaskStatuses.Postag.CompletedAt = getFormattedNow()
		tagTask.TaskStatuses.Postag.ErrorMessages = append(tagTask.TaskStatuses.Postag.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.tasksClient.Tags.Update(task.redisKey, func(tagTask *tasks.TagTask) {
		if !tagTask.TaskStatuses.Postag.Status.Complete() {
			tagTask.TaskStatuses.Postag.Status = tasks.TaskStatusCompletedSuccess
		}
		tagTask.TaskStatuses.Postag.CompletedAt = getFormattedNow()
		tagTask.TaskStatuses.Postag.ResultsFileKey = getResultsFileKey(task)
	})
}
