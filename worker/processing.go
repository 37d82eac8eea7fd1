package worker

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"lexema.com/postag/pipeline"
	"lexema.com/postag/tasks"
	"lexema.com/postag/utils"
)

type Message struct {
	WorkType string `json:"work_type"`
	RedisKey string `json:"redis_key"`
	Sender   string `json:"sender"`
	Version  string `json:"version"`
}

type Task struct {
	delivery *amqp.Delivery
	tagTask  *tasks.TagTask
	message  *Message
	redisKey string
	ptLogger *zerolog.Logger
}

func (worker *Worker) processMessage(delivery *amqp.Delivery) {
	task, err := worker.createTask(delivery)
	rejectLogger := worker.ptLogger.With().Str("message_id", delivery.MessageId).Logger()
	if err != nil {
		worker.ptLogger.Err(err).
			Str("message_id", delivery.MessageId).
			Str("tid", string(delivery.Body)).
			Msg("Failed to create task for delivery")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.processTask(task); err != nil {
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.sendCallback(task, *task.message); err != nil {
		task.ptLogger.Err(err).Msg("Got error while sending message to callback queue")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.acknowledgeDelivery(delivery); err != nil {
		task.ptLogger.Err(err).Msg("Failed to acknowledge delivery")
	}
	task.ptLogger.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) createTask(delivery *amqp.Delivery) (*Task, error) {
	var message Message
	err := json.Unmarshal(delivery.Body, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal message, got error %w", err)
	}
	tagTask, err := worker.redis.getTagTask(message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag task for message, got error %w", err)
	}
	taskLogger := worker.ptLogger.With().Str("tid", message.RedisKey).Logger()
	task := Task{
		delivery: delivery,
		tagTask:  tagTask,
		redisKey: message.RedisKey,
		message:  &message,
		ptLogger: &taskLogger,
	}
	return &task, nil
}

func (worker *Worker) processTask(task *Task) error {
	shouldPerform, err := worker.shouldPerformTask(task)
	if err != nil {
		task.ptLogger.Err(err).
			Msg("Got error while trying to decide whether to run task")
		return err
	}
	if !shouldPerform {
		return nil
	}
	if err = worker.redis.onTaskStarted(task); err != nil {
		task.ptLogger.Err(err).Msg("Failed to update task info")
		return fmt.Errorf("failed to update task info: %w", err)
	}
	if err = worker.runPipeline(task); err != nil {
		task.ptLogger.Err(err).Msg("Got error while running pipeline")
		if err = worker.redis.onTaskFailedWithError(task, err); err != nil {
			return err
		}
		return nil
	}
	task.ptLogger.Info().Msg("Saved results, marking task as complete")
	if err = worker.redis.onTaskComplete(task); err != nil {
		task.ptLogger.Err(err).Msg("Got error while trying to mark task as complete")
		return err
	}
	return nil
}

func (worker *Worker) runPipeline(task *Task) (err error) {
	defer utils.RecoverWithError(&err)
	task.ptLogger.Info().Msgf("Processing message from RMQ, attempt # %d", task.tagTask.TaskStatuses.Postag.Attempts)
	data, err := worker.s3.getTextData(task)
	if err != nil {
		task.ptLogger.Err(err).Caller().Msg("Could not fetch text data from s3")
		return fmt.Errorf("failed fetch data from s3: %w", err)
	}
	request := pipeline.Request{
		Tid:  task.redisKey,
		Text: string(data),
	}
	result, ok := <-worker.ppln(request)
	if !ok {
		task.ptLogger.Error().Msg("Pipeline channel was closed before returning anything")
		return errors.New("pipeline channel was closed before returning anything")
	}
	task.ptLogger.Info().Msg("Finished pipeline, saving results to s3")
	if err = worker.s3.saveResultsFile(task, result); err != nil {
		task.ptLogger.Err(err).Msg("Got error while trying to save results")
		return err
	}
	return nil
}

func (worker *Worker) shouldPerformTask(task *Task) (bool, error) {
	taskInfo := task.tagTask.TaskStatuses.Postag
	taskLogger := task.ptLogger

	if taskInfo.Status.Complete() {
		taskLogger.Info().Msg("Task is already done. (might indicate issue acking message with RMQ). Sending callback.")
		return false, nil
	}
	if task.tagTask.UserCanceled {
		taskLogger.Info().Msg("Task was canceled by the user, no need to perform it. Sending callback.")
		err := worker.redis.onTaskCancelled(task)
		return false, err
	}
	if taskInfo.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Info().Msg("Tag task has exceeded retries. Sending callback.")
		err := worker.redis.onTaskExceededRetries(task, worker.config.TaskMaxRetries)
		return false, err
	}
	return true, nil
}
