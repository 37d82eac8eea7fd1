package worker

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"lexema.com/postag/pipeline"
	"lexema.com/postag/tasks"
)

type failingMethod struct {
	fail bool
}

type withValue struct {
	fail          bool
	returnedValue interface{}
}

type pipelineMock struct {
	ppln   pipeline.Pipeline
	config pipelineMockConfig
	calls  pipelineCall
}

type pipelineMockConfig struct {
	fail   bool
	result string
}

type pipelineCall struct {
	pipeline bool
}

type redisMock struct {
	config redisMockConfig
	calls  redisMockCalls
}

type redisMockConfig struct {
	getTagTask            withValue
	onTaskCancelled       failingMethod
	onTaskStarted         failingMethod
	onTaskExceededRetries failingMethod
	onTaskFailedWithError failingMethod
	onTaskComplete        failingMethod
}

type redisMockCalls struct {
	getTagTask            bool
	onTaskCancelled       bool
	onTaskStarted         bool
	onTaskExceededRetries bool
	onTaskFailedWithError bool
	onTaskComplete        bool
}

type rmqMock struct {
	config rmqMockConfig
	calls  rmqMockCalls
}

type rmqMockConfig struct {
	sendCallback        failingMethod
	acknowledgeDelivery failingMethod
}

type rmqMockCalls struct {
	sendCallback        bool
	acknowledgeDelivery bool
	rejectDelivery      bool
}

type s3Mock struct {
	config s3MockConfig
	calls  s3MockCalls
}

type s3MockConfig struct {
	getTextData     withValue
	saveResultsFile failingMethod
}

type s3MockCalls struct {
	getTextData     bool
	saveResultsFile bool
}

func (mock s3Mock) close() {}

func (mock *rmqMock) close() {}

func (mock *redisMock) close() {}

func getPipelineMock(config pipelineMockConfig) *pipelineMock {
	var mock pipelineMock
	if config.fail {
		mock.ppln = func(request pipeline.Request) <-chan string {
			mock.calls.pipeline = true
			ch := make(chan string)
			close(ch)
			return ch
		}
	} else {
		mock.ppln = func(request pipeline.Request) <-chan string {
			mock.calls.pipeline = true
			ch := make(chan string, 1)
			ch <- mock.config.result
			close(ch)
			return ch
		}
	}
	return &mock
}

func (mock *redisMock) getTagTask(redisKey string) (*tasks.TagTask, error) {
	mock.calls.getTagTask = true
	if mock.config.getTagTask.fail {
		return nil, errors.New("failed to get tag task")
	}
	switch mock.config.getTagTask.returnedValue.(type) {
	case tasks.TagTask:
		task := mock.config.getTagTask.returnedValue.(tasks.TagTask)
		return &task, nil
	default:
		return &tasks.TagTask{}, nil
	}
}

func (mock *redisMock) onTaskStarted(task *Task) error {
	mock.calls.onTaskStarted = true
	if mock.config.onTaskStarted.fail {
		return errors.New("failed to update tag task on start")
	}
	return nil
}

func (mock *redisMock) onTaskCancelled(task *Task, errorMessages ...string) error {
	mock.calls.onTaskCancelled = true
	if mock.config.onTaskCancelled.fail {
		return errors.New("failed to update tag task on cancel")
	}
	return nil
}

func (mock *redisMock) onTaskExceededRetries(task *Task, maxRetries int) error {
	mock.calls.onTaskExceededRetries = true
	if mock.config.onTaskExceededRetries.fail {
		return errors.New("failed to update tag task on exceeded retries")
	}
	return nil
}

func (mock *redisMock) onTaskFailedWithError(task *Task, err error) error {
	mock.calls.onTaskFailedWithError = true
	if mock.config.onTaskFailedWithError.fail {
		return errors.New("failed to update tag task on fail with error")
	}
	return nil
}

func (mock *redisMock) onTaskComplete(task *Task) error {
	mock.calls.onTaskComplete = true
	if mock.config.onTaskComplete.fail {
		return errors.New("failed to update tag task on complete")
	}
	return nil
}

func (mock *rmqMock) rejectDelivery(delivery *amqp.Delivery, ptLogger *zerolog.Logger) {
	mock.calls.rejectDelivery = true
}

func (mock *rmqMock) getDeliveriesCh() <-chan amqp.Delivery {
	return nil
}

func (mock *rmqMock) getReqChanErrorsCh() <-chan *amqp.Error {
	return nil
}

func (mock *rmqMock) getRespChanErrorsCh() <-chan *amqp.Error {
	return nil
}

func (mock *rmqMock) sendCallback(task *Task, message Message) error {
	mock.calls.sendCallback = true
	if mock.config.sendCallback.fail {
		return errors.New("failed to send callback")
	}
	return nil
}

func (mock *rmqMock) acknowledgeDelivery(delivery *amqp.Delivery) error {
	mock.calls.acknowledgeDelivery = true
	if mock.config.acknowledgeDelivery.fail {
		return errors.New("failed to acknowledge delivery")
	}
	return nil
}

func (mock *s3Mock) getTextData(task *Task) ([]byte, error) {
	mock.calls.getTextData = true
	if mock.config.getTextData.fail {
		return nil, errors.New("mock: failed to load from s3")
	}
	switch mock.config.getTextData.returnedValue.(type) {
	case []byte:
		return mock.config.getTextData.returnedValue.([]byte), nil
	default:
		return []byte("some input"), nil
	}
}

func (mock *s3Mock) saveResultsFile(task *Task, result string) error {
	mock.calls.saveResultsFile = true
	if mock.config.saveResultsFile.fail {
		return errors.New("failed to upload results")
	}
	return nil
}
