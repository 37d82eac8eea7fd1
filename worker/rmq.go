package worker

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"lexema.com/postag/rmq"
)

type rmqTransactions interface {
	sendCallback(task *Task, message Message) error
	acknowledgeDelivery(delivery *amqp.Delivery) error
	rejectDelivery(delivery *amqp.Delivery, ptLogger *zerolog.Logger)
	getDeliveriesCh() <-chan amqp.Delivery
	getReqChanErrorsCh() <-chan *amqp.Error
	getRespChanErrorsCh() <-chan *amqp.Error
	close()
}

type rmqClientWrapper struct {
	rmqClient *rmq.Client
}

func (wrapper *rmqClientWrapper) close() {
	wrapper.rmqClient.Close()
}

func (wrapper *rmqClientWrapper) getDeliveriesCh() <-chan amqp.Delivery {
	return wrapper.rmqClient.Deliveries
}

func (wrapper *rmqClientWrapper) getReqChanErrorsCh() <-chan *amqp.Error {
	return wrapper.rmqClient.ReqChanErrors
}

func (wrapper *rmqClientWrapper) getRespChanErrorsCh() <-chan *amqp.Error {
	return wrapper.rmqClient.RespChanErrors
}

func (wrapper *rmqClientWrapper) sendCallback(task *Task, message Message) error {
	message.Sender = "postag"
	b, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return wrapper.rmqClient.SendCallback(
		amqp.Publishing{
			ContentType: task.delivery.ContentType,
			Body:        b,
		},
	)
}

func (wrapper *rmqClientWrapper) acknowledgeDelivery(delivery *amqp.Delivery) error {
	return delivery.Ack(false)
}

func (wrapper *rmqClientWrapper) rejectDelivery(delivery *amqp.Delivery, ptLogger *zerolog.Logger) {
	if delivery.Redelivered {
		ptLogger.Info().Msg("Rejecting delivery as it already has been redelivered")
		err := delivery.Reject(false)
		if err != nil {
			ptLogger.Err(err).Msg("Failed to reject delivery")
		}
		return
	}
	ptLogger.Info().Msg("Requeuing delivery as it has not been redelivered yet")
	err := delivery.Reject(true)
	if err != nil {
		ptLogger.Err(err).Msg("Failed to requeue delivery")
	}
}
