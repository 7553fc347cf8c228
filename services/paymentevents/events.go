package paymentevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/myevents"
)

const (
	TopicName                 = "payment"
	paymentRequestCreatedName = TopicName + ".requestCreated"
	sourceAppliedName         = TopicName + ".sourceApplied"
	paymentCompletedName      = TopicName + ".completed"
	cartUpdatedName           = TopicName + ".cartUpdated"
)

type PaymentEventService interface {
	Subscribe(c context.Context) error
	OnPaymentRequestCreated(c context.Context, topic string, event PaymentRequestCreated) error
	OnSourceApplied(c context.Context, topic string, event SourceApplied) error
	OnPaymentCompleted(c context.Context, topic string, event PaymentCompleted) error
	OnCartUpdated(c context.Context, topic string, event CartUpdated) error
}

func DispatchEvent(c context.Context, reader io.Reader, service PaymentEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case paymentRequestCreatedName:
		{
			event := PaymentRequestCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentRequestCreated(c, envelope.Topic, event)
		}
	case sourceAppliedName:
		{
			event := SourceApplied{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnSourceApplied(c, envelope.Topic, event)
		}
	case paymentCompletedName:
		{
			event := PaymentCompleted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentCompleted(c, envelope.Topic, event)
		}
	case cartUpdatedName:
		{
			event := CartUpdated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCartUpdated(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf(envelope.EventTypeName))
	}
}

type PaymentRequestCreated struct {
	PaymentUID    string
	CartUID       string
	MethodName    string
	AmountInCents int64
	Currency      string
	Recurring     bool
}

func (e PaymentRequestCreated) GetEventTypeName() string {
	return paymentRequestCreatedName
}

func (e PaymentRequestCreated) GetAggregateName() string {
	return e.PaymentUID
}

type SourceApplied struct {
	PaymentUID string
	CartUID    string
	MethodName string
	SourceUID  string
	Flow       string
	State      string
}

func (e SourceApplied) GetEventTypeName() string {
	return sourceAppliedName
}

func (e SourceApplied) GetAggregateName() string {
	return e.PaymentUID
}

type PaymentCompleted struct {
	PaymentUID string
	CartUID    string
	MethodName string
	Status     string
	Success    bool
}

func (e PaymentCompleted) GetEventTypeName() string {
	return paymentCompletedName
}

func (e PaymentCompleted) GetAggregateName() string {
	return e.PaymentUID
}

type CartUpdated struct {
	CartUID       string
	AmountInCents int64
	Currency      string
	Mutation      string
}

func (e CartUpdated) GetEventTypeName() string {
	return cartUpdatedName
}

func (e CartUpdated) GetAggregateName() string {
	return e.CartUID
}
