package uzu

import (
	"reflect"

	"go.uber.org/zap"
)

// Message is anything sent through a Messenger. Messages that require a
// receiver are reported when nobody is subscribed to their type.
type Message interface {
	RequiresReceiver() bool
}

// BaseMessage can be embedded to satisfy Message. By default a receiver is
// required; set Optional to allow sending into the void.
type BaseMessage struct {
	Optional bool
}

func (m BaseMessage) RequiresReceiver() bool { return !m.Optional }

// Subscriber receives messages.
type Subscriber interface {
	OnReceiveMessage(msg Message)
}

// Messenger dispatches messages to subscribers by the message's dynamic type.
// Subscribers are called in subscription order.
type Messenger struct {
	subs map[reflect.Type][]Subscriber
	log  *zap.Logger
}

// NewMessenger creates an empty messenger.
func NewMessenger() *Messenger {
	return &Messenger{subs: make(map[reflect.Type][]Subscriber), log: logger}
}

// AddSubscriber subscribes sub to messages of type M. Subscribing the same
// subscriber twice has no effect.
func AddSubscriber[M Message](m *Messenger, sub Subscriber) {
	if sub == nil {
		return
	}
	t := reflect.TypeFor[M]()
	list := m.subs[t]
	if indexSubscriber(list, sub) >= 0 {
		return
	}
	m.subs[t] = append(list, sub)
}

// RemoveSubscriber unsubscribes sub from messages of type M.
func RemoveSubscriber[M Message](m *Messenger, sub Subscriber) {
	t := reflect.TypeFor[M]()
	list := m.subs[t]
	if i := indexSubscriber(list, sub); i >= 0 {
		m.subs[t] = append(list[:i], list[i+1:]...)
	}
}

// Send delivers msg to every subscriber of its type. If msg requires a
// receiver and nobody got it, the miss is logged and ErrNoReceiver returned.
func (m *Messenger) Send(msg Message) error {
	if msg == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	list := m.subs[t]
	for _, sub := range list {
		sub.OnReceiveMessage(msg)
	}
	if len(list) == 0 && msg.RequiresReceiver() {
		m.log.Error("message requires receiver", zap.Stringer("type", t))
		return ErrNoReceiver
	}
	return nil
}

// indexSubscriber finds sub in list. Subscribers of non-comparable dynamic
// types are never considered duplicates.
func indexSubscriber(list []Subscriber, sub Subscriber) int {
	if !reflect.TypeOf(sub).Comparable() {
		return -1
	}
	for i, s := range list {
		if reflect.TypeOf(s) == reflect.TypeOf(sub) && s == sub {
			return i
		}
	}
	return -1
}
