package subscriber

import (
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/validator_pb2"
	zmq "github.com/pebbe/zmq4"
	"github.com/pkg/errors"
)

// ZmqValidatorConnection is a ValidatorConnection over a ZMQ DEALER socket.
// The validator interleaves correlated responses with unsolicited event
// deliveries on the same socket, so messages read while waiting for one kind
// are stashed for the other. Not safe for concurrent use; the subscriber
// drives it from a single goroutine.
type ZmqValidatorConnection struct {
	socket  *zmq.Socket
	poller  *zmq.Poller
	pending map[string]*validator_pb2.Message
	queued  []*validator_pb2.Message
}

// NewZmqValidatorConnection connects a DEALER socket to the validator's
// component endpoint.
func NewZmqValidatorConnection(zmqCtx *zmq.Context, endpoint string) (*ZmqValidatorConnection, error) {
	socket, err := zmqCtx.NewSocket(zmq.DEALER)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create socket")
	}
	if err := socket.SetIdentity(uuid.New().String()); err != nil {
		socket.Close()
		return nil, errors.Wrap(err, "failed to set socket identity")
	}
	if err := socket.Connect(endpoint); err != nil {
		socket.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s", endpoint)
	}

	poller := zmq.NewPoller()
	poller.Add(socket, zmq.POLLIN)

	return &ZmqValidatorConnection{
		socket:  socket,
		poller:  poller,
		pending: make(map[string]*validator_pb2.Message),
	}, nil
}

// SendNewMsg wraps content in a message envelope under a fresh correlation id,
// sends it, and returns the id.
func (c *ZmqValidatorConnection) SendNewMsg(messageType validator_pb2.Message_MessageType, content []byte) (string, error) {
	correlationID := uuid.New().String()
	envelope, err := proto.Marshal(&validator_pb2.Message{
		MessageType:   messageType,
		CorrelationId: correlationID,
		Content:       content,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal message envelope")
	}
	if _, err := c.socket.SendBytes(envelope, 0); err != nil {
		return "", errors.Wrap(err, "failed to send message")
	}
	return correlationID, nil
}

// RecvMsgWithId blocks until the message bearing correlationID arrives.
// Unsolicited event deliveries read in the meantime are queued for
// RecvMsgTimeout; responses to other requests are held by correlation id.
func (c *ZmqValidatorConnection) RecvMsgWithId(correlationID string) (*validator_pb2.Message, error) {
	if msg, ok := c.pending[correlationID]; ok {
		delete(c.pending, correlationID)
		return msg, nil
	}
	for {
		msg, err := c.recvEnvelope()
		if err != nil {
			return nil, err
		}
		if msg.GetCorrelationId() == correlationID {
			return msg, nil
		}
		c.stash(msg)
	}
}

// RecvMsgTimeout returns the next queued or delivered message, or
// ErrRecvTimeout if none arrives within the timeout.
func (c *ZmqValidatorConnection) RecvMsgTimeout(timeout time.Duration) (*validator_pb2.Message, error) {
	if len(c.queued) > 0 {
		msg := c.queued[0]
		c.queued = c.queued[1:]
		return msg, nil
	}
	sockets, err := c.poller.Poll(timeout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to poll socket")
	}
	if len(sockets) == 0 {
		return nil, ErrRecvTimeout
	}
	return c.recvEnvelope()
}

// Close releases the socket.
func (c *ZmqValidatorConnection) Close() {
	c.socket.Close()
}

func (c *ZmqValidatorConnection) recvEnvelope() (*validator_pb2.Message, error) {
	raw, err := c.socket.RecvBytes(0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to receive message")
	}
	var msg validator_pb2.Message
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message envelope")
	}
	return &msg, nil
}

// stash files a message read while waiting for a different one. Event
// deliveries go to the queue; everything else is held by correlation id.
func (c *ZmqValidatorConnection) stash(msg *validator_pb2.Message) {
	if msg.GetMessageType() == validator_pb2.Message_CLIENT_EVENTS {
		c.queued = append(c.queued, msg)
		return
	}
	c.pending[msg.GetCorrelationId()] = msg
}
