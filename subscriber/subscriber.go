// Package subscriber negotiates the event subscription with the validator
// and drives the receive loop. The protocol is a correlated request/response
// exchange: a subscribe request offering a window of known block ids, an OK
// or UNKNOWN_BLOCK response (the latter retried with progressively older
// windows until the genesis sentinel is offered), a stream of event frames,
// and an unsubscribe handshake on the way out.
package subscriber

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/client_event_pb2"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/events_pb2"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/validator_pb2"

	"github.com/target/consensource-sds/addressing"
	serrors "github.com/target/consensource-sds/errors"
	"github.com/target/consensource-sds/logging"
	"github.com/target/consensource-sds/metrics"
)

// NullBlockID is the genesis sentinel. Offering it alone asks the validator
// to replay from the beginning of the chain, which it must always accept.
const NullBlockID = "0000000000000000"

const (
	// knownCount is the size of each known-block-id window offered during
	// subscription.
	knownCount = 10
	// recvTimeout bounds each receive poll so the loop can observe the
	// cancellation flag between deliveries.
	recvTimeout = 1 * time.Second
)

// ErrRecvTimeout is returned by ValidatorConnection.RecvMsgTimeout when no
// message arrives within the timeout.
var ErrRecvTimeout = stderrors.New("receive timed out")

// ValidatorConnection is the correlated request/response channel to the
// validator. The subscriber owns both halves for its lifetime and calls it
// from a single goroutine.
type ValidatorConnection interface {
	// SendNewMsg sends content under a fresh correlation id and returns
	// that id.
	SendNewMsg(messageType validator_pb2.Message_MessageType, content []byte) (string, error)
	// RecvMsgWithId blocks until the response bearing correlationID
	// arrives.
	RecvMsgWithId(correlationID string) (*validator_pb2.Message, error)
	// RecvMsgTimeout returns the next delivered message, or ErrRecvTimeout
	// if none arrives within the timeout.
	RecvMsgTimeout(timeout time.Duration) (*validator_pb2.Message, error)
	// Close releases the send side of the channel.
	Close()
}

// FrameHandler consumes the raw bytes of one delivered event frame.
type FrameHandler interface {
	HandleEvents(ctx context.Context, data []byte) error
}

// Subscriber is the subscription protocol state machine.
type Subscriber struct {
	conn    ValidatorConnection
	handler FrameHandler
	logger  *logging.ComponentLogger
	active  atomic.Bool
}

// New creates a subscriber over an established validator connection.
func New(conn ValidatorConnection, handler FrameHandler, logger *logging.ComponentLogger) *Subscriber {
	return &Subscriber{
		conn:    conn,
		handler: handler,
		logger:  logger,
	}
}

// Shutdown clears the active flag. It is safe to call from another
// goroutine, typically a signal handler; the receive loop observes the flag
// within one poll timeout and unsubscribes before Start returns.
func (s *Subscriber) Shutdown() {
	s.active.Store(false)
}

// Start subscribes to block-commit and state-delta events, offering up to
// ten known block ids beginning at startIndex, then runs the receive loop
// until cancellation or a fatal error. On UNKNOWN_BLOCK the subscription is
// retried with the next older window of the same known-id list; once the
// genesis sentinel has been offered the validator must accept. The loop exit
// path always attempts a clean unsubscribe.
func (s *Subscriber) Start(ctx context.Context, knownBlockIDs []string, startIndex int) error {
	for {
		offered := lastKnownBlockIDs(knownBlockIDs, startIndex)
		offeredGenesis := len(offered) == 1 && offered[0] == NullBlockID
		if offeredGenesis {
			s.logger.Debug().Msg("Subscribing to events starting from the genesis block")
		} else {
			s.logger.Debug().Strs("block_ids", offered).Msg("Subscribing to events with known block ids")
		}

		status, err := s.subscribe(offered)
		if err != nil {
			return err
		}

		if status == client_event_pb2.ClientEventsSubscribeResponse_OK {
			break
		}
		if status == client_event_pb2.ClientEventsSubscribeResponse_UNKNOWN_BLOCK {
			if offeredGenesis {
				return serrors.Connectionf("the validator rejected the genesis block offer")
			}
			s.logger.Debug().Msg("Validator returned UNKNOWN_BLOCK response, trying again with new set of blocks")
			metrics.ReorgRetries.Inc()
			startIndex += knownCount
			continue
		}
		return serrors.Connectionf("the validator returned an invalid response %v", status)
	}

	s.logger.Info().Msg("Successfully subscribed to receive events from validator")
	s.active.Store(true)

	loopErr := s.receiveLoop(ctx)
	if stopErr := s.Stop(); loopErr == nil {
		return stopErr
	}
	return loopErr
}

// subscribe performs one subscribe exchange and returns the response status.
func (s *Subscriber) subscribe(lastKnownBlockIDs []string) (client_event_pb2.ClientEventsSubscribeResponse_Status, error) {
	request := buildSubscriptionRequest(lastKnownBlockIDs)
	content, err := proto.Marshal(request)
	if err != nil {
		return 0, serrors.ConnectionWrap(err)
	}

	correlationID, err := s.conn.SendNewMsg(validator_pb2.Message_CLIENT_EVENTS_SUBSCRIBE_REQUEST, content)
	if err != nil {
		return 0, serrors.ConnectionWrap(err)
	}
	reply, err := s.conn.RecvMsgWithId(correlationID)
	if err != nil {
		return 0, serrors.ConnectionWrap(err)
	}

	var response client_event_pb2.ClientEventsSubscribeResponse
	if err := proto.Unmarshal(reply.GetContent(), &response); err != nil {
		return 0, serrors.ConnectionWrap(err)
	}
	return response.GetStatus(), nil
}

// receiveLoop polls for event frames until the active flag is cleared or
// handling fails. Poll timeouts only re-check the flag; any other receive
// failure is fatal.
func (s *Subscriber) receiveLoop(ctx context.Context) error {
	for s.active.Load() {
		msg, err := s.conn.RecvMsgTimeout(recvTimeout)
		if stderrors.Is(err, ErrRecvTimeout) {
			continue
		}
		if err != nil {
			return serrors.ConnectionWrap(err)
		}
		if err := s.handler.HandleEvents(ctx, msg.GetContent()); err != nil {
			return err
		}
	}
	return nil
}

// Stop sends the unsubscribe request, awaits an OK, and releases the
// connection's send side.
func (s *Subscriber) Stop() error {
	content, err := proto.Marshal(&client_event_pb2.ClientEventsUnsubscribeRequest{})
	if err != nil {
		return serrors.ConnectionWrap(err)
	}

	correlationID, err := s.conn.SendNewMsg(validator_pb2.Message_CLIENT_EVENTS_UNSUBSCRIBE_REQUEST, content)
	if err != nil {
		return serrors.ConnectionWrap(err)
	}
	reply, err := s.conn.RecvMsgWithId(correlationID)
	if err != nil {
		return serrors.ConnectionWrap(err)
	}

	var response client_event_pb2.ClientEventsUnsubscribeResponse
	if err := proto.Unmarshal(reply.GetContent(), &response); err != nil {
		return serrors.ConnectionWrap(err)
	}
	if response.GetStatus() != client_event_pb2.ClientEventsUnsubscribeResponse_OK {
		return serrors.Connectionf("the validator returned an invalid response %v", response.GetStatus())
	}

	s.logger.Info().Msg("Successfully unsubscribed from receiving events from validator")
	s.conn.Close()
	return nil
}

// lastKnownBlockIDs selects the window of up to knownCount ids starting at
// startIndex. Past the end of the list only the genesis sentinel remains to
// offer.
func lastKnownBlockIDs(knownBlockIDs []string, startIndex int) []string {
	if startIndex >= len(knownBlockIDs) {
		return []string{NullBlockID}
	}
	end := startIndex + knownCount
	if end > len(knownBlockIDs) {
		end = len(knownBlockIDs)
	}
	return knownBlockIDs[startIndex:end]
}

// buildSubscriptionRequest builds the subscribe request: commit events
// unfiltered, state-delta events filtered to addresses under the certificate
// registry namespace.
func buildSubscriptionRequest(lastKnownBlockIDs []string) *client_event_pb2.ClientEventsSubscribeRequest {
	blockCommitSubscription := &events_pb2.EventSubscription{
		EventType: "sawtooth/block-commit",
	}
	stateDeltaSubscription := &events_pb2.EventSubscription{
		EventType: "sawtooth/state-delta",
		Filters: []*events_pb2.EventFilter{{
			Key:         "address",
			MatchString: "^" + addressing.Prefix(),
			FilterType:  events_pb2.EventFilter_REGEX_ANY,
		}},
	}
	return &client_event_pb2.ClientEventsSubscribeRequest{
		Subscriptions:     []*events_pb2.EventSubscription{blockCommitSubscription, stateDeltaSubscription},
		LastKnownBlockIds: lastKnownBlockIDs,
	}
}
