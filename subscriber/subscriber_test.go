package subscriber

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/client_event_pb2"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/validator_pb2"

	"github.com/target/consensource-sds/addressing"
	serrors "github.com/target/consensource-sds/errors"
	"github.com/target/consensource-sds/logging"
)

func testLogger() *logging.ComponentLogger {
	return logging.NewComponentLogger("subscriber-test", "0.0.0", 0)
}

type sentMessage struct {
	messageType validator_pb2.Message_MessageType
	content     []byte
}

// fakeConn scripts the validator side of the protocol. Subscribe requests are
// answered from subscribeStatuses in order; unsubscribe requests always get
// OK; event frames are delivered from events, then RecvMsgTimeout reports a
// timeout and fires onTimeout.
type fakeConn struct {
	sent              []sentMessage
	subscribeStatuses []client_event_pb2.ClientEventsSubscribeResponse_Status
	events            [][]byte
	onTimeout         func()
	replies           map[string]*validator_pb2.Message
	unsubscribed      bool
	closed            bool
}

func newFakeConn(statuses ...client_event_pb2.ClientEventsSubscribeResponse_Status) *fakeConn {
	return &fakeConn{
		subscribeStatuses: statuses,
		replies:           make(map[string]*validator_pb2.Message),
	}
}

func (c *fakeConn) SendNewMsg(messageType validator_pb2.Message_MessageType, content []byte) (string, error) {
	c.sent = append(c.sent, sentMessage{messageType: messageType, content: content})
	correlationID := fmt.Sprintf("corr-%d", len(c.sent))

	switch messageType {
	case validator_pb2.Message_CLIENT_EVENTS_SUBSCRIBE_REQUEST:
		if len(c.subscribeStatuses) == 0 {
			return "", fmt.Errorf("unexpected subscribe request")
		}
		status := c.subscribeStatuses[0]
		c.subscribeStatuses = c.subscribeStatuses[1:]
		content, err := proto.Marshal(&client_event_pb2.ClientEventsSubscribeResponse{Status: status})
		if err != nil {
			return "", err
		}
		c.replies[correlationID] = &validator_pb2.Message{
			MessageType:   validator_pb2.Message_CLIENT_EVENTS_SUBSCRIBE_RESPONSE,
			CorrelationId: correlationID,
			Content:       content,
		}
	case validator_pb2.Message_CLIENT_EVENTS_UNSUBSCRIBE_REQUEST:
		c.unsubscribed = true
		content, err := proto.Marshal(&client_event_pb2.ClientEventsUnsubscribeResponse{
			Status: client_event_pb2.ClientEventsUnsubscribeResponse_OK,
		})
		if err != nil {
			return "", err
		}
		c.replies[correlationID] = &validator_pb2.Message{
			MessageType:   validator_pb2.Message_CLIENT_EVENTS_UNSUBSCRIBE_RESPONSE,
			CorrelationId: correlationID,
			Content:       content,
		}
	}
	return correlationID, nil
}

func (c *fakeConn) RecvMsgWithId(correlationID string) (*validator_pb2.Message, error) {
	msg, ok := c.replies[correlationID]
	if !ok {
		return nil, fmt.Errorf("no reply scripted for %s", correlationID)
	}
	delete(c.replies, correlationID)
	return msg, nil
}

func (c *fakeConn) RecvMsgTimeout(timeout time.Duration) (*validator_pb2.Message, error) {
	if len(c.events) > 0 {
		frame := c.events[0]
		c.events = c.events[1:]
		return &validator_pb2.Message{
			MessageType: validator_pb2.Message_CLIENT_EVENTS,
			Content:     frame,
		}, nil
	}
	if c.onTimeout != nil {
		c.onTimeout()
	}
	return nil, ErrRecvTimeout
}

func (c *fakeConn) Close() {
	c.closed = true
}

// subscribeRequests decodes every subscribe request sent so far.
func (c *fakeConn) subscribeRequests(t *testing.T) []*client_event_pb2.ClientEventsSubscribeRequest {
	t.Helper()
	var requests []*client_event_pb2.ClientEventsSubscribeRequest
	for _, msg := range c.sent {
		if msg.messageType != validator_pb2.Message_CLIENT_EVENTS_SUBSCRIBE_REQUEST {
			continue
		}
		var request client_event_pb2.ClientEventsSubscribeRequest
		if err := proto.Unmarshal(msg.content, &request); err != nil {
			t.Fatalf("failed to decode subscribe request: %v", err)
		}
		requests = append(requests, &request)
	}
	return requests
}

type fakeHandler struct {
	frames [][]byte
	err    error
}

func (h *fakeHandler) HandleEvents(_ context.Context, data []byte) error {
	h.frames = append(h.frames, data)
	return h.err
}

func blockIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		ids = append(ids, fmt.Sprintf("block-%d", i))
	}
	return ids
}

func TestLastKnownBlockIDs(t *testing.T) {
	ids := blockIDs(15)

	tests := []struct {
		name       string
		known      []string
		startIndex int
		want       []string
	}{
		{
			name:       "full window from the head",
			known:      ids,
			startIndex: 0,
			want:       ids[0:10],
		},
		{
			name:       "partial window at the tail",
			known:      ids,
			startIndex: 10,
			want:       ids[10:15],
		},
		{
			name:       "past the end offers genesis",
			known:      ids,
			startIndex: 20,
			want:       []string{NullBlockID},
		},
		{
			name:       "empty database offers genesis",
			known:      nil,
			startIndex: 0,
			want:       []string{NullBlockID},
		},
		{
			name:       "window shorter than the known count",
			known:      ids[:3],
			startIndex: 0,
			want:       ids[:3],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lastKnownBlockIDs(tt.known, tt.startIndex)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lastKnownBlockIDs(%d) = %v, want %v", tt.startIndex, got, tt.want)
			}
		})
	}
}

func TestBuildSubscriptionRequest(t *testing.T) {
	request := buildSubscriptionRequest([]string{"a", "b"})

	if got := len(request.GetSubscriptions()); got != 2 {
		t.Fatalf("got %d subscriptions, want 2", got)
	}
	if got := request.GetSubscriptions()[0].GetEventType(); got != "sawtooth/block-commit" {
		t.Errorf("first subscription type = %q, want sawtooth/block-commit", got)
	}

	delta := request.GetSubscriptions()[1]
	if got := delta.GetEventType(); got != "sawtooth/state-delta" {
		t.Errorf("second subscription type = %q, want sawtooth/state-delta", got)
	}
	if got := len(delta.GetFilters()); got != 1 {
		t.Fatalf("got %d delta filters, want 1", got)
	}
	filter := delta.GetFilters()[0]
	if filter.GetKey() != "address" {
		t.Errorf("filter key = %q, want address", filter.GetKey())
	}
	if want := "^" + addressing.Prefix(); filter.GetMatchString() != want {
		t.Errorf("filter match string = %q, want %q", filter.GetMatchString(), want)
	}

	if got := request.GetLastKnownBlockIds(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("last known block ids = %v, want [a b]", got)
	}
}

func TestStartRetriesOnUnknownBlock(t *testing.T) {
	ids := blockIDs(15)
	conn := newFakeConn(
		client_event_pb2.ClientEventsSubscribeResponse_UNKNOWN_BLOCK,
		client_event_pb2.ClientEventsSubscribeResponse_OK,
	)
	sub := New(conn, &fakeHandler{}, testLogger())
	conn.onTimeout = sub.Shutdown

	if err := sub.Start(context.Background(), ids, 0); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	requests := conn.subscribeRequests(t)
	if len(requests) != 2 {
		t.Fatalf("got %d subscribe requests, want 2", len(requests))
	}
	if got := requests[0].GetLastKnownBlockIds(); !reflect.DeepEqual(got, ids[0:10]) {
		t.Errorf("first offer = %v, want newest ten ids", got)
	}
	if got := requests[1].GetLastKnownBlockIds(); !reflect.DeepEqual(got, ids[10:15]) {
		t.Errorf("second offer = %v, want next older window", got)
	}
	if !conn.unsubscribed {
		t.Error("expected an unsubscribe request after shutdown")
	}
	if !conn.closed {
		t.Error("expected the connection to be closed after shutdown")
	}
}

func TestStartFailsWhenGenesisRejected(t *testing.T) {
	conn := newFakeConn(
		client_event_pb2.ClientEventsSubscribeResponse_UNKNOWN_BLOCK,
	)
	sub := New(conn, &fakeHandler{}, testLogger())

	err := sub.Start(context.Background(), nil, 0)
	if err == nil {
		t.Fatal("expected an error when the genesis offer is rejected")
	}
	if !serrors.IsKind(err, serrors.Connection) {
		t.Errorf("error kind = %v, want Connection", err)
	}
	if conn.unsubscribed {
		t.Error("unsubscribe should not be sent when the subscription never opened")
	}
}

func TestStartExhaustsWindowsBeforeGenesis(t *testing.T) {
	ids := blockIDs(15)
	conn := newFakeConn(
		client_event_pb2.ClientEventsSubscribeResponse_UNKNOWN_BLOCK,
		client_event_pb2.ClientEventsSubscribeResponse_UNKNOWN_BLOCK,
		client_event_pb2.ClientEventsSubscribeResponse_OK,
	)
	sub := New(conn, &fakeHandler{}, testLogger())
	conn.onTimeout = sub.Shutdown

	if err := sub.Start(context.Background(), ids, 0); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	requests := conn.subscribeRequests(t)
	if len(requests) != 3 {
		t.Fatalf("got %d subscribe requests, want 3", len(requests))
	}
	if got := requests[2].GetLastKnownBlockIds(); !reflect.DeepEqual(got, []string{NullBlockID}) {
		t.Errorf("final offer = %v, want the genesis sentinel", got)
	}
}

func TestStartFailsOnInvalidStatus(t *testing.T) {
	conn := newFakeConn(
		client_event_pb2.ClientEventsSubscribeResponse_INVALID_FILTER,
	)
	sub := New(conn, &fakeHandler{}, testLogger())

	err := sub.Start(context.Background(), nil, 0)
	if err == nil {
		t.Fatal("expected an error for an invalid subscribe status")
	}
	if !serrors.IsKind(err, serrors.Connection) {
		t.Errorf("error kind = %v, want Connection", err)
	}
}

func TestStartDeliversFramesToHandler(t *testing.T) {
	conn := newFakeConn(client_event_pb2.ClientEventsSubscribeResponse_OK)
	conn.events = [][]byte{{0x01}, {0x02}}
	handler := &fakeHandler{}
	sub := New(conn, handler, testLogger())
	conn.onTimeout = sub.Shutdown

	if err := sub.Start(context.Background(), nil, 0); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if want := [][]byte{{0x01}, {0x02}}; !reflect.DeepEqual(handler.frames, want) {
		t.Errorf("handler received %v, want %v", handler.frames, want)
	}
	if !conn.unsubscribed {
		t.Error("expected an unsubscribe request after shutdown")
	}
}

func TestStartUnsubscribesOnHandlerError(t *testing.T) {
	conn := newFakeConn(client_event_pb2.ClientEventsSubscribeResponse_OK)
	conn.events = [][]byte{{0x01}}
	handlerErr := serrors.Parsef("no block event found")
	sub := New(conn, &fakeHandler{err: handlerErr}, testLogger())

	err := sub.Start(context.Background(), nil, 0)
	if err != handlerErr {
		t.Fatalf("Start returned %v, want the handler error", err)
	}
	if !conn.unsubscribed {
		t.Error("expected an unsubscribe attempt even when handling fails")
	}
	if !conn.closed {
		t.Error("expected the connection to be closed")
	}
}
