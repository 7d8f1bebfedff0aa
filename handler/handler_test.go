package handler

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/events_pb2"
	"github.com/hyperledger/sawtooth-sdk-go/protobuf/transaction_receipt_pb2"

	"github.com/target/consensource-sds/addressing"
	serrors "github.com/target/consensource-sds/errors"
	"github.com/target/consensource-sds/logging"
	"github.com/target/consensource-sds/protobuf/agent_pb2"
	"github.com/target/consensource-sds/storage"
)

func testLogger() *logging.ComponentLogger {
	return logging.NewComponentLogger("handler-test", "0.0.0", 0)
}

type appliedBlock struct {
	block      storage.Block
	operations []storage.Operation
}

type fakeStore struct {
	applied []appliedBlock
	err     error
}

func (s *fakeStore) FetchKnownBlocks(_ context.Context) ([]storage.Block, error) {
	return nil, nil
}

func (s *fakeStore) ExecuteOperationsInBlock(_ context.Context, operations []storage.Operation, block storage.Block) error {
	if s.err != nil {
		return s.err
	}
	s.applied = append(s.applied, appliedBlock{block: block, operations: operations})
	return nil
}

func marshalFrame(t *testing.T, events ...*events_pb2.Event) []byte {
	t.Helper()
	data, err := proto.Marshal(&events_pb2.EventList{Events: events})
	if err != nil {
		t.Fatalf("failed to marshal event list: %v", err)
	}
	return data
}

func commitEvent(blockNum, blockID string) *events_pb2.Event {
	var attrs []*events_pb2.Event_Attribute
	if blockNum != "" {
		attrs = append(attrs, &events_pb2.Event_Attribute{Key: "block_num", Value: blockNum})
	}
	if blockID != "" {
		attrs = append(attrs, &events_pb2.Event_Attribute{Key: "block_id", Value: blockID})
	}
	return &events_pb2.Event{
		EventType:  blockCommitEventType,
		Attributes: attrs,
	}
}

func deltaEvent(t *testing.T, changes ...*txn_receipt_pb2.StateChange) *events_pb2.Event {
	t.Helper()
	data, err := proto.Marshal(&txn_receipt_pb2.StateChangeList{StateChanges: changes})
	if err != nil {
		t.Fatalf("failed to marshal state change list: %v", err)
	}
	return &events_pb2.Event{
		EventType: stateDeltaEventType,
		Data:      data,
	}
}

// entityAddress builds a full 70 character address under the registry
// namespace with the given entity tag.
func entityAddress(tag string) string {
	return addressing.Prefix() + tag + strings.Repeat("0", 62)
}

func agentPayload(t *testing.T, agents ...*agent_pb2.Agent) []byte {
	t.Helper()
	data, err := proto.Marshal(&agent_pb2.AgentContainer{Entries: agents})
	if err != nil {
		t.Fatalf("failed to marshal agent container: %v", err)
	}
	return data
}

func TestHandleEventsEmptyFrameIsNoOp(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)

	if err := h.HandleEvents(context.Background(), marshalFrame(t)); err != nil {
		t.Fatalf("HandleEvents returned error: %v", err)
	}
	if len(store.applied) != 0 {
		t.Errorf("store was called %d times, want 0", len(store.applied))
	}
}

func TestHandleEventsIrrelevantEventsAreNoOp(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)
	frame := marshalFrame(t, &events_pb2.Event{EventType: "sawtooth/settings"})

	if err := h.HandleEvents(context.Background(), frame); err != nil {
		t.Fatalf("HandleEvents returned error: %v", err)
	}
	if len(store.applied) != 0 {
		t.Errorf("store was called %d times, want 0", len(store.applied))
	}
}

func TestHandleEventsDeltasWithoutCommitFail(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)
	frame := marshalFrame(t, deltaEvent(t, &txn_receipt_pb2.StateChange{
		Address: entityAddress("00"),
		Value:   agentPayload(t),
	}))

	err := h.HandleEvents(context.Background(), frame)
	if err == nil {
		t.Fatal("expected an error for deltas without a commit event")
	}
	if !serrors.IsKind(err, serrors.Parse) {
		t.Errorf("error kind = %v, want Parse", err)
	}
	if len(store.applied) != 0 {
		t.Error("store should not be called for a failed frame")
	}
}

func TestHandleEventsLastCommitWins(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)
	frame := marshalFrame(t,
		commitEvent("7", "B7"),
		commitEvent("8", "B8"),
	)

	if err := h.HandleEvents(context.Background(), frame); err != nil {
		t.Fatalf("HandleEvents returned error: %v", err)
	}
	if len(store.applied) != 1 {
		t.Fatalf("store was called %d times, want 1", len(store.applied))
	}
	got := store.applied[0].block
	if got.BlockNum != 8 || got.BlockID != "B8" {
		t.Errorf("applied block = %+v, want block 8 B8", got)
	}
}

func TestHandleEventsBlockAttributeErrors(t *testing.T) {
	tests := []struct {
		name   string
		commit *events_pb2.Event
	}{
		{"missing block_num", commitEvent("", "B1")},
		{"missing block_id", commitEvent("1", "")},
		{"non numeric block_num", commitEvent("not-a-number", "B1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			h := NewEventHandler(store, testLogger(), nil)

			err := h.HandleEvents(context.Background(), marshalFrame(t, tt.commit))
			if err == nil {
				t.Fatal("expected a parse error")
			}
			if !serrors.IsKind(err, serrors.Parse) {
				t.Errorf("error kind = %v, want Parse", err)
			}
		})
	}
}

func TestHandleEventsFiltersForeignNamespace(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)
	foreign := strings.Repeat("f", 70)
	frame := marshalFrame(t,
		commitEvent("3", "B3"),
		deltaEvent(t, &txn_receipt_pb2.StateChange{
			Address: foreign,
			Value:   []byte("irrelevant"),
		}),
	)

	if err := h.HandleEvents(context.Background(), frame); err != nil {
		t.Fatalf("HandleEvents returned error: %v", err)
	}
	if len(store.applied) != 1 {
		t.Fatalf("store was called %d times, want 1", len(store.applied))
	}
	if got := len(store.applied[0].operations); got != 0 {
		t.Errorf("got %d operations, want 0 after namespace filtering", got)
	}
}

func TestHandleEventsUnrecognizedTagFails(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)
	frame := marshalFrame(t,
		commitEvent("3", "B3"),
		deltaEvent(t, &txn_receipt_pb2.StateChange{
			Address: entityAddress("ff"),
			Value:   []byte{},
		}),
	)

	err := h.HandleEvents(context.Background(), frame)
	if err == nil {
		t.Fatal("expected an error for an unrecognized in-namespace tag")
	}
	if !serrors.IsKind(err, serrors.Parse) {
		t.Errorf("error kind = %v, want Parse", err)
	}
}

func TestHandleEventsAppliesAgentFrame(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)
	frame := marshalFrame(t,
		commitEvent("42", "B42"),
		deltaEvent(t, &txn_receipt_pb2.StateChange{
			Address: entityAddress("00"),
			Value: agentPayload(t, &agent_pb2.Agent{
				PublicKey: "agent-key",
				Name:      "alice",
				Timestamp: 1600000000,
			}),
		}),
	)

	if err := h.HandleEvents(context.Background(), frame); err != nil {
		t.Fatalf("HandleEvents returned error: %v", err)
	}
	if len(store.applied) != 1 {
		t.Fatalf("store was called %d times, want 1", len(store.applied))
	}

	applied := store.applied[0]
	if applied.block.BlockNum != 42 || applied.block.BlockID != "B42" {
		t.Fatalf("applied block = %+v, want block 42 B42", applied.block)
	}
	if len(applied.operations) != 1 {
		t.Fatalf("got %d operations, want 1", len(applied.operations))
	}

	op, ok := applied.operations[0].(storage.CreateAgent)
	if !ok {
		t.Fatalf("operation type = %T, want storage.CreateAgent", applied.operations[0])
	}
	if len(op.Agents) != 1 {
		t.Fatalf("got %d agents, want 1", len(op.Agents))
	}
	agent := op.Agents[0]
	if agent.PublicKey != "agent-key" || agent.Name != "alice" || agent.Timestamp != 1600000000 {
		t.Errorf("agent = %+v, want the decoded entry", agent)
	}
	if agent.OrganizationID != nil {
		t.Errorf("organization id = %v, want nil for an unset field", *agent.OrganizationID)
	}
	if agent.StartBlockNum != 42 {
		t.Errorf("start block num = %d, want 42", agent.StartBlockNum)
	}
	if agent.EndBlockNum != storage.MaxBlockNum {
		t.Errorf("end block num = %d, want the open sentinel", agent.EndBlockNum)
	}
}

type fakeRecorder struct {
	blocks []int64
}

func (r *fakeRecorder) RecordBlock(blockNum int64) {
	r.blocks = append(r.blocks, blockNum)
}

func TestHandleEventsRecordsAppliedBlocks(t *testing.T) {
	recorder := &fakeRecorder{}
	h := NewEventHandler(&fakeStore{}, testLogger(), recorder)

	if err := h.HandleEvents(context.Background(), marshalFrame(t, commitEvent("5", "B5"))); err != nil {
		t.Fatalf("HandleEvents returned error: %v", err)
	}
	if err := h.HandleEvents(context.Background(), marshalFrame(t)); err != nil {
		t.Fatalf("HandleEvents returned error: %v", err)
	}

	if len(recorder.blocks) != 1 || recorder.blocks[0] != 5 {
		t.Errorf("recorded blocks = %v, want [5]", recorder.blocks)
	}
}

func TestHandleEventsDoesNotRecordFailedBlocks(t *testing.T) {
	recorder := &fakeRecorder{}
	store := &fakeStore{err: fmt.Errorf("connection reset")}
	h := NewEventHandler(store, testLogger(), recorder)

	if err := h.HandleEvents(context.Background(), marshalFrame(t, commitEvent("5", "B5"))); err == nil {
		t.Fatal("expected a storage error")
	}
	if len(recorder.blocks) != 0 {
		t.Errorf("recorded blocks = %v, want none for a failed apply", recorder.blocks)
	}
}

func TestHandleEventsWrapsStorageErrors(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("connection reset")}
	h := NewEventHandler(store, testLogger(), nil)
	frame := marshalFrame(t, commitEvent("1", "B1"))

	err := h.HandleEvents(context.Background(), frame)
	if err == nil {
		t.Fatal("expected a storage error")
	}
	if !serrors.IsKind(err, serrors.Storage) {
		t.Errorf("error kind = %v, want Storage", err)
	}
}

func TestHandleEventsMalformedFrameFails(t *testing.T) {
	store := &fakeStore{}
	h := NewEventHandler(store, testLogger(), nil)

	err := h.HandleEvents(context.Background(), []byte{0xff})
	if err == nil {
		t.Fatal("expected a parse error for malformed frame bytes")
	}
	if !serrors.IsKind(err, serrors.Parse) {
		t.Errorf("error kind = %v, want Parse", err)
	}
}
